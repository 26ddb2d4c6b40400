package arrange

import (
	"testing"

	"github.com/matzehuels/spinesort/pkg/errors"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    Method
		wantErr bool
	}{
		{"", Luminosity, false},
		{"luminosity", Luminosity, false},
		{"hsv", HSV, false},
		{"HLS", HLS, false},
		{"step", Step, false},
		{"invertedStep", InvertedStep, false},
		{"invertedstep", InvertedStep, false},
		{"inverted-step", InvertedStep, false},
		{" hsv ", HSV, false},
		{"rainbow", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidMethod) {
					t.Errorf("expected INVALID_METHOD, got %v", errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMethodStringRoundTrip(t *testing.T) {
	for _, m := range Methods() {
		got, err := ParseMethod(m.String())
		if err != nil {
			t.Fatalf("ParseMethod(%q) error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("round trip %v -> %v", m, got)
		}
	}
}

func TestMethodLabels(t *testing.T) {
	want := map[Method]string{
		Luminosity:   "Luminosity",
		HSV:          "HSV",
		HLS:          "HLS",
		Step:         "Step Sorting",
		InvertedStep: "Inverted Step",
	}
	for m, label := range want {
		if m.Label() != label {
			t.Errorf("%v.Label() = %q, want %q", m, m.Label(), label)
		}
	}
}

func TestMethodInvalid(t *testing.T) {
	m := Method(42)
	if m.Valid() {
		t.Error("Method(42) should be invalid")
	}
	if m.String() != "unknown" {
		t.Errorf("String() = %q", m.String())
	}
	if _, err := m.MarshalText(); err == nil {
		t.Error("MarshalText should fail for invalid method")
	}
}

func TestMethodText(t *testing.T) {
	var m Method
	if err := m.UnmarshalText([]byte("step")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	if m != Step {
		t.Errorf("got %v, want step", m)
	}
	b, err := InvertedStep.MarshalText()
	if err != nil || string(b) != "invertedStep" {
		t.Errorf("MarshalText = %q, %v", b, err)
	}
}
