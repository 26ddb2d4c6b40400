package pipeline

import (
	"math"
	"testing"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"html", false},
		{"svg", false},
		{"json", false},
		{"terminal", false},
		{"png", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s, want INVALID_FORMAT", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateGroups(t *testing.T) {
	for n := arrange.MinGroups; n <= arrange.MaxGroups; n++ {
		if err := ValidateGroups(n); err != nil {
			t.Errorf("ValidateGroups(%d) = %v", n, err)
		}
	}
	for _, n := range []int{-1, 0, 5} {
		if err := ValidateGroups(n); !errors.Is(err, errors.ErrCodeInvalidGroupCount) {
			t.Errorf("ValidateGroups(%d) = %v, want INVALID_GROUP_COUNT", n, err)
		}
	}
}

func TestFormatNamesMatchValidFormats(t *testing.T) {
	if len(FormatNames) != len(ValidFormats) {
		t.Fatalf("FormatNames has %d entries, ValidFormats %d", len(FormatNames), len(ValidFormats))
	}
	for _, f := range FormatNames {
		if !ValidFormats[f] {
			t.Errorf("%q listed but not valid", f)
		}
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero options should validate: %v", err)
	}

	if opts.Method != arrange.DefaultMethod {
		t.Errorf("Method should be %s, got %s", arrange.DefaultMethod, opts.Method)
	}
	if opts.Groups != arrange.DefaultGroups {
		t.Errorf("Groups should be %d, got %d", arrange.DefaultGroups, opts.Groups)
	}
	if opts.Width != DefaultWidth {
		t.Errorf("Width should be %f, got %f", DefaultWidth, opts.Width)
	}
	if opts.StripeHeight != DefaultStripeHeight {
		t.Errorf("StripeHeight should be %f, got %f", DefaultStripeHeight, opts.StripeHeight)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Method: arrange.Step, Groups: 3}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	first := opts

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if opts.Method != first.Method || opts.Groups != first.Groups || opts.Width != first.Width {
		t.Error("options changed on second call")
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"bad method", Options{Method: arrange.Method(42)}, errors.ErrCodeInvalidMethod},
		{"too many groups", Options{Groups: 5}, errors.ErrCodeInvalidGroupCount},
		{"negative groups", Options{Groups: -2}, errors.ErrCodeInvalidGroupCount},
		{"bad format", Options{Formats: []string{"pdf"}}, errors.ErrCodeInvalidFormat},
		{"negative width", Options{Width: -1}, errors.ErrCodeInvalidInput},
		{"nan stripe height", Options{StripeHeight: math.NaN()}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSetRenderDefaults(t *testing.T) {
	opts := Options{}
	opts.SetRenderDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatText {
		t.Errorf("Formats should be [text], got %v", opts.Formats)
	}
	if opts.TerminalWidth != DefaultTerminalWidth {
		t.Errorf("TerminalWidth should be %d, got %d", DefaultTerminalWidth, opts.TerminalWidth)
	}
}
