package arrange

import (
	"strings"

	"github.com/matzehuels/spinesort/pkg/errors"
)

// Method selects a sort ordering.
type Method int

// Sort methods. The zero value is Luminosity.
const (
	Luminosity Method = iota
	HSV
	HLS
	Step
	InvertedStep
)

// DefaultMethod is used when no method is specified.
const DefaultMethod = Luminosity

var methodNames = [...]string{
	Luminosity:   "luminosity",
	HSV:          "hsv",
	HLS:          "hls",
	Step:         "step",
	InvertedStep: "invertedStep",
}

var methodLabels = [...]string{
	Luminosity:   "Luminosity",
	HSV:          "HSV",
	HLS:          "HLS",
	Step:         "Step Sorting",
	InvertedStep: "Inverted Step",
}

// Methods returns all sort methods in display order.
func Methods() []Method {
	return []Method{Luminosity, HSV, HLS, Step, InvertedStep}
}

// String returns the method's wire name, e.g. "invertedStep".
func (m Method) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return methodNames[m]
}

// Label returns the human-readable method name.
func (m Method) Label() string {
	if !m.Valid() {
		return "Unknown"
	}
	return methodLabels[m]
}

// Valid reports whether m is one of the defined methods.
func (m Method) Valid() bool {
	return m >= Luminosity && m <= InvertedStep
}

// ParseMethod resolves a method name. Matching ignores case and accepts
// "inverted-step" and "inverted_step" for InvertedStep. An empty name yields
// DefaultMethod.
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "":
		return DefaultMethod, nil
	case "inverted-step", "inverted_step":
		return InvertedStep, nil
	}
	for _, m := range Methods() {
		if strings.ToLower(methodNames[m]) == key {
			return m, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidMethod,
		"unknown sort method: %q (must be one of: %s)", name, strings.Join(MethodNames(), ", "))
}

// MethodNames returns the wire names of all methods.
func MethodNames() []string {
	names := make([]string, 0, len(methodNames))
	for _, m := range Methods() {
		names = append(names, m.String())
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidMethod, "invalid sort method: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
