package validator

import "fmt"

// Severity is the level a failed constraint is reported with.
// The zero value means the constraint declares no severity and renders as "".
type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "Error"
	case SeverityWarning:
		return "Warning"
	case SeverityInfo:
		return "Info"
	default:
		return ""
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Error":
		*s = SeverityError
	case "Warning":
		*s = SeverityWarning
	case "Info":
		*s = SeverityInfo
	case "":
		*s = 0
	default:
		return fmt.Errorf("%w: severity %q", ErrInvalidEnumValue, text)
	}
	return nil
}

// CascadeMode decides whether the constraints of a rule keep running after
// one of them fails.
type CascadeMode int

const (
	Continue CascadeMode = iota
	StopOnFirstFailure
)

func (m CascadeMode) String() string {
	if m == StopOnFirstFailure {
		return "StopOnFirstFailure"
	}
	return "Continue"
}

func (m CascadeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *CascadeMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Continue", "":
		*m = Continue
	case "StopOnFirstFailure":
		*m = StopOnFirstFailure
	default:
		return fmt.Errorf("%w: cascade mode %q", ErrInvalidEnumValue, text)
	}
	return nil
}
