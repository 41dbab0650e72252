package validoc

import "github.com/dmitrymomot/validoc/pkg/validator"

// RuleDescription documents one constraint on one member.
type RuleDescription struct {
	// MemberName is the display name of the member, e.g. "First Name".
	MemberName string `json:"member_name" yaml:"member_name"`
	// Path is the dotted member path from the documented validator, e.g.
	// "Address.Line1".
	Path string `json:"path" yaml:"path"`
	// ValidatorName is the constraint kind, or the child validator name for
	// delegations.
	ValidatorName   string                `json:"validator_name" yaml:"validator_name"`
	FailureSeverity validator.Severity    `json:"failure_severity" yaml:"failure_severity"`
	OnFailure       validator.CascadeMode `json:"on_failure" yaml:"on_failure"`
	// ValidationMessage is nil when the constraint has no static message.
	ValidationMessage *string `json:"validation_message" yaml:"validation_message"`
	// Delegation marks entries that run a child validator.
	Delegation bool `json:"delegation,omitempty" yaml:"delegation,omitempty"`
	// Depth is 0 for members of the documented validator and grows by one
	// per delegation level.
	Depth int `json:"depth" yaml:"depth"`
}

// Message returns the message or "" when there is none.
func (r RuleDescription) Message() string {
	if r.ValidationMessage == nil {
		return ""
	}
	return *r.ValidationMessage
}

// RuleDescriptor groups the rules of one member in production order.
type RuleDescriptor struct {
	MemberName string            `json:"member_name" yaml:"member_name"`
	Path       string            `json:"path" yaml:"path"`
	Rules      []RuleDescription `json:"rules" yaml:"rules"`
}
