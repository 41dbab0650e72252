// Package sample holds the validators documented by the validoc binary.
package sample

import (
	"strings"
	"time"

	"github.com/dmitrymomot/validoc/pkg/structtag"
	"github.com/dmitrymomot/validoc/pkg/validator"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// Address is a postal address.
type Address struct {
	Line1    string
	Line2    string
	Town     string
	Postcode string
	Country  string
}

// Occupation is the current job of a customer.
type Occupation struct {
	Title     string
	Employer  string
	StartedAt time.Time
}

// Customer is a customer record.
type Customer struct {
	ID         string
	FirstName  *string
	LastName   string
	Email      string
	Website    string
	Age        int
	Tier       string
	Address    *Address
	Occupation *Occupation
	Previous   []Address
}

// Signup is a sign-up form validated through struct tags.
type Signup struct {
	Email    string   `validate:"required,email"`
	Password string   `validate:"required,min=12,max=72"`
	Name     string   `validate:"required,max=64" label:"Full Name"`
	Plan     string   `validate:"oneof=free pro team"`
	Referrer string   `validate:"omitempty,url"`
	Address  *Address `validate:"required"`
}

// NewAddressValidator validates postal addresses.
func NewAddressValidator() *validator.Validator[Address] {
	v := validator.New[Address]("AddressValidator")
	validator.RuleFor(v, "Line1", func(a Address) string { return a.Line1 }).
		NotEmpty().
		MaximumLength(100)
	validator.RuleFor(v, "Line2", func(a Address) string { return a.Line2 }).
		MaximumLength(100).
		WithSeverity(validator.SeverityInfo)
	validator.RuleFor(v, "Town", func(a Address) string { return a.Town }).NotEmpty()
	validator.RuleFor(v, "Postcode", func(a Address) string { return a.Postcode }).
		Cascade(validator.StopOnFirstFailure).
		NotEmpty().
		Length(4, 10).
		Matches(`^[A-Za-z0-9 ]+$`)
	validator.RuleFor(v, "Country", func(a Address) string { return a.Country }).
		NotEmpty().
		ExactLength(2).
		WithMessage("Country must be an ISO 3166-1 alpha-2 code.")
	return v
}

// NewOccupationValidator validates occupations.
func NewOccupationValidator() *validator.Validator[Occupation] {
	v := validator.New[Occupation]("OccupationValidator")
	validator.RuleFor(v, "Title", func(o Occupation) string { return o.Title }).
		NotEmpty().
		Length(2, 80)
	validator.RuleFor(v, "Employer", func(o Occupation) string { return o.Employer }).
		MaximumLength(120)
	validator.RuleFor(v, "StartedAt", func(o Occupation) time.Time { return o.StartedAt }).
		WithName("Start Date").
		NotEmpty().
		Must("NotInFuture", func(t time.Time) bool { return !t.After(time.Now()) }).
		WithSeverity(validator.SeverityWarning)
	return v
}

// NewCustomerValidator validates customers and delegates addresses and the
// occupation to their own validators.
func NewCustomerValidator() *validator.Validator[Customer] {
	v := validator.New[Customer]("CustomerValidator")
	validator.RuleFor(v, "ID", func(c Customer) string { return c.ID }).
		WithName("Customer ID").
		UUID()
	validator.RuleFor(v, "FirstName", func(c Customer) *string { return c.FirstName }).NotNull()
	validator.RuleFor(v, "LastName", func(c Customer) string { return c.LastName }).
		NotEmpty().
		MaximumLength(20)
	validator.RuleFor(v, "Email", func(c Customer) string { return c.Email }).
		NotEmpty().
		Email()
	validator.RuleFor(v, "Website", func(c Customer) string { return c.Website }).
		Must("OptionalURL", func(s string) bool {
			return s == "" || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
		}).
		WithSeverity(validator.SeverityInfo)
	validator.RuleFor(v, "Age", func(c Customer) int { return c.Age }).
		InclusiveBetween(18, 130)
	validator.RuleFor(v, "Tier", func(c Customer) string { return c.Tier }).
		IsEnumName("basic", "silver", "gold")
	validator.RuleFor(v, "Address", func(c Customer) *Address { return c.Address }).
		NotNull().
		SetValidator(NewAddressValidator())
	validator.RuleFor(v, "Occupation", func(c Customer) *Occupation { return c.Occupation }).
		SetValidatorFunc("OccupationValidator", func() validator.ChildValidator {
			return NewOccupationValidator()
		})
	validator.RuleFor(v, "Previous", func(c Customer) []Address { return c.Previous }).
		WithName("Previous Addresses").
		SetValidator(NewAddressValidator())
	return v
}

// NewSignupValidator validates Signup through its struct tags.
func NewSignupValidator() *structtag.Validator {
	return structtag.For[Signup](structtag.WithName("SignupValidator"))
}

// Registry returns every sample validator.
func Registry() (*validoc.Registry, error) {
	return validoc.NewRegistry(
		NewCustomerValidator(),
		NewAddressValidator(),
		NewOccupationValidator(),
		NewSignupValidator(),
	)
}
