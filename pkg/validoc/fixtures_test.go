package validoc_test

import (
	"reflect"

	"github.com/dmitrymomot/validoc/pkg/validator"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

type address struct {
	Line1    string
	Postcode string
}

type person struct {
	FirstName *string
	LastName  string
	Address   *address
	Age       int
}

func newAddressValidator() *validator.Validator[address] {
	v := validator.New[address]("AddressValidator")
	validator.RuleFor(v, "Line1", func(a address) string { return a.Line1 }).NotEmpty()
	validator.RuleFor(v, "Postcode", func(a address) string { return a.Postcode }).
		NotEmpty().
		ExactLength(5)
	return v
}

// newPersonValidator declares FirstName not-null and LastName not-empty with
// a maximum length of 20.
func newPersonValidator(opts ...validator.Option) *validator.Validator[person] {
	v := validator.New[person]("PersonValidator", opts...)
	validator.RuleFor(v, "FirstName", func(p person) *string { return p.FirstName }).NotNull()
	validator.RuleFor(v, "LastName", func(p person) string { return p.LastName }).
		NotEmpty().
		MaximumLength(20)
	return v
}

func newPersonWithAddressValidator() *validator.Validator[person] {
	v := newPersonValidator()
	validator.RuleFor(v, "Address", func(p person) *address { return p.Address }).
		SetValidator(newAddressValidator())
	return v
}

type nodeA struct {
	Name string
	B    *nodeB
}

type nodeB struct {
	Title string
	A     *nodeA
}

// newCyclicValidators returns AValidator delegating to BValidator, which
// delegates back to AValidator.
func newCyclicValidators() (*validator.Validator[nodeA], *validator.Validator[nodeB]) {
	a := validator.New[nodeA]("AValidator")
	b := validator.New[nodeB]("BValidator")
	validator.RuleFor(a, "Name", func(n nodeA) string { return n.Name }).NotEmpty()
	validator.RuleFor(a, "B", func(n nodeA) *nodeB { return n.B }).
		SetValidatorFunc("BValidator", func() validator.ChildValidator { return b })
	validator.RuleFor(b, "Title", func(n nodeB) string { return n.Title }).NotEmpty()
	validator.RuleFor(b, "A", func(n nodeB) *nodeA { return n.A }).
		SetValidatorFunc("AValidator", func() validator.ChildValidator { return a })
	return a, b
}

// describer is a hand-built descriptor source.
type describer struct {
	name string
	desc *validator.Descriptor
}

func (d describer) Name() string { return d.name }
func (d describer) Type() reflect.Type { return nil }
func (d describer) Descriptor() *validator.Descriptor { return d.desc }

func kinds(rules []validoc.RuleDescription) []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.ValidatorName
	}
	return out
}

// Address shares its name with the local type in
// TestGetRules_SameNamedTypes.
type Address struct {
	Lat string `validate:"required"`
}

type geoAddress = Address

type ping struct {
	Name string `validate:"required"`
	Pong *pong
}

type pong struct {
	Title string `validate:"required"`
	Ping  *ping
}
