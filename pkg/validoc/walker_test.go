package validoc_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validoc/pkg/structtag"
	"github.com/dmitrymomot/validoc/pkg/validator"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

func TestGetRules_ConcreteScenarios(t *testing.T) {
	t.Run("framework defaults", func(t *testing.T) {
		rules, err := validoc.GetRules(newPersonValidator(), false)
		require.NoError(t, err)
		require.Len(t, rules, 3)

		assert.Equal(t, []string{"NotNull", "NotEmpty", "MaximumLength"}, kinds(rules))
		assert.Equal(t, "First Name", rules[0].MemberName)
		assert.Equal(t, "Last Name", rules[1].MemberName)
		assert.Equal(t, "Last Name", rules[2].MemberName)
		for _, r := range rules {
			assert.Equal(t, "Error", r.FailureSeverity.String())
			assert.Equal(t, "Continue", r.OnFailure.String())
			assert.Nil(t, r.ValidationMessage)
			assert.Equal(t, 0, r.Depth)
		}
	})

	t.Run("stop on first failure", func(t *testing.T) {
		rules, err := validoc.GetRules(newPersonValidator(validator.WithCascade(validator.StopOnFirstFailure)), false)
		require.NoError(t, err)
		require.Len(t, rules, 3)
		assert.Equal(t, []string{"NotNull", "NotEmpty", "MaximumLength"}, kinds(rules))
		for _, r := range rules {
			assert.Equal(t, "StopOnFirstFailure", r.OnFailure.String())
		}
	})

	t.Run("delegation deep", func(t *testing.T) {
		v := newPersonWithAddressValidator()

		parent, err := validoc.GetRules(newPersonValidator(), false)
		require.NoError(t, err)
		child, err := validoc.GetRules(newAddressValidator(), false)
		require.NoError(t, err)
		require.Len(t, child, 3)

		deep, err := validoc.GetRules(v, true)
		require.NoError(t, err)
		require.Len(t, deep, len(parent)+1+len(child))

		assert.Equal(t, kinds(parent), kinds(deep[:len(parent)]))
		del := deep[len(parent)]
		assert.Equal(t, "AddressValidator", del.ValidatorName)
		assert.Equal(t, "Address", del.MemberName)
		assert.True(t, del.Delegation)
		assert.Nil(t, del.ValidationMessage)
		assert.Equal(t, kinds(child), kinds(deep[len(parent)+1:]))
		assert.Equal(t, []string{"Address.Line1", "Address.Postcode", "Address.Postcode"},
			[]string{deep[4].Path, deep[5].Path, deep[6].Path})
		assert.Equal(t, 1, deep[4].Depth)
	})
}

func TestGetRules_CascadeInheritance(t *testing.T) {
	v := validator.New[person]("PersonValidator", validator.WithCascade(validator.StopOnFirstFailure))
	validator.RuleFor(v, "FirstName", func(p person) *string { return p.FirstName }).NotNull()
	validator.RuleFor(v, "LastName", func(p person) string { return p.LastName }).
		Cascade(validator.Continue).
		NotEmpty().
		MaximumLength(20)

	rules, err := validoc.GetRules(v, false)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, validator.StopOnFirstFailure, rules[0].OnFailure)
	assert.Equal(t, validator.Continue, rules[1].OnFailure)
	assert.Equal(t, validator.Continue, rules[2].OnFailure)
}

func TestGetRules_ShallowVsDeep(t *testing.T) {
	v := newPersonWithAddressValidator()

	shallow, err := validoc.GetRules(v, false)
	require.NoError(t, err)
	var addressEntries []validoc.RuleDescription
	for _, r := range shallow {
		if r.Path == "Address" {
			addressEntries = append(addressEntries, r)
		}
	}
	require.Len(t, addressEntries, 1)
	assert.Nil(t, addressEntries[0].ValidationMessage)

	deep, err := validoc.GetRules(v, true)
	require.NoError(t, err)
	assert.Equal(t, shallow, deep[:len(shallow)])
}

func TestGetRules_MemberOrdering(t *testing.T) {
	v := validator.New[person]("PersonValidator")
	validator.RuleFor(v, "LastName", func(p person) string { return p.LastName }).NotEmpty()
	validator.RuleFor(v, "Age", func(p person) int { return p.Age }).
		GreaterThan(0).
		LessThan(150).
		NotEqual(42)
	validator.RuleFor(v, "LastName", func(p person) string { return p.LastName }).MaximumLength(20)
	validator.RuleFor(v, "FirstName", func(p person) *string { return p.FirstName })

	rules, err := validoc.GetRules(v, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"NotEmpty", "MaximumLength", "GreaterThan", "LessThan", "NotEqual"}, kinds(rules))

	doc, err := validoc.Document(v, false)
	require.NoError(t, err)
	require.Len(t, doc, 2)
	assert.Equal(t, "Last Name", doc[0].MemberName)
	assert.Equal(t, "Age", doc[1].MemberName)
	assert.Len(t, doc[0].Rules, 2)
	assert.Len(t, doc[1].Rules, 3)
}

func TestGetRules_Preconditions(t *testing.T) {
	t.Run("nil validator", func(t *testing.T) {
		rules, err := validoc.GetRules(nil, false)
		assert.ErrorIs(t, err, validoc.ErrNilValidator)
		assert.Nil(t, rules)

		var typed *validator.Validator[person]
		rules, err = validoc.GetRules(typed, true)
		assert.ErrorIs(t, err, validoc.ErrNilValidator)
		assert.Nil(t, rules)

		doc, err := validoc.Document(nil, false)
		assert.ErrorIs(t, err, validoc.ErrNilValidator)
		assert.Nil(t, doc)
	})

	t.Run("nil descriptor", func(t *testing.T) {
		rules, err := validoc.GetRules(describer{name: "Broken"}, false)
		assert.ErrorIs(t, err, validoc.ErrNilDescriptor)
		assert.Nil(t, rules)
	})

	t.Run("no constrained members", func(t *testing.T) {
		rules, err := validoc.GetRules(validator.New[person]("EmptyValidator"), true)
		require.NoError(t, err)
		assert.Empty(t, rules)

		doc, err := validoc.Document(validator.New[person]("EmptyValidator"), true)
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Empty(t, doc)
	})
}

func TestGetRules_UnresolvedChild(t *testing.T) {
	v := newPersonValidator()
	validator.RuleFor(v, "Address", func(p person) *address { return p.Address }).
		SetValidatorFunc("GhostValidator", func() validator.ChildValidator { return nil })
	validator.RuleFor(v, "Age", func(p person) int { return p.Age }).GreaterThan(0)

	shallow, err := validoc.GetRules(v, false)
	require.NoError(t, err)
	require.Len(t, shallow, 5)

	deep, err := validoc.GetRules(v, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, validoc.ErrUnresolvedChild)
	assert.Equal(t, shallow, deep)
	assert.Equal(t, "GhostValidator", deep[3].ValidatorName)
	assert.Equal(t, "GreaterThan", deep[4].ValidatorName)

	var derr *validoc.DelegationError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "Address", derr.Path)
	assert.Equal(t, []string{"PersonValidator", "GhostValidator"}, derr.Chain)
}

func TestGetRules_Cycle(t *testing.T) {
	a, _ := newCyclicValidators()

	rules, err := validoc.GetRules(a, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, validoc.ErrCyclicDelegation)
	assert.Equal(t, []string{"NotEmpty", "BValidator", "NotEmpty", "AValidator"}, kinds(rules))
	assert.Equal(t, "B.A", rules[3].Path)

	var derr *validoc.DelegationError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, []string{"AValidator", "BValidator", "AValidator"}, derr.Chain)

	shallow, err := validoc.GetRules(a, false)
	require.NoError(t, err)
	assert.Len(t, shallow, 2)
}

func TestGetRules_SameNamedTypes(t *testing.T) {
	t.Run("struct tags", func(t *testing.T) {
		type Address struct {
			Street string `validate:"required"`
			Geo    geoAddress
		}

		rules, err := validoc.GetRules(structtag.For[Address](), true)
		require.NoError(t, err)
		assert.Equal(t, []string{"NotEmpty", "AddressValidator", "NotEmpty"}, kinds(rules))
		assert.Equal(t, "Geo.Lat", rules[2].Path)
		assert.Equal(t, 1, rules[2].Depth)
	})

	t.Run("fluent validators", func(t *testing.T) {
		type location struct{ Home address }

		outer := validator.New[location]("AddressValidator")
		validator.RuleFor(outer, "Home", func(l location) address { return l.Home }).
			SetValidator(newAddressValidator())

		rules, err := validoc.GetRules(outer, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"AddressValidator", "NotEmpty", "NotEmpty", "ExactLength"}, kinds(rules))
		assert.Equal(t, "Home.Postcode", rules[3].Path)
	})
}

func TestGetRules_RenamedRootCycle(t *testing.T) {
	rules, err := validoc.GetRules(structtag.For[ping](structtag.WithName("RootValidator")), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, validoc.ErrCyclicDelegation)
	assert.Equal(t, []string{"NotEmpty", "PongValidator", "NotEmpty", "PingValidator"}, kinds(rules))

	var derr *validoc.DelegationError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "Pong.Ping", derr.Path)
	assert.Equal(t, []string{"RootValidator", "PongValidator", "PingValidator"}, derr.Chain)
}

func TestBuilder_MaxDepth(t *testing.T) {
	type leaf struct{ Value string }
	type middle struct{ Leaf leaf }
	type root struct{ Middle middle }

	leafV := validator.New[leaf]("LeafValidator")
	validator.RuleFor(leafV, "Value", func(l leaf) string { return l.Value }).NotEmpty()
	middleV := validator.New[middle]("MiddleValidator")
	validator.RuleFor(middleV, "Leaf", func(m middle) leaf { return m.Leaf }).SetValidator(leafV)
	rootV := validator.New[root]("RootValidator")
	validator.RuleFor(rootV, "Middle", func(r root) middle { return r.Middle }).SetValidator(middleV)

	rules, err := validoc.NewBuilder(validoc.WithMaxDepth(1)).Rules(rootV, true)
	assert.ErrorIs(t, err, validoc.ErrMaxDepthExceeded)
	assert.Equal(t, []string{"MiddleValidator", "LeafValidator"}, kinds(rules))

	rules, err = validoc.NewBuilder().Rules(rootV, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"MiddleValidator", "LeafValidator", "NotEmpty"}, kinds(rules))
	assert.Equal(t, "Middle.Leaf.Value", rules[2].Path)
	assert.Equal(t, 2, rules[2].Depth)
}

func TestDocument_Deterministic(t *testing.T) {
	v := newPersonWithAddressValidator()

	first, err := validoc.Document(v, true)
	require.NoError(t, err)
	second, err := validoc.Document(v, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	b1, err := json.Marshal(first)
	require.NoError(t, err)
	b2, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestDocument_Concurrent(t *testing.T) {
	type contact struct {
		Email string `validate:"required,email"`
		Home  *Address
	}

	fluentWant, err := validoc.Document(newPersonWithAddressValidator(), true)
	require.NoError(t, err)
	tagsWant, err := validoc.Document(structtag.For[contact](), true)
	require.NoError(t, err)

	fluent := newPersonWithAddressValidator()
	tags := structtag.For[contact]()

	const workers = 16
	var wg sync.WaitGroup
	fluentGot := make([][]validoc.RuleDescriptor, workers)
	tagsGot := make([][]validoc.RuleDescriptor, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var ferr, terr error
			fluentGot[i], ferr = validoc.Document(fluent, true)
			tagsGot[i], terr = validoc.Document(tags, true)
			errs[i] = errors.Join(ferr, terr)
		}()
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, fluentWant, fluentGot[i])
		assert.Equal(t, tagsWant, tagsGot[i])
	}
}

func TestGetRules_UnsetSeverity(t *testing.T) {
	d := validator.NewDescriptor(validator.Continue,
		validator.NewPropertyRule("Code", "",
			validator.NewConstraint("Custom", "", nil, validator.WithConstraintSeverity(0)),
		),
	)
	rules, err := validoc.GetRules(describer{name: "CodeValidator", desc: d}, false)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "", rules[0].FailureSeverity.String())

	raw, err := json.Marshal(rules[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"failure_severity":""`)
}
