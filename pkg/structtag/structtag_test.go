package structtag_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validoc/pkg/i18n"
	"github.com/dmitrymomot/validoc/pkg/structtag"
	"github.com/dmitrymomot/validoc/pkg/validator"
)

type profile struct {
	DisplayName string `validate:"required,max=32"`
	Website     string `validate:"omitempty,url"`
}

type tag struct {
	Name string `validate:"required"`
}

type signup struct {
	Email    string   `validate:"required,email"`
	Password string   `validate:"required,min=12" label:"Secret"`
	Age      int      `validate:"gte=18,lte=130"`
	Plan     string   `validate:"oneof=free pro"`
	Code     string   `validate:"alphanum"`
	Profile  *profile `validate:"required"`
	Tags     []tag    `validate:"dive"`
	Created  time.Time
	Internal string `validate:"-"`
}

type node struct {
	Value    string `validate:"required"`
	Children []node `validate:"dive"`
}

func kinds(cs []validator.Constraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Kind()
	}
	return out
}

func TestFor_Descriptor(t *testing.T) {
	v := structtag.For[signup]()
	d := v.Descriptor()

	assert.Equal(t, "signupValidator", v.Name())
	assert.Equal(t, validator.StopOnFirstFailure, d.Cascade())
	assert.Equal(t, []string{"Email", "Password", "Age", "Plan", "Code", "Profile", "Tags"}, d.Members())

	t.Run("tag mapping", func(t *testing.T) {
		assert.Equal(t, []string{"NotEmpty", "Email"}, kinds(d.RulesFor("Email")[0].Constraints()))
		assert.Equal(t, []string{"NotEmpty", "MinimumLength"}, kinds(d.RulesFor("Password")[0].Constraints()))
		assert.Equal(t, []string{"GreaterThanOrEqual", "LessThanOrEqual"}, kinds(d.RulesFor("Age")[0].Constraints()))
		assert.Equal(t, []string{"InList"}, kinds(d.RulesFor("Plan")[0].Constraints()))
		assert.Equal(t, []string{"alphanum"}, kinds(d.RulesFor("Code")[0].Constraints()))
		assert.Equal(t, []string{"NotEmpty", "profileValidator"}, kinds(d.RulesFor("Profile")[0].Constraints()))
		assert.Equal(t, []string{"tagValidator"}, kinds(d.RulesFor("Tags")[0].Constraints()))
	})

	t.Run("keys and params", func(t *testing.T) {
		minLen := d.RulesFor("Password")[0].Constraints()[1]
		assert.Equal(t, "validation.length.min", minLen.MessageKey())
		assert.Equal(t, map[string]any{"MinLength": 12}, minLen.Params())

		plan := d.RulesFor("Plan")[0].Constraints()[0]
		assert.Equal(t, []string{"free", "pro"}, plan.Params()["Values"])

		code := d.RulesFor("Code")[0].Constraints()[0]
		assert.Equal(t, "validation.tag", code.MessageKey())
		assert.Equal(t, "alphanum", code.Params()["Tag"])
	})

	t.Run("label sets display name", func(t *testing.T) {
		assert.Equal(t, "Secret", d.RulesFor("Password")[0].DisplayName())
		assert.Equal(t, "Email", d.RulesFor("Email")[0].DisplayName())
	})

	t.Run("nested delegation resolves lazily", func(t *testing.T) {
		del, ok := d.RulesFor("Profile")[0].Constraints()[1].(validator.Delegation)
		require.True(t, ok)
		child := del.Resolve()
		require.NotNil(t, child)
		assert.Equal(t, "profileValidator", child.Name())
		assert.Equal(t, []string{"DisplayName", "Website"}, child.Descriptor().Members())
		assert.Equal(t, []string{"URL"}, kinds(child.Descriptor().RulesFor("Website")[0].Constraints()))
	})
}

func TestFor_Recursive(t *testing.T) {
	v := structtag.For[node](structtag.WithName("NodeValidator"))
	d := v.Descriptor()
	assert.Equal(t, []string{"Value", "Children"}, d.Members())

	del, ok := d.RulesFor("Children")[0].Constraints()[0].(validator.Delegation)
	require.True(t, ok)
	assert.Equal(t, "NodeValidator", del.ValidatorName())
	require.NotNil(t, del.Resolve())
}

func TestFor_LengthVariants(t *testing.T) {
	type limits struct {
		Empty string `validate:"max=0"`
		Pin   string `validate:"len=4"`
		Bio   string `validate:"max=160"`
	}
	d := structtag.For[limits]().Descriptor()

	empty := d.RulesFor("Empty")[0].Constraints()[0]
	assert.Equal(t, "MaximumLength", empty.Kind())
	assert.Equal(t, "validation.length.max", empty.MessageKey())
	assert.Equal(t, map[string]any{"MaxLength": 0}, empty.Params())

	assert.Equal(t, "validation.length.exact", d.RulesFor("Pin")[0].Constraints()[0].MessageKey())
	assert.Equal(t, "validation.length.max", d.RulesFor("Bio")[0].Constraints()[0].MessageKey())
}

func TestForType(t *testing.T) {
	_, err := structtag.ForType(reflect.TypeOf(42))
	assert.ErrorIs(t, err, structtag.ErrNotStruct)
	assert.Panics(t, func() { structtag.For[string]() })

	v, err := structtag.ForType(reflect.TypeOf(&profile{}))
	require.NoError(t, err)
	assert.Equal(t, "profileValidator", v.Name())
}

func TestValidator_ValidateValue(t *testing.T) {
	v := structtag.For[signup]()
	ctx := context.Background()

	valid := signup{
		Email:    "ada@example.com",
		Password: "correct horse battery",
		Age:      36,
		Plan:     "pro",
		Code:     "ab12",
		Profile:  &profile{DisplayName: "Ada"},
		Tags:     []tag{{Name: "math"}},
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.ValidateValue(ctx, valid))
		assert.NoError(t, v.ValidateValue(ctx, &valid))
		assert.NoError(t, v.ValidateValue(ctx, (*signup)(nil)))
	})

	t.Run("failures are translated", func(t *testing.T) {
		bad := valid
		bad.Email = "not-an-email"
		bad.Password = "short"
		bad.Age = 17
		bad.Profile = &profile{}
		bad.Tags = []tag{{Name: ""}}

		err := v.ValidateValue(ctx, bad)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"Email", "Password", "Age", "Profile.DisplayName", "Tags[0].Name"}, verrs.Fields())
		assert.Equal(t, []string{"'Email' is not a valid email address."}, verrs.Get("Email"))
		assert.Equal(t, []string{"'Secret' must be more than 12 characters. You entered 5 characters."}, verrs.Get("Password"))
		assert.Equal(t, []string{"'Age' must be greater than or equal to '18'."}, verrs.Get("Age"))
		assert.Equal(t, []string{"'Display Name' should not be empty."}, verrs.Get("Profile.DisplayName"))
	})

	t.Run("language from context", func(t *testing.T) {
		bad := valid
		bad.Email = ""
		err := v.ValidateValue(i18n.SetLocale(ctx, "de"), bad)
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "'Email' darf nicht leer sein.", verrs[0].Message)
	})

	t.Run("type mismatch", func(t *testing.T) {
		assert.ErrorIs(t, v.ValidateValue(ctx, profile{}), validator.ErrTypeMismatch)
	})
}
