// Package structtag exposes the `validate:"..."` struct tags understood by
// github.com/go-playground/validator/v10 as a validator.Descriptor, so tagged
// request and model structs can be documented next to validators declared
// with package validator.
//
//	type Signup struct {
//		Email    string   `validate:"required,email"`
//		Password string   `validate:"required,min=12"`
//		Profile  *Profile `validate:"required"`
//	}
//
//	v := structtag.For[Signup]()
//	d := v.Descriptor() // Email, Password, Profile with their constraints
//
// Every tagged exported field becomes a member in declaration order and every
// tag a constraint. Tags with an equivalent in package validator map to its
// kinds and message keys ("min" on a string becomes MinimumLength, on a
// number GreaterThanOrEqual); any other tag becomes a constraint named after
// the tag itself. Struct fields and slices of structs marked with "dive"
// become delegations to a child validator built on first use, so recursive
// types are fine.
//
// The validator-wide cascade mode is StopOnFirstFailure: go-playground
// reports only the first failing tag of a field. Execution is delegated to a
// shared go-playground instance and failures are translated into
// validator.ValidationErrors with catalog messages.
package structtag
