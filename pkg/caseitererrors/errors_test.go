package caseitererrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ianbrault/case-iterable/pkg/caseitererrors"
)

func TestNotEnum(t *testing.T) {
	err := &caseitererrors.Error{Kind: caseitererrors.KindNotEnum, Type: "Color"}
	assert.Equal(t, "Color is not an enum", err.Error())
}

func TestNotEnumReason(t *testing.T) {
	err := &caseitererrors.Error{
		Kind:   caseitererrors.KindNotEnum,
		Type:   "Box",
		Reason: "underlying type struct{x int} is not basic",
	}
	assert.Equal(t, "Box is not an enum: underlying type struct{x int} is not basic", err.Error())
}

func TestDuplicateCase(t *testing.T) {
	err := &caseitererrors.Error{
		Kind: caseitererrors.KindDuplicateCase,
		Type: "Color",
		Case: "ColorDefault",
		Prev: "Red",
	}
	assert.Equal(t, "constant ColorDefault duplicates the value of case Red", err.Error())
}

func TestNoCases(t *testing.T) {
	err := &caseitererrors.Error{Kind: caseitererrors.KindNoCases, Type: "Color"}
	assert.Equal(t, "enum Color declares no constants", err.Error())
}

func TestKindOf(t *testing.T) {
	err := &caseitererrors.Error{Kind: caseitererrors.KindNoCases, Type: "Color"}
	wrapped := fmt.Errorf("building Color: %w", err)

	assert.Equal(t, caseitererrors.KindNoCases, caseitererrors.KindOf(wrapped))
	assert.Equal(t, caseitererrors.Kind(0), caseitererrors.KindOf(errors.New("other")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not an enum", caseitererrors.KindNotEnum.String())
	assert.Equal(t, "duplicate case", caseitererrors.KindDuplicateCase.String())
	assert.Equal(t, "no cases", caseitererrors.KindNoCases.String())
}

func TestErrorAs(t *testing.T) {
	orig := &caseitererrors.Error{Kind: caseitererrors.KindDuplicateCase, Case: "B", Prev: "A"}
	err := fmt.Errorf("wrap: %w", orig)

	var e *caseitererrors.Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, "B", e.Case)
	assert.Equal(t, "A", e.Prev)
}
