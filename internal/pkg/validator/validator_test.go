package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("12345"))
	assert.True(t, IsNumeric("0"))
	assert.False(t, IsNumeric(""))
	assert.False(t, IsNumeric("12a45"))
	assert.False(t, IsNumeric("-123"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-01-10")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	_, ok = IsValidDate("10/01/2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidPunch(t *testing.T) {
	assert.True(t, IsValidPunch("07:00:00"))
	assert.True(t, IsValidPunch("23:59:59"))
	assert.False(t, IsValidPunch("07:00"))
	assert.False(t, IsValidPunch("25:00:00"))
	assert.False(t, IsValidPunch(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "matricula", Message: "matricula is required"},
		{Field: "name", Message: "name is required"},
	}
	assert.Equal(t, "matricula: matricula is required; name: name is required", errs.Error())
	assert.Equal(t, map[string]string{
		"matricula": "matricula is required",
		"name":      "name is required",
	}, errs.ToMap())
}
