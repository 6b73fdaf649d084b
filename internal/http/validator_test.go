package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePrice(t *testing.T) {
	type payload struct {
		Price string `validate:"required,price"`
	}

	valid := []string{"25.00", "45.5", "65", "0.99", "1000000.01"}
	for _, p := range valid {
		assert.Nil(t, ValidateStruct(payload{Price: p}), "price %q should pass", p)
	}

	invalid := []string{"", "25.001", "-5.00", "abc", "25,00", "25.", ".50"}
	for _, p := range invalid {
		assert.NotNil(t, ValidateStruct(payload{Price: p}), "price %q should fail", p)
	}
}

func TestValidateStruct_FieldNames(t *testing.T) {
	details := ValidateStruct(bookRequest{AuthorName: "Author 1"})
	assert.Len(t, details, 2)

	fields := []string{details[0].Field, details[1].Field}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "price")
}
