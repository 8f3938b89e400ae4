package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@x.com"))
	assert.True(t, IsEmail("partner.name+tag@example.co.uk"))
	assert.False(t, IsEmail(""))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("@example.com"))
}

func TestStruct(t *testing.T) {
	type req struct {
		Email string  `validate:"required,email"`
		Rate  float64 `validate:"gte=0,lte=100"`
	}

	assert.NoError(t, Struct(req{Email: "a@x.com", Rate: 10}))
	assert.Error(t, Struct(req{Email: "a@x.com", Rate: 150}))
	assert.Error(t, Struct(req{Email: "", Rate: 10}))
}
