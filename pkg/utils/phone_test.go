package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "formatted with plus", raw: "+7 (999) 123-45-67", want: "+79991234567"},
		{name: "digits only", raw: "79991234567", want: "+79991234567"},
		{name: "surrounding spaces", raw: "  +79991234567 ", want: "+79991234567"},
		{name: "no digits", raw: "phone", want: ""},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestNormalizePhone_SameKeyForEquivalentInputs(t *testing.T) {
	assert.Equal(t, NormalizePhone("+7 999 123 45 67"), NormalizePhone("7-999-123-45-67"))
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "********4567", MaskPhone("+79991234567"))
	assert.Equal(t, "***", MaskPhone("123"))
	assert.Equal(t, "", MaskPhone(""))
}
