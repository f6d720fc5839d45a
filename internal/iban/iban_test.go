package iban

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_KnownGood(t *testing.T) {
	valid := []string{
		"GB82WEST12345698765432",
		"DE89370400440532013000",
		"EE382200221020145685",
		"FR1420041010050500013M02606",
		"gb82west12345698765432", // case-insensitive substitution
	}
	for _, s := range valid {
		assert.True(t, Validate(s), "expected %s to be valid", s)
	}
}

func TestValidate_BadChecksum(t *testing.T) {
	invalid := []string{
		"GB82WEST12345698765433", // last digit flipped
		"DE89370400440532013001",
		"EE382200221020145686",
	}
	for _, s := range invalid {
		assert.False(t, Validate(s), "expected %s to be invalid", s)
	}
}

func TestValidate_MalformedInput(t *testing.T) {
	assert.False(t, Validate(""))
	assert.False(t, Validate("GB82"))
	assert.False(t, Validate("GB82 WEST 1234")) // spaces fail the checksum itself
	assert.False(t, Validate("GB82-WEST-5698765432"))
}

func TestValidate_Idempotent(t *testing.T) {
	const s = "DE89370400440532013000"
	first := Validate(s)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Validate(s))
	}
}
