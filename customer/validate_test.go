package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("John"))
	assert.True(t, ValidName("Mary Jane"))
	assert.False(t, ValidName("J"))
	assert.False(t, ValidName("John123"))
	assert.False(t, ValidName(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("john.doe@example.com"))
	assert.True(t, ValidEmail("a_b-c@mail.co"))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@domain"))
	assert.False(t, ValidEmail("@example.com"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Passw0rd@"))
	assert.False(t, ValidPassword("Sh0rt@7"))
	assert.False(t, ValidPassword("alllowercase1@"))
	assert.False(t, ValidPassword("ALLUPPERCASE1@"))
	assert.False(t, ValidPassword("NoDigits@@"))
	assert.False(t, ValidPassword("NoSpecial11"))
	assert.False(t, ValidPassword("Has Space1@"))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("8005551234"))
	assert.True(t, ValidPhone("800-555-1234"))
	assert.True(t, ValidPhone("(800)555-1234"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("phone number"))
	assert.False(t, ValidPhone("800555123456"))
}
