package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountName(t *testing.T) {
	assert.NoError(t, ValidateAccountName("alice"))
	assert.Error(t, ValidateAccountName("   "))
	assert.Error(t, ValidateAccountName(strings.Repeat("x", 101)))
}

func TestValidatePositiveAmount(t *testing.T) {
	assert.NoError(t, ValidatePositiveAmount("12.50"))
	assert.Error(t, ValidatePositiveAmount("0"))
	assert.Error(t, ValidatePositiveAmount("-3"))
	assert.Error(t, ValidatePositiveAmount("abc"))
}

func TestValidateNonNegativeAmount(t *testing.T) {
	assert.NoError(t, ValidateNonNegativeAmount("0"))
	assert.NoError(t, ValidateNonNegativeAmount("10"))
	assert.Error(t, ValidateNonNegativeAmount("-0.01"))
}

func TestValidateSignedAmount(t *testing.T) {
	assert.NoError(t, ValidateSignedAmount("-25.50"))
	assert.NoError(t, ValidateSignedAmount("25.50"))
	assert.Error(t, ValidateSignedAmount("0"))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("42"))
	assert.Error(t, ValidateID("0"))
	assert.Error(t, ValidateID("-1"))
	assert.Error(t, ValidateID("abc"))
}
