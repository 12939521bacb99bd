package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "Rue de la Gare", SanitizeString("  Rue de la Gare  "))
	assert.Equal(t, "&lt;script&gt;", SanitizeString("<script>"))
}

func TestSanitizeCIN(t *testing.T) {
	assert.Equal(t, "AB123456", SanitizeCIN(" ab123456 "))
	assert.Equal(t, "AB123456", SanitizeCIN("AB-12 34.56"))
	assert.Equal(t, "", SanitizeCIN("  "))
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "+212 600-112233", SanitizePhone(" +212 600-112233 "))
	assert.Equal(t, "0600112233", SanitizePhone("06x00y11z2233"))
}
