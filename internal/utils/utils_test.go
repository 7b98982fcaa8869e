package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalID(t *testing.T) {
	assert.Equal(t, "7", CanonicalID("7"))
	assert.Equal(t, "7", CanonicalID("007"))
	assert.Equal(t, "7", CanonicalID(" 7 "))
	assert.Equal(t, "sku-42", CanonicalID("sku-42"))
	assert.Equal(t, "sku-42", CanonicalID("  sku-42"))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+79161234567", NormalizePhone("8 (916) 123-45-67"))
	assert.Equal(t, "+79161234567", NormalizePhone("+7 916 123 45 67"))
	assert.Equal(t, "+1234", NormalizePhone("1234"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestPointerHelpers(t *testing.T) {
	s := StrPtr("x")
	assert.Equal(t, "x", *s)
	assert.Equal(t, "x", PtrString(s))
	assert.Equal(t, "", PtrString(nil))

	f := Float64Ptr(9.5)
	assert.Equal(t, 9.5, *f)
}
