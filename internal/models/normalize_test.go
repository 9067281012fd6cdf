package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName_TrimsAndClamps(t *testing.T) {
	assert.Equal(t, "Anna", NormalizeName("  Anna  "))

	long := strings.Repeat("x", MaxNameLength+6)
	clamped := NormalizeName(long)
	assert.Equal(t, MaxNameLength, len([]rune(clamped)))
}

func TestNormalizeName_ClampsByRunesNotBytes(t *testing.T) {
	long := strings.Repeat("é", MaxNameLength+6)
	clamped := NormalizeName(long)
	assert.Equal(t, MaxNameLength, len([]rune(clamped)))
	assert.Equal(t, strings.Repeat("é", MaxNameLength), clamped)
}

func TestNormalizeName_WhitespaceOnlyIsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeName("   \t  "))
	assert.Empty(t, NormalizeName(""))
}

func TestNormalizeOpinionText_TrimsAndClamps(t *testing.T) {
	assert.Equal(t, "pineapple belongs on pizza", NormalizeOpinionText(" pineapple belongs on pizza\n"))

	long := strings.Repeat("é", MaxOpinionLength+5)
	clamped := NormalizeOpinionText(long)
	assert.Equal(t, MaxOpinionLength, len([]rune(clamped)))
}

func TestNormalizeOpinionText_WhitespaceOnlyIsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeOpinionText(" \n "))
}

func TestNameKey_LowercasesNormalizedName(t *testing.T) {
	assert.Equal(t, "anna", NameKey("  AnNa "))
	assert.Equal(t, NameKey("ANNA"), NameKey("anna"))
}

func TestClamp_RetrimsAfterCut(t *testing.T) {
	// A cut that lands on trailing whitespace must not leave it behind
	name := strings.Repeat("x", MaxNameLength-1) + " y"
	assert.Equal(t, strings.Repeat("x", MaxNameLength-1), NormalizeName(name))
}
