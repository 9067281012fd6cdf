package roomcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	gen := New(&Config{Seed: 42})

	for i := 0; i < 100; i++ {
		code := gen.Generate()
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(letters, r), "unexpected character %q in code %s", r, code)
		}
		assert.Equal(t, strings.ToUpper(code), code)
	}
}

func TestGenerate_SeededIsDeterministic(t *testing.T) {
	first := New(&Config{Seed: 7})
	second := New(&Config{Seed: 7})

	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Generate(), second.Generate())
	}
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	first := New(&Config{Seed: 1})
	second := New(&Config{Seed: 2})

	diverged := false
	for i := 0; i < 10; i++ {
		if first.Generate() != second.Generate() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}
