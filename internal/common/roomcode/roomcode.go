package roomcode

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roomcode.go github.com/frkandris/opinions/internal/common/roomcode Generator

// Generator produces short human-enterable room codes. Codes are uppercase
// so lookups can be case-insensitive on an exact uppercased match.
type Generator interface {
	Generate() string
}

// CodeLength is the number of characters in a generated room code
const CodeLength = 6

// letters deliberately omits 0/O and 1/I, which are hard to read aloud
const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Config for the room code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultGenerator implements Generator with a seeded PRNG
type DefaultGenerator struct {
	random *rand.Rand
}

// New creates a new room code generator
func New(cfg *Config) *DefaultGenerator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultGenerator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a new room code. Uniqueness is not guaranteed here; the
// store rejects collisions and the caller retries with a fresh code.
func (g *DefaultGenerator) Generate() string {
	code := make([]byte, CodeLength)
	for i := range code {
		code[i] = letters[g.random.Intn(len(letters))]
	}
	return string(code)
}
