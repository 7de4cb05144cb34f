// internal/invite/code.go
package invite

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dwellfix/dwellfix/internal/domain"
)

// Alphabet is the character set for role invite codes. Visually confusable
// characters (0/O, 1-lookalikes, B/8 and friends) are excluded so codes
// survive being read aloud or retyped from paper.
const Alphabet = "123456789AaCcDdEeGgHhJjKkLMmPpQRrSsTtUuWwXxYyZz"

const (
	// DefaultLength is the default length for generated invite codes.
	DefaultLength = 6

	// DefaultMaxAttempts bounds the collision-retry loop in Unique.
	DefaultMaxAttempts = 16
)

// ExistsFunc reports whether a candidate code is already taken. The caller
// supplies it so the generator stays independent of any storage layer.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

// Generate creates one random candidate code of the given length. It is a
// pure draw from Alphabet with no uniqueness guarantee.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(Alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = Alphabet[num.Int64()]
	}

	return string(result), nil
}

// Generator mints invite codes that are unique with respect to an injected
// existence check.
type Generator struct {
	length      int
	maxAttempts int
}

func NewGenerator(length, maxAttempts int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{length: length, maxAttempts: maxAttempts}
}

// Unique draws candidates until one passes the existence check, giving up
// with domain.ErrCodeSpaceExhausted once the attempt cap is reached.
func (g *Generator) Unique(ctx context.Context, exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code, err := Generate(g.length)
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w after %d attempts", domain.ErrCodeSpaceExhausted, g.maxAttempts)
}
