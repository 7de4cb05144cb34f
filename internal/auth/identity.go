// internal/auth/identity.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verifier validates bearer tokens minted by the external identity provider.
// The provider signs with a shared HMAC secret; the token subject is the
// caller's profile id.
type Verifier struct {
	secret       []byte
	issuer       string
	expiryPeriod time.Duration
}

func NewVerifier(secret, issuer string, expiryPeriod time.Duration) *Verifier {
	return &Verifier{
		secret:       []byte(secret),
		issuer:       issuer,
		expiryPeriod: expiryPeriod,
	}
}

type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// ProfileID is the external subject identifying the caller.
func (c *Claims) ProfileID() string { return c.Subject }

func (v *Verifier) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Mint issues a token the way the identity provider would. Only the admin CLI
// uses this, for local development against a real server.
func (v *Verifier) Mint(profileID, name, email string) (string, error) {
	claims := Claims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profileID,
			Issuer:    v.issuer,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(v.expiryPeriod)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}
