package devserver

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid token")

// RandomKey returns a fresh 32-byte signing key. Used when no key is
// configured; tokens then stop verifying across restarts.
func RandomKey() []byte {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return key
}

// claims carries the standard JWT claims plus the username the token
// was issued to.
type claims struct {
	jwt.RegisteredClaims
	Username string `json:"Username"`
}

// generateToken issues an HS256 bearer token for the given username.
func generateToken(username string, secretKey []byte, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: username,
	})
	return token.SignedString(secretKey)
}

// usernameFromToken verifies the token signature and expiry and returns
// the username it was issued to.
func usernameFromToken(tokenString string, secretKey []byte) (string, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errInvalidToken
	}
	return c.Username, nil
}
