// Package auth issues and parses the signed session tokens handed out after
// a successful sign-up or sign-in.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/blogauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims binds a token to the durable account id.
type Claims struct {
	jwt.RegisteredClaims
	AccountID string `json:"id"`
}

// Issuer signs tokens with a process-wide HMAC secret. A zero validity
// issues tokens without an expiry.
type Issuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewIssuer(secretKey string, validity time.Duration) (*Issuer, error) {
	if secretKey == "" {
		return nil, errors.New("empty token signing key")
	}
	return &Issuer{secret: []byte(secretKey), validity: validity, now: time.Now}, nil
}

func (i *Issuer) Issue(accountID string) (string, error) {
	if accountID == "" {
		return "", errors.New("empty account id")
	}

	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{IssuedAt: jwt.NewNumericDate(now)},
		AccountID:        accountID,
	}
	if i.validity > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.validity))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies tokenString and returns the account id it is bound to.
// The service only issues tokens; Parse is for the services that consume
// them, and for tests asserting what a token binds.
func (i *Issuer) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.AccountID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.AccountID, nil
}
