// Package token is the sole source of truth for the signed token wire format:
// three base64url segments (header, claims, signature), HMAC-SHA256 over the
// first two using the process signing key.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"jobtracker-backend/internal/apperr"
)

// A refresh token is an ordinary token with a longer lifetime; callers tell the
// two apart by which endpoint issued them, not by a claim.
const refreshMultiplier = 7

type Codec struct {
	key       []byte
	accessTTL time.Duration
}

// NewCodec wraps the decoded signing key. The key is validated (non-blank,
// base64url) by configuration before it gets here.
func NewCodec(key []byte, accessTTL time.Duration) *Codec {
	return &Codec{key: key, accessTTL: accessTTL}
}

// Issue builds and signs a token for subject with the given lifetime. Extra
// claims are merged in; sub, iat and exp always win over them.
func (c *Codec) Issue(subject string, extra map[string]any, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(ttl).Unix()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.key)
}

func (c *Codec) IssueAccess(subject string) (string, error) {
	return c.Issue(subject, nil, c.accessTTL)
}

func (c *Codec) IssueRefresh(subject string) (string, error) {
	return c.Issue(subject, nil, c.accessTTL*refreshMultiplier)
}

// Parse verifies the signature and returns the claims. It fails closed: a
// malformed token or signature mismatch yields apperr.ErrInvalidToken without
// ever exposing the claims. Expiry is deliberately not checked here; callers
// use IsExpired so the two failure modes stay distinguishable internally.
func (c *Codec) Parse(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil || !tok.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}

// IsExpired reports whether the claims' exp is strictly before now. A missing
// or unreadable exp counts as expired.
func (c *Codec) IsExpired(claims jwt.MapClaims) bool {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Time.Before(time.Now())
}

// Subject extracts the sub claim.
func (c *Codec) Subject(claims jwt.MapClaims) (string, error) {
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", apperr.ErrInvalidToken
	}
	return sub, nil
}
