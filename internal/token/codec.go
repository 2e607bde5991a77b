// Package token encodes and decodes the signed bearer tokens issued after
// authentication. Tokens are opaque to callers; only the codec reads them.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. Access tokens authorize API calls; confirmation tokens are
// only honored by the flows that issue them.
const (
	TypeAccess       = "access"
	TypeConfirmation = "confirmation"
)

var (
	ErrExpired   = errors.New("token expired")
	ErrInvalid   = errors.New("token invalid")
	ErrWrongType = errors.New("unexpected token type")
	ErrNoSubject = errors.New("token has no subject")

	errBadMethod = errors.New("unexpected signing method")
)

// Claims is the payload carried by every issued token.
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// Codec signs and verifies tokens with a symmetric secret. The signing
// algorithm is configured, not hardcoded.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewCodec builds a codec for the given secret and HMAC algorithm name
// (HS256, HS384 or HS512).
func NewCodec(secret, algorithm string) (*Codec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Codec{secret: []byte(secret), method: method}, nil
}

// Encode issues a token for the given subject, valid for ttl from now.
func (c *Codec) Encode(subject uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(subject), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry and checks the token carries the
// expected type, returning the subject id. Expired and tampered tokens both
// fail; the distinct cause is preserved in the returned error.
func (c *Codec) Decode(tokenString, wantType string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errBadMethod
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, ErrInvalid
	}
	if claims.Type != wantType {
		return 0, fmt.Errorf("%w: got %q, want %q", ErrWrongType, claims.Type, wantType)
	}
	if claims.Subject == "" {
		return 0, ErrNoSubject
	}
	subject, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalid, claims.Subject)
	}
	return uint(subject), nil
}
