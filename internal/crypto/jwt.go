package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "recruitme"
	tokenAudience = "recruitme-api"
)

var ErrEmptySubject = errors.New("token subject is required")

// TokenConfig configures a TokenCodec.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	// Now overrides the clock used for issuance and validation. Defaults to time.Now.
	Now func() time.Time
}

// TokenCodec issues and verifies HS256 identity tokens.
type TokenCodec struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewTokenCodec creates a TokenCodec from cfg.
func NewTokenCodec(cfg TokenConfig) *TokenCodec {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &TokenCodec{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
		now:    now,
	}
}

// Issue signs a token for subjectID that expires after the configured duration.
func (c *TokenCodec) Issue(subjectID string) (string, error) {
	if subjectID == "" {
		return "", ErrEmptySubject
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(c.expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify returns the subject of a valid token. Any failure, including
// malformed input, a bad signature and expiry, yields ok == false.
func (c *TokenCodec) Verify(tokenString string) (subjectID string, ok bool) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}
