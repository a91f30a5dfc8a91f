package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pxshao1010-gif/independent-station/internal/errs"
)

const TokenTTL = 7 * 24 * time.Hour

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Tokens issues and parses the stateless HS256 session tokens. Validity
// is fully determined by signature and expiry; the server keeps no
// session table.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: TokenTTL}
}

func (t *Tokens) Issue(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", errs.Internal(err, "sign token")
	}
	return signed, nil
}

// Parse returns the user id encoded in a valid token. Malformed, badly
// signed and expired tokens all come back as the same generic auth error.
func (t *Tokens) Parse(token string) (string, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.Auth("Invalid token")
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == "" {
		return "", errs.Auth("Invalid token")
	}
	return claims.UserID, nil
}
