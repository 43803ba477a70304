package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const sessionIssuer = "brigalab-storefront"

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims are the claims carried by a storefront session token
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the bearer tokens handed to storefront
// clients. A token only proves which order session the caller owns.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates an HS256 token issuer. A ttl of zero or less issues
// tokens without expiry.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue returns a signed token bound to sessionID
func (i *TokenIssuer) Issue(sessionID string) (string, error) {
	if sessionID == "" {
		return "", fmt.Errorf("cannot issue token: empty session id")
	}
	now := i.now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   sessionIssuer,
			Subject:  sessionID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if i.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(i.ttl))
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates tokenString and returns the session id it carries.
func (i *TokenIssuer) Parse(tokenString string) (string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// only accept HMAC to rule out algorithm confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.SessionID == "" {
		return "", fmt.Errorf("%w: missing sid claim", ErrInvalidToken)
	}
	return claims.SessionID, nil
}
