package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTicketMismatch = errors.New("ticket does not grant access to this session")

// SessionClaims bind a ticket to one game session.
type SessionClaims struct {
	SessionId string `json:"session_id"`
	jwt.RegisteredClaims
}

// Grants reports whether the claims open the session with the given id.
func (c *SessionClaims) Grants(sessionId string) error {
	if c == nil || c.SessionId != sessionId {
		return ErrTicketMismatch
	}
	return nil
}

type Tickets struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

// NewTickets signs tickets with HS256. An empty secret is replaced by a
// random one, so tickets do not survive a restart.
func NewTickets(c TicketsConfig) (*Tickets, error) {
	secret := []byte(c.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("unable to generate ticket secret: %w", err)
		}
	}
	t := &Tickets{
		secret:        secret,
		signingMethod: jwt.SigningMethodHS256,
		tokenLifetime: c.Lifetime,
	}
	return t, nil
}

func (t *Tickets) Lifetime() time.Duration {
	return t.tokenLifetime
}

func (t *Tickets) Issue(sessionId string, now time.Time) (string, error) {
	claims := &SessionClaims{
		SessionId: sessionId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionId,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.tokenLifetime)),
		},
	}
	return jwt.NewWithClaims(t.signingMethod, claims).SignedString(t.secret)
}

func (t *Tickets) Parse(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SessionClaims{},
		func(*jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{t.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
