// Package session implements cookie-based server-side sessions. The
// session record lives in Redis under session:<id> with the configured
// TTL; the cookie carries a signed token (HS256) whose sid claim is
// the Redis key suffix, so a tampered cookie never reaches the store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the name of the session cookie.
const CookieName = "sid"

// ErrNoSession is returned when the token is invalid, expired or the
// server-side record no longer exists.
var ErrNoSession = errors.New("session not found")

// Data is the authenticated identity stored per session.
type Data struct {
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
}

// Store creates, resolves and destroys sessions.
type Store struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

// NewStore builds a Store. ttl bounds both the Redis record and the
// signed token.
func NewStore(rdb *redis.Client, secret string, ttl time.Duration) *Store {
	return &Store{rdb: rdb, secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration { return s.ttl }

func sessionKey(id string) string { return "session:" + id }

// Create stores a new session record and returns the signed cookie
// token together with its expiry.
func (s *Store) Create(ctx context.Context, data Data) (string, time.Time, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(data)
	if err != nil {
		return "", time.Time{}, err
	}
	if err := s.rdb.Set(ctx, sessionKey(id), payload, s.ttl).Err(); err != nil {
		return "", time.Time{}, err
	}
	expires := time.Now().UTC().Add(s.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": jwt.NewNumericDate(expires),
	})
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Get resolves a cookie token to its session data.
func (s *Store) Get(ctx context.Context, token string) (Data, error) {
	id, err := s.sessionID(token)
	if err != nil {
		return Data{}, ErrNoSession
	}
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Data{}, ErrNoSession
		}
		return Data{}, err
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, err
	}
	return data, nil
}

// Destroy deletes the server-side record. A missing record is not an
// error: logout is idempotent.
func (s *Store) Destroy(ctx context.Context, token string) error {
	id, err := s.sessionID(token)
	if err != nil {
		return nil
	}
	return s.rdb.Del(ctx, sessionKey(id)).Err()
}

// sessionID verifies the token signature and extracts the sid claim.
func (s *Store) sessionID(token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrNoSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrNoSession
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", ErrNoSession
	}
	return id, nil
}
