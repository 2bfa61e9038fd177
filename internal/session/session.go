// Package session holds the one piece of per-client authentication state:
// the current user id, carried in a signed cookie. Controllers stay
// stateless; everything lives in the client's session slot.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "session"

	// ctxUserKey mirrors the slot state inside the gin context so that code
	// running after the handler (the audit layer) observes the identity as of
	// response time, not as of the incoming request.
	ctxUserKey = "session.user_id"
)

// Manager signs and reads session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

type sessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Slot is the per-request view of one client's session state.
type Slot struct {
	manager *Manager
	c       *gin.Context
}

func (m *Manager) Slot(c *gin.Context) *Slot {
	return &Slot{manager: m, c: c}
}

// Set writes userID into the slot: a fresh signed cookie on the response and
// the mirrored identity in the request context.
func (s *Slot) Set(userID int64) error {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.manager.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.manager.secret)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	s.dropPendingCookie()
	s.c.SetCookie(cookieName, signed, int(s.manager.ttl.Seconds()), "/", "", false, true)
	s.c.Set(ctxUserKey, userID)
	return nil
}

// Clear empties the slot. Clearing an already-anonymous slot is fine.
func (s *Slot) Clear() {
	s.dropPendingCookie()
	s.c.SetCookie(cookieName, "", -1, "/", "", false, true)
	s.c.Set(ctxUserKey, int64(0))
}

// dropPendingCookie removes any session Set-Cookie header already queued on
// the response. Set and Clear may both run while handling one request; only
// the last write wins, so exactly one session cookie leaves a response.
func (s *Slot) dropPendingCookie() {
	header := s.c.Writer.Header()
	pending := header["Set-Cookie"]
	if len(pending) == 0 {
		return
	}

	kept := pending[:0]
	for _, line := range pending {
		if !strings.HasPrefix(line, cookieName+"=") {
			kept = append(kept, line)
		}
	}
	if len(kept) == 0 {
		header.Del("Set-Cookie")
		return
	}
	header["Set-Cookie"] = kept
}

// CurrentUser returns the authenticated user id for this request, preferring
// slot writes made while handling it over the incoming cookie. The second
// return is false for anonymous clients and for invalid or expired cookies.
func (m *Manager) CurrentUser(c *gin.Context) (int64, bool) {
	if v, ok := c.Get(ctxUserKey); ok {
		id, _ := v.(int64)
		if id <= 0 {
			return 0, false
		}
		return id, true
	}

	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return 0, false
	}

	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || claims.UserID <= 0 {
		return 0, false
	}
	return claims.UserID, true
}
