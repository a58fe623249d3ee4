// Package session holds the browser session token and derives the signed-in
// identity from it. The token lives in a cookie, so a page reload resurrects
// the session without any server-side state; identity is decoded on every
// read rather than at install time.
package session

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storeratings/storefront/internal/core/domain"
)

// DefaultCookie is the storage key for the session token.
const DefaultCookie = "token"

var errNoUserClaim = errors.New("token carries no user claim")

type tokenClaims struct {
	User struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// Decode extracts the identity from a session token. It is the only code
// that parses the token. The signature is NOT verified: the backend is
// authoritative and rejects bad tokens on every call; the gateway only
// needs the payload to route and render.
func Decode(token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, domain.ErrNoSession
	}

	var claims tokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return domain.Identity{}, err
	}
	if claims.User.ID == 0 && claims.User.Name == "" {
		return domain.Identity{}, errNoUserClaim
	}
	if !domain.KnownRole(claims.User.Role) {
		return domain.Identity{}, errors.New("token carries unknown role " + claims.User.Role)
	}

	return domain.Identity{
		ID:   claims.User.ID,
		Name: claims.User.Name,
		Role: claims.User.Role,
	}, nil
}

// Store reads and writes the session cookie. Install and Clear are
// idempotent and write through immediately; there is no in-process copy to
// drift from the cookie.
type Store struct {
	cookie string
	log    zerolog.Logger
}

// NewStore returns a Store using the given cookie name, or DefaultCookie
// when empty.
func NewStore(cookie string, log zerolog.Logger) *Store {
	if cookie == "" {
		cookie = DefaultCookie
	}
	return &Store{cookie: cookie, log: log}
}

// Token returns the raw session token, or "" when no session exists.
func (s *Store) Token(c echo.Context) string {
	ck, err := c.Cookie(s.cookie)
	if err != nil || ck == nil {
		return ""
	}
	return ck.Value
}

// Install persists the token. Safe to call again with the same token.
func (s *Store) Install(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     s.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear removes the persisted token. Safe when no session exists.
func (s *Store) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     s.cookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Identity returns the decoded identity, or false when there is no session
// or the token does not decode. It never fails hard: a malformed token is
// logged and treated as "no session".
func (s *Store) Identity(c echo.Context) (domain.Identity, bool) {
	token := s.Token(c)
	if token == "" {
		return domain.Identity{}, false
	}
	ident, err := Decode(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("session token did not decode")
		return domain.Identity{}, false
	}
	return ident, true
}
