// Package upstream implements the typed client for the remote Store Rating
// backend: the endpoint table, the bearer-credential policy, the response
// envelope, and the tag-invalidated query cache.
package upstream

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/storeratings/storefront/internal/api/metrics"
	"github.com/storeratings/storefront/internal/core/domain"
	"github.com/storeratings/storefront/internal/core/ports"
)

// Refresher re-runs subscribed queries when a tag they produced is
// invalidated, so destinations holding a stale view get a refilled cache
// without waiting for the next user read.
type Refresher interface {
	Subscribe(key, session string, tags []string, run func(context.Context))
	Invalidated(tags []string)
	DropSession(session string)
}

// Client talks to the backend at a fixed base URL. It satisfies
// ports.Backend.
type Client struct {
	base      string
	http      *http.Client
	cache     ports.Cache
	refresher Refresher
	log       zerolog.Logger
}

// NewClient builds a Client. No explicit timeout is configured; the
// transport's defaults apply.
func NewClient(baseURL string, cache ports.Cache, log zerolog.Logger) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  &http.Client{},
		cache: cache,
		log:   log,
	}
}

// SetRefresher attaches the cache-warming worker pool. Optional.
func (c *Client) SetRefresher(r Refresher) {
	c.refresher = r
}

// --- ports.Backend mutations ---

func (c *Client) Register(ctx context.Context, input ports.RegisterInput) error {
	return c.runMutation(ctx, epRegister, "", input, nil)
}

func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthPayload, error) {
	body := map[string]string{"email": email, "password": password}
	var payload domain.AuthPayload
	if err := c.runMutation(ctx, epLogin, "", body, &payload); err != nil {
		return nil, err
	}
	if payload.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrRejected)
	}
	return &payload, nil
}

func (c *Client) UpdatePassword(ctx context.Context, token string, input ports.UpdatePasswordInput) (*domain.AuthPayload, error) {
	var payload domain.AuthPayload
	if err := c.runMutation(ctx, epUpdatePassword, token, input, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) CreateStore(ctx context.Context, token string, input ports.CreateStoreInput) error {
	return c.runMutation(ctx, epCreateStore, token, input, nil)
}

func (c *Client) CreateRating(ctx context.Context, token string, input ports.RatingInput) error {
	return c.runMutation(ctx, epCreateRating, token, input, nil)
}

func (c *Client) UpdateRating(ctx context.Context, token string, input ports.RatingInput) error {
	return c.runMutation(ctx, epUpdateRating, token, input, nil)
}

// --- ports.Backend queries ---

func (c *Client) ListStores(ctx context.Context, token string, opt ports.QueryOptions) ([]domain.Store, error) {
	var stores []domain.Store
	if err := c.runQuery(ctx, epListStores, token, struct{}{}, opt, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) StoresByOwner(ctx context.Context, token string, ownerID int, opt ports.QueryOptions) ([]domain.Store, error) {
	args := map[string]int{"owner_id": ownerID}
	var stores []domain.Store
	if err := c.runQuery(ctx, epStoresByOwner, token, args, opt, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) ListUsers(ctx context.Context, token string, opt ports.QueryOptions) ([]domain.User, error) {
	var users []domain.User
	if err := c.runQuery(ctx, epListUsers, token, nil, opt, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// EndSession drops the session's cache scope and refresh subscriptions.
func (c *Client) EndSession(ctx context.Context, token string) error {
	scope := sessionScope(token)
	if c.refresher != nil {
		c.refresher.DropSession(scope)
	}
	return c.cache.PurgeSession(ctx, scope)
}

// --- internals ---

// runQuery serves a read through the cache. A query without a token never
// reaches the network: the caller gets ErrNoSession instead of the backend
// seeing an anonymous request.
func (c *Client) runQuery(ctx context.Context, ep endpoint, token string, args any, opt ports.QueryOptions, out any) error {
	if token == "" {
		return domain.ErrNoSession
	}

	scope := sessionScope(token)
	key := queryKey(ep, args, scope)

	if opt.Fresh {
		metrics.CacheDecisionsTotal.WithLabelValues(ep.name, "bypass").Inc()
	} else {
		cached, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.log.Warn().Err(err).Str("endpoint", ep.name).Msg("cache read failed, falling through to backend")
		}
		if ok {
			metrics.CacheDecisionsTotal.WithLabelValues(ep.name, "hit").Inc()
			return json.Unmarshal(cached, out)
		}
		metrics.CacheDecisionsTotal.WithLabelValues(ep.name, "miss").Inc()
	}

	data, err := c.send(ctx, ep, token, args)
	if err != nil {
		return err
	}

	if err := c.cache.Set(ctx, key, data, ep.produces, scope); err != nil {
		c.log.Warn().Err(err).Str("endpoint", ep.name).Msg("cache write failed")
	}
	if c.refresher != nil && len(ep.produces) > 0 {
		c.refresher.Subscribe(key, scope, ep.produces, func(ctx context.Context) {
			var discard json.RawMessage
			if err := c.runQuery(ctx, ep, token, args, ports.QueryOptions{Fresh: true}, &discard); err != nil {
				c.log.Debug().Err(err).Str("endpoint", ep.name).Msg("cache refresh failed")
			}
		})
	}

	return json.Unmarshal(data, out)
}

// runMutation performs a write and fires its invalidation tags
// synchronously, so a subsequent render observes consistent data.
func (c *Client) runMutation(ctx context.Context, ep endpoint, token string, body any, out any) error {
	if ep.authed && token == "" {
		return domain.ErrNoSession
	}

	data, err := c.send(ctx, ep, token, body)
	if err != nil {
		return err
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%w: malformed response data", domain.ErrRejected)
		}
	}

	if len(ep.invalidates) > 0 {
		if err := c.cache.Invalidate(ctx, ep.invalidates...); err != nil {
			c.log.Warn().Err(err).Str("endpoint", ep.name).Msg("cache invalidation failed")
		}
		for _, tag := range ep.invalidates {
			metrics.CacheInvalidationsTotal.WithLabelValues(tag).Inc()
		}
		if c.refresher != nil {
			c.refresher.Invalidated(ep.invalidates)
		}
	}

	return nil
}

// send issues one HTTP round-trip and returns the envelope's data payload.
// The Authorization header is attached exactly when the endpoint table says
// so; register and login never carry it.
func (c *Client) send(ctx context.Context, ep endpoint, token string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil && ep.method != http.MethodGet {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = strings.NewReader(string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, ep.method, c.base+ep.path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if ep.authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(ep.name, "network").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendDown, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(ep.name, "network").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendDown, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := categorize(resp.StatusCode, raw)
		metrics.UpstreamRequestsTotal.WithLabelValues(ep.name, outcomeLabel(err)).Inc()
		return nil, err
	}

	data, err := decodeEnvelope(raw)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(ep.name, "rejected").Inc()
		return nil, err
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(ep.name, "ok").Inc()
	return data, nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		return "unauthorized"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrRejected):
		return "rejected"
	case errors.Is(err, domain.ErrBackendDown):
		return "network"
	default:
		return "error"
	}
}

// sessionScope derives the cache scope from the token. Entries are keyed
// per session so one user's cached views are invisible to the next sign-in.
func sessionScope(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// queryKey identifies a cache entry by endpoint, serialized arguments, and
// session scope.
func queryKey(ep endpoint, args any, scope string) string {
	encoded, err := json.Marshal(args)
	if err != nil {
		encoded = []byte("{}")
	}
	sum := sha256.Sum256(encoded)
	return ep.name + ":" + hex.EncodeToString(sum[:8]) + ":" + scope
}
