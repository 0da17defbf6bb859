// Package gateway is the single point of contact with the Zenv Hub API.
//
// Read endpoints (packages, badges, health, download) degrade on any
// failure: the caller gets an empty or neutral result and the reason is
// only logged. Auth endpoints (login, register) propagate failure as
// *core.AuthError, since their callers branch on the outcome. No call is
// ever retried.
package gateway

import (
	"context"
	"encoding/json"
	"errors"

	circuit "github.com/rubyist/circuitbreaker"
	"go.uber.org/zap"

	"github.com/zenv-lang/zenvhub/client"
	"github.com/zenv-lang/zenvhub/internal/core"
)

// ErrUpstreamDown is returned by the internal fetch methods while the
// circuit breaker is open.
var ErrUpstreamDown = errors.New("hub unavailable")

// Gateway wraps all outbound calls to a hub instance.
type Gateway struct {
	urls    *client.URLs
	client  *client.Client
	breaker *circuit.Breaker
	log     *zap.Logger
}

// New creates a gateway for the given base URL. A nil httpClient gets
// the default 10s-timeout client; a nil logger disables logging.
func New(baseURL string, httpClient *client.Client, log *zap.Logger) *Gateway {
	if httpClient == nil {
		httpClient = client.DefaultClient()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{
		urls:    client.NewURLs(baseURL),
		client:  httpClient,
		breaker: newBreaker(),
		log:     log,
	}
}

// BaseURL returns the normalized hub base URL.
func (g *Gateway) BaseURL() string {
	return g.urls.Base()
}

// guarded runs fn through the circuit breaker. While the breaker is open
// the call fails immediately with ErrUpstreamDown.
func (g *Gateway) guarded(fn func() error) error {
	if !g.breaker.Ready() {
		return ErrUpstreamDown
	}
	return g.breaker.Call(fn, 0)
}

type packagesResponse struct {
	Packages []core.Package `json:"packages"`
}

func (g *Gateway) fetchPackages(ctx context.Context) ([]core.Package, error) {
	var resp packagesResponse
	err := g.guarded(func() error {
		return g.client.GetJSON(ctx, g.urls.Packages(), &resp)
	})
	if err != nil {
		return nil, &core.DegradedError{Op: "packages", Reason: err}
	}
	return resp.Packages, nil
}

// ListPackages returns the published packages in server order. Any
// failure degrades to an empty slice; display code never needs a failure
// branch.
func (g *Gateway) ListPackages(ctx context.Context) []core.Package {
	pkgs, err := g.fetchPackages(ctx)
	if err != nil {
		g.log.Warn("package listing degraded", zap.Error(err))
		return []core.Package{}
	}
	return pkgs
}

type badgesResponse struct {
	Badges []core.Badge `json:"badges"`
}

func (g *Gateway) fetchBadges(ctx context.Context) ([]core.Badge, error) {
	var resp badgesResponse
	err := g.guarded(func() error {
		return g.client.GetJSON(ctx, g.urls.Badges(), &resp)
	})
	if err != nil {
		return nil, &core.DegradedError{Op: "badges", Reason: err}
	}
	return resp.Badges, nil
}

// ListBadges returns the published badges. Same failure policy as
// ListPackages.
func (g *Gateway) ListBadges(ctx context.Context) []core.Badge {
	badges, err := g.fetchBadges(ctx)
	if err != nil {
		g.log.Warn("badge listing degraded", zap.Error(err))
		return []core.Badge{}
	}
	return badges
}

func (g *Gateway) fetchStatus(ctx context.Context) (core.ServerStatus, error) {
	var status core.ServerStatus
	err := g.guarded(func() error {
		return g.client.GetJSON(ctx, g.urls.Health(), &status)
	})
	if err != nil {
		return core.ServerStatus{}, &core.DegradedError{Op: "health", Reason: err}
	}
	return status, nil
}

// ServerStatus polls the hub health endpoint. This is the one read path
// whose failure is reified as domain data instead of suppressed: any
// failure yields {status: error, github: disconnected}.
func (g *Gateway) ServerStatus(ctx context.Context) core.ServerStatus {
	status, err := g.fetchStatus(ctx)
	if err != nil {
		g.log.Warn("health check degraded", zap.Error(err))
		return core.ServerStatus{
			Status: core.StatusError,
			GitHub: core.GitHubDisconnected,
		}
	}
	return status
}

func (g *Gateway) fetchArtifact(ctx context.Context, name, version string) ([]byte, error) {
	var data []byte
	err := g.guarded(func() error {
		var fetchErr error
		data, fetchErr = g.client.GetBytes(ctx, g.urls.Download(name, version))
		return fetchErr
	})
	if err != nil {
		return nil, &core.DegradedError{Op: "download", Reason: err}
	}
	return data, nil
}

// Download fetches a package artifact as an opaque byte blob. Any
// failure returns nil; it never errors.
func (g *Gateway) Download(ctx context.Context, name, version string) []byte {
	data, err := g.fetchArtifact(ctx, name, version)
	if err != nil {
		g.log.Warn("artifact download degraded",
			zap.String("name", name),
			zap.String("version", version),
			zap.Error(err))
		return nil
	}
	return data
}

// authErrorBody is the error shape the hub returns on failed auth calls.
// Some deployments use "error", some "message"; the first non-empty wins.
type authErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func authMessage(err error, fallback string) string {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.Body != "" {
		var body authErrorBody
		if json.Unmarshal([]byte(httpErr.Body), &body) == nil {
			if body.Error != "" {
				return body.Error
			}
			if body.Message != "" {
				return body.Message
			}
		}
	}
	return fallback
}

// Login authenticates against the hub. On failure it returns a
// *core.AuthError carrying the server-supplied message, or "Login failed"
// when the server gave none. The session payload is opaque to the client.
func (g *Gateway) Login(ctx context.Context, username, password string) (core.Session, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var raw json.RawMessage
	if err := g.client.PostJSON(ctx, g.urls.Login(), body, &raw); err != nil {
		g.log.Info("login failed", zap.String("username", username), zap.Error(err))
		return core.Session{}, &core.AuthError{
			Op:      "login",
			Message: authMessage(err, "Login failed"),
		}
	}
	return core.Session{Raw: raw}, nil
}

// Register creates an account. Same contract as Login, with
// "Registration failed" as the fallback message.
func (g *Gateway) Register(ctx context.Context, username, email, password string) (core.Session, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	var raw json.RawMessage
	if err := g.client.PostJSON(ctx, g.urls.Register(), body, &raw); err != nil {
		g.log.Info("registration failed", zap.String("username", username), zap.Error(err))
		return core.Session{}, &core.AuthError{
			Op:      "register",
			Message: authMessage(err, "Registration failed"),
		}
	}
	return core.Session{Raw: raw}, nil
}
