// Package zenvhub is a client for the Zenv Hub package-hosting service.
//
// It exposes the hub's catalog, badges, artifact downloads, and server
// health through an App that synchronizes fetched data into observable
// state containers. Consumers subscribe to the containers they display
// and re-render on every write; transient feedback flows through a
// self-expiring notification queue.
//
// Basic usage:
//
//	app := zenvhub.New("", nil)
//	cancel := app.Store.Packages.Subscribe(func(pkgs []zenvhub.Package) {
//		render(pkgs)
//	})
//	defer cancel()
//	app.Refresh(context.Background())
package zenvhub

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zenv-lang/zenvhub/client"
	"github.com/zenv-lang/zenvhub/internal/catalog"
	"github.com/zenv-lang/zenvhub/internal/core"
	"github.com/zenv-lang/zenvhub/internal/gateway"
	"github.com/zenv-lang/zenvhub/internal/state"
)

// Re-export types from internal/core.
type (
	// Package represents a published package.
	Package = core.Package

	// Badge represents a published status badge.
	Badge = core.Badge

	// ServerStatus is the hub health snapshot.
	ServerStatus = core.ServerStatus

	// Notification is a transient user-facing message.
	Notification = core.Notification

	// NotificationType classifies a notification.
	NotificationType = core.NotificationType

	// Session is the opaque authenticated-session payload.
	Session = core.Session

	// AuthError is the failure returned by Login and Register.
	AuthError = core.AuthError
)

// Re-export constants.
const (
	StatusOK       = core.StatusOK
	StatusError    = core.StatusError
	StatusChecking = core.StatusChecking

	NoticeInfo    = core.NoticeInfo
	NoticeSuccess = core.NoticeSuccess
	NoticeError   = core.NoticeError
)

// Catalog view helpers, re-exported from internal/catalog.
var (
	// Recent returns the first n packages in store order.
	Recent = catalog.Recent

	// Search filters packages by case-insensitive substring.
	Search = catalog.Search

	// Find returns the first package with an exact name match.
	Find = catalog.Find

	// FormatSize renders a byte count as a base-1024 magnitude string.
	FormatSize = catalog.FormatSize

	// PackageURL returns the purl identifying a package version.
	PackageURL = catalog.PackageURL

	// ParseRef resolves "name@version" or a purl to (name, version).
	ParseRef = catalog.ParseRef

	// ValidLicense reports whether a license field is valid SPDX.
	ValidLicense = catalog.ValidLicense
)

// Store aliases the observable state aggregate.
type Store = state.Store

// Container aliases the observable cell type held by the store.
type Container[T any] = state.Container[T]

// Notifier aliases the notification queue manager.
type Notifier = state.Notifier

// App wires the gateway, the state store, and the notification queue.
// It is constructed once at process start and passed by reference to
// every consumer; there is no package-level instance.
type App struct {
	Store  *state.Store
	Notify *state.Notifier
	gw     *gateway.Gateway
}

// New creates an App talking to the hub at baseURL (empty means the
// public instance). A nil logger disables logging.
func New(baseURL string, log *zap.Logger) *App {
	return NewWithClient(baseURL, nil, log)
}

// NewWithClient creates an App using a custom HTTP client, mainly for
// tests against httptest servers.
func NewWithClient(baseURL string, httpClient *client.Client, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	store := state.NewStore()
	return &App{
		Store:  store,
		Notify: state.NewNotifier(store.Notifications),
		gw:     gateway.New(baseURL, httpClient, log),
	}
}

// BaseURL returns the hub base URL the app talks to.
func (a *App) BaseURL() string {
	return a.gw.BaseURL()
}

// Refresh re-fetches packages, badges, and server health concurrently.
// Each result is written to its own container as its fetch completes;
// the containers are eventually-consistent snapshots, not a transaction.
// The status container resets to "checking" before the poll starts.
func (a *App) Refresh(ctx context.Context) {
	a.Store.Loading.Set(true)
	defer a.Store.Loading.Set(false)

	a.Store.Status.Set(core.ServerStatus{Status: core.StatusChecking})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Store.Packages.Set(a.gw.ListPackages(ctx))
		return nil
	})
	g.Go(func() error {
		a.Store.Badges.Set(a.gw.ListBadges(ctx))
		return nil
	})
	g.Go(func() error {
		a.Store.Status.Set(a.gw.ServerStatus(ctx))
		return nil
	})
	_ = g.Wait()
}

// ListPackages fetches the catalog without touching the store.
func (a *App) ListPackages(ctx context.Context) []Package {
	return a.gw.ListPackages(ctx)
}

// ListBadges fetches the badge list without touching the store.
func (a *App) ListBadges(ctx context.Context) []Badge {
	return a.gw.ListBadges(ctx)
}

// CheckStatus polls server health without touching the store.
func (a *App) CheckStatus(ctx context.Context) ServerStatus {
	return a.gw.ServerStatus(ctx)
}

// Download resolves ref ("name@version" or a purl), fetches the
// artifact, and writes it to path (or "{name}-{version}.tar.gz" in the
// working directory when path is empty). The outcome is enqueued as a
// success or error notification either way; only resolution and
// filesystem problems are returned as errors, a failed fetch surfaces as
// the documented nil-artifact degradation.
func (a *App) Download(ctx context.Context, ref, path string) error {
	name, version, err := catalog.ParseRef(ref)
	if err != nil {
		a.Notify.Error(err.Error())
		return err
	}
	if version == "" {
		version = "latest"
	}

	data := a.gw.Download(ctx, name, version)
	if data == nil {
		msg := fmt.Sprintf("Download failed: %s@%s", name, version)
		a.Notify.Error(msg)
		return nil
	}

	if path == "" {
		path = fmt.Sprintf("%s-%s.tar.gz", name, version)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		a.Notify.Error(fmt.Sprintf("Saving %s failed", path))
		return err
	}

	a.Notify.Success(fmt.Sprintf("Downloaded %s@%s (%s)",
		name, version, catalog.FormatSize(int64(len(data)))))
	return nil
}

// Login authenticates and stores the session in the user container. A
// failure is surfaced as an error notification and returned to the
// caller, which branches UI state on the outcome.
func (a *App) Login(ctx context.Context, username, password string) error {
	session, err := a.gw.Login(ctx, username, password)
	if err != nil {
		a.Notify.Error(err.Error())
		return err
	}
	a.Store.User.Set(session)
	a.Notify.Success(fmt.Sprintf("Logged in as %s", username))
	return nil
}

// Register creates an account and stores the session. Same contract as
// Login.
func (a *App) Register(ctx context.Context, username, email, password string) error {
	session, err := a.gw.Register(ctx, username, email, password)
	if err != nil {
		a.Notify.Error(err.Error())
		return err
	}
	a.Store.User.Set(session)
	a.Notify.Success(fmt.Sprintf("Registered %s", username))
	return nil
}

// Logout clears the user container.
func (a *App) Logout() {
	a.Store.User.Set(core.Session{})
}
