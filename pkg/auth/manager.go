// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package auth acquires OAuth access tokens for the knowledge-graph API and
// keeps them fresh in the background.
//
// Credentials come from the environment (KG_OAUTH_CLIENT_ID and
// KG_OAUTH_CLIENT_SECRET). When either is missing the server runs
// unauthenticated: requests carry no bearer token and the backend decides
// what anonymous callers may do.
package auth

import (
	"context"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/kgfoundry/kgmcp/pkg/errors"
	"github.com/kgfoundry/kgmcp/pkg/logger"
)

const (
	// ClientIDEnvVar holds the OAuth client ID.
	ClientIDEnvVar = "KG_OAUTH_CLIENT_ID"

	// ClientSecretEnvVar holds the OAuth client secret.
	ClientSecretEnvVar = "KG_OAUTH_CLIENT_SECRET"

	// tokenPath is the backend's token endpoint, relative to the API base
	// URL. It is the one route called without a bearer token.
	tokenPath = "/auth/oauth/token"

	// acquireTimeout bounds a single token request, including background
	// refreshes that run without a caller context.
	acquireTimeout = 30 * time.Second

	// refreshMargin is how long before expiry a refresh fires for
	// long-lived tokens.
	refreshMargin = 5 * time.Minute
)

// Config carries client-credentials settings for the token endpoint.
type Config struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// FromEnv builds a Config for the given API base URL from the KG_OAUTH_*
// environment variables. Both variables must be set; a partial pair is
// treated as absent so startup continues unauthenticated instead of
// failing on a credential that cannot work.
func FromEnv(baseURL string) (Config, bool) {
	clientID := os.Getenv(ClientIDEnvVar)
	clientSecret := os.Getenv(ClientSecretEnvVar)
	if clientID == "" || clientSecret == "" {
		return Config{}, false
	}
	return Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     strings.TrimSuffix(baseURL, "/") + tokenPath,
		Scopes:       []string{"read:*", "write:*"},
	}, true
}

// tokenState is the immutable pair published after each acquisition.
// Readers load it through an atomic pointer so they never observe a token
// from one acquisition paired with the expiry of another.
type tokenState struct {
	token     string
	expiresAt time.Time
}

// Manager acquires an access token via the client-credentials grant and
// refreshes it on a timer ahead of expiry. It implements
// kgclient.TokenSource; Token never blocks on the network.
type Manager struct {
	oauth *clientcredentials.Config

	state atomic.Pointer[tokenState]

	mu       sync.Mutex // guards timer
	timer    *time.Timer
	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a Manager for the given credentials. No token is
// requested until Initialize is called.
func NewManager(cfg Config) *Manager {
	return &Manager{
		oauth: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
			// The backend reads credentials from the form body, not a
			// basic-auth header.
			AuthStyle: oauth2.AuthStyleInParams,
		},
		stop: make(chan struct{}),
	}
}

// Initialize performs the first token acquisition and schedules the
// refresh timer. On failure the manager is left empty: Token returns ""
// and requests go out unauthenticated until the process restarts.
func (m *Manager) Initialize(ctx context.Context) error {
	return m.acquire(ctx)
}

// Token returns the current access token, or "" when none has been
// acquired. It is safe for concurrent use.
func (m *Manager) Token() string {
	st := m.state.Load()
	if st == nil {
		return ""
	}
	return st.token
}

// Close cancels any pending refresh. It is idempotent and never blocks;
// the manager holds no goroutine between timer fires, so Close does not
// keep the process open either.
func (m *Manager) Close() {
	m.stopOnce.Do(func() {
		close(m.stop)
		m.mu.Lock()
		if m.timer != nil {
			m.timer.Stop()
		}
		m.mu.Unlock()
	})
}

// acquire requests a token, publishes it, and schedules the next refresh.
func (m *Manager) acquire(ctx context.Context) error {
	tok, err := m.oauth.Token(ctx)
	if err != nil {
		return errors.NewAuthError("requesting access token", err)
	}
	m.state.Store(&tokenState{token: tok.AccessToken, expiresAt: tok.Expiry})
	if !tok.Expiry.IsZero() {
		m.scheduleRefresh(RefreshDelay(time.Until(tok.Expiry)))
	}
	return nil
}

// scheduleRefresh arms the refresh timer, replacing any pending one.
func (m *Manager) scheduleRefresh(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	select {
	case <-m.stop:
		return
	default:
	}
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(d, m.refresh)
}

// refresh re-acquires the token when the timer fires. A failed refresh
// keeps the previous token: it may still be accepted for a while, and once
// it expires the resulting 401s surface through the normal backend error
// path rather than from here.
func (m *Manager) refresh() {
	select {
	case <-m.stop:
		return
	default:
	}
	ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
	defer cancel()
	if err := m.acquire(ctx); err != nil {
		logger.Warnf("Token refresh failed, keeping the previous token: %v", err)
	}
}

// RefreshDelay converts a token lifetime into the delay before the next
// refresh: five minutes before expiry for tokens living at least ten
// minutes, half the lifetime for shorter ones. Never less than a second.
func RefreshDelay(expiresIn time.Duration) time.Duration {
	margin := refreshMargin
	if half := expiresIn / 2; half < margin {
		margin = half
	}
	d := expiresIn - margin
	if d < time.Second {
		d = time.Second
	}
	return d
}
