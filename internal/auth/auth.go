// Package auth keeps the admin session: it logs in against the backend,
// stores the tokens in the preference store and decides when the session
// is over.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"maidadmin/internal/api"
	"maidadmin/internal/domain"
	"maidadmin/internal/eventbus"
	"maidadmin/internal/logging"
	"maidadmin/internal/prefs"
)

// DefaultTokenLifetime is assumed when the token carries no exp claim
const DefaultTokenLifetime = 2 * time.Hour

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrTokenExpired     = errors.New("session expired")
)

// Logout reasons published with LoggedOutEvent
const (
	ReasonUser         = "user"
	ReasonExpired      = "expired"
	ReasonUnauthorized = "unauthorized"
)

// ASP.NET Core writes role and name claims under these URIs unless the
// short names are mapped
const (
	roleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"
	nameClaimURI = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/name"
	idClaimURI   = "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/nameidentifier"
)

// Backend is the part of the API client used for authentication
type Backend interface {
	Login(ctx context.Context, creds api.Credentials) (api.Tokens, error)
	Logout(ctx context.Context, refreshToken string) (string, error)
	Refresh(ctx context.Context, refreshToken string) (api.Tokens, error)
}

// Identity describes the signed-in administrator
type Identity struct {
	ID        string
	Username  string
	Role      string
	ExpiresAt time.Time
}

// Provider implements login, logout and session checks
type Provider struct {
	backend Backend
	prefs   *prefs.Preferences
	bus     eventbus.EventBus
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a provider. bus may be nil.
func New(backend Backend, p *prefs.Preferences, bus eventbus.EventBus, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		backend: backend,
		prefs:   p,
		bus:     bus,
		logger:  logger.Named("auth"),
		now:     time.Now,
	}
}

// Token returns the stored bearer token, or "" when signed out
func (p *Provider) Token() string {
	token, _, err := p.prefs.Get(prefs.KeyAuthToken)
	if err != nil {
		p.logger.Warn("read token", zap.Error(err))
		return ""
	}
	return token
}

// Login authenticates and stores the session
func (p *Provider) Login(ctx context.Context, username, password string) (Identity, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return Identity{}, errors.New("username and password are required")
	}
	tokens, err := p.backend.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		p.logger.Info("login failed", zap.String("username", username), zap.Error(err))
		return Identity{}, err
	}

	id := p.identityFromToken(tokens.Token)
	if tokens.Username != "" {
		id.Username = tokens.Username
	}
	if id.Username == "" {
		id.Username = username
	}
	if err := p.store(tokens, id); err != nil {
		return Identity{}, err
	}

	p.logger.Info("logged in",
		zap.String("username", id.Username),
		zap.String("role", id.Role),
		zap.Time("expires", id.ExpiresAt),
		logging.Redact(tokens.Token))
	p.publish(domain.LoggedInEvent{Username: id.Username})
	return id, nil
}

// RefreshSession trades the stored refresh token for a new token pair
func (p *Provider) RefreshSession(ctx context.Context) (Identity, error) {
	refresh, ok, err := p.prefs.Get(prefs.KeyRefreshToken)
	if err != nil {
		return Identity{}, fmt.Errorf("read refresh token: %w", err)
	}
	if !ok || refresh == "" {
		return Identity{}, ErrNotAuthenticated
	}
	tokens, err := p.backend.Refresh(ctx, refresh)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			p.end(ReasonUnauthorized)
			return Identity{}, fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
		}
		return Identity{}, err
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refresh
	}

	id := p.identityFromToken(tokens.Token)
	if id.Username == "" {
		id.Username, _, _ = p.prefs.Get(prefs.KeyDisplayName)
	}
	if err := p.store(tokens, id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Logout revokes the refresh token on the server and removes the local
// session. Server errors are logged; the local session is removed anyway.
func (p *Provider) Logout(ctx context.Context) error {
	refresh, ok, err := p.prefs.Get(prefs.KeyRefreshToken)
	if err != nil {
		p.logger.Warn("read refresh token", zap.Error(err))
	}
	if ok && refresh != "" {
		if _, err := p.backend.Logout(ctx, refresh); err != nil {
			p.logger.Warn("server logout failed", zap.Error(err))
		}
	}
	if err := p.prefs.ClearSession(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	p.publish(domain.LoggedOutEvent{Reason: ReasonUser})
	return nil
}

// CheckAuth reports whether a usable session exists. An expired session is
// removed.
func (p *Provider) CheckAuth() error {
	token, ok, err := p.prefs.Get(prefs.KeyAuthToken)
	if err != nil {
		return fmt.Errorf("read token: %w", err)
	}
	if !ok || token == "" {
		return ErrNotAuthenticated
	}
	if exp := p.expiry(); !exp.IsZero() && !p.now().Before(exp) {
		p.end(ReasonExpired)
		return ErrTokenExpired
	}
	return nil
}

// CheckError ends the session when err is an authorization failure and
// returns ErrNotAuthenticated wrapping it. Other errors leave the session
// alone and yield nil.
func (p *Provider) CheckError(err error) error {
	if err == nil || !errors.Is(err, api.ErrUnauthorized) {
		return nil
	}
	p.end(ReasonUnauthorized)
	return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
}

// Identity returns the signed-in user
func (p *Provider) Identity() (Identity, error) {
	if err := p.CheckAuth(); err != nil {
		return Identity{}, err
	}
	id := p.identityFromToken(p.Token())
	if name, ok, _ := p.prefs.Get(prefs.KeyDisplayName); ok && name != "" {
		id.Username = name
	}
	id.ExpiresAt = p.expiry()
	return id, nil
}

// Watch checks the session every interval until ctx is done and calls
// onExpire once when the stored session expires
func (p *Provider) Watch(ctx context.Context, interval time.Duration, onExpire func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.CheckAuth(); errors.Is(err, ErrTokenExpired) {
				p.logger.Info("session expired")
				if onExpire != nil {
					onExpire()
				}
			}
		}
	}
}

func (p *Provider) store(tokens api.Tokens, id Identity) error {
	values := [][2]string{
		{prefs.KeyAuthToken, tokens.Token},
		{prefs.KeyRefreshToken, tokens.RefreshToken},
		{prefs.KeyTokenExpiry, strconv.FormatInt(id.ExpiresAt.UnixMilli(), 10)},
		{prefs.KeyDisplayName, id.Username},
	}
	for _, kv := range values {
		if err := p.prefs.Set(kv[0], kv[1]); err != nil {
			return fmt.Errorf("store session: %w", err)
		}
	}
	return nil
}

func (p *Provider) end(reason string) {
	if err := p.prefs.ClearSession(); err != nil {
		p.logger.Warn("clear session", zap.Error(err))
	}
	p.logger.Info("session ended", zap.String("reason", reason))
	p.publish(domain.LoggedOutEvent{Reason: reason})
}

func (p *Provider) expiry() time.Time {
	raw, ok, err := p.prefs.Get(prefs.KeyTokenExpiry)
	if err != nil || !ok {
		return time.Time{}
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

func (p *Provider) publish(event eventbus.DomainEvent) {
	if p.bus != nil {
		p.bus.Publish(event)
	}
}

// identityFromToken reads the claims without verifying the signature; the
// backend verifies tokens, the client only needs exp and the display claims
func (p *Provider) identityFromToken(token string) Identity {
	id := Identity{ExpiresAt: p.now().Add(DefaultTokenLifetime)}
	if token == "" {
		return id
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		p.logger.Debug("token is not a readable jwt", zap.Error(err))
		return id
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
	}
	id.ID = firstClaim(claims, "nameid", "sub", idClaimURI)
	id.Username = firstClaim(claims, "unique_name", "name", nameClaimURI)
	id.Role = firstClaim(claims, "role", roleClaimURI)
	return id
}

// firstClaim returns the first non-empty string claim. Multi-valued claims
// yield their first element.
func firstClaim(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		switch v := claims[name].(type) {
		case string:
			if v != "" {
				return v
			}
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok && s != "" {
					return s
				}
			}
		}
	}
	return ""
}
