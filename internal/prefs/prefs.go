// Package prefs persists small string preferences across sessions: the
// session token, theme and language.
package prefs

import (
	"errors"
	"fmt"
	"strings"

	"maidadmin/internal/domain"
)

// Keys used by the application
const (
	KeyAuthToken    = "auth_token"
	KeyRefreshToken = "refresh_token"
	KeyTokenExpiry  = "token_expiry" // unix milliseconds
	KeyDisplayName  = "display_name"
	KeyTheme        = "theme"
	KeyLanguage     = "language"
)

// SessionKeys are removed on logout
var SessionKeys = []string{KeyAuthToken, KeyRefreshToken, KeyTokenExpiry, KeyDisplayName}

var (
	ErrInvalidTheme    = errors.New("invalid theme")
	ErrInvalidLanguage = errors.New("invalid language")
)

// Store is a persistent key-value string store
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(keys ...string) error
	Close() error
}

// Preferences gives typed access to the values kept in a Store
type Preferences struct {
	store Store
}

// New wraps a store
func New(store Store) *Preferences {
	return &Preferences{store: store}
}

// Store returns the underlying store
func (p *Preferences) Store() Store {
	return p.store
}

// ParseTheme validates a theme name
func ParseTheme(s string) (domain.Theme, error) {
	switch domain.Theme(strings.ToLower(strings.TrimSpace(s))) {
	case domain.ThemeLight:
		return domain.ThemeLight, nil
	case domain.ThemeDark:
		return domain.ThemeDark, nil
	}
	return "", fmt.Errorf("%w %q: want light or dark", ErrInvalidTheme, s)
}

// ParseLanguage validates a language code
func ParseLanguage(s string) (domain.Language, error) {
	switch domain.Language(strings.ToLower(strings.TrimSpace(s))) {
	case domain.LanguageEnglish:
		return domain.LanguageEnglish, nil
	case domain.LanguagePolish:
		return domain.LanguagePolish, nil
	}
	return "", fmt.Errorf("%w %q: want en or pl", ErrInvalidLanguage, s)
}

// Theme returns the stored theme, or fallback when unset or unreadable
func (p *Preferences) Theme(fallback domain.Theme) domain.Theme {
	v, ok, err := p.store.Get(KeyTheme)
	if err != nil || !ok {
		return fallback
	}
	theme, err := ParseTheme(v)
	if err != nil {
		return fallback
	}
	return theme
}

// SetTheme stores the theme
func (p *Preferences) SetTheme(theme domain.Theme) error {
	if _, err := ParseTheme(string(theme)); err != nil {
		return err
	}
	return p.store.Set(KeyTheme, string(theme))
}

// Language returns the stored language, or fallback when unset or unreadable
func (p *Preferences) Language(fallback domain.Language) domain.Language {
	v, ok, err := p.store.Get(KeyLanguage)
	if err != nil || !ok {
		return fallback
	}
	lang, err := ParseLanguage(v)
	if err != nil {
		return fallback
	}
	return lang
}

// SetLanguage stores the language
func (p *Preferences) SetLanguage(lang domain.Language) error {
	if _, err := ParseLanguage(string(lang)); err != nil {
		return err
	}
	return p.store.Set(KeyLanguage, string(lang))
}

// Get reads one raw value
func (p *Preferences) Get(key string) (string, bool, error) {
	return p.store.Get(key)
}

// Set writes one raw value
func (p *Preferences) Set(key, value string) error {
	return p.store.Set(key, value)
}

// ClearSession removes every session key
func (p *Preferences) ClearSession() error {
	return p.store.Remove(SessionKeys...)
}
