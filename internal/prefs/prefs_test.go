package prefs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maidadmin/internal/domain"
)

// storeFactories runs each contract test against both implementations
func storeFactories(t *testing.T) map[string]func() Store {
	return map[string]func() Store{
		"memory": func() Store { return NewMemoryStore() },
		"sqlite": func() Store {
			s, err := OpenSQLite(filepath.Join(t.TempDir(), "prefs.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func TestStoreContract(t *testing.T) {
	for name, newStore := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			_, ok, err := s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(KeyAuthToken, "abc"))
			require.NoError(t, s.Set(KeyAuthToken, "def"))
			v, ok, err := s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "def", v)

			require.NoError(t, s.Set(KeyTheme, ""))
			v, ok, err = s.Get(KeyTheme)
			require.NoError(t, err)
			assert.True(t, ok, "empty values are still present")
			assert.Equal(t, "", v)

			require.NoError(t, s.Remove(KeyAuthToken, "missing"))
			_, ok, err = s.Get(KeyAuthToken)
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Remove())
		})
	}
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "prefs.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	p := New(s)
	require.NoError(t, p.SetTheme(domain.ThemeDark))
	require.NoError(t, p.SetLanguage(domain.LanguagePolish))
	require.NoError(t, p.Set(KeyAuthToken, "tok"))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	p = New(s)

	assert.Equal(t, domain.ThemeDark, p.Theme(domain.ThemeLight))
	assert.Equal(t, domain.LanguagePolish, p.Language(domain.LanguageEnglish))
	v, ok, err := p.Get(KeyAuthToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	require.Error(t, err)
}

func TestThemeAndLanguageFallbacks(t *testing.T) {
	store := NewMemoryStore()
	p := New(store)

	assert.Equal(t, domain.ThemeLight, p.Theme(domain.ThemeLight))
	assert.Equal(t, domain.LanguageEnglish, p.Language(domain.LanguageEnglish))

	// Garbage written by something else is ignored
	require.NoError(t, store.Set(KeyTheme, "purple"))
	require.NoError(t, store.Set(KeyLanguage, "de"))
	assert.Equal(t, domain.ThemeDark, p.Theme(domain.ThemeDark))
	assert.Equal(t, domain.LanguagePolish, p.Language(domain.LanguagePolish))
}

func TestSetRejectsInvalidValues(t *testing.T) {
	p := New(NewMemoryStore())

	err := p.SetTheme("purple")
	assert.True(t, errors.Is(err, ErrInvalidTheme))

	err = p.SetLanguage("de")
	assert.True(t, errors.Is(err, ErrInvalidLanguage))
}

func TestParse(t *testing.T) {
	theme, err := ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	lang, err := ParseLanguage("PL")
	require.NoError(t, err)
	assert.Equal(t, domain.LanguagePolish, lang)
}

func TestClearSessionKeepsPreferences(t *testing.T) {
	p := New(NewMemoryStore())
	require.NoError(t, p.SetTheme(domain.ThemeDark))
	require.NoError(t, p.Set(KeyAuthToken, "tok"))
	require.NoError(t, p.Set(KeyDisplayName, "admin"))

	require.NoError(t, p.ClearSession())

	_, ok, _ := p.Get(KeyAuthToken)
	assert.False(t, ok)
	_, ok, _ = p.Get(KeyDisplayName)
	assert.False(t, ok)
	assert.Equal(t, domain.ThemeDark, p.Theme(domain.ThemeLight))
}
