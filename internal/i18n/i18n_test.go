package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"maidadmin/internal/domain"
)

func TestCatalogsHaveTheSameKeys(t *testing.T) {
	assert.Equal(t, Keys(domain.LanguageEnglish), Keys(domain.LanguagePolish))
}

func TestPrinterTranslates(t *testing.T) {
	en := Printer(domain.LanguageEnglish)
	pl := Printer(domain.LanguagePolish)

	assert.Equal(t, "Users", en.Sprintf("tab.users"))
	assert.Equal(t, "Użytkownicy", pl.Sprintf("tab.users"))
	assert.Equal(t, `No results for "report"`, en.Sprintf("empty.results", "report"))
	assert.Equal(t, `Brak wyników dla "raport"`, pl.Sprintf("empty.results", "raport"))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, language.English, Tag(domain.Language("de")))
	assert.Equal(t, "Datasets", Printer(domain.Language("de")).Sprintf("tab.datasets"))
}
