// Package i18n registers the English and Polish message catalogs.
package i18n

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"maidadmin/internal/domain"
)

var tags = map[domain.Language]language.Tag{
	domain.LanguageEnglish: language.English,
	domain.LanguagePolish:  language.Polish,
}

var catalogs = map[domain.Language]map[string]string{
	domain.LanguageEnglish: english,
	domain.LanguagePolish:  polish,
}

func init() {
	for lang, messages := range catalogs {
		tag := tags[lang]
		for _, key := range Keys(lang) {
			if err := message.SetString(tag, key, messages[key]); err != nil {
				panic(err)
			}
		}
	}
}

// Tag returns the language tag for lang, English when unknown
func Tag(lang domain.Language) language.Tag {
	if tag, ok := tags[lang]; ok {
		return tag
	}
	return language.English
}

// Printer returns a printer that translates message keys into lang
func Printer(lang domain.Language) *message.Printer {
	return message.NewPrinter(Tag(lang))
}

// Keys lists the message keys of a catalog in sorted order
func Keys(lang domain.Language) []string {
	messages := catalogs[lang]
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
