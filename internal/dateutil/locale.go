package dateutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. English output is the key itself.
const (
	phraseOneMinAgo = "1 min ago"
	phraseMinsAgo   = "%d mins ago"
	phraseYesterday = "Yesterday"
)

var translations = map[language.Tag]map[string]string{
	language.Russian: {
		phraseOneMinAgo: "1 минута назад",
		phraseMinsAgo:   "%d мин. назад",
		phraseYesterday: "Вчера",
	},
	language.Finnish: {
		phraseOneMinAgo: "1 minuutti sitten",
		phraseMinsAgo:   "%d minuuttia sitten",
		phraseYesterday: "Eilen",
	},
	language.Portuguese: {
		phraseOneMinAgo: "1 minuto atrás",
		phraseMinsAgo:   "%d minutos atrás",
		phraseYesterday: "Ontem",
	},
}

var phrases = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("dateutil: bad translation %q for %s: %v", key, tag, err))
			}
		}
	}
	return b
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(phrases))
}

// SupportedLocales lists the locale names with translated phrases.
func SupportedLocales() []string {
	return []string{"en", "fi", "pt", "ru"}
}

// ParseLocale maps a locale name such as "ru" or "pt_BR" to a supported language.
func ParseLocale(s string) (language.Tag, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	if s == "" {
		return language.English, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parsing locale %q: %w", s, err)
	}
	base, _ := tag.Base()
	for _, name := range SupportedLocales() {
		if base.String() == name {
			return language.Make(name), nil
		}
	}
	return language.Und, fmt.Errorf("unsupported locale %q (available: %s)", s, strings.Join(SupportedLocales(), ", "))
}
