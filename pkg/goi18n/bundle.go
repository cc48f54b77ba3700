package goi18n

import (
	"embed"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.json
var localeFS embed.FS

// NewBundle returns an empty bundle with TOML and YAML unmarshalers
// registered on top of the built-in JSON support. Load catalogs with
// bundle.LoadMessageFile or bundle.LoadMessageFileFS; the language is
// inferred from the file name, e.g. "zod.en.json".
func NewBundle(defaultLanguage language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	return bundle
}

// DefaultBundle returns a bundle preloaded with the embedded catalogs,
// English first. Every call builds a fresh bundle so callers can add
// their own messages without affecting each other.
func DefaultBundle() *i18n.Bundle {
	bundle := NewBundle(language.English)
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		panic(fmt.Errorf("goi18n: read embedded locales: %w", err))
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			panic(fmt.Errorf("goi18n: load embedded catalog %s: %w", entry.Name(), err))
		}
	}
	return bundle
}
