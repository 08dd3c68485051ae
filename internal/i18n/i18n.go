// Package i18n holds the supported UI languages and their translation
// tables. Tables are embedded YAML files checked at load time: a language
// lacking any key is rejected instead of rendering an empty string later.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Language is a supported locale code.
type Language string

const (
	English Language = "en"
	Russian Language = "ru"
	Tajik   Language = "tg"

	DefaultLanguage = Russian
)

var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrMissingTranslation  = errors.New("missing translation")
)

var nativeNames = map[Language]string{
	English: "English",
	Russian: "Русский",
	Tajik:   "Тоҷикӣ",
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{English, Russian, Tajik}
}

// ParseLanguage validates s against the closed set of language codes.
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := nativeNames[l]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return l, nil
}

func (l Language) Valid() bool {
	_, ok := nativeNames[l]
	return ok
}

func (l Language) NativeName() string {
	return nativeNames[l]
}

// Catalog maps every supported language to its translation table.
type Catalog map[Language]*Translations

//go:embed locales/*.yaml
var localesFS embed.FS

var builtin = mustLoad(localesFS)

func mustLoad(fsys fs.FS) Catalog {
	c, err := Load(fsys)
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads locales/<code>.yaml for every supported language and checks
// that each table defines every key.
func Load(fsys fs.FS) (Catalog, error) {
	c := make(Catalog, len(nativeNames))
	for _, lang := range Languages() {
		data, err := fs.ReadFile(fsys, "locales/"+string(lang)+".yaml")
		if err != nil {
			return nil, fmt.Errorf("read %s translations: %w", lang, err)
		}

		var t Translations
		if err := yaml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parse %s translations: %w", lang, err)
		}
		if err := t.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", lang, err)
		}
		c[lang] = &t
	}
	return c, nil
}

// Table returns the built-in table for lang, falling back to the default
// language for unknown codes.
func Table(lang Language) *Translations {
	return builtin.Table(lang)
}

func (c Catalog) Table(lang Language) *Translations {
	if t, ok := c[lang]; ok {
		return t
	}
	return c[DefaultLanguage]
}

func (t *Translations) validate() error {
	v := reflect.ValueOf(t).Elem()
	typ := v.Type()

	var missing []string
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).Kind() != reflect.String {
			continue
		}
		if strings.TrimSpace(v.Field(i).String()) == "" {
			key, _, _ := strings.Cut(typ.Field(i).Tag.Get("yaml"), ",")
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTranslation, strings.Join(missing, ", "))
	}
	return nil
}
