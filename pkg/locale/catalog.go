package locale

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// DefaultLanguage is used when a requested language is not in the catalog.
const DefaultLanguage = "en"

// Keys of the built-in strings.
const (
	KeyAddTitle = "addTitle"
	KeyPrompt   = "prompt"
)

// ErrMissingTranslation is returned when neither the requested language nor
// the default language defines a key.
var ErrMissingTranslation = errors.New("locale: missing translation")

// Strings holds the user facing labels of one language.
type Strings map[string]string

// Translator resolves a key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// Catalog is a per-instance language table. Unlike a shared table, every
// widget owns its own catalog so registering a language never affects other
// widgets.
type Catalog struct {
	mu        sync.RWMutex
	languages map[string]Strings
}

var _ Translator = (*Catalog)(nil)

// NewCatalog returns a catalog holding the English defaults.
func NewCatalog() *Catalog {
	c := &Catalog{languages: make(map[string]Strings)}
	c.Localize(DefaultLanguage, Strings{
		KeyAddTitle: "Add new list",
		KeyPrompt:   "There is no item",
	})
	return c
}

// Localize registers or extends the strings for lang.
func (c *Catalog) Localize(lang string, labels Strings) {
	lang = normalize(lang)
	if lang == "" || len(labels) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	current := c.languages[lang]
	if current == nil {
		current = make(Strings, len(labels))
	}
	for key, value := range labels {
		current[key] = value
	}
	c.languages[lang] = current
}

// Has reports whether lang is registered.
func (c *Catalog) Has(lang string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.languages[normalize(lang)]
	return ok
}

// Languages returns the registered language codes sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.languages))
	for lang := range c.languages {
		out = append(out, lang)
	}
	slices.Sort(out)
	return out
}

// Resolve returns the strings for lang merged over the default language and
// then overridden by overrides. Unknown languages resolve to the default.
func (c *Catalog) Resolve(lang string, overrides Strings) Strings {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(Strings)
	for key, value := range c.languages[DefaultLanguage] {
		out[key] = value
	}
	if selected, ok := c.languages[normalize(lang)]; ok {
		for key, value := range selected {
			out[key] = value
		}
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Translate implements Translator. args are applied with fmt.Sprintf when
// present.
func (c *Catalog) Translate(lang, key string, args ...any) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range []string{normalize(lang), DefaultLanguage} {
		if value, ok := c.languages[candidate][key]; ok {
			if len(args) > 0 {
				return fmt.Sprintf(value, args...), nil
			}
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s/%s", ErrMissingTranslation, lang, key)
}

func normalize(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}
