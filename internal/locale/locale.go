// Package locale loads the embedded message catalogs and resolves the
// active language.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the catalog every other catalog falls back to.
const BaseLocale = "en-US"

// ErrUnknownLocale is returned by Set when no catalog matches the request.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed catalogs/*.yaml
var embeddedCatalogs embed.FS

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Localizer translates message keys for the active locale.
type Localizer struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	builder  *catalog.Builder
	matcher  language.Matcher
	current  language.Tag
	printer  *message.Printer
	base     *message.Printer
}

// New loads the embedded catalogs with the base locale active.
func New() (*Localizer, error) {
	return LoadFromFS(embeddedCatalogs)
}

// LoadFromFS loads catalogs/*.yaml from fsys.
func LoadFromFS(fsys fs.FS) (*Localizer, error) {
	paths, err := fs.Glob(fsys, "catalogs/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	base := language.MustParse(BaseLocale)
	l := &Localizer{
		messages: make(map[language.Tag]map[string]string),
		builder:  catalog.NewBuilder(catalog.Fallback(base)),
	}

	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if want := strings.TrimSuffix(path.Base(p), ".yaml"); file.Locale != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name", p, file.Locale)
		}
		tag, err := language.Parse(file.Locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
		for key, msg := range file.Messages {
			if err := l.builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", p, key, err)
			}
		}
		l.tags = append(l.tags, tag)
		l.messages[tag] = file.Messages
	}

	if _, ok := l.messages[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}

	// The matcher prefers its first tag when nothing matches well.
	ordered := []language.Tag{base}
	for _, t := range l.tags {
		if t != base {
			ordered = append(ordered, t)
		}
	}
	l.tags = ordered
	l.matcher = language.NewMatcher(ordered)
	l.base = message.NewPrinter(base, message.Catalog(l.builder))
	l.use(base)
	return l, nil
}

func (l *Localizer) use(tag language.Tag) {
	l.current = tag
	l.printer = message.NewPrinter(tag, message.Catalog(l.builder))
}

// Available returns the loaded locales, base locale first.
func (l *Localizer) Available() []language.Tag {
	return append([]language.Tag(nil), l.tags...)
}

// Current returns the active locale.
func (l *Localizer) Current() language.Tag {
	return l.current
}

// Set activates the catalog that best matches s, for example "de" or "es-MX".
func (l *Localizer) Set(s string) (language.Tag, error) {
	requested, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return l.current, fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	_, idx, conf := l.matcher.Match(requested)
	if conf == language.No {
		return l.current, fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	l.use(l.tags[idx])
	return l.current, nil
}

// T translates key with fmt-style args. Unknown keys render as the key itself.
func (l *Localizer) T(key string, args ...any) string {
	if _, ok := l.messages[l.current][key]; !ok {
		return l.base.Sprintf(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

// Has reports whether key exists in the active or base catalog.
func (l *Localizer) Has(key string) bool {
	if _, ok := l.messages[l.current][key]; ok {
		return true
	}
	_, ok := l.messages[l.tags[0]][key]
	return ok
}
