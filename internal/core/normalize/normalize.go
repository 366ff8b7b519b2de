// Package normalize provides locale-aware case folding used for title matching
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFC normalization
// 3 Locale lower casing (language specific rules eg Turkish dotted I)
// 4 Unicode case folding (final sigma and friends)
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Folder is concurrency safe; each call takes its own transformer chain from the pool
type Folder struct {
	tag  language.Tag
	pool sync.Pool
}

// New constructs a Folder for the given language tag
// language.Und falls back to root casing rules
func New(tag language.Tag) *Folder {
	f := &Folder{tag: tag}
	f.pool.New = func() any {
		// cases.Caser is stateful so chains are never shared across goroutines
		return transform.Chain(
			norm.NFC,
			cases.Lower(tag),
			cases.Fold(),
		)
	}
	return f
}

// Parse builds a Folder from a BCP 47 string like "en", "tr" or "de-CH"
// unparseable input falls back to English
func Parse(locale string) *Folder {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	return New(tag)
}

// Tag returns the language the folder applies
func (f *Folder) Tag() language.Tag { return f.tag }

// Fold returns the caseless form of s
func (f *Folder) Fold(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := f.pool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	f.pool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// Contains reports whether sub occurs within s ignoring case
// an empty sub always matches
func (f *Folder) Contains(s, sub string) bool {
	return strings.Contains(f.Fold(s), f.Fold(sub))
}
