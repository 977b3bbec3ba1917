package knowledge

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/paniermalin/backend/internal/domain"
)

// Base is the static canonical-ingredient reference table. It is built once
// at startup and read-only afterwards, so it is safe for concurrent use.
// Lookups are accent-insensitive ("pâtes" and "pates" resolve identically).
type Base struct {
	entries  map[string]domain.KnowledgeEntry
	synonyms map[string]string // normalized synonym -> canonical key
}

// New builds the knowledge base from the fixed ingredient table.
func New() *Base {
	b := &Base{
		entries:  make(map[string]domain.KnowledgeEntry, len(ingredientTable)),
		synonyms: make(map[string]string, len(ingredientTable)*3),
	}

	for canonical, entry := range ingredientTable {
		b.entries[canonical] = entry
		b.synonyms[Normalize(canonical)] = canonical
		for _, syn := range entry.Synonyms {
			b.synonyms[Normalize(syn)] = canonical
		}
	}

	return b
}

// Lookup returns the entry for a canonical ingredient key.
func (b *Base) Lookup(canonical string) (domain.KnowledgeEntry, bool) {
	entry, ok := b.entries[canonical]
	return entry, ok
}

// Canonical resolves a free-form ingredient name to its canonical key,
// trying the exact key first, then the synonym index.
func (b *Base) Canonical(name string) (string, bool) {
	normalized := Normalize(name)
	if _, ok := b.entries[normalized]; ok {
		return normalized, true
	}
	if canonical, ok := b.synonyms[normalized]; ok {
		return canonical, true
	}
	return "", false
}

// Synonyms returns the synonym list for a canonical key, or nil.
func (b *Base) Synonyms(canonical string) []string {
	if entry, ok := b.entries[canonical]; ok {
		return entry.Synonyms
	}
	return nil
}

// PreferredBrands returns the preferred brand list for a canonical key, or nil.
func (b *Base) PreferredBrands(canonical string) []string {
	if entry, ok := b.entries[canonical]; ok {
		return entry.PreferredBrands
	}
	return nil
}

// Category resolves a name (canonical or synonym) to its category.
func (b *Base) Category(name string) (string, bool) {
	canonical, ok := b.Canonical(name)
	if !ok {
		return "", false
	}
	return b.entries[canonical].Category, true
}

// Size returns the number of canonical entries.
func (b *Base) Size() int {
	return len(b.entries)
}

// Normalize lowercases a string and strips diacritics so that accented and
// unaccented spellings compare equal.
func Normalize(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	decomposed := norm.NFD.String(s)
	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		sb.WriteRune(r)
	}
	return norm.NFC.String(sb.String())
}
