package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/paniermalin/backend/internal/domain"
	"github.com/paniermalin/backend/internal/knowledge"
)

// quantityPattern pairs a compiled regex with the display unit it produces.
// Patterns are tried in order, most specific first: named culinary units
// before generic weight/volume units before a bare leading number.
type quantityPattern struct {
	re   *regexp.Regexp
	unit string
}

var quantityPatterns = []quantityPattern{
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*gousses?\b`), "gousse(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:c\.?\s*[aà]\.?\s*s\b\.?|cuill[eè]res?\s+[aà]\s+soupe)`), "c.à.s"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:c\.?\s*[aà]\.?\s*c\b\.?|cuill[eè]res?\s+[aà]\s+caf[eé])`), "c.à.c"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*tranches?\b`), "tranche(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*sachets?\b`), "sachet(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*bo[iî]tes?\b`), "boîte(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*bottes?\b`), "botte(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*pinc[eé]es?\b`), "pincée(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*paquets?\b`), "paquet(s)"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:kilos?|kg)\b`), "kg"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:grammes?|gr|g)\b`), "g"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*ml\b`), "ml"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*cl\b`), "cl"},
	{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:litres?|l)\b`), "l"},
	// Bare leading number, no unit: "3 oignons"
	{regexp.MustCompile(`^\s*(\d+(?:[.,]\d+)?)\s+`), ""},
}

// modifierVocabulary is the fixed set of cooking-state adjectives/adverbs
// stripped from phrases, in normalized (lowercase, unaccented) form.
var modifierVocabulary = map[string]bool{
	"frais": true, "fraiche": true, "fraiches": true,
	"hache": true, "hachee": true, "haches": true, "hachees": true,
	"rape": true, "rapee": true, "rapes": true, "rapees": true,
	"cuit": true, "cuite": true, "cuits": true, "cuites": true,
	"cru": true, "crue": true, "crus": true, "crues": true,
	"emince": true, "emincee": true, "eminces": true, "emincees": true,
	"finement": true, "grossierement": true,
	"entier": true, "entiere": true, "entiers": true, "entieres": true,
	"concasse": true, "concassee": true, "concassees": true,
	"pele": true, "pelee": true, "peles": true, "pelees": true,
	"epluche": true, "epluchee": true, "epluches": true, "epluchees": true,
	"seche": true, "sechee": true, "seches": true, "sechees": true,
	"surgele": true, "surgelee": true, "surgeles": true, "surgelees": true,
	"fondu": true, "fondue": true,
	"coupe": true, "coupee": true, "coupes": true, "coupees": true,
	"lave": true, "lavee": true, "laves": true, "lavees": true,
	"mur": true, "mure": true, "murs": true, "mures": true,
	"cisele": true, "ciselee": true,
}

// articleWords are French articles and function words stripped as whole
// words only, never partial-word.
var articleWords = map[string]bool{
	"le": true, "la": true, "les": true,
	"un": true, "une": true, "des": true,
	"de": true, "du": true, "d": true, "l": true,
	"a": true, "au": true, "aux": true, "en": true,
}

var multiSpacePattern = regexp.MustCompile(`\s+`)

// Parser turns raw French ingredient phrases into structured ingredients.
// It never fails: with no recognizable structure the whole input becomes
// the main ingredient.
type Parser struct {
	kb *knowledge.Base
}

// NewParser creates a parser backed by the given knowledge base.
func NewParser(kb *knowledge.Base) *Parser {
	return &Parser{kb: kb}
}

// Parse analyzes one raw ingredient phrase.
//
// Compound phrases ("sel et poivre") keep only the first segment; the
// remainder is dropped. This is a known limitation: the second ingredient
// is not tracked separately.
func (p *Parser) Parse(raw string) domain.ParsedIngredient {
	original := raw
	working := strings.ToLower(strings.TrimSpace(raw))

	working = firstSegment(working)

	quantity, unit, working := extractQuantity(working)
	working, modifiers := stripModifiers(working)
	cleaned := stripArticles(working)
	cleaned = strings.TrimSpace(multiSpacePattern.ReplaceAllString(cleaned, " "))

	if cleaned == "" {
		cleaned = strings.ToLower(strings.TrimSpace(original))
	}

	main := cleaned
	category := domain.CategoryOther

	if canonical, ok := p.kb.Canonical(cleaned); ok {
		main = canonical
		category, _ = p.kb.Category(canonical)
	} else if c := Classify(cleaned); c != domain.CategoryOther {
		category = c
	}

	if main == "" {
		main = original
	}

	return domain.ParsedIngredient{
		Original:       original,
		Cleaned:        cleaned,
		MainIngredient: main,
		Quantity:       quantity,
		Unit:           unit,
		Modifiers:      modifiers,
		Category:       category,
	}
}

// firstSegment cuts a compound phrase at the first conjunction separator.
func firstSegment(s string) string {
	if idx := strings.Index(s, " et "); idx >= 0 {
		s = s[:idx]
	}
	if idx := strings.Index(s, ", "); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

// extractQuantity tries the ordered pattern list; the first match wins and
// its span is removed from the working string. No match leaves quantity at
// zero and unit empty.
func extractQuantity(s string) (float64, string, string) {
	for _, p := range quantityPatterns {
		loc := p.re.FindStringSubmatchIndex(s)
		if loc == nil {
			continue
		}
		numText := strings.ReplaceAll(s[loc[2]:loc[3]], ",", ".")
		quantity, err := strconv.ParseFloat(numText, 64)
		if err != nil {
			continue
		}
		remainder := strings.TrimSpace(s[:loc[0]] + " " + s[loc[1]:])
		return quantity, p.unit, remainder
	}
	return 0, "", s
}

// stripModifiers removes cooking-state words, recording each removed token
// in order of first occurrence.
func stripModifiers(s string) (string, []string) {
	words := strings.Fields(s)
	var kept []string
	var modifiers []string
	seen := make(map[string]bool)

	for _, word := range words {
		normalized := knowledge.Normalize(strings.Trim(word, ",.;"))
		if modifierVocabulary[normalized] {
			if !seen[normalized] {
				modifiers = append(modifiers, normalized)
				seen[normalized] = true
			}
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " "), modifiers
}

// stripArticles removes contracted articles (d', l') and standalone French
// function words, as whole-word matches only.
func stripArticles(s string) string {
	words := strings.Fields(s)
	var kept []string

	for _, word := range words {
		// Contracted articles: d'ail -> ail, l'oignon -> oignon
		for {
			if strings.HasPrefix(word, "d'") || strings.HasPrefix(word, "l'") {
				word = word[len("d'"):]
				continue
			}
			if strings.HasPrefix(word, "d’") || strings.HasPrefix(word, "l’") {
				word = word[len("d’"):]
				continue
			}
			break
		}
		if word == "" {
			continue
		}
		if articleWords[knowledge.Normalize(word)] {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}
