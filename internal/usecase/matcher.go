package usecase

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/paniermalin/backend/internal/domain"
	"github.com/paniermalin/backend/internal/knowledge"
)

// Scoring signals, additive and capped at 1.0
const (
	exactNameScore      = 0.5  // product name contains the main ingredient verbatim
	fuzzyNameScoreMax   = 0.4  // scaled by edit-distance similarity when > fuzzyFloor
	fuzzyFloor          = 0.8  // minimum similarity for the fuzzy signal
	synonymScore        = 0.3  // product name contains a knowledge-base synonym
	modifierScore       = 0.1  // per matched modifier in the product name
	brandScore          = 0.2  // brand matches a preferred brand
	sourceScore         = 0.1  // provenance tag is the preferred source
	categoryScore       = 0.1  // product category equals ingredient category
	cheapScore          = 0.05 // price below cheapPriceCHF
	cheapPriceCHF       = 5.0
	maxScore            = 1.0
	highConfidenceMin   = 0.8
	mediumConfidenceMin = 0.5
	mediumWithCategory  = 0.3
)

// Tier caps
const (
	tier1Cap      = 10
	tier2Cap      = 5
	tier3Cap      = 5
	maxCandidates = 5
	minTermLength = 2 // search terms must be longer than this
)

// MatchOptions are caller-controlled knobs for one match attempt.
// MinScore <= 0 falls back to the matcher's configured floor.
type MatchOptions struct {
	MinScore        float64
	MaxPrice        float64
	PreferredBrands []string
}

// MatcherConfig holds configuration for the matcher.
type MatcherConfig struct {
	MinScore        float64 // default confidence floor; strict by default
	PreferredSource string  // provenance tag considered freshest
	SearchBaseURL   string  // catalog search page, query appended
	EnableFuzzy     bool
}

// Matcher searches the catalog for products matching a parsed ingredient
// and scores candidates best-first.
type Matcher struct {
	catalog         domain.Catalog
	kb              *knowledge.Base
	minScore        float64
	preferredSource string
	searchBaseURL   string
	enableFuzzy     bool
	log             *zap.SugaredLogger
}

// NewMatcher creates a matcher with the given configuration.
func NewMatcher(catalog domain.Catalog, kb *knowledge.Base, cfg MatcherConfig, log *zap.SugaredLogger) *Matcher {
	minScore := cfg.MinScore
	if minScore <= 0 {
		minScore = 0.7 // strict default: a poor substitution is worse than no match
	}

	return &Matcher{
		catalog:         catalog,
		kb:              kb,
		minScore:        minScore,
		preferredSource: cfg.PreferredSource,
		searchBaseURL:   cfg.SearchBaseURL,
		enableFuzzy:     cfg.EnableFuzzy,
		log:             log,
	}
}

// Match returns up to 5 candidates ordered best-first. An empty result means
// "no acceptable match", never an error; errors are reserved for catalog
// failures. The score floor is never silently relaxed.
func (m *Matcher) Match(ctx context.Context, ingredient domain.ParsedIngredient, opts MatchOptions) ([]domain.MatchCandidate, error) {
	if ingredient.MainIngredient == "" {
		return nil, domain.ErrInvalidRequest
	}

	products, err := m.searchTiers(ctx, ingredient, opts.MaxPrice)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		m.log.Debugw("no catalog candidates", "ingredient", ingredient.MainIngredient)
		return nil, nil
	}

	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = m.minScore
	}

	candidates := make([]domain.MatchCandidate, 0, len(products))
	for _, product := range products {
		score, reason, exactName := m.scoreProduct(ingredient, product, opts.PreferredBrands)
		m.log.Debugw("scored candidate",
			"ingredient", ingredient.MainIngredient,
			"product", product.Name,
			"score", score,
			"reason", reason)

		if score < minScore {
			continue
		}

		candidates = append(candidates, domain.MatchCandidate{
			Product:     product,
			MatchScore:  score,
			MatchReason: reason,
			Confidence:  confidenceFor(score, exactName, product.Category == ingredient.Category),
			SearchURL:   m.searchURL(ingredient.MainIngredient),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}

	return candidates, nil
}

// searchTiers runs the multi-tier catalog search: substring match on the
// search-term set, then category equality, then individual words.
func (m *Matcher) searchTiers(ctx context.Context, ingredient domain.ParsedIngredient, maxPrice float64) ([]domain.CatalogProduct, error) {
	terms := m.searchTerms(ingredient)

	products, err := m.catalog.FindByTextContains(ctx, terms, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if len(products) > tier1Cap {
		products = products[:tier1Cap]
	}
	if len(products) > 0 {
		return products, nil
	}

	if ingredient.Category != domain.CategoryOther {
		products, err = m.catalog.FindByCategory(ctx, ingredient.Category, maxPrice)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
		}
		if len(products) > tier2Cap {
			products = products[:tier2Cap]
		}
		if len(products) > 0 {
			return products, nil
		}
	}

	words := longWords(ingredient.Cleaned)
	if len(words) == 0 {
		return nil, nil
	}
	products, err = m.catalog.FindByWords(ctx, words, maxPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if len(products) > tier3Cap {
		products = products[:tier3Cap]
	}
	return products, nil
}

// searchTerms builds the deduplicated term set: main ingredient, cleaned
// phrase, and every knowledge-base synonym, filtered to terms longer than
// two characters.
func (m *Matcher) searchTerms(ingredient domain.ParsedIngredient) []string {
	raw := []string{ingredient.MainIngredient, ingredient.Cleaned}
	raw = append(raw, m.kb.Synonyms(ingredient.MainIngredient)...)

	seen := make(map[string]bool, len(raw))
	terms := make([]string, 0, len(raw))
	for _, term := range raw {
		term = strings.ToLower(strings.TrimSpace(term))
		if len([]rune(term)) <= minTermLength || seen[term] {
			continue
		}
		seen[term] = true
		terms = append(terms, term)
	}
	return terms
}

// scoreProduct computes the additive match score, a human-readable trace of
// contributing signals, and whether an exact name match contributed.
func (m *Matcher) scoreProduct(ingredient domain.ParsedIngredient, product domain.CatalogProduct, extraBrands []string) (float64, string, bool) {
	productName := knowledge.Normalize(product.Name)
	mainNorm := knowledge.Normalize(ingredient.MainIngredient)

	var score float64
	var signals []string
	exactName := false

	if strings.Contains(productName, mainNorm) {
		score += exactNameScore
		exactName = true
		signals = append(signals, "exact name")
	} else if m.enableFuzzy {
		if sim := bestTokenSimilarity(mainNorm, productName); sim > fuzzyFloor {
			score += fuzzyNameScoreMax * sim
			signals = append(signals, fmt.Sprintf("fuzzy name %.2f", sim))
		}
	}

	for _, synonym := range m.kb.Synonyms(ingredient.MainIngredient) {
		if strings.Contains(productName, knowledge.Normalize(synonym)) {
			score += synonymScore
			signals = append(signals, "synonym "+synonym)
			break
		}
	}

	for _, modifier := range ingredient.Modifiers {
		if strings.Contains(productName, modifier) {
			score += modifierScore
			signals = append(signals, "modifier "+modifier)
		}
	}

	preferred := append(m.kb.PreferredBrands(ingredient.MainIngredient), extraBrands...)
	if product.Brand != "" {
		brandNorm := knowledge.Normalize(product.Brand)
		for _, brand := range preferred {
			if brandNorm == knowledge.Normalize(brand) {
				score += brandScore
				signals = append(signals, "preferred brand")
				break
			}
		}
	}

	if m.preferredSource != "" && product.Source == m.preferredSource {
		score += sourceScore
		signals = append(signals, "preferred source")
	}

	if product.Category != "" && product.Category == ingredient.Category {
		score += categoryScore
		signals = append(signals, "category")
	}

	if product.PriceCHF < cheapPriceCHF {
		score += cheapScore
		signals = append(signals, "low price")
	}

	if score > maxScore {
		score = maxScore
	}

	return score, strings.Join(signals, " + "), exactName
}

// confidenceFor derives the confidence tier from the score and the signals
// that contributed.
func confidenceFor(score float64, exactName, categoryMatch bool) domain.Confidence {
	switch {
	case score >= highConfidenceMin || exactName:
		return domain.ConfidenceHigh
	case score >= mediumConfidenceMin:
		return domain.ConfidenceMedium
	case score >= mediumWithCategory && categoryMatch:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// searchURL builds a catalog search link; product page URLs from the
// catalog are stale too often to hand out as deep links.
func (m *Matcher) searchURL(term string) string {
	return m.searchBaseURL + url.QueryEscape(term)
}

// bestTokenSimilarity returns the highest normalized edit-distance
// similarity (1 - distance/maxLen) between the needle and any token of the
// product name. Bounded O(n*m) per token pair, only used when no substring
// match exists.
func bestTokenSimilarity(needle, name string) float64 {
	best := 0.0
	for _, token := range strings.Fields(name) {
		maxLen := len([]rune(token))
		if n := len([]rune(needle)); n > maxLen {
			maxLen = n
		}
		if maxLen == 0 {
			continue
		}
		sim := 1.0 - float64(levenshteinDistance(needle, token))/float64(maxLen)
		if sim > best {
			best = sim
		}
	}
	return best
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	// Two rows instead of the full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// longWords splits the cleaned phrase into words longer than two characters.
func longWords(cleaned string) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(cleaned)) {
		if len([]rune(word)) > minTermLength {
			words = append(words, word)
		}
	}
	return words
}
