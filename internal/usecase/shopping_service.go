package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/paniermalin/backend/internal/domain"
)

// Provenance multipliers for the savings heuristic: prices from the
// preferred source are assumed current, anything else possibly stale.
const (
	preferredSourceFactor = 1.10
	staleSourceFactor     = 0.95
)

// skipStaples are ingredients most households already stock; they are left
// off the list (and reported as unmatched) unless listed in essentials.
var skipStaples = map[string]bool{
	"sel":     true,
	"poivre":  true,
	"eau":     true,
	"thym":    true,
	"laurier": true,
}

// essentialOverrides always stay on the list even when flagged as staples.
var essentialOverrides = map[string]bool{
	"huile d'olive": true,
}

// ShoppingConfig holds configuration for the shopping list service.
type ShoppingConfig struct {
	MinScore          float64
	FallbackPriceCHF  float64 // sentinel unit price for unmatched fallback items
	SkipCommonStaples bool
	PreferredSource   string
	CacheTTL          time.Duration
}

// ShoppingService orchestrates parsing, matching, quantity calculation and
// consolidation into a final priced shopping list.
type ShoppingService struct {
	parser          *Parser
	matcher         *Matcher
	cache           domain.CacheRepository
	minScore        float64
	fallbackPrice   float64
	skipStaples     bool
	preferredSource string
	cacheTTL        time.Duration
	log             *zap.SugaredLogger
}

// NewShoppingService creates the service with its dependencies.
func NewShoppingService(parser *Parser, matcher *Matcher, cache domain.CacheRepository, cfg ShoppingConfig, log *zap.SugaredLogger) *ShoppingService {
	fallbackPrice := cfg.FallbackPriceCHF
	if fallbackPrice <= 0 {
		fallbackPrice = 3.50
	}
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &ShoppingService{
		parser:          parser,
		matcher:         matcher,
		cache:           cache,
		minScore:        cfg.MinScore,
		fallbackPrice:   fallbackPrice,
		skipStaples:     cfg.SkipCommonStaples,
		preferredSource: cfg.PreferredSource,
		cacheTTL:        cacheTTL,
		log:             log,
	}
}

// ingredientGroup collects every phrase that resolved to the same main
// ingredient; the group size is the meal repetition count.
type ingredientGroup struct {
	parsed  domain.ParsedIngredient
	phrases []string
}

// Generate builds a consolidated shopping list for a week of recipes.
// Every input phrase ends up either in an item's MatchedIngredients or in
// Unmatched; nothing is silently dropped.
func (s *ShoppingService) Generate(ctx context.Context, phrases []string, people int, budget float64) (*domain.ShoppingList, error) {
	if people <= 0 {
		return nil, domain.ErrInvalidPeopleCount
	}

	list := &domain.ShoppingList{Items: []domain.ShoppingListItem{}, Unmatched: []string{}}

	groups, skipped := s.groupPhrases(phrases)
	list.Unmatched = append(list.Unmatched, skipped...)

	var perItemBudget float64
	if budget > 0 && len(groups) > 0 {
		perItemBudget = budget / float64(len(groups))
	}

	for _, group := range groups {
		candidates, err := s.matchGroup(ctx, group.parsed, perItemBudget)
		if err != nil {
			return nil, err
		}

		meals := len(group.phrases)
		amount, unit, err := QuantityFor(group.parsed, people, meals)
		if err != nil {
			return nil, err
		}

		if len(candidates) == 0 {
			s.log.Infow("no acceptable match, adding fallback item",
				"ingredient", group.parsed.MainIngredient)
			list.Items = append(list.Items, s.fallbackItem(group, amount, unit))
			list.Unmatched = append(list.Unmatched, group.phrases...)
			continue
		}

		best := candidates[0]
		list.Items = append(list.Items, domain.ShoppingListItem{
			Product:            best,
			Ingredient:         group.parsed,
			Quantity:           amount,
			Unit:               unit,
			TotalPrice:         round2(best.Product.PriceCHF * amount),
			MatchedIngredients: append([]string(nil), group.phrases...),
		})
	}

	list.Items = consolidate(list.Items)
	list.Unmatched = dedupe(list.Unmatched)
	list.Summary = s.summarize(list.Items)

	return list, nil
}

// groupPhrases parses every phrase and groups them by main ingredient,
// preserving first-seen order. Skipped staples are returned separately so
// the caller can still account for every phrase.
func (s *ShoppingService) groupPhrases(phrases []string) ([]*ingredientGroup, []string) {
	var order []string
	byMain := make(map[string]*ingredientGroup)
	var skipped []string

	for _, phrase := range phrases {
		parsed := s.parser.Parse(phrase)
		main := parsed.MainIngredient

		if s.skipStaples && skipStaples[main] && !essentialOverrides[main] {
			s.log.Debugw("skipping common staple", "ingredient", main)
			skipped = append(skipped, phrase)
			continue
		}

		group, ok := byMain[main]
		if !ok {
			group = &ingredientGroup{parsed: parsed}
			byMain[main] = group
			order = append(order, main)
		}
		group.phrases = append(group.phrases, phrase)
	}

	groups := make([]*ingredientGroup, 0, len(order))
	for _, main := range order {
		groups = append(groups, byMain[main])
	}
	return groups, skipped
}

// matchGroup looks up match candidates, going through the cache first.
// Catalog failures propagate; the caller decides whether to retry.
func (s *ShoppingService) matchGroup(ctx context.Context, parsed domain.ParsedIngredient, maxPrice float64) ([]domain.MatchCandidate, error) {
	key := fmt.Sprintf("match:%s:%.2f:%.2f", parsed.MainIngredient, s.minScore, maxPrice)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		if candidates, ok := cached.([]domain.MatchCandidate); ok {
			s.log.Debugw("match cache hit", "ingredient", parsed.MainIngredient)
			return candidates, nil
		}
	}

	candidates, err := s.matcher.Match(ctx, parsed, MatchOptions{
		MinScore: s.minScore,
		MaxPrice: maxPrice,
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, candidates, s.cacheTTL); err != nil {
		s.log.Warnw("failed to cache match result", "error", err)
	}

	return candidates, nil
}

// fallbackItem synthesizes a line for an ingredient with no acceptable
// match. The original phrase is the display name; the stemmed form is too
// aggressive for display. MatchedIngredients stays empty: the phrases are
// reported in Unmatched instead.
func (s *ShoppingService) fallbackItem(group *ingredientGroup, amount float64, unit string) domain.ShoppingListItem {
	display := group.parsed.Original

	return domain.ShoppingListItem{
		Product: domain.MatchCandidate{
			Product: domain.CatalogProduct{
				ID:       "fallback:" + group.parsed.MainIngredient,
				Name:     display,
				PriceCHF: s.fallbackPrice,
				Category: group.parsed.Category,
				Source:   "fallback",
			},
			MatchScore:  0,
			MatchReason: "no catalog match",
			Confidence:  domain.ConfidenceLow,
			SearchURL:   s.matcher.searchURL(group.parsed.MainIngredient),
		},
		Ingredient: group.parsed,
		Quantity:   amount,
		Unit:       unit,
		TotalPrice: round2(s.fallbackPrice * amount),
	}
}

// consolidate merges items that resolved to the same product id: quantities
// sum and the total price is recomputed from the merged quantity to avoid
// rounding drift.
func consolidate(items []domain.ShoppingListItem) []domain.ShoppingListItem {
	var order []string
	byProduct := make(map[string]*domain.ShoppingListItem)

	for i := range items {
		item := items[i]
		id := item.Product.Product.ID
		existing, ok := byProduct[id]
		if !ok {
			copied := item
			byProduct[id] = &copied
			order = append(order, id)
			continue
		}
		existing.Quantity += item.Quantity
		existing.TotalPrice = round2(existing.Product.Product.PriceCHF * existing.Quantity)
		existing.MatchedIngredients = append(existing.MatchedIngredients, item.MatchedIngredients...)
	}

	merged := make([]domain.ShoppingListItem, 0, len(order))
	for _, id := range order {
		merged = append(merged, *byProduct[id])
	}
	return merged
}

// summarize recomputes totals after consolidation. The savings figure is a
// heuristic comparison against a synthetic standard price derived from the
// provenance tag; it is illustrative, not a guarantee.
func (s *ShoppingService) summarize(items []domain.ShoppingListItem) domain.ShoppingSummary {
	var totalCost, savings float64

	for _, item := range items {
		totalCost += item.TotalPrice

		if item.Product.Product.Source == "fallback" {
			continue
		}
		factor := staleSourceFactor
		if item.Product.Product.Source == s.preferredSource {
			factor = preferredSourceFactor
		}
		standard := item.Product.Product.PriceCHF * factor
		if diff := (standard - item.Product.Product.PriceCHF) * item.Quantity; diff > 0 {
			savings += diff
		}
	}

	return domain.ShoppingSummary{
		TotalItems: len(items),
		TotalCost:  round2(totalCost),
		Savings:    round2(savings),
	}
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}

// round2 rounds to 2 decimals, the catalog's price precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
