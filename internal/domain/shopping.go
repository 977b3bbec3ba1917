package domain

// ShoppingListItem is one line of the final list. MatchedIngredients holds
// every original phrase consolidated into this line. Invariant:
// TotalPrice == Product.Product.PriceCHF * Quantity, rounded to 2 decimals.
type ShoppingListItem struct {
	Product            MatchCandidate   `json:"product"`
	Ingredient         ParsedIngredient `json:"ingredient"`
	Quantity           float64          `json:"quantity"`
	Unit               string           `json:"unit"`
	TotalPrice         float64          `json:"totalPrice"`
	MatchedIngredients []string         `json:"matchedIngredients"`
}

// ShoppingSummary aggregates the list after consolidation.
type ShoppingSummary struct {
	TotalItems int     `json:"totalItems"`
	TotalCost  float64 `json:"totalCost"`
	Savings    float64 `json:"savings"`
}

// ShoppingList is the engine's final output. Items are deduplicated by
// product id; Unmatched lists original phrases with no acceptable match.
type ShoppingList struct {
	Items     []ShoppingListItem `json:"items"`
	Unmatched []string           `json:"unmatched"`
	Summary   ShoppingSummary    `json:"summary"`
}
