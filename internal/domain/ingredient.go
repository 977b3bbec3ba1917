package domain

// Ingredient categories shared by the knowledge base, the classifier and the
// quantity calculator. "autres" is the uncategorized fallback.
const (
	CategoryPasta      = "pasta"
	CategoryRice       = "rice"
	CategoryMeat       = "meat"
	CategoryFish       = "fish"
	CategoryVegetables = "vegetables"
	CategoryFruit      = "fruit"
	CategoryDairy      = "dairy"
	CategoryPantry     = "pantry"
	CategoryHerbs      = "herbs"
	CategoryBakery     = "bakery"
	CategoryNuts       = "nuts"
	CategoryOther      = "autres"
)

// ParsedIngredient is the structured form of a raw recipe ingredient phrase.
// Quantity == 0 and Unit == "" mean no quantity/unit was found in the phrase.
// MainIngredient is never empty: it falls back to Cleaned, then to Original.
type ParsedIngredient struct {
	Original       string   `json:"original"`
	Cleaned        string   `json:"cleaned"`
	MainIngredient string   `json:"mainIngredient"`
	Quantity       float64  `json:"quantity,omitempty"`
	Unit           string   `json:"unit,omitempty"`
	Modifiers      []string `json:"modifiers,omitempty"`
	Category       string   `json:"category"`
}

// KnowledgeEntry describes one canonical ingredient in the static knowledge
// base: its accepted synonyms, category, brands to prefer when matching, and
// optional unit-conversion hints (e.g. "botte" -> grams).
type KnowledgeEntry struct {
	Synonyms        []string
	Category        string
	PreferredBrands []string
	UnitConversions map[string]float64
}
