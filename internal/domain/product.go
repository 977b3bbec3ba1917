package domain

// CatalogProduct is a purchasable product as exposed by the catalog store.
// The engine reads these, it never mutates them.
type CatalogProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Label    string  `json:"label,omitempty"` // display label, often richer than Name
	Brand    string  `json:"brand,omitempty"`
	PriceCHF float64 `json:"priceChf"`
	Unit     string  `json:"unit,omitempty"`
	Category string  `json:"category,omitempty"`
	Source   string  `json:"source"` // provenance tag, e.g. "api", "scrape"
	ImageURL string  `json:"imageUrl,omitempty"`
}

// Confidence summarizes how trustworthy a match is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchCandidate wraps a catalog product with the score and signals that
// produced it. SearchURL is a constructed catalog search link; product page
// URLs from the catalog are never trusted as deep links.
type MatchCandidate struct {
	Product     CatalogProduct `json:"product"`
	MatchScore  float64        `json:"matchScore"`
	MatchReason string         `json:"matchReason"`
	Confidence  Confidence     `json:"confidence"`
	SearchURL   string         `json:"searchUrl"`
}
