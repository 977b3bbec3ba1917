package usecase

import (
	"math"

	"github.com/paniermalin/backend/internal/domain"
)

// quantityRule describes how much of one canonical ingredient to buy per
// person per meal, and in what display unit. A pantry staple is bought once
// whatever the household size or meal count.
type quantityRule struct {
	gramsPerPerson  float64 // grams per person per meal
	packageGrams    float64 // package size when sold in packages; 0 means sold by kg
	piecesPerPerson float64 // pieces per person per meal
	unit            string
	pantryStaple    bool
}

// quantityRules is the fixed per-ingredient rule table, keyed by canonical
// ingredient. Category defaults apply when an ingredient has no entry.
var quantityRules = map[string]quantityRule{
	"pates":     {gramsPerPerson: 100, packageGrams: 500, unit: "paquet(s)"},
	"spaghetti": {gramsPerPerson: 100, packageGrams: 500, unit: "paquet(s)"},
	"lasagnes":  {gramsPerPerson: 100, packageGrams: 500, unit: "paquet(s)"},
	"riz":       {gramsPerPerson: 80, packageGrams: 1000, unit: "paquet(s)"},
	"quinoa":    {gramsPerPerson: 80, packageGrams: 500, unit: "paquet(s)"},

	"poulet":    {gramsPerPerson: 150, unit: "kg"},
	"boeuf":     {gramsPerPerson: 150, unit: "kg"},
	"porc":      {gramsPerPerson: 150, unit: "kg"},
	"agneau":    {gramsPerPerson: 150, unit: "kg"},
	"saumon":    {gramsPerPerson: 150, unit: "kg"},
	"cabillaud": {gramsPerPerson: 150, unit: "kg"},

	"oeuf": {piecesPerPerson: 2, unit: "pièce(s)"},

	"lait": {gramsPerPerson: 250, packageGrams: 1000, unit: "litre(s)"},

	"huile":         {unit: "unité(s)", pantryStaple: true},
	"huile d'olive": {unit: "unité(s)", pantryStaple: true},
	"sel":           {unit: "unité(s)", pantryStaple: true},
	"poivre":        {unit: "unité(s)", pantryStaple: true},
	"farine":        {unit: "unité(s)", pantryStaple: true},
	"sucre":         {unit: "unité(s)", pantryStaple: true},
	"vinaigre":      {unit: "unité(s)", pantryStaple: true},
	"moutarde":      {unit: "unité(s)", pantryStaple: true},
}

// QuantityFor computes the purchase quantity and display unit for an
// ingredient, a household size, and a weekly meal repetition count.
// All quantities round up: under-buying is the worse failure mode for a
// shopping list.
func QuantityFor(ingredient domain.ParsedIngredient, people, meals int) (float64, string, error) {
	if people <= 0 {
		return 0, "", domain.ErrInvalidPeopleCount
	}
	if meals <= 0 {
		return 0, "", domain.ErrInvalidMealCount
	}

	if rule, ok := quantityRules[ingredient.MainIngredient]; ok {
		return applyRule(rule, people, meals), rule.unit, nil
	}

	if amount, unit, ok := categoryDefault(ingredient.Category, people, meals); ok {
		return amount, unit, nil
	}

	unit := ingredient.Unit
	if unit == "" {
		unit = "unité(s)"
	}
	return genericCount(people, meals), unit, nil
}

// applyRule evaluates a per-ingredient rule.
func applyRule(rule quantityRule, people, meals int) float64 {
	if rule.pantryStaple {
		return 1
	}
	if rule.piecesPerPerson > 0 {
		return math.Ceil(rule.piecesPerPerson * float64(people) * float64(meals))
	}
	needGrams := rule.gramsPerPerson * float64(people) * float64(meals)
	if rule.packageGrams > 0 {
		return math.Ceil(needGrams / rule.packageGrams)
	}
	return math.Ceil(needGrams / 1000) // sold by kg
}

// categoryDefault evaluates the category-level fallback rules.
func categoryDefault(category string, people, meals int) (float64, string, bool) {
	p := float64(people)
	m := float64(meals)

	switch category {
	case domain.CategoryPasta, domain.CategoryRice:
		return math.Ceil(p * m / 4), "paquet(s)", true
	case domain.CategoryMeat, domain.CategoryFish:
		return math.Ceil(p * 0.15 * m), "kg", true
	case domain.CategoryVegetables, domain.CategoryFruit:
		return p * m, "pièce(s)", true
	case domain.CategoryDairy, domain.CategoryBakery, domain.CategoryOther:
		return genericCount(people, meals), "unité(s)", true
	}
	return 0, "", false
}

// genericCount is the last-resort quantity: one unit per four people,
// repeated per meal.
func genericCount(people, meals int) float64 {
	return math.Ceil(float64(people)/4) * float64(meals)
}
