package usecase

import (
	"strings"

	"github.com/paniermalin/backend/internal/domain"
	"github.com/paniermalin/backend/internal/knowledge"
)

// categoryFamily associates a category with the keywords that signal it.
// Families are evaluated in order; vegetables before fruit so that
// "pomme de terre" never classifies as fruit via "pomme".
type categoryFamily struct {
	category string
	keywords []string
}

var categoryFamilies = []categoryFamily{
	{domain.CategoryPasta, []string{"pates", "spaghetti", "penne", "fusilli", "macaroni", "tagliatelle", "nouilles", "lasagne", "ravioli", "tortellini", "gnocchi"}},
	{domain.CategoryRice, []string{"riz", "risotto", "quinoa", "boulgour", "semoule", "couscous"}},
	{domain.CategoryFish, []string{"poisson", "saumon", "thon", "cabillaud", "truite", "crevette", "gambas", "moule", "sardine", "maquereau", "dorade", "colin"}},
	{domain.CategoryMeat, []string{"poulet", "boeuf", "bœuf", "porc", "veau", "agneau", "viande", "saucisse", "jambon", "lardon", "dinde", "canard", "lapin", "steak", "escalope", "filet mignon"}},
	{domain.CategoryHerbs, []string{"basilic", "persil", "menthe", "coriandre", "thym", "romarin", "laurier", "estragon", "aneth", "sauge", "ciboulette", "herbe", "epice", "curry", "paprika", "cumin", "gingembre"}},
	{domain.CategoryBakery, []string{"pain", "baguette", "brioche", "croissant", "pate feuilletee", "pate brisee", "tarte", "pizza"}},
	{domain.CategoryNuts, []string{"noix", "amande", "noisette", "pistache", "cacahuete", "pignon"}},
	{domain.CategoryDairy, []string{"lait", "fromage", "creme", "beurre", "yaourt", "yogourt", "oeuf", "œuf", "mascarpone", "ricotta", "mozzarella", "parmesan", "gruyere", "emmental"}},
	{domain.CategoryVegetables, []string{"pomme de terre", "patate", "tomate", "carotte", "oignon", "ail", "echalote", "courgette", "courge", "aubergine", "poivron", "champignon", "salade", "laitue", "epinard", "brocoli", "chou", "haricot", "poireau", "concombre", "celeri", "navet", "radis", "fenouil", "mais", "petit pois", "legume"}},
	{domain.CategoryFruit, []string{"pomme", "banane", "orange", "citron", "fraise", "framboise", "poire", "peche", "abricot", "raisin", "mangue", "ananas", "kiwi", "melon", "avocat", "fruit"}},
	{domain.CategoryPantry, []string{"huile", "sel", "poivre", "sucre", "farine", "vinaigre", "moutarde", "sauce", "bouillon", "concentre", "conserve", "lentille", "pois chiche", "chocolat", "miel", "levure"}},
}

// Classify assigns a category from keyword families when the knowledge base
// has no entry for the ingredient. Returns "autres" when nothing matches.
func Classify(cleaned string) string {
	normalized := knowledge.Normalize(cleaned)
	if normalized == "" {
		return domain.CategoryOther
	}

	for _, family := range categoryFamilies {
		for _, keyword := range family.keywords {
			if strings.Contains(normalized, keyword) {
				return family.category
			}
		}
	}

	return domain.CategoryOther
}
