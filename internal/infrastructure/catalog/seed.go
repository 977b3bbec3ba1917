package catalog

import (
	"context"

	"github.com/paniermalin/backend/internal/domain"
)

// starterProducts is a small bundled dataset so a fresh install answers
// queries before any catalog import has run. Prices in CHF.
var starterProducts = []domain.CatalogProduct{
	{ID: "p-0001", Name: "spaghetti barilla n.5", Label: "Spaghetti Barilla N°5 500g", Brand: "Barilla", PriceCHF: 2.20, Unit: "500g", Category: domain.CategoryPasta, Source: "api"},
	{ID: "p-0002", Name: "penne m-classic", Label: "Penne M-Classic 500g", Brand: "M-Classic", PriceCHF: 1.50, Unit: "500g", Category: domain.CategoryPasta, Source: "api"},
	{ID: "p-0003", Name: "lasagnes barilla", Label: "Lasagnes à l'œuf Barilla 500g", Brand: "Barilla", PriceCHF: 3.40, Unit: "500g", Category: domain.CategoryPasta, Source: "scrape"},
	{ID: "p-0010", Name: "riz basmati uncle ben's", Label: "Riz Basmati Uncle Ben's 1kg", Brand: "Uncle Ben's", PriceCHF: 4.95, Unit: "1kg", Category: domain.CategoryRice, Source: "api"},
	{ID: "p-0011", Name: "riz long m-classic", Label: "Riz long grain M-Classic 1kg", Brand: "M-Classic", PriceCHF: 2.60, Unit: "1kg", Category: domain.CategoryRice, Source: "scrape"},

	{ID: "p-0020", Name: "blanc de poulet optigal", Label: "Blanc de poulet Optigal 2 pièces", Brand: "Optigal", PriceCHF: 8.50, Unit: "400g", Category: domain.CategoryMeat, Source: "api"},
	{ID: "p-0021", Name: "viande hachee de boeuf", Label: "Viande hachée de bœuf 500g", Brand: "TerraSuisse", PriceCHF: 9.80, Unit: "500g", Category: domain.CategoryMeat, Source: "api"},
	{ID: "p-0022", Name: "lardons fumes", Label: "Lardons fumés 2x100g", Brand: "Malbuner", PriceCHF: 3.95, Unit: "200g", Category: domain.CategoryMeat, Source: "scrape"},
	{ID: "p-0030", Name: "filet de saumon", Label: "Filet de saumon d'élevage 260g", Brand: "Pelican", PriceCHF: 11.95, Unit: "260g", Category: domain.CategoryFish, Source: "api"},
	{ID: "p-0031", Name: "thon rose en boite", Label: "Thon rosé à l'huile 3x155g", Brand: "M-Classic", PriceCHF: 4.80, Unit: "465g", Category: domain.CategoryFish, Source: "scrape"},

	{ID: "p-0040", Name: "tomates grappe", Label: "Tomates en grappe 500g", PriceCHF: 2.95, Unit: "500g", Category: domain.CategoryVegetables, Source: "api"},
	{ID: "p-0041", Name: "tomates cerises bio", Label: "Tomates cerises Bio 250g", Brand: "Migros Bio", PriceCHF: 3.50, Unit: "250g", Category: domain.CategoryVegetables, Source: "api"},
	{ID: "p-0042", Name: "ail", Label: "Ail 3 têtes", PriceCHF: 1.95, Unit: "3 pièces", Category: domain.CategoryVegetables, Source: "api"},
	{ID: "p-0043", Name: "oignons jaunes", Label: "Oignons jaunes 1kg", PriceCHF: 2.10, Unit: "1kg", Category: domain.CategoryVegetables, Source: "scrape"},
	{ID: "p-0044", Name: "carottes", Label: "Carottes 1kg", PriceCHF: 1.80, Unit: "1kg", Category: domain.CategoryVegetables, Source: "api"},
	{ID: "p-0045", Name: "courgettes", Label: "Courgettes 500g", PriceCHF: 2.40, Unit: "500g", Category: domain.CategoryVegetables, Source: "api"},
	{ID: "p-0046", Name: "champignons de paris", Label: "Champignons de Paris 250g", PriceCHF: 2.50, Unit: "250g", Category: domain.CategoryVegetables, Source: "scrape"},
	{ID: "p-0047", Name: "pommes de terre fermes", Label: "Pommes de terre à chair ferme 1.5kg", PriceCHF: 3.30, Unit: "1.5kg", Category: domain.CategoryVegetables, Source: "api"},

	{ID: "p-0050", Name: "citrons", Label: "Citrons 500g", PriceCHF: 2.20, Unit: "500g", Category: domain.CategoryFruit, Source: "api"},
	{ID: "p-0051", Name: "pommes gala", Label: "Pommes Gala 1kg", PriceCHF: 3.60, Unit: "1kg", Category: domain.CategoryFruit, Source: "api"},
	{ID: "p-0052", Name: "bananes", Label: "Bananes 1kg", PriceCHF: 2.60, Unit: "1kg", Category: domain.CategoryFruit, Source: "scrape"},

	{ID: "p-0060", Name: "lait entier valflora", Label: "Lait entier UHT Valflora 1L", Brand: "Valflora", PriceCHF: 1.65, Unit: "1l", Category: domain.CategoryDairy, Source: "api"},
	{ID: "p-0061", Name: "beurre floralp", Label: "Beurre de choix Floralp 200g", Brand: "Floralp", PriceCHF: 3.20, Unit: "200g", Category: domain.CategoryDairy, Source: "api"},
	{ID: "p-0062", Name: "creme entiere", Label: "Crème entière UHT 250ml", Brand: "Valflora", PriceCHF: 2.35, Unit: "250ml", Category: domain.CategoryDairy, Source: "scrape"},
	{ID: "p-0063", Name: "gruyere rape", Label: "Gruyère AOP râpé 120g", Brand: "Le Gruyère AOP", PriceCHF: 3.90, Unit: "120g", Category: domain.CategoryDairy, Source: "api"},
	{ID: "p-0064", Name: "oeufs suisses", Label: "Œufs suisses d'élevage au sol 6 pièces", Brand: "Coop Naturafarm", PriceCHF: 3.75, Unit: "6 pièces", Category: domain.CategoryDairy, Source: "api"},
	{ID: "p-0065", Name: "yogourt nature", Label: "Yogourt nature 180g", PriceCHF: 0.65, Unit: "180g", Category: domain.CategoryDairy, Source: "scrape"},

	{ID: "p-0070", Name: "farine blanche", Label: "Farine blanche 1kg", PriceCHF: 1.40, Unit: "1kg", Category: domain.CategoryPantry, Source: "api"},
	{ID: "p-0071", Name: "sucre fin", Label: "Sucre fin cristallisé 1kg", PriceCHF: 1.20, Unit: "1kg", Category: domain.CategoryPantry, Source: "api"},
	{ID: "p-0072", Name: "huile d'olive monini", Label: "Huile d'olive extra vierge Monini 500ml", Brand: "Monini", PriceCHF: 8.95, Unit: "500ml", Category: domain.CategoryPantry, Source: "api"},
	{ID: "p-0073", Name: "concentre de tomates", Label: "Concentré de tomates 140g", PriceCHF: 1.10, Unit: "140g", Category: domain.CategoryPantry, Source: "scrape"},
	{ID: "p-0074", Name: "bouillon de legumes", Label: "Bouillon de légumes 8 cubes", Brand: "Knorr", PriceCHF: 2.80, Unit: "8 cubes", Category: domain.CategoryPantry, Source: "api"},
	{ID: "p-0075", Name: "chocolat noir cailler", Label: "Chocolat noir 64% Cailler 100g", Brand: "Cailler", PriceCHF: 2.95, Unit: "100g", Category: domain.CategoryPantry, Source: "api"},

	{ID: "p-0080", Name: "basilic frais", Label: "Basilic frais en pot", PriceCHF: 3.50, Unit: "pot", Category: domain.CategoryHerbs, Source: "api"},
	{ID: "p-0081", Name: "persil plat", Label: "Persil plat botte", PriceCHF: 2.20, Unit: "botte", Category: domain.CategoryHerbs, Source: "scrape"},

	{ID: "p-0090", Name: "pain mi-blanc", Label: "Pain mi-blanc 500g", PriceCHF: 2.50, Unit: "500g", Category: domain.CategoryBakery, Source: "api"},
	{ID: "p-0091", Name: "pate feuilletee", Label: "Pâte feuilletée abaissée 270g", PriceCHF: 2.75, Unit: "270g", Category: domain.CategoryBakery, Source: "api"},

	{ID: "p-0100", Name: "amandes moulues", Label: "Amandes moulues 200g", PriceCHF: 3.40, Unit: "200g", Category: domain.CategoryNuts, Source: "scrape"},
}

// SeedIfEmpty loads the starter dataset into an empty catalog.
func (s *Store) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if err := s.Upsert(ctx, starterProducts); err != nil {
		return 0, err
	}
	return len(starterProducts), nil
}
