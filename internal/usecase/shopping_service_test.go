package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/paniermalin/backend/internal/domain"
	"github.com/paniermalin/backend/internal/knowledge"
)

type fakeCache struct {
	store map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]interface{})}
}

func (c *fakeCache) Get(_ context.Context, key string) (interface{}, error) {
	if v, ok := c.store[key]; ok {
		return v, nil
	}
	return nil, domain.ErrCacheMiss
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.store[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.store[key]
	return ok, nil
}

func newTestShoppingService(catalog domain.Catalog) *ShoppingService {
	kb := knowledge.New()
	log := zap.NewNop().Sugar()
	parser := NewParser(kb)
	matcher := NewMatcher(catalog, kb, MatcherConfig{
		MinScore:        0.5,
		PreferredSource: "api",
		SearchBaseURL:   "https://shop.example/search?q=",
		EnableFuzzy:     true,
	}, log)
	return NewShoppingService(parser, matcher, newFakeCache(), ShoppingConfig{
		MinScore:          0.5,
		SkipCommonStaples: true,
		PreferredSource:   "api",
	}, log)
}

func testProducts() []domain.CatalogProduct {
	return []domain.CatalogProduct{
		{ID: "prod-tomate", Name: "Tomates grappe", PriceCHF: 2.95, Category: domain.CategoryVegetables, Source: "api"},
		{ID: "prod-spag", Name: "Spaghetti Barilla", Brand: "Barilla", PriceCHF: 2.20, Category: domain.CategoryPasta, Source: "api"},
		{ID: "prod-poulet", Name: "Blanc de poulet Optigal", Brand: "Optigal", PriceCHF: 8.50, Category: domain.CategoryMeat, Source: "scrape"},
	}
}

func TestShoppingService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a consolidated priced list", func(t *testing.T) {
		catalog := &fakeCatalog{products: testProducts()}
		svc := newTestShoppingService(catalog)

		phrases := []string{
			"2 tomates",
			"3 tomates cerises",
			"500g de spaghetti",
			"sel",
			"lapin sauvage",
		}
		list, err := svc.Generate(ctx, phrases, 2, 0)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(list.Items) != 3 {
			t.Fatalf("len(Items) = %d, want 3 (tomate, spaghetti, fallback)", len(list.Items))
		}

		tomate := list.Items[0]
		if tomate.Product.Product.ID != "prod-tomate" {
			t.Errorf("item 0 product = %q, want prod-tomate", tomate.Product.Product.ID)
		}
		// two tomato phrases: one group, two meals, 2 people: 4 pieces
		if tomate.Quantity != 4 || tomate.Unit != "pièce(s)" {
			t.Errorf("tomate quantity = %v %s, want 4 pièce(s)", tomate.Quantity, tomate.Unit)
		}
		if math.Abs(tomate.TotalPrice-11.80) > 0.005 {
			t.Errorf("tomate TotalPrice = %v, want 11.80", tomate.TotalPrice)
		}
		if len(tomate.MatchedIngredients) != 2 {
			t.Errorf("tomate MatchedIngredients = %v, want both phrases", tomate.MatchedIngredients)
		}

		spag := list.Items[1]
		if spag.Product.Product.ID != "prod-spag" {
			t.Errorf("item 1 product = %q, want prod-spag", spag.Product.Product.ID)
		}
		if spag.Quantity != 1 || spag.Unit != "paquet(s)" {
			t.Errorf("spaghetti quantity = %v %s, want 1 paquet(s)", spag.Quantity, spag.Unit)
		}

		lapin := list.Items[2]
		if lapin.Product.Product.Source != "fallback" {
			t.Errorf("item 2 source = %q, want fallback", lapin.Product.Product.Source)
		}
		if lapin.Product.Product.Name != "lapin sauvage" {
			t.Errorf("fallback name = %q, want the original phrase", lapin.Product.Product.Name)
		}
		if lapin.Product.Confidence != domain.ConfidenceLow {
			t.Errorf("fallback confidence = %q, want low", lapin.Product.Confidence)
		}
		if len(lapin.MatchedIngredients) != 0 {
			t.Errorf("fallback MatchedIngredients = %v, want empty", lapin.MatchedIngredients)
		}

		wantUnmatched := []string{"sel", "lapin sauvage"}
		if len(list.Unmatched) != len(wantUnmatched) {
			t.Fatalf("Unmatched = %v, want %v", list.Unmatched, wantUnmatched)
		}
		for i, phrase := range wantUnmatched {
			if list.Unmatched[i] != phrase {
				t.Errorf("Unmatched[%d] = %q, want %q", i, list.Unmatched[i], phrase)
			}
		}

		if list.Summary.TotalItems != 3 {
			t.Errorf("TotalItems = %d, want 3", list.Summary.TotalItems)
		}
		// 11.80 + 2.20 + (1 kg fallback at 3.50)
		if math.Abs(list.Summary.TotalCost-17.50) > 0.005 {
			t.Errorf("TotalCost = %v, want 17.50", list.Summary.TotalCost)
		}
		// preferred-source items assumed 10% under the standard price;
		// the fallback item contributes nothing
		if math.Abs(list.Summary.Savings-1.40) > 0.005 {
			t.Errorf("Savings = %v, want 1.40", list.Summary.Savings)
		}
	})

	t.Run("every phrase lands in matched or unmatched exactly once", func(t *testing.T) {
		catalog := &fakeCatalog{products: testProducts()}
		svc := newTestShoppingService(catalog)

		phrases := []string{
			"2 tomates",
			"3 tomates cerises",
			"500g de spaghetti",
			"sel",
			"poivre",
			"lapin sauvage",
			"600g de blanc de poulet",
		}
		list, err := svc.Generate(ctx, phrases, 3, 0)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		counts := make(map[string]int)
		for _, item := range list.Items {
			for _, phrase := range item.MatchedIngredients {
				counts[phrase]++
			}
		}
		for _, phrase := range list.Unmatched {
			counts[phrase]++
		}

		for _, phrase := range phrases {
			if counts[phrase] != 1 {
				t.Errorf("phrase %q accounted for %d times, want exactly once", phrase, counts[phrase])
			}
		}
	})

	t.Run("second generation is served from cache", func(t *testing.T) {
		catalog := &fakeCatalog{products: testProducts()}
		svc := newTestShoppingService(catalog)

		phrases := []string{"tomates", "500g de spaghetti", "lapin sauvage"}
		if _, err := svc.Generate(ctx, phrases, 2, 0); err != nil {
			t.Fatalf("first Generate() error = %v", err)
		}
		textCalls := catalog.textCalls

		if _, err := svc.Generate(ctx, phrases, 2, 0); err != nil {
			t.Fatalf("second Generate() error = %v", err)
		}
		if catalog.textCalls != textCalls {
			t.Errorf("textCalls grew from %d to %d, want cache hits", textCalls, catalog.textCalls)
		}
	})

	t.Run("budget excludes products above the per-item share", func(t *testing.T) {
		catalog := &fakeCatalog{products: []domain.CatalogProduct{
			{ID: "prod-tomate", Name: "Tomates anciennes", PriceCHF: 6.00, Category: domain.CategoryVegetables, Source: "api"},
			{ID: "prod-spag", Name: "Spaghetti Barilla", Brand: "Barilla", PriceCHF: 2.20, Category: domain.CategoryPasta, Source: "api"},
		}}
		svc := newTestShoppingService(catalog)

		// two groups, budget 10: 5.00 per item, pricing out the tomatoes
		list, err := svc.Generate(ctx, []string{"tomates", "500g de spaghetti"}, 2, 10)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		var tomato *domain.ShoppingListItem
		for i := range list.Items {
			if list.Items[i].Ingredient.MainIngredient == "tomate" {
				tomato = &list.Items[i]
			}
		}
		if tomato == nil {
			t.Fatal("no tomato item in list")
		}
		if tomato.Product.Product.Source != "fallback" {
			t.Errorf("tomato source = %q, want fallback when priced out", tomato.Product.Product.Source)
		}
	})

	t.Run("essential staples stay on the list", func(t *testing.T) {
		catalog := &fakeCatalog{}
		svc := newTestShoppingService(catalog)

		list, err := svc.Generate(ctx, []string{"2 c.à.s d'huile d'olive", "poivre"}, 2, 0)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}

		if len(list.Items) != 1 {
			t.Fatalf("len(Items) = %d, want 1: huile d'olive must not be skipped", len(list.Items))
		}
		if list.Items[0].Ingredient.MainIngredient != "huile d'olive" {
			t.Errorf("item = %q, want huile d'olive", list.Items[0].Ingredient.MainIngredient)
		}
		if list.Items[0].Quantity != 1 {
			t.Errorf("quantity = %v, want 1 (pantry staple)", list.Items[0].Quantity)
		}
	})

	t.Run("rejects non-positive people count", func(t *testing.T) {
		svc := newTestShoppingService(&fakeCatalog{})

		_, err := svc.Generate(ctx, []string{"tomates"}, 0, 0)
		if !errors.Is(err, domain.ErrInvalidPeopleCount) {
			t.Errorf("error = %v, want ErrInvalidPeopleCount", err)
		}
	})

	t.Run("catalog failure aborts generation", func(t *testing.T) {
		svc := newTestShoppingService(&fakeCatalog{err: errors.New("locked")})

		_, err := svc.Generate(ctx, []string{"tomates"}, 2, 0)
		if !errors.Is(err, domain.ErrCatalogUnavailable) {
			t.Errorf("error = %v, want ErrCatalogUnavailable", err)
		}
	})
}

func TestConsolidate(t *testing.T) {
	price := 2.50
	item := func(id string, qty float64, phrases ...string) domain.ShoppingListItem {
		return domain.ShoppingListItem{
			Product: domain.MatchCandidate{
				Product: domain.CatalogProduct{ID: id, PriceCHF: price},
			},
			Quantity:           qty,
			TotalPrice:         round2(price * qty),
			MatchedIngredients: phrases,
		}
	}

	merged := consolidate([]domain.ShoppingListItem{
		item("a", 2, "200g de penne"),
		item("b", 1, "riz basmati"),
		item("a", 3, "pates completes"),
	})

	if len(merged) != 2 {
		t.Fatalf("len(merged) = %d, want 2", len(merged))
	}
	if merged[0].Product.Product.ID != "a" || merged[1].Product.Product.ID != "b" {
		t.Errorf("order = %q, %q; want first-seen order a, b", merged[0].Product.Product.ID, merged[1].Product.Product.ID)
	}
	if merged[0].Quantity != 5 {
		t.Errorf("merged quantity = %v, want 5", merged[0].Quantity)
	}
	// recomputed from the merged quantity, not summed from the parts
	if merged[0].TotalPrice != 12.50 {
		t.Errorf("merged TotalPrice = %v, want 12.50", merged[0].TotalPrice)
	}
	if len(merged[0].MatchedIngredients) != 2 {
		t.Errorf("merged MatchedIngredients = %v, want both phrases", merged[0].MatchedIngredients)
	}
}
