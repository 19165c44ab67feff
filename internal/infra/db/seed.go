package db

import (
	"context"
	"fmt"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/pricing"
	repo "restaurant/internal/repository"
)

type seedItem struct {
	id          string
	category    string
	name        string
	description string
	price       string
	popular     bool
	tags        []string
}

// 店の固定メニュー（価格はドル表記）
var menuSeed = []seedItem{
	{"1", "breakfast", "Classic Breakfast Plate", "Two eggs any style, bacon or sausage, hash browns, and toast", "12.99", true, []string{"gluten-free-option"}},
	{"2", "breakfast", "Fluffy Pancakes with Bacon", "Three fluffy pancakes served with crispy bacon and maple syrup", "11.99", false, []string{"vegetarian-option"}},
	{"3", "breakfast", "Avocado Toast", "Smashed avocado on sourdough with cherry tomatoes and feta", "9.99", true, []string{"vegetarian", "healthy"}},
	{"4", "breakfast", "Breakfast Burrito", "Scrambled eggs, cheese, peppers, onions, and salsa in a flour tortilla", "10.99", false, []string{"spicy"}},
	{"5", "breakfast", "French Toast", "Thick-cut brioche French toast with berries and whipped cream", "10.99", true, []string{"vegetarian"}},
	{"6", "breakfast", "Omelette Special", "Three-egg omelette with your choice of cheese, vegetables, and meat", "13.99", false, []string{"gluten-free", "customizable"}},

	{"7", "lunch", "Gourmet Burger", "Angus beef patty with lettuce, tomato, onion, and special sauce", "15.99", true, []string{"gluten-free-bun-option"}},
	{"8", "lunch", "Caesar Salad", "Crisp romaine lettuce with parmesan, croutons, and Caesar dressing", "11.99", true, []string{"vegetarian", "healthy"}},
	{"9", "lunch", "Grilled Chicken Sandwich", "Marinated grilled chicken breast with avocado and chipotle mayo", "14.99", false, []string{"healthy", "protein-rich"}},
	{"10", "lunch", "Pasta Primavera", "Fresh vegetables tossed with penne pasta in a light cream sauce", "13.99", true, []string{"vegetarian"}},
	{"11", "lunch", "Fish and Chips", "Beer-battered cod with crispy fries and tartar sauce", "16.99", false, []string{"seafood"}},
	{"12", "lunch", "Margherita Pizza", "Fresh mozzarella, tomato sauce, and basil on thin crust", "14.99", true, []string{"vegetarian"}},

	{"13", "coffee", "Espresso", "Rich and bold single shot of premium espresso", "2.99", true, []string{"vegan", "caffeine"}},
	{"14", "coffee", "Cappuccino", "Espresso with steamed milk and a thick layer of foam", "4.99", true, []string{"vegetarian", "caffeine"}},
	{"15", "coffee", "Latte", "Smooth espresso with steamed milk and light foam", "5.49", true, []string{"vegetarian", "caffeine"}},
	{"16", "coffee", "Americano", "Espresso shots with hot water for a clean, strong taste", "3.99", false, []string{"vegan", "caffeine"}},
	{"17", "coffee", "Mocha", "Espresso with chocolate syrup, steamed milk, and whipped cream", "5.99", true, []string{"vegetarian", "sweet", "caffeine"}},
	{"18", "coffee", "Cold Brew", "Smooth, cold-steeped coffee served over ice", "4.49", false, []string{"vegan", "caffeine", "cold"}},

	{"19", "tea", "Earl Grey", "Classic black tea with bergamot oil and citrus notes", "3.99", true, []string{"vegan", "caffeine"}},
	{"20", "tea", "Green Tea", "Light and refreshing green tea with antioxidants", "3.49", true, []string{"vegan", "healthy", "caffeine"}},
	{"21", "tea", "Chamomile", "Soothing herbal tea perfect for relaxation", "3.99", false, []string{"vegan", "caffeine-free", "herbal"}},
	{"22", "tea", "Jasmine Tea", "Fragrant green tea scented with jasmine flowers", "4.49", false, []string{"vegan", "floral", "caffeine"}},
	{"23", "tea", "Peppermint Tea", "Refreshing herbal tea with cooling peppermint leaves", "3.49", true, []string{"vegan", "caffeine-free", "herbal"}},
	{"24", "tea", "Oolong Tea", "Traditional Chinese tea with complex flavor profile", "4.99", false, []string{"vegan", "traditional", "caffeine"}},

	{"25", "beers", "IPA", "Hoppy India Pale Ale with citrus and pine notes", "6.99", true, []string{"alcoholic", "hoppy"}},
	{"26", "beers", "Wheat Beer", "Light and refreshing wheat beer with smooth finish", "5.99", true, []string{"alcoholic", "light"}},
	{"27", "beers", "Stout", "Rich and creamy dark beer with coffee and chocolate notes", "7.49", false, []string{"alcoholic", "dark", "rich"}},
	{"28", "beers", "Lager", "Crisp and clean lager beer, perfect for any occasion", "5.49", true, []string{"alcoholic", "crisp"}},
	{"29", "beers", "Porter", "Dark beer with roasted malt flavors and smooth texture", "6.99", false, []string{"alcoholic", "dark", "roasted"}},
	{"30", "beers", "Pilsner", "Golden beer with floral hops and crisp finish", "5.99", true, []string{"alcoholic", "golden", "crisp"}},
}

// MenuSeed は初期メニューをモデルに変換して返す。
func MenuSeed() ([]model.MenuItem, error) {
	out := make([]model.MenuItem, 0, len(menuSeed))
	for _, s := range menuSeed {
		cents, err := pricing.ParseAmount(s.price)
		if err != nil {
			return nil, fmt.Errorf("menu seed %s: %w", s.id, err)
		}
		if !model.IsMenuCategory(s.category) {
			return nil, fmt.Errorf("menu seed %s: unknown category %q", s.id, s.category)
		}
		out = append(out, model.MenuItem{
			ID:          s.id,
			Category:    s.category,
			Name:        s.name,
			Description: s.description,
			Price:       cents,
			Popular:     s.popular,
			Tags:        append([]string(nil), s.tags...),
			IsActive:    true,
		})
	}
	return out, nil
}

// SeedMenu は初期メニューを投入する（何度呼んでもよい）。
func SeedMenu(ctx context.Context, menus repo.MenuRepository) error {
	items, err := MenuSeed()
	if err != nil {
		return err
	}
	return menus.UpsertMany(ctx, items)
}
