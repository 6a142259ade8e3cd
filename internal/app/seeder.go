package app

import (
	"context"

	"github.com/bft-labs/recipebox/internal/domain"
	"github.com/bft-labs/recipebox/pkg/log"
)

// Seeder fills an empty store with sample recipes.
type Seeder struct {
	store   *Store
	samples func() domain.Collection
}

// NewSeeder creates a Seeder writing SampleRecipes.
func NewSeeder(store *Store) *Seeder {
	return &Seeder{store: store, samples: SampleRecipes}
}

// SeedIfEmpty writes the samples when the loaded collection has no
// recipes, and reports whether it did. The guard is the collection being
// empty, so repeated calls never duplicate data. A corrupt blob loads as
// empty and is replaced; an unreadable medium is left alone.
func (s *Seeder) SeedIfEmpty(ctx context.Context) bool {
	res := s.store.LoadAll(ctx)
	if res.Status == LoadUnavailable || !res.Recipes.Empty() {
		return false
	}
	samples := s.samples()
	if !s.store.SaveAll(ctx, samples).OK() {
		return false
	}
	s.store.logger.Info("seeded sample recipes", log.Int("count", samples.Len()), log.String("previous", res.Status.String()))
	return true
}

// SampleRecipes returns the demo collection for first-time users.
func SampleRecipes() domain.Collection {
	return domain.Collection{
		{
			ID:          "1",
			Title:       "Spaghetti Carbonara",
			Description: "Classic Italian pasta dish with eggs, cheese, and pancetta",
			Ingredients: []string{
				"400g spaghetti",
				"200g pancetta or guanciale",
				"4 large eggs",
				"100g Pecorino Romano cheese",
				"Black pepper to taste",
				"Salt for pasta water",
			},
			Steps: []string{
				"Bring a large pot of salted water to boil",
				"Cut pancetta into small cubes and fry until crispy",
				"Cook spaghetti in boiling water until al dente",
				"Whisk eggs with grated cheese in a bowl",
				"Drain pasta and mix with hot pancetta and fat",
				"Remove from heat and add egg mixture, stirring quickly",
				"Season with black pepper and serve immediately",
			},
			Image: "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=400",
		},
		{
			ID:          "2",
			Title:       "Chocolate Chip Cookies",
			Description: "Soft and chewy cookies loaded with chocolate chips",
			Ingredients: []string{
				"2 1/4 cups all-purpose flour",
				"1 tsp baking soda",
				"1 tsp salt",
				"1 cup butter, softened",
				"3/4 cup granulated sugar",
				"3/4 cup packed brown sugar",
				"2 large eggs",
				"2 tsp vanilla extract",
				"2 cups chocolate chips",
			},
			Steps: []string{
				"Preheat oven to 375°F (190°C)",
				"Mix flour, baking soda, and salt in a small bowl",
				"Beat butter and sugars until creamy",
				"Add eggs and vanilla to butter mixture and beat well",
				"Gradually blend in flour mixture",
				"Stir in chocolate chips",
				"Drop rounded tablespoons onto baking sheets",
				"Bake for 9-11 minutes until golden brown",
				"Cool on baking sheets for 2 minutes, then transfer to wire racks",
			},
			Image: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=400",
		},
		{
			ID:          "3",
			Title:       "Vegetable Stir Fry",
			Description: "Quick and healthy Asian-inspired vegetable dish",
			Ingredients: []string{
				"2 tbsp vegetable oil",
				"3 cloves garlic, minced",
				"1 onion, sliced",
				"2 cups broccoli florets",
				"1 red bell pepper, sliced",
				"1 cup snap peas",
				"2 carrots, julienned",
				"3 tbsp soy sauce",
				"1 tbsp ginger, minced",
				"Sesame oil for finishing",
			},
			Steps: []string{
				"Heat oil in a large wok or skillet over high heat",
				"Add garlic and ginger, stir-fry for 30 seconds",
				"Add onions and carrots, stir-fry for 2 minutes",
				"Add broccoli and bell pepper, continue stir-frying",
				"Add snap peas and stir-fry for another 2 minutes",
				"Pour soy sauce and toss everything together",
				"Cook until vegetables are tender-crisp, about 1-2 minutes",
				"Drizzle with sesame oil and serve immediately over rice",
			},
			Image: "https://images.unsplash.com/photo-1609501676725-7186f017a4b7?w=400",
		},
	}
}
