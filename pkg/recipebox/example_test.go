package recipebox_test

import (
	"context"
	"fmt"

	"github.com/bft-labs/recipebox/pkg/recipebox"
)

// ExampleNew shows the seed, delete and create cycle on an in-memory catalog.
func ExampleNew() {
	cat, err := recipebox.New(recipebox.Config{Backend: recipebox.BackendMemory})
	if err != nil {
		fmt.Printf("failed to create catalog: %v\n", err)
		return
	}
	defer cat.Close()

	ctx := context.Background()
	cat.SeedIfEmpty(ctx)
	cat.Delete(ctx, "2")

	form := recipebox.Form{
		Title:       "Tea",
		Description: "Hot drink",
		Ingredients: "water\ntea bag\n",
		Steps:       "boil\n\nsteep",
	}
	if errs := form.Validate(); !errs.OK() {
		fmt.Println(errs)
		return
	}
	cat.Create(ctx, form.Fields())

	for _, r := range cat.List(ctx) {
		fmt.Println(r.Title, len(r.Ingredients), len(r.Steps))
	}

	// Output:
	// Spaghetti Carbonara 6 7
	// Vegetable Stir Fry 10 8
	// Tea 2 2
}
