package main

import (
	"fmt"
	"io"

	"github.com/bft-labs/recipebox/pkg/recipebox"
)

func renderList(w io.Writer, recipes recipebox.Collection) {
	fmt.Fprintln(w, "All Recipes")
	fmt.Fprintln(w, "Explore our collection of delicious recipes")
	fmt.Fprintln(w)
	if recipes.Empty() {
		fmt.Fprintln(w, "No recipes yet. Create your first recipe!")
		return
	}
	for _, r := range recipes {
		fmt.Fprintf(w, "[%s] %s\n", r.ID, r.Title)
		fmt.Fprintf(w, "    %s\n", r.Description)
	}
}

func renderDetail(w io.Writer, r recipebox.Recipe) {
	fmt.Fprintln(w, r.Title)
	fmt.Fprintln(w, r.Description)
	if r.HasImage() {
		fmt.Fprintf(w, "Image: %s\n", r.Image)
	}
	fmt.Fprintf(w, "ID: %s\n", r.ID)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ingredients")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Instructions")
	for i, step := range r.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
