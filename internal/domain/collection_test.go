package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() Collection {
	return Collection{
		{ID: "1", Title: "one", Ingredients: []string{"a"}, Steps: []string{"x"}},
		{ID: "2", Title: "two", Ingredients: []string{"b"}, Steps: []string{"y"}},
		{ID: "3", Title: "three", Ingredients: []string{"c"}, Steps: []string{"z"}},
	}
}

func TestCollectionRemove(t *testing.T) {
	c := sample()

	out, n := c.Remove("2")
	if n != 1 {
		t.Fatalf("removed %d, want 1", n)
	}
	if diff := cmp.Diff([]string{"1", "3"}, out.IDs()); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if c.Len() != 3 {
		t.Errorf("receiver modified: len = %d", c.Len())
	}

	out, n = c.Remove("missing")
	if n != 0 {
		t.Errorf("removed %d for missing id, want 0", n)
	}
	if diff := cmp.Diff(c, out); diff != "" {
		t.Errorf("collection changed on missing id (-want +got):\n%s", diff)
	}
}

func TestCollectionReplace(t *testing.T) {
	c := sample()
	f := Fields{Title: "TWO", Description: "d", Ingredients: []string{"q"}, Steps: []string{"r"}, Image: "http://img"}

	out, ok := c.Replace("2", f)
	if !ok {
		t.Fatal("Replace() matched nothing")
	}
	want := Collection{c[0], NewRecipe("2", f), c[2]}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("Replace() mismatch (-want +got):\n%s", diff)
	}
	if c[1].Title != "two" {
		t.Errorf("receiver modified: %q", c[1].Title)
	}

	if _, ok := c.Replace("9", f); ok {
		t.Error("Replace() matched missing id")
	}
}

func TestCollectionAppendAndFind(t *testing.T) {
	c := sample()
	out := c.Append(Recipe{ID: "4", Title: "four"})

	if out.Len() != 4 || c.Len() != 3 {
		t.Fatalf("len = %d/%d, want 4/3", out.Len(), c.Len())
	}
	r, ok := out.Find("4")
	if !ok || r.Title != "four" {
		t.Errorf("Find(4) = %+v, %v", r, ok)
	}
	if out.Contains("5") {
		t.Error("Contains(5) = true")
	}
	if !Collection(nil).Empty() {
		t.Error("nil collection not empty")
	}
}
