package domain

// Collection is the ordered set of recipes. Insertion order is preserved and
// no sort is ever applied.
type Collection []Recipe

// Len returns the number of recipes.
func (c Collection) Len() int {
	return len(c)
}

// Empty returns true if the collection has no recipes.
func (c Collection) Empty() bool {
	return len(c) == 0
}

// Find returns the first recipe with the given id.
func (c Collection) Find(id string) (Recipe, bool) {
	for _, r := range c {
		if r.ID == id {
			return r, true
		}
	}
	return Recipe{}, false
}

// Contains reports whether a recipe with the given id exists.
func (c Collection) Contains(id string) bool {
	_, ok := c.Find(id)
	return ok
}

// Append returns a new collection with r added at the end.
func (c Collection) Append(r Recipe) Collection {
	out := make(Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, r)
}

// Replace returns a new collection in which the record matching id carries
// fields f. The id and the position of every record are unchanged.
// The second result is false if nothing matched.
func (c Collection) Replace(id string, f Fields) (Collection, bool) {
	out := make(Collection, len(c))
	copy(out, c)
	matched := false
	for i, r := range out {
		if r.ID == id {
			out[i] = NewRecipe(id, f)
			matched = true
		}
	}
	return out, matched
}

// Remove returns a new collection without any record matching id, and the
// number of records removed.
func (c Collection) Remove(id string) (Collection, int) {
	out := make(Collection, 0, len(c))
	for _, r := range c {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out, len(c) - len(out)
}

// IDs returns the ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, r := range c {
		ids[i] = r.ID
	}
	return ids
}
