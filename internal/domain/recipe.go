package domain

// Recipe is the sole entity of the catalog.
// ID is assigned at creation and never changes afterwards.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Image       string   `json:"image"`
}

// Fields holds every mutable attribute of a Recipe.
type Fields struct {
	Title       string
	Description string
	Ingredients []string
	Steps       []string
	Image       string
}

// NewRecipe builds a Recipe with the given id from fields.
func NewRecipe(id string, f Fields) Recipe {
	return Recipe{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		Ingredients: cloneStrings(f.Ingredients),
		Steps:       cloneStrings(f.Steps),
		Image:       f.Image,
	}
}

// Fields returns the mutable attributes of r.
func (r Recipe) Fields() Fields {
	return Fields{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: cloneStrings(r.Ingredients),
		Steps:       cloneStrings(r.Steps),
		Image:       r.Image,
	}
}

// HasImage reports whether the recipe carries an image URL.
func (r Recipe) HasImage() bool {
	return r.Image != ""
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
