package domain

import "strings"

// Validation messages shown next to the offending field.
const (
	MsgTitleRequired       = "Recipe title is required"
	MsgDescriptionRequired = "Description is required"
	MsgIngredientsRequired = "At least one ingredient is required"
	MsgStepsRequired       = "At least one step is required"
)

// Form is recipe input as typed by a user: ingredients and steps are
// newline-separated text.
type Form struct {
	Title       string
	Description string
	Ingredients string
	Steps       string
	Image       string
}

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// OK returns true if there are no errors.
func (e FieldErrors) OK() bool {
	return len(e) == 0
}

// FormFromRecipe renders r into editable text.
func FormFromRecipe(r Recipe) Form {
	return Form{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: JoinLines(r.Ingredients),
		Steps:       JoinLines(r.Steps),
		Image:       r.Image,
	}
}

// Validate performs the presence checks. Only whitespace counts as empty.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Title) == "" {
		errs["title"] = MsgTitleRequired
	}
	if strings.TrimSpace(f.Description) == "" {
		errs["description"] = MsgDescriptionRequired
	}
	if strings.TrimSpace(f.Ingredients) == "" {
		errs["ingredients"] = MsgIngredientsRequired
	}
	if strings.TrimSpace(f.Steps) == "" {
		errs["steps"] = MsgStepsRequired
	}
	return errs
}

// Fields parses the form. Title, description and image are kept verbatim.
func (f Form) Fields() Fields {
	return Fields{
		Title:       f.Title,
		Description: f.Description,
		Ingredients: ParseLines(f.Ingredients),
		Steps:       ParseLines(f.Steps),
		Image:       f.Image,
	}
}

// ParseLines splits text on newlines, trims each line and drops the empty
// ones. Order is preserved and the result is never nil.
func ParseLines(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

// JoinLines is the inverse of ParseLines for already-clean items.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}
