package model

import "github.com/google/uuid"

// DefaultCookbookID is the fallback id the current-cookbook pointer resolves
// to before any selection has been made. It does not necessarily name an
// existing cookbook; resolution self-heals to the first cookbook in that case.
const DefaultCookbookID = "default"

// DefaultSettings returns the settings a fresh cookbook starts from.
func DefaultSettings() CookbookSettings {
	return CookbookSettings{
		ID:         DefaultCookbookID,
		Name:       "Our Family Cookbook",
		Theme:      ThemeWarm,
		Subtitle:   "Preserving our family's culinary heritage, one recipe at a time",
		CoverImage: "https://images.unsplash.com/photo-1495521821757-a1efb6729352?q=80&w=2062&auto=format&fit=crop",
	}
}

// NewCookbook builds a cookbook from the defaults with a freshly generated
// id and an empty recipe list. Non-zero fields of override replace the
// corresponding defaults; the generated id wins unless override carries one.
func NewCookbook(override CookbookSettings) Cookbook {
	s := DefaultSettings()
	s.ID = uuid.New().String()
	if override.ID != "" {
		s.ID = override.ID
	}
	if override.Name != "" {
		s.Name = override.Name
	}
	if override.Theme != "" {
		s.Theme = override.Theme
	}
	if override.Subtitle != "" {
		s.Subtitle = override.Subtitle
	}
	if override.CoverImage != "" {
		s.CoverImage = override.CoverImage
	}
	return Cookbook{Settings: s, Recipes: []Recipe{}}
}
