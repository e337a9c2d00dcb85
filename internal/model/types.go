package model

import "time"

// Theme is the visual theme of a cookbook.
type Theme string

const (
	ThemeWarm    Theme = "warm"
	ThemeCool    Theme = "cool"
	ThemeNeutral Theme = "neutral"
)

// Role is a family member's role.
type Role string

const (
	RoleHead        Role = "head"
	RoleContributor Role = "contributor"
)

// Ingredient is a value type with no identity; it lives only inside a
// recipe's ordered ingredient list.
type Ingredient struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Item     string `json:"item"`
}

// Recipe is owned by exactly one cookbook; its ID is assigned at creation
// and immutable thereafter.
type Recipe struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Backstory        string       `json:"backstory"`
	PrepTime         int          `json:"prepTime"`
	CookTime         int          `json:"cookTime"`
	Ingredients      []Ingredient `json:"ingredients"`
	Steps            []string     `json:"steps"`
	Notes            string       `json:"notes"`
	PrimaryImage     string       `json:"primaryImage"`
	AdditionalImages []string     `json:"additionalImages"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// CookbookSettings carries the stable identity of a cookbook across renames.
type CookbookSettings struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Theme      Theme  `json:"theme"`
	Subtitle   string `json:"subtitle"`
	CoverImage string `json:"coverImage"`
}

// Cookbook is a settings block plus an ordered recipe list.
// Identity is Settings.ID.
type Cookbook struct {
	Settings CookbookSettings `json:"settings"`
	Recipes  []Recipe         `json:"recipes"`
}

// FamilyMember belongs to exactly one family. CookbookAccess is meaningful
// only for contributors; heads implicitly have access to every cookbook.
type FamilyMember struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Role           Role     `json:"role"`
	CookbookAccess []string `json:"cookbookAccess"`
}

// Family is the aggregate root for members. The Cookbooks list is
// denormalized and unused by the current mutation paths; it is kept for
// wire compatibility with stored documents.
type Family struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Members   []FamilyMember `json:"members"`
	Cookbooks []Cookbook     `json:"cookbooks"`
	CreatedAt time.Time      `json:"createdAt"`
}

// FamilyInvite is consumed when accepted. Expiry is advisory data only;
// no sweep enforces it.
type FamilyInvite struct {
	ID        string    `json:"id"`
	FamilyID  string    `json:"familyId"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// User is an account that can sign in. PasswordHash and Salt never leave
// the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecipePatch is a field-level partial update. Nil fields keep their prior
// values; slice fields replace the stored slice wholesale.
type RecipePatch struct {
	Title            *string       `json:"title,omitempty"`
	Description      *string       `json:"description,omitempty"`
	Backstory        *string       `json:"backstory,omitempty"`
	PrepTime         *int          `json:"prepTime,omitempty"`
	CookTime         *int          `json:"cookTime,omitempty"`
	Ingredients      *[]Ingredient `json:"ingredients,omitempty"`
	Steps            *[]string     `json:"steps,omitempty"`
	Notes            *string       `json:"notes,omitempty"`
	PrimaryImage     *string       `json:"primaryImage,omitempty"`
	AdditionalImages *[]string     `json:"additionalImages,omitempty"`
}

// FamilyPatch is a shallow partial update of a family.
type FamilyPatch struct {
	Name *string `json:"name,omitempty"`
}

// MemberPatch is a shallow partial update of a family member.
type MemberPatch struct {
	Name           *string   `json:"name,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Role           *Role     `json:"role,omitempty"`
	CookbookAccess *[]string `json:"cookbookAccess,omitempty"`
}

// ValidTheme reports whether t is one of the known cookbook themes.
func ValidTheme(t Theme) bool {
	switch t {
	case ThemeWarm, ThemeCool, ThemeNeutral:
		return true
	}
	return false
}

// ValidRole reports whether r is a known family role.
func ValidRole(r Role) bool {
	return r == RoleHead || r == RoleContributor
}
