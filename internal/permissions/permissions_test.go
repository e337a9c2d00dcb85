package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hearthbook/hearthbook/internal/model"
)

func testFamily() *model.Family {
	return &model.Family{
		ID:   "fam-1",
		Name: "Smiths",
		Members: []model.FamilyMember{
			{ID: "m-1", Name: "Ann", Email: "ann@b.com", Role: model.RoleHead},
			{ID: "m-2", Name: "Jo", Email: "jo@b.com", Role: model.RoleContributor, CookbookAccess: []string{"cb-1"}},
			{ID: "m-3", Name: "Sam", Email: "sam@b.com", Role: model.RoleContributor},
		},
	}
}

func TestRoleOf(t *testing.T) {
	fam := testFamily()

	role, ok := RoleOf(fam, "ann@b.com")
	assert.True(t, ok)
	assert.Equal(t, model.RoleHead, role)

	role, ok = RoleOf(fam, "jo@b.com")
	assert.True(t, ok)
	assert.Equal(t, model.RoleContributor, role)

	_, ok = RoleOf(fam, "stranger@b.com")
	assert.False(t, ok)

	_, ok = RoleOf(nil, "ann@b.com")
	assert.False(t, ok)
}

func TestCanManageFamily(t *testing.T) {
	fam := testFamily()

	assert.True(t, CanManageFamily(fam, "ann@b.com"))
	assert.False(t, CanManageFamily(fam, "jo@b.com"))
	assert.False(t, CanManageFamily(fam, "stranger@b.com"))
	assert.False(t, CanManageFamily(nil, "ann@b.com"))
}

func TestCanAccessCookbook(t *testing.T) {
	fam := testFamily()

	// Heads see every cookbook, even unlisted ones.
	assert.True(t, CanAccessCookbook(fam, "ann@b.com", "cb-1"))
	assert.True(t, CanAccessCookbook(fam, "ann@b.com", "cb-other"))

	// Contributors are limited to their access list.
	assert.True(t, CanAccessCookbook(fam, "jo@b.com", "cb-1"))
	assert.False(t, CanAccessCookbook(fam, "jo@b.com", "cb-2"))
	assert.False(t, CanAccessCookbook(fam, "sam@b.com", "cb-1"))

	assert.False(t, CanAccessCookbook(fam, "stranger@b.com", "cb-1"))
	assert.False(t, CanAccessCookbook(nil, "ann@b.com", "cb-1"))
}

func TestCanEditRecipes(t *testing.T) {
	fam := testFamily()
	cb1 := &model.Cookbook{Settings: model.CookbookSettings{ID: "cb-1"}}
	cb2 := &model.Cookbook{Settings: model.CookbookSettings{ID: "cb-2"}}

	assert.True(t, CanEditRecipes(fam, cb1, "ann@b.com"))
	assert.True(t, CanEditRecipes(fam, cb2, "ann@b.com"))
	assert.True(t, CanEditRecipes(fam, cb1, "jo@b.com"))
	assert.False(t, CanEditRecipes(fam, cb2, "jo@b.com"))
	assert.False(t, CanEditRecipes(fam, cb1, "stranger@b.com"))
	assert.False(t, CanEditRecipes(fam, nil, "ann@b.com"))
	assert.False(t, CanEditRecipes(nil, cb1, "ann@b.com"))
}

func TestCanManageCookbooks(t *testing.T) {
	fam := testFamily()

	assert.True(t, CanManageCookbooks(fam, "ann@b.com"))
	assert.False(t, CanManageCookbooks(fam, "jo@b.com"))
	assert.False(t, CanManageCookbooks(nil, "ann@b.com"))
}
