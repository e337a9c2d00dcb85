// Package permissions answers yes/no access questions as pure functions of
// (family, cookbook, identity email). The identity is always passed in
// explicitly; nothing here reads ambient state.
package permissions

import "github.com/hearthbook/hearthbook/internal/model"

// RoleOf looks the member up in the family by email. An absent family or an
// absent match means no role.
func RoleOf(fam *model.Family, email string) (model.Role, bool) {
	if fam == nil {
		return "", false
	}
	for i := range fam.Members {
		if fam.Members[i].Email == email {
			return fam.Members[i].Role, true
		}
	}
	return "", false
}

// CanManageFamily is true iff the identity is a head of the family.
func CanManageFamily(fam *model.Family, email string) bool {
	role, ok := RoleOf(fam, email)
	return ok && role == model.RoleHead
}

// CanAccessCookbook is true for heads unconditionally; contributors need
// the cookbook id in their access list.
func CanAccessCookbook(fam *model.Family, email, cookbookID string) bool {
	if fam == nil {
		return false
	}
	var member *model.FamilyMember
	for i := range fam.Members {
		if fam.Members[i].Email == email {
			member = &fam.Members[i]
			break
		}
	}
	if member == nil {
		return false
	}
	if member.Role == model.RoleHead {
		return true
	}
	for _, id := range member.CookbookAccess {
		if id == cookbookID {
			return true
		}
	}
	return false
}

// CanEditRecipes requires a role and a selected cookbook; heads always may,
// contributors delegate to CanAccessCookbook for that cookbook.
func CanEditRecipes(fam *model.Family, cb *model.Cookbook, email string) bool {
	role, ok := RoleOf(fam, email)
	if !ok || cb == nil {
		return false
	}
	if role == model.RoleHead {
		return true
	}
	return CanAccessCookbook(fam, email, cb.Settings.ID)
}

// CanManageCookbooks is identical to CanManageFamily.
func CanManageCookbooks(fam *model.Family, email string) bool {
	return CanManageFamily(fam, email)
}
