package api

import (
	"net/http"

	"github.com/hearthbook/hearthbook/internal/api/respond"
	"github.com/hearthbook/hearthbook/internal/api/validate"
	"github.com/hearthbook/hearthbook/internal/permissions"
	"github.com/hearthbook/hearthbook/internal/services"
)

// PermissionsHandler evaluates access questions for an explicit identity
// against the current family and cookbook selection.
type PermissionsHandler struct {
	families  *services.FamilyService
	cookbooks *services.CookbookService
}

func NewPermissionsHandler(families *services.FamilyService, cookbooks *services.CookbookService) *PermissionsHandler {
	return &PermissionsHandler{families: families, cookbooks: cookbooks}
}

// Evaluate GET /api/permissions?email=&cookbookId=
// cookbookId defaults to the current cookbook.
func (h *PermissionsHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if err := validate.Email(email); err != nil {
		respond.WriteDomainError(w, err)
		return
	}

	fam, err := h.families.CurrentFamily(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	cb, err := h.cookbooks.CurrentCookbook(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}

	cookbookID := r.URL.Query().Get("cookbookId")
	if cookbookID == "" {
		cookbookID = cb.Settings.ID
	}

	role, hasRole := permissions.RoleOf(fam, email)
	out := map[string]interface{}{
		"role":               nil,
		"canManageFamily":    permissions.CanManageFamily(fam, email),
		"canManageCookbooks": permissions.CanManageCookbooks(fam, email),
		"canAccessCookbook":  permissions.CanAccessCookbook(fam, email, cookbookID),
		"canEditRecipes":     permissions.CanEditRecipes(fam, cb, email),
	}
	if hasRole {
		out["role"] = role
	}
	respond.WriteJSON(w, http.StatusOK, out)
}
