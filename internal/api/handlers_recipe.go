package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthbook/hearthbook/internal/api/respond"
	"github.com/hearthbook/hearthbook/internal/api/validate"
	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/services"
)

// RecipeHandler provides HTTP transport for recipe operations. Recipe
// routes are scoped to the current cookbook: the handler resolves the
// selection once and passes the explicit cookbook id into the service.
type RecipeHandler struct {
	recipes   *services.RecipeService
	cookbooks *services.CookbookService
}

func NewRecipeHandler(recipes *services.RecipeService, cookbooks *services.CookbookService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, cookbooks: cookbooks}
}

func (h *RecipeHandler) currentCookbookID(r *http.Request) (string, error) {
	cb, err := h.cookbooks.CurrentCookbook(r.Context())
	if err != nil {
		return "", err
	}
	return cb.Settings.ID, nil
}

// ListRecipes GET /api/cookbooks/current/recipes[?q=]
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	cbID, err := h.currentCookbookID(r)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	list, err := h.recipes.SearchRecipes(r.Context(), cbID, r.URL.Query().Get("q"))
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if list == nil {
		list = []model.Recipe{}
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"recipes": list, "count": len(list)})
}

// CreateRecipe POST /api/cookbooks/current/recipes
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	cbID, err := h.currentCookbookID(r)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	var req model.Recipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Recipe(req); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	recipe, err := h.recipes.CreateRecipe(r.Context(), cbID, req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, recipe)
}

// GetRecipe GET /api/cookbooks/current/recipes/{recipeId}
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	cbID, err := h.currentCookbookID(r)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	recipe, err := h.recipes.GetRecipe(r.Context(), cbID, mux.Vars(r)["recipeId"])
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, recipe)
}

// UpdateRecipe PATCH /api/cookbooks/current/recipes/{recipeId}
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	cbID, err := h.currentCookbookID(r)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	var patch model.RecipePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.RecipePatch(patch); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	recipe, err := h.recipes.UpdateRecipe(r.Context(), cbID, mux.Vars(r)["recipeId"], patch)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, recipe)
}

// DeleteRecipe DELETE /api/cookbooks/current/recipes/{recipeId}
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	cbID, err := h.currentCookbookID(r)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := h.recipes.DeleteRecipe(r.Context(), cbID, mux.Vars(r)["recipeId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ResetRecipes DELETE /api/cookbooks/current/recipes
func (h *RecipeHandler) ResetRecipes(w http.ResponseWriter, r *http.Request) {
	cbID, err := h.currentCookbookID(r)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := h.recipes.ResetRecipes(r.Context(), cbID); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
