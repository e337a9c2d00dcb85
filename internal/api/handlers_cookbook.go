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

// CookbookHandler provides HTTP transport for cookbook operations.
type CookbookHandler struct {
	cookbooks *services.CookbookService
}

func NewCookbookHandler(svc *services.CookbookService) *CookbookHandler {
	return &CookbookHandler{cookbooks: svc}
}

// ListCookbooks GET /api/cookbooks
func (h *CookbookHandler) ListCookbooks(w http.ResponseWriter, r *http.Request) {
	list, err := h.cookbooks.ListCookbooks(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"cookbooks": list, "count": len(list)})
}

// CreateCookbook POST /api/cookbooks
func (h *CookbookHandler) CreateCookbook(w http.ResponseWriter, r *http.Request) {
	var req model.CookbookSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Theme(req.Theme); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	cb, err := h.cookbooks.CreateCookbook(r.Context(), req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, cb)
}

// GetCookbook GET /api/cookbooks/{cookbookId}
func (h *CookbookHandler) GetCookbook(w http.ResponseWriter, r *http.Request) {
	cb, err := h.cookbooks.GetCookbook(r.Context(), mux.Vars(r)["cookbookId"])
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, cb)
}

// SaveCookbook PUT /api/cookbooks/{cookbookId}
func (h *CookbookHandler) SaveCookbook(w http.ResponseWriter, r *http.Request) {
	var req model.Cookbook
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	req.Settings.ID = mux.Vars(r)["cookbookId"]
	if err := validate.Theme(req.Settings.Theme); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := h.cookbooks.SaveCookbook(r.Context(), req); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, req)
}

// DeleteCookbook DELETE /api/cookbooks/{cookbookId}
func (h *CookbookHandler) DeleteCookbook(w http.ResponseWriter, r *http.Request) {
	if err := h.cookbooks.DeleteCookbook(r.Context(), mux.Vars(r)["cookbookId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DuplicateCookbook POST /api/cookbooks/{cookbookId}/duplicate
func (h *CookbookHandler) DuplicateCookbook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Required("name", req.Name); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	cb, err := h.cookbooks.DuplicateCookbook(r.Context(), mux.Vars(r)["cookbookId"], req.Name)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, cb)
}

// GetCurrentCookbook GET /api/cookbooks/current
func (h *CookbookHandler) GetCurrentCookbook(w http.ResponseWriter, r *http.Request) {
	cb, err := h.cookbooks.CurrentCookbook(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, cb)
}

// SetCurrentCookbook PUT /api/cookbooks/current
func (h *CookbookHandler) SetCurrentCookbook(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Required("id", req.ID); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	// The pointer write is unconditional; a dangling id self-heals on read.
	if err := h.cookbooks.SetCurrentCookbookID(r.Context(), req.ID); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
