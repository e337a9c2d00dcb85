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

// FamilyHandler provides HTTP transport for family, member, and invite
// operations.
type FamilyHandler struct {
	families *services.FamilyService
}

func NewFamilyHandler(svc *services.FamilyService) *FamilyHandler {
	return &FamilyHandler{families: svc}
}

// ListFamilies GET /api/families
func (h *FamilyHandler) ListFamilies(w http.ResponseWriter, r *http.Request) {
	list, err := h.families.ListFamilies(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"families": list, "count": len(list)})
}

// CreateFamily POST /api/families
func (h *FamilyHandler) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name         string `json:"name"`
		CreatorEmail string `json:"creatorEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Required("name", req.Name); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := validate.Email(req.CreatorEmail); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	fam, err := h.families.CreateFamily(r.Context(), req.Name, req.CreatorEmail)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, fam)
}

// GetCurrentFamily GET /api/families/current
func (h *FamilyHandler) GetCurrentFamily(w http.ResponseWriter, r *http.Request) {
	fam, err := h.families.CurrentFamily(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if fam == nil {
		respond.WriteNotFound(w, "no family is active")
		return
	}
	respond.WriteJSON(w, http.StatusOK, fam)
}

// GetFamily GET /api/families/{familyId}
func (h *FamilyHandler) GetFamily(w http.ResponseWriter, r *http.Request) {
	fam, err := h.families.GetFamily(r.Context(), mux.Vars(r)["familyId"])
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, fam)
}

// UpdateFamily PATCH /api/families/{familyId}
func (h *FamilyHandler) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	var patch model.FamilyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	fam, err := h.families.UpdateFamily(r.Context(), mux.Vars(r)["familyId"], patch)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, fam)
}

// AddMember POST /api/families/{familyId}/members
func (h *FamilyHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req model.FamilyMember
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Email(req.Email); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := validate.Role(req.Role); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	m, err := h.families.AddMember(r.Context(), mux.Vars(r)["familyId"], req)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, m)
}

// UpdateMember PATCH /api/families/{familyId}/members/{memberId}
func (h *FamilyHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var patch model.MemberPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if patch.Role != nil {
		if err := validate.Role(*patch.Role); err != nil {
			respond.WriteDomainError(w, err)
			return
		}
	}
	m, err := h.families.UpdateMember(r.Context(), vars["familyId"], vars["memberId"], patch)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}

// RemoveMember DELETE /api/families/{familyId}/members/{memberId}
func (h *FamilyHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.families.RemoveMember(r.Context(), vars["familyId"], vars["memberId"]); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListInvites GET /api/invites
func (h *FamilyHandler) ListInvites(w http.ResponseWriter, r *http.Request) {
	list, err := h.families.ListInvites(r.Context())
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"invites": list, "count": len(list)})
}

// CreateInvite POST /api/families/{familyId}/invites
func (h *FamilyHandler) CreateInvite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string     `json:"email"`
		Role  model.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Email(req.Email); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := validate.Role(req.Role); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	inv, err := h.families.CreateInvite(r.Context(), mux.Vars(r)["familyId"], req.Email, req.Role)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, inv)
}

// AcceptInvite POST /api/invites/{inviteId}/accept
func (h *FamilyHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
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
	m, err := h.families.AcceptInvite(r.Context(), mux.Vars(r)["inviteId"], req.Name)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, m)
}
