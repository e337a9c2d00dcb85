package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hearthbook/hearthbook/internal/api/respond"
	"github.com/hearthbook/hearthbook/internal/api/validate"
	"github.com/hearthbook/hearthbook/internal/services"
)

// AuthHandler provides HTTP transport for the mock sign-in flow.
type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: svc}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Email(req.Email); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := validate.Required("password", req.Password); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	u, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	u, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}

// AcceptInvite POST /api/auth/invites/{inviteId}/accept
// Creates the invitee's account and joins them to the family in one step.
func (h *AuthHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	if err := validate.Required("name", req.Name); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	if err := validate.Required("password", req.Password); err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	u, err := h.auth.AcceptInviteWithAccount(r.Context(), mux.Vars(r)["inviteId"], req.Name, req.Password)
	if err != nil {
		respond.WriteDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, u)
}
