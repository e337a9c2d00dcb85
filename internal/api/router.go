package api

import (
	"github.com/gorilla/mux"

	"github.com/hearthbook/hearthbook/internal/api/recovery"
	"github.com/hearthbook/hearthbook/internal/kv"
	"github.com/hearthbook/hearthbook/internal/services"
	"github.com/hearthbook/hearthbook/internal/store"
)

// NewRouter wires all API routes to handlers.
func NewRouter(st store.Store, rawKV kv.KV) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	cookbookSvc := services.NewCookbookService(st)
	recipeSvc := services.NewRecipeService(st)
	familySvc := services.NewFamilyService(st)
	authSvc := services.NewAuthService(st, familySvc)

	healthHandler := NewHealthHandler(rawKV)
	cookbookHandler := NewCookbookHandler(cookbookSvc)
	recipeHandler := NewRecipeHandler(recipeSvc, cookbookSvc)
	familyHandler := NewFamilyHandler(familySvc)
	authHandler := NewAuthHandler(authSvc)
	permissionsHandler := NewPermissionsHandler(familySvc, cookbookSvc)

	// Health
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	// Auth
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.HandleFunc("/api/auth/invites/{inviteId}/accept", authHandler.AcceptInvite).Methods("POST")

	// Current selection routes are registered before the id-parameterized
	// ones so "current" never binds as a cookbook id.
	router.HandleFunc("/api/cookbooks/current", cookbookHandler.GetCurrentCookbook).Methods("GET")
	router.HandleFunc("/api/cookbooks/current", cookbookHandler.SetCurrentCookbook).Methods("PUT")
	router.HandleFunc("/api/cookbooks/current/recipes", recipeHandler.ListRecipes).Methods("GET")
	router.HandleFunc("/api/cookbooks/current/recipes", recipeHandler.CreateRecipe).Methods("POST")
	router.HandleFunc("/api/cookbooks/current/recipes", recipeHandler.ResetRecipes).Methods("DELETE")
	router.HandleFunc("/api/cookbooks/current/recipes/{recipeId}", recipeHandler.GetRecipe).Methods("GET")
	router.HandleFunc("/api/cookbooks/current/recipes/{recipeId}", recipeHandler.UpdateRecipe).Methods("PATCH")
	router.HandleFunc("/api/cookbooks/current/recipes/{recipeId}", recipeHandler.DeleteRecipe).Methods("DELETE")

	// Cookbooks
	router.HandleFunc("/api/cookbooks", cookbookHandler.ListCookbooks).Methods("GET")
	router.HandleFunc("/api/cookbooks", cookbookHandler.CreateCookbook).Methods("POST")
	router.HandleFunc("/api/cookbooks/{cookbookId}", cookbookHandler.GetCookbook).Methods("GET")
	router.HandleFunc("/api/cookbooks/{cookbookId}", cookbookHandler.SaveCookbook).Methods("PUT")
	router.HandleFunc("/api/cookbooks/{cookbookId}", cookbookHandler.DeleteCookbook).Methods("DELETE")
	router.HandleFunc("/api/cookbooks/{cookbookId}/duplicate", cookbookHandler.DuplicateCookbook).Methods("POST")

	// Families and members
	router.HandleFunc("/api/families", familyHandler.ListFamilies).Methods("GET")
	router.HandleFunc("/api/families", familyHandler.CreateFamily).Methods("POST")
	router.HandleFunc("/api/families/current", familyHandler.GetCurrentFamily).Methods("GET")
	router.HandleFunc("/api/families/{familyId}", familyHandler.GetFamily).Methods("GET")
	router.HandleFunc("/api/families/{familyId}", familyHandler.UpdateFamily).Methods("PATCH")
	router.HandleFunc("/api/families/{familyId}/members", familyHandler.AddMember).Methods("POST")
	router.HandleFunc("/api/families/{familyId}/members/{memberId}", familyHandler.UpdateMember).Methods("PATCH")
	router.HandleFunc("/api/families/{familyId}/members/{memberId}", familyHandler.RemoveMember).Methods("DELETE")

	// Invites
	router.HandleFunc("/api/invites", familyHandler.ListInvites).Methods("GET")
	router.HandleFunc("/api/families/{familyId}/invites", familyHandler.CreateInvite).Methods("POST")
	router.HandleFunc("/api/invites/{inviteId}/accept", familyHandler.AcceptInvite).Methods("POST")

	// Permissions
	router.HandleFunc("/api/permissions", permissionsHandler.Evaluate).Methods("GET")

	return router
}
