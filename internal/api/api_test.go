package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kvmem "github.com/hearthbook/hearthbook/internal/kv/memory"
	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store/kvjson"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	k := kvmem.New()
	st := kvjson.New(k, zerolog.Nop())
	srv := httptest.NewServer(NewRouter(st, k))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp.StatusCode, out
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	code, body := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body["status"])
}

func TestCookbookEndpoints(t *testing.T) {
	srv := newTestServer(t)

	// A fresh install lists the seeded default cookbook.
	code, body := doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["count"])

	code, created := doJSON(t, http.MethodPost, srv.URL+"/api/cookbooks", map[string]interface{}{
		"name":  "Holiday Baking",
		"theme": "cool",
	})
	require.Equal(t, http.StatusCreated, code)
	settings := created["settings"].(map[string]interface{})
	newID := settings["id"].(string)
	require.NotEmpty(t, newID)
	assert.Equal(t, "Holiday Baking", settings["name"])

	code, got := doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/"+newID, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, newID, got["settings"].(map[string]interface{})["id"])

	code, _ = doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, code)

	// Invalid theme is rejected.
	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cookbooks", map[string]interface{}{
		"name":  "Bad",
		"theme": "neon",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// Duplicate produces an independent copy under a new id.
	code, dup := doJSON(t, http.MethodPost, srv.URL+"/api/cookbooks/"+newID+"/duplicate", map[string]interface{}{
		"name": "Holiday Baking Copy",
	})
	require.Equal(t, http.StatusCreated, code)
	dupID := dup["settings"].(map[string]interface{})["id"].(string)
	assert.NotEqual(t, newID, dupID)

	// Selection.
	code, _ = doJSON(t, http.MethodPut, srv.URL+"/api/cookbooks/current", map[string]interface{}{"id": newID})
	require.Equal(t, http.StatusNoContent, code)
	code, cur := doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/current", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, newID, cur["settings"].(map[string]interface{})["id"])

	// Deleting the current cookbook moves the selection elsewhere.
	code, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/cookbooks/"+newID, nil)
	require.Equal(t, http.StatusNoContent, code)
	code, cur = doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/current", nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, newID, cur["settings"].(map[string]interface{})["id"])
}

func TestRecipeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, created := doJSON(t, http.MethodPost, srv.URL+"/api/cookbooks/current/recipes", map[string]interface{}{
		"title":       "Soup",
		"prepTime":    10,
		"cookTime":    20,
		"ingredients": []map[string]interface{}{{"quantity": "1", "unit": "cup", "item": "water"}},
		"steps":       []string{"Boil"},
	})
	require.Equal(t, http.StatusCreated, code)
	recipeID := created["id"].(string)
	require.NotEmpty(t, recipeID)

	// Missing title is rejected.
	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/cookbooks/current/recipes", map[string]interface{}{
		"prepTime": 5,
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, list := doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/current/recipes", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), list["count"])

	// Search filters by substring.
	code, list = doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/current/recipes?q=soup", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), list["count"])
	code, list = doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/current/recipes?q=sushi", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), list["count"])

	code, patched := doJSON(t, http.MethodPatch, srv.URL+"/api/cookbooks/current/recipes/"+recipeID, map[string]interface{}{
		"title": "Miso Soup",
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Miso Soup", patched["title"])
	assert.Equal(t, float64(20), patched["cookTime"])

	code, _ = doJSON(t, http.MethodPatch, srv.URL+"/api/cookbooks/current/recipes/no-such-id", map[string]interface{}{
		"title": "X",
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/cookbooks/current/recipes", nil)
	require.Equal(t, http.StatusNoContent, code)
	code, list = doJSON(t, http.MethodGet, srv.URL+"/api/cookbooks/current/recipes", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), list["count"])
}

func TestFamilyAndInviteEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, fam := doJSON(t, http.MethodPost, srv.URL+"/api/families", map[string]interface{}{
		"name":         "Smiths",
		"creatorEmail": "a@b.com",
	})
	require.Equal(t, http.StatusCreated, code)
	famID := fam["id"].(string)
	require.Len(t, fam["members"], 1)

	code, cur := doJSON(t, http.MethodGet, srv.URL+"/api/families/current", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, famID, cur["id"])

	code, inv := doJSON(t, http.MethodPost, srv.URL+"/api/families/"+famID+"/invites", map[string]interface{}{
		"email": "c@d.com",
		"role":  "contributor",
	})
	require.Equal(t, http.StatusCreated, code)
	inviteID := inv["id"].(string)

	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/families/"+famID+"/invites", map[string]interface{}{
		"email": "not-an-email",
		"role":  "contributor",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	code, member := doJSON(t, http.MethodPost, srv.URL+"/api/invites/"+inviteID+"/accept", map[string]interface{}{
		"name": "Carl",
	})
	require.Equal(t, http.StatusOK, code)
	memberID := member["id"].(string)
	assert.Equal(t, "c@d.com", member["email"])

	// Second acceptance fails; the invite is spent.
	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/invites/"+inviteID+"/accept", map[string]interface{}{
		"name": "Carl",
	})
	assert.Equal(t, http.StatusNotFound, code)

	code, got := doJSON(t, http.MethodGet, srv.URL+"/api/families/"+famID, nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, got["members"], 2)

	code, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/families/"+famID+"/members/"+memberID, nil)
	require.Equal(t, http.StatusNoContent, code)
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	code, u := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", map[string]interface{}{
		"email":    "jo@b.com",
		"password": "hunter2",
		"name":     "Jo",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "jo@b.com", u["email"])
	assert.NotContains(t, u, "passwordHash")

	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", map[string]interface{}{
		"email":    "jo@b.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]interface{}{
		"email":    "jo@b.com",
		"password": "hunter2",
	})
	assert.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]interface{}{
		"email":    "jo@b.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestAuthInviteAccept(t *testing.T) {
	srv := newTestServer(t)

	code, fam := doJSON(t, http.MethodPost, srv.URL+"/api/families", map[string]interface{}{
		"name":         "Smiths",
		"creatorEmail": "a@b.com",
	})
	require.Equal(t, http.StatusCreated, code)
	famID := fam["id"].(string)

	code, inv := doJSON(t, http.MethodPost, srv.URL+"/api/families/"+famID+"/invites", map[string]interface{}{
		"email": "c@d.com",
		"role":  "contributor",
	})
	require.Equal(t, http.StatusCreated, code)
	inviteID := inv["id"].(string)

	code, u := doJSON(t, http.MethodPost, srv.URL+"/api/auth/invites/"+inviteID+"/accept", map[string]interface{}{
		"name":     "Carl",
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "c@d.com", u["email"])

	code, _ = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]interface{}{
		"email":    "c@d.com",
		"password": "secret",
	})
	assert.Equal(t, http.StatusOK, code)
}

func TestPermissionsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	code, fam := doJSON(t, http.MethodPost, srv.URL+"/api/families", map[string]interface{}{
		"name":         "Smiths",
		"creatorEmail": "a@b.com",
	})
	require.Equal(t, http.StatusCreated, code)
	famID := fam["id"].(string)

	code, body := doJSON(t, http.MethodGet, srv.URL+"/api/permissions?email=a@b.com", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(model.RoleHead), body["role"])
	assert.Equal(t, true, body["canManageFamily"])
	assert.Equal(t, true, body["canEditRecipes"])

	// Join a contributor with no cookbook access.
	code, inv := doJSON(t, http.MethodPost, srv.URL+"/api/families/"+famID+"/invites", map[string]interface{}{
		"email": "c@d.com",
		"role":  "contributor",
	})
	require.Equal(t, http.StatusCreated, code)
	code, _ = doJSON(t, http.MethodPost, srv.URL+fmt.Sprintf("/api/invites/%s/accept", inv["id"]), map[string]interface{}{
		"name": "Carl",
	})
	require.Equal(t, http.StatusOK, code)

	code, body = doJSON(t, http.MethodGet, srv.URL+"/api/permissions?email=c@d.com", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(model.RoleContributor), body["role"])
	assert.Equal(t, false, body["canManageFamily"])
	assert.Equal(t, false, body["canAccessCookbook"])

	code, body = doJSON(t, http.MethodGet, srv.URL+"/api/permissions?email=stranger@x.com", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["role"])
	assert.Equal(t, false, body["canManageFamily"])
}
