package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store"
)

// RecipeService mutates the recipe list nested inside a cookbook. Every
// operation re-reads the parent cookbook, transforms it in memory, and
// writes it back whole. The cookbook id is always passed in explicitly;
// callers that want "the current cookbook" resolve it through the session
// first.
type RecipeService struct {
	store store.Store
}

func NewRecipeService(s store.Store) *RecipeService {
	return &RecipeService{store: s}
}

// CreateRecipe assigns a fresh id and creation timestamp to data, appends it
// to the cookbook's recipe list, and persists the cookbook.
func (s *RecipeService) CreateRecipe(ctx context.Context, cookbookID string, data model.Recipe) (*model.Recipe, error) {
	cb, err := s.store.Cookbooks().Get(ctx, cookbookID)
	if err != nil {
		return nil, err
	}

	data.ID = uuid.New().String()
	data.CreatedAt = time.Now().UTC()
	cb.Recipes = append(cb.Recipes, data)

	if err := s.store.Cookbooks().Save(ctx, *cb); err != nil {
		return nil, err
	}
	return &data, nil
}

// UpdateRecipe merges the patch over the stored recipe. Nil patch fields
// keep their prior values; slice fields replace the stored slice wholesale.
func (s *RecipeService) UpdateRecipe(ctx context.Context, cookbookID, recipeID string, patch model.RecipePatch) (*model.Recipe, error) {
	cb, err := s.store.Cookbooks().Get(ctx, cookbookID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cb.Recipes {
		if cb.Recipes[i].ID == recipeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, model.ErrNotFound
	}

	r := &cb.Recipes[idx]
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Description != nil {
		r.Description = *patch.Description
	}
	if patch.Backstory != nil {
		r.Backstory = *patch.Backstory
	}
	if patch.PrepTime != nil {
		r.PrepTime = *patch.PrepTime
	}
	if patch.CookTime != nil {
		r.CookTime = *patch.CookTime
	}
	if patch.Ingredients != nil {
		r.Ingredients = *patch.Ingredients
	}
	if patch.Steps != nil {
		r.Steps = *patch.Steps
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.PrimaryImage != nil {
		r.PrimaryImage = *patch.PrimaryImage
	}
	if patch.AdditionalImages != nil {
		r.AdditionalImages = *patch.AdditionalImages
	}

	if err := s.store.Cookbooks().Save(ctx, *cb); err != nil {
		return nil, err
	}
	out := *r
	return &out, nil
}

// DeleteRecipe removes the recipe from the cookbook's list. Deleting an
// absent recipe is a no-op.
func (s *RecipeService) DeleteRecipe(ctx context.Context, cookbookID, recipeID string) error {
	cb, err := s.store.Cookbooks().Get(ctx, cookbookID)
	if err != nil {
		return err
	}
	kept := cb.Recipes[:0]
	for _, r := range cb.Recipes {
		if r.ID != recipeID {
			kept = append(kept, r)
		}
	}
	cb.Recipes = kept
	return s.store.Cookbooks().Save(ctx, *cb)
}

// GetRecipe is a pure lookup.
func (s *RecipeService) GetRecipe(ctx context.Context, cookbookID, recipeID string) (*model.Recipe, error) {
	cb, err := s.store.Cookbooks().Get(ctx, cookbookID)
	if err != nil {
		return nil, err
	}
	for i := range cb.Recipes {
		if cb.Recipes[i].ID == recipeID {
			out := cb.Recipes[i]
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

// ResetRecipes empties the cookbook's recipe list. Irreversible.
func (s *RecipeService) ResetRecipes(ctx context.Context, cookbookID string) error {
	cb, err := s.store.Cookbooks().Get(ctx, cookbookID)
	if err != nil {
		return err
	}
	cb.Recipes = []model.Recipe{}
	return s.store.Cookbooks().Save(ctx, *cb)
}

// SearchRecipes returns the cookbook's recipes whose title, description, or
// ingredient items contain the query, case-insensitively. An empty query
// returns everything.
func (s *RecipeService) SearchRecipes(ctx context.Context, cookbookID, query string) ([]model.Recipe, error) {
	cb, err := s.store.Cookbooks().Get(ctx, cookbookID)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return cb.Recipes, nil
	}
	q := strings.ToLower(query)
	var out []model.Recipe
	for _, r := range cb.Recipes {
		if recipeMatches(r, q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func recipeMatches(r model.Recipe, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Item), q) {
			return true
		}
	}
	return false
}
