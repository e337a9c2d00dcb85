// Package storetest holds a compliance suite run against store.Store
// implementations.
package storetest

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store"
)

// Run exercises the store contract. Implementations should provide a clean,
// isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	t.Run("CookbookSeedAndUpsert", func(t *testing.T) { testCookbookSeedAndUpsert(t, makeStore(t)) })
	t.Run("CookbookDeleteNeverEmpty", func(t *testing.T) { testCookbookDeleteNeverEmpty(t, makeStore(t)) })
	t.Run("CurrentPointerSelfHeals", func(t *testing.T) { testCurrentPointerSelfHeals(t, makeStore(t)) })
	t.Run("DuplicateIsValueCopy", func(t *testing.T) { testDuplicateIsValueCopy(t, makeStore(t)) })
	t.Run("Families", func(t *testing.T) { testFamilies(t, makeStore(t)) })
	t.Run("Invites", func(t *testing.T) { testInvites(t, makeStore(t)) })
	t.Run("Users", func(t *testing.T) { testUsers(t, makeStore(t)) })
	t.Run("CurrentFamily", func(t *testing.T) { testCurrentFamily(t, makeStore(t)) })
}

func testCookbookSeedAndUpsert(t *testing.T, s store.Store) {
	ctx := context.Background()

	// First-ever list seeds exactly one default cookbook and persists it.
	list, err := s.Cookbooks().List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("seeded list: n=%d", len(list))
	}
	def := list[0]
	if def.Settings.Name != "Our Family Cookbook" || def.Settings.Theme != model.ThemeWarm {
		t.Fatalf("unexpected default settings: %+v", def.Settings)
	}
	if def.Settings.ID == "" || def.Settings.ID == model.DefaultCookbookID {
		t.Fatalf("seeded cookbook should carry a fresh id, got %q", def.Settings.ID)
	}
	if list2, _ := s.Cookbooks().List(ctx); len(list2) != 1 || list2[0].Settings.ID != def.Settings.ID {
		t.Fatal("seeded cookbook not persisted")
	}

	// Upsert: saving an unknown id appends, saving a known id replaces.
	extra := model.NewCookbook(model.CookbookSettings{Name: "Holiday Baking"})
	if err := s.Cookbooks().Save(ctx, extra); err != nil {
		t.Fatalf("Save append: %v", err)
	}
	extra.Settings.Subtitle = "December only"
	if err := s.Cookbooks().Save(ctx, extra); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	list, _ = s.Cookbooks().List(ctx)
	if len(list) != 2 {
		t.Fatalf("after upserts: n=%d", len(list))
	}
	got, err := s.Cookbooks().Get(ctx, extra.Settings.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Settings.Subtitle != "December only" {
		t.Fatalf("upsert did not keep most recent content: %+v", got.Settings)
	}

	if _, err := s.Cookbooks().Get(ctx, "nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get unknown: err=%v", err)
	}
}

func testCookbookDeleteNeverEmpty(t *testing.T, s store.Store) {
	ctx := context.Background()
	list, _ := s.Cookbooks().List(ctx)
	sole := list[0].Settings.ID

	if err := s.Cookbooks().Delete(ctx, sole); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	list, _ = s.Cookbooks().List(ctx)
	if len(list) != 1 {
		t.Fatalf("collection size after deleting sole cookbook: %d", len(list))
	}
	if list[0].Settings.ID == sole {
		t.Fatal("deleted cookbook still present")
	}
	if len(list[0].Recipes) != 0 {
		t.Fatal("replacement default should have no recipes")
	}
}

func testCurrentPointerSelfHeals(t *testing.T, s store.Store) {
	ctx := context.Background()

	// Absent pointer falls back to the default id, which need not resolve.
	id, err := s.Session().CurrentCookbookID(ctx)
	if err != nil {
		t.Fatalf("CurrentCookbookID: %v", err)
	}
	if id != model.DefaultCookbookID {
		t.Fatalf("absent pointer: got %q", id)
	}

	// The dangling default pointer resolves to the first cookbook.
	cur, err := s.Session().CurrentCookbook(ctx)
	if err != nil {
		t.Fatalf("CurrentCookbook: %v", err)
	}
	list, _ := s.Cookbooks().List(ctx)
	if cur.Settings.ID != list[0].Settings.ID {
		t.Fatalf("dangling pointer did not heal to first cookbook")
	}

	// Select a second cookbook, delete it, and the pointer must resolve to
	// an existing cookbook again.
	second := model.NewCookbook(model.CookbookSettings{Name: "Second"})
	if err := s.Cookbooks().Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Session().SetCurrentCookbookID(ctx, second.Settings.ID); err != nil {
		t.Fatalf("SetCurrentCookbookID: %v", err)
	}
	if err := s.Cookbooks().Delete(ctx, second.Settings.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	id, _ = s.Session().CurrentCookbookID(ctx)
	if _, err := s.Cookbooks().Get(ctx, id); err != nil {
		t.Fatalf("current pointer dangles after delete: id=%q err=%v", id, err)
	}

	// Pointer writes are unconditional, even for ids that do not exist.
	if err := s.Session().SetCurrentCookbookID(ctx, "ghost"); err != nil {
		t.Fatalf("SetCurrentCookbookID ghost: %v", err)
	}
	if id, _ := s.Session().CurrentCookbookID(ctx); id != "ghost" {
		t.Fatalf("pointer not stored verbatim: %q", id)
	}
}

func testDuplicateIsValueCopy(t *testing.T, s store.Store) {
	ctx := context.Background()
	list, _ := s.Cookbooks().List(ctx)
	src := list[0]
	src.Recipes = []model.Recipe{{
		ID:          uuid.New().String(),
		Title:       "Soup",
		Ingredients: []model.Ingredient{{Quantity: "1", Unit: "cup", Item: "water"}},
		Steps:       []string{"Boil"},
		CreatedAt:   time.Now().UTC(),
	}}
	if err := s.Cookbooks().Save(ctx, src); err != nil {
		t.Fatalf("Save: %v", err)
	}

	dup, err := s.Cookbooks().Duplicate(ctx, src.Settings.ID, "Copy of Ours")
	if err != nil {
		t.Fatalf("Duplicate: %v", err)
	}
	if dup.Settings.ID == src.Settings.ID {
		t.Fatal("duplicate shares the source id")
	}
	if dup.Settings.Name != "Copy of Ours" {
		t.Fatalf("duplicate name: %q", dup.Settings.Name)
	}
	if dup.Settings.Theme != src.Settings.Theme || dup.Settings.Subtitle != src.Settings.Subtitle {
		t.Fatal("duplicate should keep theme and subtitle")
	}
	if !reflect.DeepEqual(dup.Recipes, src.Recipes) {
		t.Fatal("duplicate recipes differ from source at duplication time")
	}
	// Recipe ids are kept as-is across the copy.
	if dup.Recipes[0].ID != src.Recipes[0].ID {
		t.Fatal("duplicated recipe was assigned a new id")
	}

	// Mutating the source afterwards must not leak into the duplicate.
	src.Recipes[0].Title = "Stew"
	src.Recipes[0].Steps[0] = "Simmer"
	if err := s.Cookbooks().Save(ctx, src); err != nil {
		t.Fatalf("Save mutated source: %v", err)
	}
	got, err := s.Cookbooks().Get(ctx, dup.Settings.ID)
	if err != nil {
		t.Fatalf("Get duplicate: %v", err)
	}
	if got.Recipes[0].Title != "Soup" || got.Recipes[0].Steps[0] != "Boil" {
		t.Fatalf("duplicate shares state with source: %+v", got.Recipes[0])
	}

	if _, err := s.Cookbooks().Duplicate(ctx, "nope", "x"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Duplicate unknown: err=%v", err)
	}
}

func testFamilies(t *testing.T, s store.Store) {
	ctx := context.Background()

	if list, err := s.Families().List(ctx); err != nil || len(list) != 0 {
		t.Fatalf("empty families: n=%d err=%v", len(list), err)
	}

	fam := model.Family{
		ID:        uuid.New().String(),
		Name:      "Smiths",
		Members:   []model.FamilyMember{{ID: uuid.New().String(), Name: "Family Head", Email: "a@b.com", Role: model.RoleHead, CookbookAccess: []string{}}},
		Cookbooks: []model.Cookbook{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Families().Save(ctx, fam); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Families().Get(ctx, fam.ID)
	if err != nil || got.Name != "Smiths" {
		t.Fatalf("Get: got=%+v err=%v", got, err)
	}

	fam.Name = "The Smiths"
	if err := s.Families().Save(ctx, fam); err != nil {
		t.Fatalf("Save replace: %v", err)
	}
	if list, _ := s.Families().List(ctx); len(list) != 1 || list[0].Name != "The Smiths" {
		t.Fatalf("upsert families: %+v", list)
	}

	if _, err := s.Families().Get(ctx, "nope"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get unknown family: err=%v", err)
	}
}

func testInvites(t *testing.T, s store.Store) {
	ctx := context.Background()

	inv := model.FamilyInvite{
		ID:        uuid.New().String(),
		FamilyID:  uuid.New().String(),
		Email:     "c@d.com",
		Role:      model.RoleContributor,
		ExpiresAt: time.Now().UTC().Add(7 * 24 * time.Hour),
	}
	if err := s.Invites().Save(ctx, inv); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got, err := s.Invites().Get(ctx, inv.ID); err != nil || got.Email != "c@d.com" {
		t.Fatalf("Get: got=%+v err=%v", got, err)
	}

	if err := s.Invites().Remove(ctx, inv.ID); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Invites().Get(ctx, inv.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Get after remove: err=%v", err)
	}
	// Removal is idempotent.
	if err := s.Invites().Remove(ctx, inv.ID); err != nil {
		t.Fatalf("Remove again: %v", err)
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()

	u := model.User{
		ID:           uuid.New().String(),
		Email:        "head@family.com",
		Name:         "Family Head",
		PasswordHash: "hash-bytes",
		Salt:         "salt-bytes",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := s.Users().GetByEmail(ctx, "head@family.com")
	if err != nil || got.ID != u.ID {
		t.Fatalf("GetByEmail: got=%+v err=%v", got, err)
	}
	// Credentials must survive persistence; without them no login can ever
	// verify.
	if got.PasswordHash != u.PasswordHash || got.Salt != u.Salt {
		t.Fatalf("credentials lost on round-trip: hash=%q salt=%q", got.PasswordHash, got.Salt)
	}
	if err := s.Users().Create(ctx, model.User{ID: "x", Email: "head@family.com"}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("duplicate email: err=%v", err)
	}
	if _, err := s.Users().GetByEmail(ctx, "nobody@family.com"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByEmail unknown: err=%v", err)
	}
}

func testCurrentFamily(t *testing.T, s store.Store) {
	ctx := context.Background()

	if f, err := s.Session().CurrentFamily(ctx); err != nil || f != nil {
		t.Fatalf("no current family expected: f=%+v err=%v", f, err)
	}

	fam := model.Family{ID: uuid.New().String(), Name: "Smiths", Members: []model.FamilyMember{}, Cookbooks: []model.Cookbook{}, CreatedAt: time.Now().UTC()}
	if err := s.Session().SetCurrentFamily(ctx, &fam); err != nil {
		t.Fatalf("SetCurrentFamily: %v", err)
	}
	got, err := s.Session().CurrentFamily(ctx)
	if err != nil || got == nil || got.ID != fam.ID {
		t.Fatalf("CurrentFamily: got=%+v err=%v", got, err)
	}

	if err := s.Session().SetCurrentFamily(ctx, nil); err != nil {
		t.Fatalf("clear current family: %v", err)
	}
	if f, _ := s.Session().CurrentFamily(ctx); f != nil {
		t.Fatalf("current family not cleared: %+v", f)
	}
}
