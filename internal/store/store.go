// Package store defines the persistence operations required by services.
// Implementations live under internal/store/<impl>/ (kvjson).
package store

import (
	"context"

	"github.com/hearthbook/hearthbook/internal/model"
)

// Store groups the per-aggregate repositories plus the session selection
// pointers.
type Store interface {
	Cookbooks() Cookbooks
	Families() Families
	Invites() Invites
	Users() Users
	Session() Session
}

// Cookbooks owns the cookbook collection. The collection never becomes
// empty: listing seeds a default cookbook on first use and deleting the
// last one replaces it with a fresh default.
type Cookbooks interface {
	// List returns every cookbook, seeding and persisting one default
	// cookbook if none exist yet.
	List(ctx context.Context) ([]model.Cookbook, error)
	// Get returns the cookbook with the given settings id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Cookbook, error)
	// Save upserts by settings id: replace in place when present, append
	// otherwise. The whole collection is rewritten.
	Save(ctx context.Context, cb model.Cookbook) error
	// Delete removes the matching cookbook. If the collection would become
	// empty a fresh default is inserted, and a dangling current pointer is
	// reassigned to the first cookbook.
	Delete(ctx context.Context, id string) error
	// Duplicate copies the source cookbook under a new id and name. The
	// recipe list is copied by value; recipe ids are kept as-is.
	Duplicate(ctx context.Context, id, newName string) (*model.Cookbook, error)
}

// Families owns the family collection.
type Families interface {
	List(ctx context.Context) ([]model.Family, error)
	// Get returns the family with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.Family, error)
	// Save upserts by family id.
	Save(ctx context.Context, f model.Family) error
}

// Invites owns the pending-invite collection.
type Invites interface {
	List(ctx context.Context) ([]model.FamilyInvite, error)
	// Get returns the invite with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.FamilyInvite, error)
	// Save upserts by invite id.
	Save(ctx context.Context, inv model.FamilyInvite) error
	// Remove deletes the invite; removing an absent invite is a no-op.
	Remove(ctx context.Context, id string) error
}

// Users owns the account collection used by the mock sign-in flow.
type Users interface {
	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Create appends a new user; a duplicate email is ErrConflict.
	Create(ctx context.Context, u model.User) error
}

// Session persists the "current selection" pointers. Operations take the
// selection explicitly; nothing in the core reads ambient globals.
type Session interface {
	// CurrentCookbookID returns the stored pointer, falling back to
	// model.DefaultCookbookID when absent. The returned id is not
	// guaranteed to resolve to an existing cookbook.
	CurrentCookbookID(ctx context.Context) (string, error)
	// SetCurrentCookbookID writes the pointer unconditionally; the id is
	// not validated against the collection.
	SetCurrentCookbookID(ctx context.Context, id string) error
	// CurrentCookbook resolves the pointer against the collection, falling
	// back to the first cookbook when the pointer is dangling.
	CurrentCookbook(ctx context.Context) (*model.Cookbook, error)
	// CurrentFamily returns the stored family document, or nil when no
	// family is active.
	CurrentFamily(ctx context.Context) (*model.Family, error)
	// SetCurrentFamily stores the family as the active one; nil clears it.
	SetCurrentFamily(ctx context.Context, f *model.Family) error
}
