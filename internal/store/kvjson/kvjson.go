// Package kvjson implements store.Store as JSON collections over the KV
// adapter. Every mutation is a full read-modify-write of the affected
// collection; there is no incremental persistence. Consistency across
// concurrent writers is last-write-wins.
//
// Failure policy, kept from the original application: read failures
// (missing key, corrupt JSON, store errors) degrade to the default value
// and are logged; write failures are logged and swallowed, so callers
// cannot distinguish a successful save from a silently failed one. Only
// identity resolution failures surface as model.ErrNotFound.
package kvjson

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hearthbook/hearthbook/internal/kv"
	"github.com/hearthbook/hearthbook/internal/model"
	"github.com/hearthbook/hearthbook/internal/store"
)

const (
	keyPrefix          = "familycookbook:"
	keyCurrentCookbook = keyPrefix + "currentId"
	keyCookbooks       = keyPrefix + "cookbooks"
	keyCurrentFamily   = keyPrefix + "currentFamily"
	keyFamilies        = keyPrefix + "families"
	keyInvites         = keyPrefix + "invites"
	keyUsers           = keyPrefix + "users"
)

// Store implements store.Store over a kv.KV.
type Store struct {
	kv  kv.KV
	log zerolog.Logger
}

var _ store.Store = (*Store)(nil)

func New(k kv.KV, log zerolog.Logger) *Store {
	return &Store{kv: k, log: log}
}

func (s *Store) Cookbooks() store.Cookbooks { return (*cookbooks)(s) }
func (s *Store) Families() store.Families   { return (*families)(s) }
func (s *Store) Invites() store.Invites     { return (*invites)(s) }
func (s *Store) Users() store.Users         { return (*users)(s) }
func (s *Store) Session() store.Session     { return (*session)(s) }

// readJSON decodes the collection stored under key into def's type.
// Absent keys, store errors, and corrupt payloads all yield def.
func readJSON[T any](ctx context.Context, s *Store, key string, def T) T {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("kv read failed; using default")
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt stored value; using default")
		return def
	}
	return v
}

// writeJSON encodes v under key. Failures are logged, never returned.
func writeJSON[T any](ctx context.Context, s *Store, key string, v T) {
	b, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("encode failed; value not saved")
		return
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("kv write failed; value not saved")
	}
}

// --- Cookbooks ---

type cookbooks Store

func (c *cookbooks) List(ctx context.Context) ([]model.Cookbook, error) {
	s := (*Store)(c)
	list := readJSON(ctx, s, keyCookbooks, []model.Cookbook(nil))
	if len(list) == 0 {
		list = []model.Cookbook{model.NewCookbook(model.CookbookSettings{})}
		writeJSON(ctx, s, keyCookbooks, list)
	}
	return list, nil
}

func (c *cookbooks) Get(ctx context.Context, id string) (*model.Cookbook, error) {
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Settings.ID == id {
			cb := cloneCookbook(list[i])
			return &cb, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c *cookbooks) Save(ctx context.Context, cb model.Cookbook) error {
	s := (*Store)(c)
	list, err := c.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].Settings.ID == cb.Settings.ID {
			list[i] = cb
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, cb)
	}
	writeJSON(ctx, s, keyCookbooks, list)
	return nil
}

func (c *cookbooks) Delete(ctx context.Context, id string) error {
	s := (*Store)(c)
	list, err := c.List(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, cb := range list {
		if cb.Settings.ID != id {
			kept = append(kept, cb)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, model.NewCookbook(model.CookbookSettings{}))
	}
	writeJSON(ctx, s, keyCookbooks, kept)

	current, err := s.Session().CurrentCookbookID(ctx)
	if err != nil {
		return err
	}
	if current == id {
		return s.Session().SetCurrentCookbookID(ctx, kept[0].Settings.ID)
	}
	return nil
}

func (c *cookbooks) Duplicate(ctx context.Context, id, newName string) (*model.Cookbook, error) {
	s := (*Store)(c)
	list, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	var src *model.Cookbook
	for i := range list {
		if list[i].Settings.ID == id {
			src = &list[i]
			break
		}
	}
	if src == nil {
		return nil, model.ErrNotFound
	}

	dup := cloneCookbook(*src)
	dup.Settings.ID = uuid.New().String()
	dup.Settings.Name = newName
	list = append(list, dup)
	writeJSON(ctx, s, keyCookbooks, list)

	out := cloneCookbook(dup)
	return &out, nil
}

// cloneCookbook copies a cookbook by value, including the nested slices,
// so that the copy and the source never share backing arrays. Recipe ids
// are deliberately kept: duplicated recipes retain the originals' ids.
func cloneCookbook(cb model.Cookbook) model.Cookbook {
	out := cb
	out.Recipes = make([]model.Recipe, len(cb.Recipes))
	for i, r := range cb.Recipes {
		out.Recipes[i] = cloneRecipe(r)
	}
	return out
}

func cloneRecipe(r model.Recipe) model.Recipe {
	out := r
	out.Ingredients = append([]model.Ingredient(nil), r.Ingredients...)
	out.Steps = append([]string(nil), r.Steps...)
	out.AdditionalImages = append([]string(nil), r.AdditionalImages...)
	return out
}

// --- Families ---

type families Store

func (f *families) List(ctx context.Context) ([]model.Family, error) {
	return readJSON(ctx, (*Store)(f), keyFamilies, []model.Family{}), nil
}

func (f *families) Get(ctx context.Context, id string) (*model.Family, error) {
	list, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			fam := list[i]
			return &fam, nil
		}
	}
	return nil, model.ErrNotFound
}

func (f *families) Save(ctx context.Context, fam model.Family) error {
	s := (*Store)(f)
	list, err := f.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == fam.ID {
			list[i] = fam
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, fam)
	}
	writeJSON(ctx, s, keyFamilies, list)
	return nil
}

// --- Invites ---

type invites Store

func (v *invites) List(ctx context.Context) ([]model.FamilyInvite, error) {
	return readJSON(ctx, (*Store)(v), keyInvites, []model.FamilyInvite{}), nil
}

func (v *invites) Get(ctx context.Context, id string) (*model.FamilyInvite, error) {
	list, err := v.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			inv := list[i]
			return &inv, nil
		}
	}
	return nil, model.ErrNotFound
}

func (v *invites) Save(ctx context.Context, inv model.FamilyInvite) error {
	s := (*Store)(v)
	list, err := v.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == inv.ID {
			list[i] = inv
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, inv)
	}
	writeJSON(ctx, s, keyInvites, list)
	return nil
}

func (v *invites) Remove(ctx context.Context, id string) error {
	s := (*Store)(v)
	list, err := v.List(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, inv := range list {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	writeJSON(ctx, s, keyInvites, kept)
	return nil
}

// --- Users ---

type users Store

// storedUser is the persisted shape of a user. model.User hides the
// credential fields from JSON so they never leave the API; the store needs
// them on disk, so it keeps its own representation.
type storedUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"passwordHash"`
	Salt         string    `json:"salt"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toStoredUser(u model.User) storedUser {
	return storedUser{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Salt:         u.Salt,
		CreatedAt:    u.CreatedAt,
	}
}

func (su storedUser) toModel() model.User {
	return model.User{
		ID:           su.ID,
		Email:        su.Email,
		Name:         su.Name,
		PasswordHash: su.PasswordHash,
		Salt:         su.Salt,
		CreatedAt:    su.CreatedAt,
	}
}

func (u *users) list(ctx context.Context) []storedUser {
	return readJSON(ctx, (*Store)(u), keyUsers, []storedUser{})
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, usr := range u.list(ctx) {
		if usr.Email == email {
			out := usr.toModel()
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *users) Create(ctx context.Context, usr model.User) error {
	s := (*Store)(u)
	list := u.list(ctx)
	for _, existing := range list {
		if existing.Email == usr.Email {
			return model.ErrConflict
		}
	}
	list = append(list, toStoredUser(usr))
	writeJSON(ctx, s, keyUsers, list)
	return nil
}

// --- Session ---

type session Store

func (se *session) CurrentCookbookID(ctx context.Context) (string, error) {
	s := (*Store)(se)
	raw, ok, err := s.kv.Get(ctx, keyCurrentCookbook)
	if err != nil {
		s.log.Warn().Err(err).Msg("current cookbook pointer read failed; using default")
		return model.DefaultCookbookID, nil
	}
	if !ok || raw == "" {
		return model.DefaultCookbookID, nil
	}
	return raw, nil
}

func (se *session) SetCurrentCookbookID(ctx context.Context, id string) error {
	s := (*Store)(se)
	if err := s.kv.Set(ctx, keyCurrentCookbook, id); err != nil {
		s.log.Error().Err(err).Msg("current cookbook pointer write failed")
	}
	return nil
}

func (se *session) CurrentCookbook(ctx context.Context) (*model.Cookbook, error) {
	s := (*Store)(se)
	list, err := s.Cookbooks().List(ctx)
	if err != nil {
		return nil, err
	}
	id, err := se.CurrentCookbookID(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Settings.ID == id {
			cb := cloneCookbook(list[i])
			return &cb, nil
		}
	}
	// Dangling pointer self-heals to the first cookbook.
	cb := cloneCookbook(list[0])
	return &cb, nil
}

func (se *session) CurrentFamily(ctx context.Context) (*model.Family, error) {
	s := (*Store)(se)
	fam := readJSON(ctx, s, keyCurrentFamily, (*model.Family)(nil))
	return fam, nil
}

func (se *session) SetCurrentFamily(ctx context.Context, f *model.Family) error {
	s := (*Store)(se)
	if f == nil {
		if err := s.kv.Remove(ctx, keyCurrentFamily); err != nil {
			s.log.Error().Err(err).Msg("current family clear failed")
		}
		return nil
	}
	writeJSON(ctx, s, keyCurrentFamily, f)
	return nil
}
