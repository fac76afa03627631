package rest

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/domain"
)

// In-memory stores backing the router tests. Each one mirrors the contract
// of its postgres repository closely enough for the services on top.

type memDB struct {
	mu         sync.Mutex
	users      map[uuid.UUID]*domain.User
	methods    map[uuid.UUID]*domain.AuthMethod
	tokens     map[uuid.UUID]*domain.RefreshToken
	profiles   map[uuid.UUID]*domain.Profile
	categories map[uuid.UUID]*domain.Category
	items      map[uuid.UUID]*domain.Item
	orders     map[uuid.UUID]*domain.Order
	comments   []domain.Comment
	clock      time.Time
}

func newMemDB() *memDB {
	return &memDB{
		users:      map[uuid.UUID]*domain.User{},
		methods:    map[uuid.UUID]*domain.AuthMethod{},
		tokens:     map[uuid.UUID]*domain.RefreshToken{},
		profiles:   map[uuid.UUID]*domain.Profile{},
		categories: map[uuid.UUID]*domain.Category{},
		items:      map[uuid.UUID]*domain.Item{},
		orders:     map[uuid.UUID]*domain.Order{},
		clock:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns a strictly increasing timestamp. Callers hold mu.
func (db *memDB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

func (db *memDB) addCategory(name, icon string) uuid.UUID {
	db.mu.Lock()
	defer db.mu.Unlock()
	id := uuid.New()
	db.categories[id] = &domain.Category{ID: id, Name: name, IconKey: icon}
	return id
}

type memTx struct{}

func (memTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

// ─── users, auth methods, tokens ───

type memUsers struct{ db *memDB }

func (r memUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if u, ok := r.db.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return nil, domain.ErrAlreadyExists
		}
	}
	cp := *u
	r.db.users[u.ID] = &cp
	return u, nil
}

type memMethods struct{ db *memDB }

func (r memMethods) GetByUserAndMethod(_ context.Context, userID uuid.UUID, m domain.AuthMethodType) (*domain.AuthMethod, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, am := range r.db.methods {
		if am.UserID == userID && am.Method == m {
			cp := *am
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memMethods) Create(_ context.Context, am *domain.AuthMethod) (*domain.AuthMethod, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cp := *am
	cp.ID = uuid.New()
	r.db.methods[cp.ID] = &cp
	return &cp, nil
}

type memTokens struct{ db *memDB }

func (r memTokens) Create(_ context.Context, userID uuid.UUID, hash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	t := &domain.RefreshToken{ID: uuid.New(), UserID: userID, TokenHash: hash, ExpiresAt: expiresAt, CreatedAt: time.Now()}
	r.db.tokens[t.ID] = t
	return t, nil
}

func (r memTokens) GetByHash(_ context.Context, hash string) (*domain.RefreshToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.tokens {
		if t.TokenHash == hash && t.RevokedAt == nil && time.Now().Before(t.ExpiresAt) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r memTokens) RevokeByID(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if t, ok := r.db.tokens[id]; ok {
		now := time.Now()
		t.RevokedAt = &now
	}
	return nil
}

func (r memTokens) RevokeAllByUser(_ context.Context, userID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for _, t := range r.db.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

func (r memTokens) DeleteExpired(_ context.Context) (int, error) { return 0, nil }

// ─── profiles and categories ───

type memProfiles struct{ db *memDB }

func (r memProfiles) Create(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.profiles {
		if existing.Username == p.Username {
			return nil, domain.ErrAlreadyExists
		}
	}
	cp := *p
	r.db.profiles[p.ID] = &cp
	return p, nil
}

func (r memProfiles) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if p, ok := r.db.profiles[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r memProfiles) Update(_ context.Context, id uuid.UUID, ch domain.ProfileChanges) (*domain.Profile, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.profiles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Username, p.FullName, p.Phone = ch.Username, ch.FullName, ch.Phone
	p.Location, p.Bio, p.AvatarURL = ch.Location, ch.Bio, ch.AvatarURL
	p.UpdatedAt = r.db.tick()
	cp := *p
	return &cp, nil
}

func (r memProfiles) SetPhone(_ context.Context, id uuid.UUID, phone string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	p, ok := r.db.profiles[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Phone = &phone
	return nil
}

type memCategories struct{ db *memDB }

func (r memCategories) List(_ context.Context) ([]domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]domain.Category, 0, len(r.db.categories))
	for _, c := range r.db.categories {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b domain.Category) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (r memCategories) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if c, ok := r.db.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

// ─── items ───

type memItems struct{ db *memDB }

func (r memItems) List(_ context.Context, f domain.ItemFilter) ([]domain.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	var out []domain.Item
	for _, it := range r.db.items {
		if f.CategoryID != nil && (it.CategoryID == nil || *it.CategoryID != *f.CategoryID) {
			continue
		}
		if f.Status != nil && it.Status != *f.Status {
			continue
		}
		if f.OwnerID != nil && it.OwnerID != *f.OwnerID {
			continue
		}
		if f.After != nil && f.After.Compare(domain.CursorAt(*it)) >= 0 {
			continue
		}
		if f.Search != nil {
			q := strings.ToLower(*f.Search)
			if !strings.Contains(strings.ToLower(it.Title), q) && !strings.Contains(strings.ToLower(it.Description), q) {
				continue
			}
		}
		out = append(out, *it)
	}
	slices.SortFunc(out, func(a, b domain.Item) int {
		return domain.CursorAt(a).Compare(domain.CursorAt(b))
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r memItems) GetByID(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if it, ok := r.db.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r memItems) GetDetail(_ context.Context, id uuid.UUID) (*domain.ItemDetail, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	d := &domain.ItemDetail{Item: *it}
	if it.CategoryID != nil {
		if c, ok := r.db.categories[*it.CategoryID]; ok {
			d.CategoryName = &c.Name
		}
	}
	if p, ok := r.db.profiles[it.OwnerID]; ok {
		d.Owner = domain.OwnerSummary{Username: p.Username, FullName: p.FullName, Phone: p.Phone, AvatarURL: p.AvatarURL}
	}
	return d, nil
}

func (r memItems) Create(_ context.Context, it *domain.Item) (*domain.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if it.CategoryID != nil {
		if _, ok := r.db.categories[*it.CategoryID]; !ok {
			return nil, domain.ErrNotFound
		}
	}
	cp := *it
	cp.ID = uuid.New()
	cp.CreatedAt = r.db.tick()
	cp.UpdatedAt = cp.CreatedAt
	r.db.items[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memItems) Update(_ context.Context, id, ownerID uuid.UUID, ch domain.ItemChanges) (*domain.Item, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok || it.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	it.Title, it.Description, it.Price, it.Location = ch.Title, ch.Description, ch.Price, ch.Location
	it.CategoryID, it.ImageURL, it.Status = ch.CategoryID, ch.ImageURL, ch.Status
	it.UpdatedAt = r.db.tick()
	cp := *it
	return &cp, nil
}

func (r memItems) Delete(_ context.Context, id, ownerID uuid.UUID) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[id]
	if !ok || it.OwnerID != ownerID {
		return 0, nil
	}
	for _, o := range r.db.orders {
		if o.ItemID == id {
			return 0, domain.ErrItemHasOrders
		}
	}
	delete(r.db.items, id)
	return 1, nil
}

// ─── orders and comments ───

type memOrders struct{ db *memDB }

func (r memOrders) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	it, ok := r.db.items[o.ItemID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *o
	cp.ID = uuid.New()
	cp.ItemTitle = it.Title
	cp.CreatedAt = r.db.tick()
	cp.UpdatedAt = cp.CreatedAt
	r.db.orders[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r memOrders) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if o, ok := r.db.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r memOrders) list(match func(*domain.Order) bool) []domain.Order {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []domain.Order{}
	for _, o := range r.db.orders {
		if match(o) {
			out = append(out, *o)
		}
	}
	slices.SortFunc(out, func(a, b domain.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out
}

func (r memOrders) ListByBuyer(_ context.Context, buyerID uuid.UUID) ([]domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return o.BuyerID == buyerID }), nil
}

func (r memOrders) ListBySeller(_ context.Context, sellerID uuid.UUID) ([]domain.Order, error) {
	return r.list(func(o *domain.Order) bool { return o.SellerID == sellerID }), nil
}

func (r memOrders) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.OrderStatus) (*domain.Order, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	o, ok := r.db.orders[id]
	if !ok || o.Status != from {
		return nil, domain.ErrNotFound
	}
	o.Status = to
	o.UpdatedAt = r.db.tick()
	cp := *o
	return &cp, nil
}

func (r memOrders) count() int {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return len(r.db.orders)
}

type memComments struct{ db *memDB }

func (r memComments) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.items[c.ItemID]; !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	cp.ID = uuid.New()
	cp.CreatedAt = r.db.tick()
	if p, ok := r.db.profiles[c.AuthorID]; ok {
		cp.AuthorUsername = p.Username
	}
	r.db.comments = append(r.db.comments, cp)
	return &cp, nil
}

func (r memComments) ListByItem(_ context.Context, itemID uuid.UUID) ([]domain.Comment, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []domain.Comment{}
	for _, c := range r.db.comments {
		if c.ItemID == itemID {
			out = append(out, c)
		}
	}
	return out, nil
}
