// fakes_test.go provides in-memory store fakes so the façade's rules can
// be tested without a database. The fakes copy records on the way in and
// out, matching the row-scan behavior of the SQL stores.
package blog

import (
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

type memPostStore struct {
	posts map[uuid.UUID]*models.Post
	tags  map[uuid.UUID][]uuid.UUID
}

func newMemPostStore() *memPostStore {
	return &memPostStore{
		posts: make(map[uuid.UUID]*models.Post),
		tags:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (m *memPostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	if p, ok := m.posts[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}

func (m *memPostStore) FindBySlug(slug string) (*models.Post, error) {
	for _, p := range m.posts {
		if p.Slug == slug {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memPostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	for _, p := range m.posts {
		if p.Slug == slug && p.Published {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memPostStore) ListPublished() ([]models.Post, error) {
	var out []models.Post
	for _, p := range m.posts {
		if p.Published {
			out = append(out, *p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memPostStore) ListByAuthor(authorID uuid.UUID) ([]models.Post, error) {
	var out []models.Post
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			out = append(out, *p)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *memPostStore) LatestByAuthor(authorID uuid.UUID) (*models.Post, error) {
	posts, _ := m.ListByAuthor(authorID)
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

func (m *memPostStore) Create(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error) {
	c := *p
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	m.posts[c.ID] = &c
	m.tags[c.ID] = append([]uuid.UUID(nil), tagIDs...)
	out := c
	return &out, nil
}

func (m *memPostStore) Update(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error) {
	current, ok := m.posts[p.ID]
	if !ok {
		return nil, nil
	}
	c := *p
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now()
	m.posts[c.ID] = &c
	m.tags[c.ID] = append([]uuid.UUID(nil), tagIDs...)
	out := c
	return &out, nil
}

func (m *memPostStore) Delete(id uuid.UUID) error {
	delete(m.posts, id)
	delete(m.tags, id)
	return nil
}

func sortNewestFirst(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

type memCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (m *memCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	if c, ok := m.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCategoryStore) FindBySlug(slug string) (*models.Category, error) {
	for _, c := range m.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) FindBySlugWithPosts(slug string) (*models.Category, error) {
	return m.FindBySlug(slug)
}

func (m *memCategoryStore) List() ([]models.Category, error) {
	var out []models.Category
	for _, c := range m.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategoryStore) Create(c *models.Category) (*models.Category, error) {
	cp := *c
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.categories[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCategoryStore) Update(c *models.Category) (*models.Category, error) {
	current, ok := m.categories[c.ID]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.CreatedAt = current.CreatedAt
	cp.UpdatedAt = time.Now()
	m.categories[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memCategoryStore) Delete(id uuid.UUID) error {
	delete(m.categories, id)
	return nil
}

type memTagStore struct {
	tags map[uuid.UUID]*models.Tag
}

func newMemTagStore() *memTagStore {
	return &memTagStore{tags: make(map[uuid.UUID]*models.Tag)}
}

func (m *memTagStore) FindByID(id uuid.UUID) (*models.Tag, error) {
	if tg, ok := m.tags[id]; ok {
		cp := *tg
		return &cp, nil
	}
	return nil, nil
}

func (m *memTagStore) FindByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	var out []models.Tag
	for _, id := range ids {
		if tg, ok := m.tags[id]; ok {
			out = append(out, *tg)
		}
	}
	return out, nil
}

func (m *memTagStore) FindBySlug(slug string) (*models.Tag, error) {
	for _, tg := range m.tags {
		if tg.Slug == slug {
			cp := *tg
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memTagStore) FindBySlugWithPosts(slug string) (*models.Tag, error) {
	return m.FindBySlug(slug)
}

func (m *memTagStore) List() ([]models.Tag, error) {
	var out []models.Tag
	for _, tg := range m.tags {
		out = append(out, *tg)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memTagStore) Create(tg *models.Tag) (*models.Tag, error) {
	cp := *tg
	cp.ID = uuid.New()
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	m.tags[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memTagStore) Update(tg *models.Tag) (*models.Tag, error) {
	current, ok := m.tags[tg.ID]
	if !ok {
		return nil, nil
	}
	cp := *tg
	cp.CreatedAt = current.CreatedAt
	cp.UpdatedAt = time.Now()
	m.tags[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memTagStore) Delete(id uuid.UUID) error {
	delete(m.tags, id)
	return nil
}

type memUserStore struct {
	users map[uuid.UUID]*models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (m *memUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserStore) UpdateProfile(u *models.User) (*models.User, error) {
	cp := *u
	cp.UpdatedAt = time.Now()
	m.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (m *memUserStore) add(name string) Actor {
	id := uuid.New()
	m.users[id] = &models.User{
		ID:       id,
		Email:    name + "@example.com",
		Name:     name,
		Role:     models.RoleUser,
		Language: models.LanguageEnglish,
	}
	return Actor{ID: id, Role: models.RoleUser}
}

// fixture bundles a service wired to fakes with a controllable clock.
type fixture struct {
	svc        *Service
	posts      *memPostStore
	categories *memCategoryStore
	tags       *memTagStore
	users      *memUserStore
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	fx := &fixture{
		posts:      newMemPostStore(),
		categories: newMemCategoryStore(),
		tags:       newMemTagStore(),
		users:      newMemUserStore(),
		clock:      time.Date(2026, 2, 25, 12, 0, 0, 0, time.UTC),
	}
	fx.svc = NewService(fx.posts, fx.categories, fx.tags, fx.users)
	fx.svc.now = func() time.Time { return fx.clock }
	return fx
}

// advance moves the fixture clock forward.
func (fx *fixture) advance(d time.Duration) {
	fx.clock = fx.clock.Add(d)
}

func strPtr(s string) *string { return &s }
