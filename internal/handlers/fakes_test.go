package handlers

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"github.com/google/uuid"

	"inkwell/internal/blog"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/session"
)

// The fakes below implement the blog store interfaces in memory so the
// handlers can be exercised through httptest without a database.

type memPostStore struct {
	mu    sync.Mutex
	posts map[uuid.UUID]models.Post
	tags  map[uuid.UUID][]uuid.UUID
}

func newMemPostStore() *memPostStore {
	return &memPostStore{
		posts: make(map[uuid.UUID]models.Post),
		tags:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (m *memPostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.posts[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memPostStore) FindBySlug(slug string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memPostStore) FindPublishedBySlug(slug string) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.Slug == slug && p.Published {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memPostStore) ListPublished() ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Post
	for _, p := range m.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	sortPostsNewest(out)
	return out, nil
}

func (m *memPostStore) ListByAuthor(authorID uuid.UUID) ([]models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Post
	for _, p := range m.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	sortPostsNewest(out)
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
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.New()
	m.posts[p.ID] = *p
	m.tags[p.ID] = tagIDs
	stored := m.posts[p.ID]
	return &stored, nil
}

func (m *memPostStore) Update(p *models.Post, tagIDs []uuid.UUID) (*models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[p.ID]; !ok {
		return nil, nil
	}
	m.posts[p.ID] = *p
	m.tags[p.ID] = tagIDs
	stored := m.posts[p.ID]
	return &stored, nil
}

func (m *memPostStore) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.posts, id)
	delete(m.tags, id)
	return nil
}

func sortPostsNewest(posts []models.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

type memCategoryStore struct {
	mu   sync.Mutex
	cats map[uuid.UUID]models.Category
}

func newMemCategoryStore() *memCategoryStore {
	return &memCategoryStore{cats: make(map[uuid.UUID]models.Category)}
}

func (m *memCategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.cats[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (m *memCategoryStore) FindBySlug(slug string) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cats {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memCategoryStore) FindBySlugWithPosts(slug string) (*models.Category, error) {
	return m.FindBySlug(slug)
}

func (m *memCategoryStore) List() ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Category
	for _, c := range m.cats {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategoryStore) Create(c *models.Category) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	m.cats[c.ID] = *c
	stored := m.cats[c.ID]
	return &stored, nil
}

func (m *memCategoryStore) Update(c *models.Category) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cats[c.ID]; !ok {
		return nil, nil
	}
	m.cats[c.ID] = *c
	stored := m.cats[c.ID]
	return &stored, nil
}

func (m *memCategoryStore) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cats, id)
	return nil
}

type memTagStore struct {
	mu   sync.Mutex
	tags map[uuid.UUID]models.Tag
}

func newMemTagStore() *memTagStore {
	return &memTagStore{tags: make(map[uuid.UUID]models.Tag)}
}

func (m *memTagStore) FindByID(id uuid.UUID) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tags[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (m *memTagStore) FindByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Tag
	for _, id := range ids {
		if t, ok := m.tags[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTagStore) FindBySlug(slug string) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tags {
		if t.Slug == slug {
			return &t, nil
		}
	}
	return nil, nil
}

func (m *memTagStore) FindBySlugWithPosts(slug string) (*models.Tag, error) {
	return m.FindBySlug(slug)
}

func (m *memTagStore) List() ([]models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Tag
	for _, t := range m.tags {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memTagStore) Create(t *models.Tag) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = uuid.New()
	m.tags[t.ID] = *t
	stored := m.tags[t.ID]
	return &stored, nil
}

func (m *memTagStore) Update(t *models.Tag) (*models.Tag, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tags[t.ID]; !ok {
		return nil, nil
	}
	m.tags[t.ID] = *t
	stored := m.tags[t.ID]
	return &stored, nil
}

func (m *memTagStore) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tags, id)
	return nil
}

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]models.User)}
}

func (m *memUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *memUserStore) UpdateProfile(u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.ID]; !ok {
		return nil, nil
	}
	m.users[u.ID] = *u
	stored := m.users[u.ID]
	return &stored, nil
}

func (m *memUserStore) add(name string) blog.Actor {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := models.User{
		ID:       uuid.New(),
		Email:    name + "@test.local",
		Name:     name,
		Role:     models.RoleUser,
		Language: models.LanguageEnglish,
	}
	m.users[u.ID] = u
	return blog.Actor{ID: u.ID, Role: u.Role}
}

// newTestService wires a blog service over fresh in-memory stores.
func newTestService() (*blog.Service, *memUserStore) {
	users := newMemUserStore()
	svc := blog.NewService(newMemPostStore(), newMemCategoryStore(), newMemTagStore(), users)
	return svc, users
}

// authed wraps a request with a session in context, simulating the state
// after LoadSession has run for a logged-in user.
func authed(r *http.Request, actor blog.Actor) *http.Request {
	sess := &session.Data{
		UserID:    actor.ID,
		Email:     "test@test.local",
		Name:      "Test User",
		Role:      string(actor.Role),
		TwoFADone: true,
	}
	ctx := context.WithValue(r.Context(), middleware.SessionKey, sess)
	return r.WithContext(ctx)
}
