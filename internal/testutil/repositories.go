// Package testutil provides in-memory repositories for handler and service
// tests. They enforce the same unique keys as the database schema.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/synchomes/synchomes-api/internal/model"
	"github.com/synchomes/synchomes-api/internal/repository"
)

// ErrStoreDown is returned by a repository whose Fail flag is set.
var ErrStoreDown = errors.New("store unavailable")

// clock hands out strictly increasing timestamps so ordering by creation is stable.
type clock struct {
	last time.Time
}

func (c *clock) now() time.Time {
	t := time.Now().UTC()
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

// ─── Admins ────────────────────────────────────────────────────────────

type AdminRepo struct {
	mu     sync.Mutex
	clock  clock
	admins map[uuid.UUID]*model.Admin
}

func NewAdminRepo() *AdminRepo {
	return &AdminRepo{admins: make(map[uuid.UUID]*model.Admin)}
}

var _ repository.AdminRepository = (*AdminRepo)(nil)

func (r *AdminRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *AdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AdminRepo) Create(_ context.Context, a *model.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.admins {
		if existing.Email == a.Email {
			return repository.ErrDuplicate
		}
	}
	a.ID = uuid.New()
	a.CreatedAt = r.clock.now()
	a.UpdatedAt = a.CreatedAt
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *AdminRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return repository.ErrNotFound
	}
	a.PasswordHash = passwordHash
	a.UpdatedAt = r.clock.now()
	return nil
}

func (r *AdminRepo) UpdateName(_ context.Context, id uuid.UUID, name string) (*model.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.admins[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Name = name
	a.UpdatedAt = r.clock.now()
	cp := *a
	return &cp, nil
}

// Delete drops an admin, simulating removal behind a live session.
func (r *AdminRepo) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.admins, id)
}

// ─── Projects ──────────────────────────────────────────────────────────

type ProjectRepo struct {
	mu       sync.Mutex
	clock    clock
	projects []*model.Project

	// Fail makes GetAll return ErrStoreDown.
	Fail bool
	// Reads counts GetAll calls.
	Reads int
}

func NewProjectRepo() *ProjectRepo {
	return &ProjectRepo{}
}

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

func (r *ProjectRepo) GetAll(_ context.Context) ([]*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reads++
	if r.Fail {
		return nil, ErrStoreDown
	}
	out := make([]*model.Project, 0, len(r.projects))
	for _, p := range r.projects {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(id); i >= 0 {
		cp := *r.projects[i]
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *ProjectRepo) Create(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conflict(p, uuid.Nil) {
		return repository.ErrDuplicate
	}
	p.ID = uuid.New()
	p.CreatedAt = r.clock.now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.projects = append(r.projects, &cp)
	return nil
}

func (r *ProjectRepo) Update(_ context.Context, p *model.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(p.ID)
	if i < 0 {
		return repository.ErrNotFound
	}
	if r.conflict(p, p.ID) {
		return repository.ErrDuplicate
	}
	p.CreatedAt = r.projects[i].CreatedAt
	p.UpdatedAt = r.clock.now()
	cp := *p
	r.projects[i] = &cp
	return nil
}

func (r *ProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.projects = append(r.projects[:i], r.projects[i+1:]...)
	return nil
}

func (r *ProjectRepo) index(id uuid.UUID) int {
	for i, p := range r.projects {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *ProjectRepo) conflict(p *model.Project, self uuid.UUID) bool {
	for _, existing := range r.projects {
		if existing.ID == self {
			continue
		}
		if existing.Category == p.Category && existing.Name == p.Name && existing.Location == p.Location {
			return true
		}
	}
	return false
}

// ─── Clients ───────────────────────────────────────────────────────────

type ClientRepo struct {
	mu      sync.Mutex
	clock   clock
	clients []*model.Client

	// Fail makes Create return ErrStoreDown.
	Fail bool
}

func NewClientRepo() *ClientRepo {
	return &ClientRepo{}
}

var _ repository.ClientRepository = (*ClientRepo)(nil)

func (r *ClientRepo) GetAll(_ context.Context) ([]*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ClientRepo) Create(_ context.Context, c *model.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrStoreDown
	}
	for _, existing := range r.clients {
		if existing.Name == c.Name && existing.Description == c.Description && existing.Designation == c.Designation {
			return repository.ErrDuplicate
		}
	}
	c.ID = uuid.New()
	c.CreatedAt = r.clock.now()
	cp := *c
	r.clients = append(r.clients, &cp)
	return nil
}

// ─── Contacts ──────────────────────────────────────────────────────────

type ContactRepo struct {
	mu       sync.Mutex
	clock    clock
	contacts []*model.Contact
}

func NewContactRepo() *ContactRepo {
	return &ContactRepo{}
}

var _ repository.ContactRepository = (*ContactRepo)(nil)

func (r *ContactRepo) GetAll(_ context.Context) ([]*model.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *ContactRepo) Create(_ context.Context, c *model.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.contacts {
		if strings.EqualFold(existing.Email, c.Email) {
			return repository.ErrDuplicate
		}
	}
	c.ID = uuid.New()
	c.CreatedAt = r.clock.now()
	cp := *c
	r.contacts = append(r.contacts, &cp)
	return nil
}

// ─── Subscribers ───────────────────────────────────────────────────────

type SubscriberRepo struct {
	mu          sync.Mutex
	clock       clock
	subscribers []*model.Subscriber
}

func NewSubscriberRepo() *SubscriberRepo {
	return &SubscriberRepo{}
}

var _ repository.SubscriberRepository = (*SubscriberRepo)(nil)

func (r *SubscriberRepo) GetAll(_ context.Context) ([]*model.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Subscriber, 0, len(r.subscribers))
	for _, s := range r.subscribers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *SubscriberRepo) Create(_ context.Context, s *model.Subscriber) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.subscribers {
		if strings.EqualFold(existing.Email, s.Email) {
			return repository.ErrDuplicate
		}
	}
	s.ID = uuid.New()
	s.CreatedAt = r.clock.now()
	cp := *s
	r.subscribers = append(r.subscribers, &cp)
	return nil
}

// ─── Dashboard ─────────────────────────────────────────────────────────

// DashboardRepo aggregates over the other fakes.
type DashboardRepo struct {
	Projects    *ProjectRepo
	Clients     *ClientRepo
	Contacts    *ContactRepo
	Subscribers *SubscriberRepo
}

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

func (r *DashboardRepo) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	projects, err := r.Projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	clients, _ := r.Clients.GetAll(ctx)
	contacts, _ := r.Contacts.GetAll(ctx)
	subscribers, _ := r.Subscribers.GetAll(ctx)

	stats := &model.DashboardStats{
		Projects:           len(projects),
		Clients:            len(clients),
		Contacts:           len(contacts),
		Subscribers:        len(subscribers),
		ProjectsByCategory: make(map[model.ProjectCategory]int, len(model.ProjectCategories)),
	}
	for _, c := range model.ProjectCategories {
		stats.ProjectsByCategory[c] = 0
	}
	for _, p := range projects {
		stats.ProjectsByCategory[p.Category]++
	}
	return stats, nil
}
