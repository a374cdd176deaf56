// Package servicetest holds in-memory stand-ins for the Supabase-backed
// stores, with the same conditional-write semantics as the SQL queries.
package servicetest

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"printshop-backend/internal/models"
)

// MemoryStore implements services.ProfileStore and services.OrderStore.
type MemoryStore struct {
	mu       sync.Mutex
	profiles []models.Profile
	orders   map[int64]*models.Order
	nextID   int64
	now      time.Time

	// Err, when set, is returned by every call.
	Err error
	// CreateOrderErr is returned by CreateOrder only.
	CreateOrderErr error
	// ProfileLookups counts GetProfileByAuthID calls.
	ProfileLookups int
	// ProfileVisibleAfter hides a profile from the first N lookups, like a
	// row that has not been written yet.
	ProfileVisibleAfter int
	// BeforeDelete runs at the start of DeleteWaitingOrder, outside the
	// lock, to interleave another writer.
	BeforeDelete func()
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		orders: make(map[int64]*models.Order),
		now:    time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

// AddProfile stores a profile and returns it with its assigned id.
func (m *MemoryStore) AddProfile(name string, role models.Role) *models.Profile {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	p := models.Profile{
		ID:        m.nextID,
		AuthID:    uuid.New(),
		Name:      name,
		Email:     strings.ToLower(name) + "@example.com",
		Role:      role,
		CreatedAt: m.now,
	}
	m.profiles = append(m.profiles, p)
	return &p
}

// AddOrder stores an order as-is, keeping the given status and admin.
func (m *MemoryStore) AddOrder(o models.Order) *models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	o.ID = m.nextID
	if o.CreatedAt.IsZero() {
		m.now = m.now.Add(time.Minute)
		o.CreatedAt = m.now
	}
	m.orders[o.ID] = &o
	out := o
	return &out
}

func (m *MemoryStore) GetProfileByAuthID(_ context.Context, authID uuid.UUID) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ProfileLookups++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.ProfileLookups <= m.ProfileVisibleAfter {
		return nil, models.ErrNotFound
	}
	for _, p := range m.profiles {
		if p.AuthID == authID {
			out := p
			return &out, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MemoryStore) CreateProfile(_ context.Context, np models.NewProfile) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.profiles {
		if p.AuthID == np.AuthID {
			out := p
			return &out, nil
		}
	}

	m.nextID++
	p := models.Profile{
		ID:        m.nextID,
		AuthID:    np.AuthID,
		Name:      np.Name,
		Phone:     np.Phone,
		Email:     np.Email,
		Role:      models.RoleClient,
		CreatedAt: m.now,
	}
	m.profiles = append(m.profiles, p)
	return &p, nil
}

func (m *MemoryStore) CreateOrder(_ context.Context, no models.NewOrder) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.CreateOrderErr != nil {
		return nil, m.CreateOrderErr
	}

	m.nextID++
	m.now = m.now.Add(time.Minute)
	url := no.DocumentURL
	o := &models.Order{
		ID:          m.nextID,
		ClientID:    no.ClientID,
		Description: no.Description,
		Copies:      no.Copies,
		Color:       no.Color,
		Status:      models.StatusWaiting,
		DocumentURL: &url,
		CreatedAt:   m.now,
	}
	m.orders[o.ID] = o
	return m.view(o), nil
}

func (m *MemoryStore) GetOrder(_ context.Context, orderID int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	o, ok := m.orders[orderID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return m.view(o), nil
}

func (m *MemoryStore) ClaimOrder(_ context.Context, orderID, adminID int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	o, ok := m.orders[orderID]
	if !ok || o.Status != models.StatusWaiting {
		return nil, models.ErrNotFound
	}
	o.Status = models.StatusProcessing
	o.AdminID = &adminID
	return m.view(o), nil
}

func (m *MemoryStore) CompleteOrder(_ context.Context, orderID int64) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	o, ok := m.orders[orderID]
	if !ok || o.Status != models.StatusProcessing {
		return nil, models.ErrNotFound
	}
	m.now = m.now.Add(time.Minute)
	finished := m.now
	o.Status = models.StatusFinished
	o.FinishedAt = &finished
	return m.view(o), nil
}

func (m *MemoryStore) DeleteWaitingOrder(_ context.Context, orderID, clientID int64) error {
	if m.BeforeDelete != nil {
		m.BeforeDelete()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	o, ok := m.orders[orderID]
	if !ok || o.ClientID != clientID || o.Status != models.StatusWaiting {
		return models.ErrNotFound
	}
	delete(m.orders, orderID)
	return nil
}

func (m *MemoryStore) ListOrders(_ context.Context, filter models.OrderFilter) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	var out []models.Order
	for _, o := range m.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.ClientID != 0 && o.ClientID != filter.ClientID {
			continue
		}
		if filter.AdminID != 0 && (o.AdminID == nil || *o.AdminID != filter.AdminID) {
			continue
		}
		out = append(out, *m.view(o))
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.NewestFirst {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryStore) ListDocumentURLs(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	var urls []string
	for _, o := range m.orders {
		if o.DocumentURL != nil && *o.DocumentURL != "" {
			urls = append(urls, *o.DocumentURL)
		}
	}
	return urls, nil
}

// Order returns the stored order without going through the error hooks.
func (m *MemoryStore) Order(orderID int64) (*models.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[orderID]
	if !ok {
		return nil, false
	}
	return m.view(o), true
}

// view copies o and fills in the joined display names.
func (m *MemoryStore) view(o *models.Order) *models.Order {
	out := *o
	for _, p := range m.profiles {
		if p.ID == o.ClientID {
			out.ClientName = p.Name
		}
		if o.AdminID != nil && p.ID == *o.AdminID {
			out.AdminName = p.Name
		}
	}
	return &out
}

var ErrInjected = errors.New("injected failure")
