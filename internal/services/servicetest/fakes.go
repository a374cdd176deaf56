package servicetest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"printshop-backend/internal/models"
)

const BucketURL = "https://project.supabase.co/storage/v1/object/public/documentos/"

// Bucket is an in-memory documentos bucket.
type Bucket struct {
	mu      sync.Mutex
	Objects map[string][]byte
	Types   map[string]string

	UploadErr error
	RemoveErr error
	Removed   []string
}

func NewBucket() *Bucket {
	return &Bucket{
		Objects: make(map[string][]byte),
		Types:   make(map[string]string),
	}
}

func (b *Bucket) Upload(path, contentType string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.UploadErr != nil {
		return b.UploadErr
	}
	if _, exists := b.Objects[path]; exists {
		return ErrInjected
	}
	b.Objects[path] = data
	b.Types[path] = contentType
	return nil
}

func (b *Bucket) PublicURL(path string) string {
	return BucketURL + path
}

func (b *Bucket) PathFromURL(url string) (string, bool) {
	path, found := strings.CutPrefix(url, BucketURL)
	if !found || path == "" {
		return "", false
	}
	return path, true
}

func (b *Bucket) Remove(paths ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.RemoveErr != nil {
		return b.RemoveErr
	}
	for _, path := range paths {
		delete(b.Objects, path)
		delete(b.Types, path)
		b.Removed = append(b.Removed, path)
	}
	return nil
}

// List mimics the Storage listing: the root yields one folder per client,
// a folder yields its objects by base name.
func (b *Bucket) List(prefix string) ([]models.StoredObject, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	prefix = strings.TrimSuffix(prefix, "/")
	seen := make(map[string]bool)
	var out []models.StoredObject

	for path := range b.Objects {
		if prefix == "" {
			folder, _, found := strings.Cut(path, "/")
			if found && !seen[folder] {
				seen[folder] = true
				out = append(out, models.StoredObject{Name: folder, Folder: true})
			}
			continue
		}
		name, found := strings.CutPrefix(path, prefix+"/")
		if found && !strings.Contains(name, "/") {
			out = append(out, models.StoredObject{Name: name})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (b *Bucket) Has(path string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, ok := b.Objects[path]
	return ok
}

func (b *Bucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.Objects)
}

type PublishedEvent struct {
	Event   string
	OrderID int64
	Status  models.OrderStatus
}

// Events records published order events.
type Events struct {
	mu        sync.Mutex
	Published []PublishedEvent
	Err       error
}

func (e *Events) PublishOrderEvent(_ context.Context, event string, order *models.Order) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.Err != nil {
		return e.Err
	}
	e.Published = append(e.Published, PublishedEvent{Event: event, OrderID: order.ID, Status: order.Status})
	return nil
}

func (e *Events) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]string, 0, len(e.Published))
	for _, p := range e.Published {
		names = append(names, p.Event)
	}
	return names
}

// Auth is a fake GoTrue. Accounts maps email to password.
type Auth struct {
	mu       sync.Mutex
	Accounts map[string]string
	UserIDs  map[string]uuid.UUID
	// Refreshable lists refresh tokens that are still valid.
	Refreshable map[string]uuid.UUID
	SignedOut   []string
	// Confirm makes SignUp return no session, as with email confirmation on.
	Confirm bool
}

func NewAuth() *Auth {
	return &Auth{
		Accounts:    make(map[string]string),
		UserIDs:     make(map[string]uuid.UUID),
		Refreshable: make(map[string]uuid.UUID),
	}
}

func (a *Auth) SignUp(_ context.Context, email, password string, _ map[string]interface{}) (*models.AuthSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.Accounts[email]; exists {
		return nil, ErrInjected
	}
	id := uuid.New()
	a.Accounts[email] = password
	a.UserIDs[email] = id

	if a.Confirm {
		return &models.AuthSession{UserID: id, Email: email}, nil
	}
	return a.session(id, email), nil
}

func (a *Auth) SignIn(_ context.Context, email, password string) (*models.AuthSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if stored, ok := a.Accounts[email]; !ok || stored != password {
		return nil, ErrInjected
	}
	return a.session(a.UserIDs[email], email), nil
}

func (a *Auth) Refresh(_ context.Context, refreshToken string) (*models.AuthSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, ok := a.Refreshable[refreshToken]
	if !ok {
		return nil, ErrInjected
	}
	delete(a.Refreshable, refreshToken)
	return a.session(id, ""), nil
}

func (a *Auth) SignOut(_ context.Context, accessToken string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.SignedOut = append(a.SignedOut, accessToken)
	return nil
}

func (a *Auth) session(id uuid.UUID, email string) *models.AuthSession {
	refresh := uuid.NewString()
	a.Refreshable[refresh] = id
	return &models.AuthSession{
		UserID:       id,
		Email:        email,
		AccessToken:  "access-" + id.String(),
		RefreshToken: refresh,
		ExpiresIn:    3600,
	}
}
