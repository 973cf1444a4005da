package fixit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Role is the account role carried in the stored profile. The backend stores
// roles lowercase; NormalizeEnum must be applied to any caller-supplied value
// before transmission.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleLandlord        Role = "landlord"
	RolePropertyManager Role = "propertymanager"
	RoleTenant          Role = "tenant"
	RoleVendor          Role = "vendor"
)

// Profile is the non-sensitive slice of the user record kept alongside the
// session token.
type Profile struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Credential is the stored session: the bearer token plus the profile used
// to decide whether the admin override token applies.
type Credential struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Store holds the session credential between calls. It is read on every
// outgoing request and written only by login, logout, and the forced-logout
// path on a 401 response.
//
// Load returns (nil, nil) when no session is stored. A corrupted entry must
// be cleared and reported as absent, not as an error: the request proceeds
// unauthenticated and the backend decides whether to reject it.
type Store interface {
	Load() (*Credential, error)
	Save(cred *Credential) error
	Clear() error

	// MarkExpired records a one-shot "session expired" notice set by the
	// forced-logout path. TakeExpired returns it and resets it, so exactly
	// one consumer observes the expiry.
	MarkExpired()
	TakeExpired() bool
}

// MemStore is an in-memory Store, used as the default and in tests.
type MemStore struct {
	mu      sync.Mutex
	cred    *Credential
	expired bool
}

// NewMemStore creates an empty in-memory session store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Load() (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil, nil
	}
	cp := *s.cred
	return &cp, nil
}

func (s *MemStore) Save(cred *Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cred
	s.cred = &cp
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}

func (s *MemStore) MarkExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expired = true
}

func (s *MemStore) TakeExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	was := s.expired
	s.expired = false
	return was
}

// FileStore persists the credential as a JSON file, the CLI analogue of the
// web app's localStorage entries. The expired notice is a sidecar marker file
// so it survives Clear wiping the credential itself.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store at path, creating parent
// directories as needed on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(data, &cred); err != nil {
		// Corrupted entry: clear it and treat the session as absent.
		_ = os.Remove(s.path)
		return nil, nil
	}
	return &cred, nil
}

func (s *FileStore) Save(cred *Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	data, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

func (s *FileStore) MarkExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.WriteFile(s.expiredPath(), []byte("1"), 0o600)
}

func (s *FileStore) TakeExpired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.expiredPath()); err != nil {
		return false
	}
	_ = os.Remove(s.expiredPath())
	return true
}

func (s *FileStore) expiredPath() string {
	return s.path + ".expired"
}
