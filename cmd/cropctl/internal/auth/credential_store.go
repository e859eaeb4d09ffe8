package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Justineneema/cropctl/pkg/sdk"
)

const credentialsFile = "credentials.json"

// FileStore implements sdk.CredentialStore using a JSON file under the
// user's home directory. This is the CLI's credential persistence.
type FileStore struct {
	path string
}

// Ensure FileStore implements sdk.CredentialStore at compile time.
var _ sdk.CredentialStore = (*FileStore)(nil)

// NewFileStore creates a FileStore rooted at ~/.cropctl.
func NewFileStore() (*FileStore, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".cropctl")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &FileStore{path: filepath.Join(dir, credentialsFile)}, nil
}

// NewFileStoreAt creates a FileStore at an explicit path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Save replaces the stored identity in full. The write goes through a
// temporary file and a rename so a crash cannot leave a torn record.
func (s *FileStore) Save(identity *sdk.Identity) error {
	data, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Load returns the stored identity. Anything missing, unreadable, or
// unparsable reads as absence.
func (s *FileStore) Load() (*sdk.Identity, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false
	}
	var identity sdk.Identity
	if err := json.Unmarshal(data, &identity); err != nil {
		return nil, false
	}
	if identity.AccessToken == "" {
		return nil, false
	}
	return &identity, true
}

// Clear removes the stored identity. Clearing an empty store is a no-op.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
