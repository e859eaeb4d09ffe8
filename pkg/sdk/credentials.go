package sdk

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated principal: the bearer tokens issued at
// login together with the server's view of the user profile.
type Identity struct {
	AccessToken  string  `json:"access"`
	RefreshToken string  `json:"refresh,omitempty"`
	Profile      Profile `json:"user"`
}

// Profile mirrors the user object returned by the API. The server is
// authoritative for the role flags; the client never sets them.
type Profile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsExpert bool   `json:"is_expert"`
	IsStaff  bool   `json:"is_staff"`
}

// Elevated reports whether the identity carries admin-level capability.
func (id *Identity) Elevated() bool {
	return id.Profile.IsExpert || id.Profile.IsStaff
}

// TokenExpiresAt extracts the exp claim from the access token without
// verifying the signature. Display use only; the server remains the
// authority on whether the token is still accepted.
func (id *Identity) TokenExpiresAt() (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(id.AccessToken, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// CredentialStore persists the identity between process runs. Writes are
// whole-record replacements; implementations must never perform network I/O.
type CredentialStore interface {
	// Save atomically replaces the persisted identity.
	Save(identity *Identity) error
	// Load returns the persisted identity, or ok=false when nothing usable
	// is stored. Malformed data reads as absence, never as an error.
	Load() (identity *Identity, ok bool)
	// Clear removes the persisted identity. Clearing an empty store is a
	// no-op.
	Clear() error
}
