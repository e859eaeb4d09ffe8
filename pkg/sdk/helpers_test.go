package sdk_test

import (
	"sync"

	"github.com/Justineneema/cropctl/pkg/sdk"
)

// memStore is an in-memory sdk.CredentialStore for tests.
type memStore struct {
	mu       sync.Mutex
	identity *sdk.Identity
}

func (m *memStore) Save(identity *sdk.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = identity
	return nil
}

func (m *memStore) Load() (*sdk.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.identity == nil {
		return nil, false
	}
	return m.identity, true
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.identity = nil
	return nil
}

func (m *memStore) stored() *sdk.Identity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.identity
}

// recordingNav captures navigation events emitted by the dispatcher.
type recordingNav struct {
	mu      sync.Mutex
	route   sdk.Route
	targets []sdk.Route
	resumes []sdk.Route
}

func (n *recordingNav) CurrentRoute() sdk.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}

func (n *recordingNav) Navigate(target, resume sdk.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.targets = append(n.targets, target)
	n.resumes = append(n.resumes, resume)
}

func (n *recordingNav) events() ([]sdk.Route, []sdk.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sdk.Route(nil), n.targets...), append([]sdk.Route(nil), n.resumes...)
}

func testIdentity(token string, expert bool) *sdk.Identity {
	return &sdk.Identity{
		AccessToken:  token,
		RefreshToken: "R1",
		Profile:      sdk.Profile{ID: 1, Username: "alice", IsExpert: expert},
	}
}
