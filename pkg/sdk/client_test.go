package sdk_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justineneema/cropctl/pkg/sdk"
)

func TestDoAttachesBearerWhenAuthenticated(t *testing.T) {
	var gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	session := sdk.NewSession(&memStore{identity: testIdentity("T1", false)})
	client := sdk.NewClient(server.URL, session)

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "api/detections/", nil, nil))
	assert.Equal(t, "Bearer T1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestDoOmitsBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{}))

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "health/", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDoNormalizesLeadingSeparators(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{}))

	require.NoError(t, client.Do(context.Background(), http.MethodGet, "widgets/", nil, nil))
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/widgets/", nil, nil))
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "//widgets/", nil, nil))

	require.Len(t, paths, 3)
	assert.Equal(t, paths[0], paths[1])
	assert.Equal(t, paths[0], paths[2])
	assert.Equal(t, "/widgets/", paths[0])
}

func TestUnauthorizedResponseForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Token is invalid or expired"}`))
	}))
	defer server.Close()

	store := &memStore{identity: testIdentity("T1", false)}
	session := sdk.NewSession(store)
	nav := &recordingNav{route: sdk.RouteAdmin}
	client := sdk.NewClient(server.URL, session, sdk.WithNavigator(nav))

	err := client.Do(context.Background(), http.MethodGet, "api/detections/", nil, nil)

	require.Error(t, err)
	assert.True(t, sdk.IsUnauthorized(err))
	assert.False(t, session.Authenticated(), "session must transition to anonymous")
	assert.Nil(t, store.stored(), "credential store must be cleared")

	targets, resumes := nav.events()
	require.Len(t, targets, 1)
	assert.Equal(t, sdk.RouteLogin, targets[0])
	assert.Equal(t, sdk.RouteAdmin, resumes[0], "original destination must be preserved for resume")
}

func TestConcurrentUnauthorizedResponsesClearOnce(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "expired"}`))
	}))
	defer server.Close()

	store := &memStore{identity: testIdentity("T1", false)}
	session := sdk.NewSession(store)
	nav := &recordingNav{route: sdk.RouteHistory}
	client := sdk.NewClient(server.URL, session, sdk.WithNavigator(nav))

	const inflight = 4
	var wg sync.WaitGroup
	errs := make([]error, inflight)
	for i := 0; i < inflight; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = client.Do(context.Background(), http.MethodGet, "api/detections/", nil, nil)
		}(i)
	}
	close(release)
	wg.Wait()

	for _, err := range errs {
		assert.True(t, sdk.IsUnauthorized(err), "every in-flight caller must see a rejection")
	}
	assert.False(t, session.Authenticated())

	targets, _ := nav.events()
	assert.Len(t, targets, 1, "the clear/redirect sequence must run exactly once")
}

func TestUnauthorizedOnLoginViewDoesNotRedirect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "expired"}`))
	}))
	defer server.Close()

	session := sdk.NewSession(&memStore{identity: testIdentity("T1", false)})
	nav := &recordingNav{route: sdk.RouteLogin}
	client := sdk.NewClient(server.URL, session, sdk.WithNavigator(nav))

	err := client.Do(context.Background(), http.MethodGet, "api/detections/", nil, nil)

	require.Error(t, err)
	assert.False(t, session.Authenticated())
	targets, _ := nav.events()
	assert.Empty(t, targets, "no redirect loop from the login view")
}

func TestNetworkErrorLeavesSessionIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	store := &memStore{identity: testIdentity("T1", false)}
	session := sdk.NewSession(store)
	nav := &recordingNav{route: sdk.RouteHistory}
	client := sdk.NewClient(server.URL, session, sdk.WithNavigator(nav))

	err := client.Do(context.Background(), http.MethodGet, "api/detections/", nil, nil)

	require.Error(t, err)
	var apiErr *sdk.Error
	assert.False(t, errors.As(err, &apiErr), "a transport failure is not an API error")
	assert.True(t, session.Authenticated(), "no response means no credential clearing")
	assert.NotNil(t, store.stored())
	targets, _ := nav.events()
	assert.Empty(t, targets)
}

func TestOtherStatusesPassThroughToCaller(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Not found."}`))
	}))
	defer server.Close()

	session := sdk.NewSession(&memStore{identity: testIdentity("T1", false)})
	client := sdk.NewClient(server.URL, session)

	err := client.Do(context.Background(), http.MethodGet, "api/detections/99/", nil, nil)

	var apiErr *sdk.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, sdk.KindAPI, apiErr.Kind)
	assert.Equal(t, "Not found.", apiErr.Message)
	assert.True(t, session.Authenticated(), "only 401 triggers the global reaction")
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health/", r.URL.Path)
		w.Write([]byte(`{"status": "healthy", "service": "cropdetector-backend", "database": "connected"}`))
	}))
	defer server.Close()

	client := sdk.NewClient(server.URL, sdk.NewSession(&memStore{}))

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)
}
