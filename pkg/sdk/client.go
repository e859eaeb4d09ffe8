package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client dispatches every outbound call to the CropDetector API. It is the
// single channel for network I/O: it attaches the bearer credential when
// the session is authenticated, normalizes caller-supplied paths against
// the base URL, and reacts to 401 responses by expiring the session.
type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
	nav     Navigator
}

// ClientOptions configures client construction.
type ClientOptions struct {
	HTTPClient *http.Client
	Navigator  Navigator
}

// ClientOption mutates ClientOptions.
type ClientOption func(*ClientOptions)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(httpc *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = httpc
	}
}

// WithNavigator registers the receiver for forced navigation when a
// credential is rejected mid-use.
func WithNavigator(nav Navigator) ClientOption {
	return func(opts *ClientOptions) {
		opts.Navigator = nav
	}
}

// NewClient creates a client for the API server at baseURL. The session
// supplies the outbound credential and absorbs the unauthorized reaction.
// An http.Client with a 30 second timeout is created when none is supplied.
func NewClient(baseURL string, session *Session, optFns ...ClientOption) *Client {
	opts := ClientOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   opts.HTTPClient,
		session: session,
		nav:     opts.Navigator,
	}
}

// Session exposes the session controller owned by this client.
func (c *Client) Session() *Session {
	return c.session
}

// endpoint joins a caller-supplied relative path onto the base URL.
// Leading separators are stripped so a path can never override the
// configured base: "/diseases/" and "diseases/" resolve identically.
func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

// Do issues one JSON request to a caller-supplied relative path. in may be
// nil for bodiless requests; out may be nil to discard the response body.
// Non-2xx responses come back as *Error; transport failures (no response
// at all) are wrapped and returned without touching the session.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// send finishes a prepared request: credential attachment, transmission,
// and the shared response handling. Used by Do and by the multipart upload
// path.
func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return decodeError(resp.StatusCode, data)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Including 400: anything but a 401 is the caller's to interpret.
		return decodeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// handleUnauthorized runs the global reaction to a rejected credential:
// the persisted record and the in-memory identity are cleared, and the
// host is told to show the login view. Only the request that actually
// performs the authenticated-to-anonymous transition emits navigation, and
// never while the user is already on an authentication view: a failed
// login must read as a login error, not a redirect loop.
func (c *Client) handleUnauthorized() {
	if !c.session.expire() {
		return
	}
	if c.nav == nil {
		return
	}
	current := c.nav.CurrentRoute()
	if current == RouteLogin || current == RouteRegister {
		return
	}
	c.nav.Navigate(RouteLogin, current)
}
