package client

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/auth"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

// Provider lazily constructs the credential store, session, and SDK client
// shared by all cropctl commands. It also hosts the CLI's navigator:
// forced logout from the request layer surfaces as printed guidance rather
// than a view change.
type Provider struct {
	serverURL string
	timeout   time.Duration

	mu    sync.Mutex
	route sdk.Route

	once    sync.Once
	session *sdk.Session
	client  *sdk.Client
	initErr error
}

// Ensure Provider implements sdk.Navigator at compile time.
var _ sdk.Navigator = (*Provider)(nil)

// NewProvider constructs a Provider bound to the given server URL.
func NewProvider(serverURL string, timeout time.Duration) *Provider {
	return &Provider{serverURL: serverURL, timeout: timeout, route: sdk.RouteHome}
}

func (p *Provider) init() {
	p.once.Do(func() {
		store, err := auth.NewFileStore()
		if err != nil {
			p.initErr = fmt.Errorf("create credential store: %w", err)
			return
		}
		p.session = sdk.NewSession(store)
		p.client = sdk.NewClient(
			p.serverURL,
			p.session,
			sdk.WithHTTPClient(&http.Client{Timeout: p.timeout}),
			sdk.WithNavigator(p),
		)
	})
}

// SDKClient returns the shared API client.
func (p *Provider) SDKClient() (*sdk.Client, error) {
	p.init()
	if p.initErr != nil {
		return nil, p.initErr
	}
	return p.client, nil
}

// Session returns the shared session controller.
func (p *Provider) Session() (*sdk.Session, error) {
	p.init()
	if p.initErr != nil {
		return nil, p.initErr
	}
	return p.session, nil
}

// Gate applies the route guard before a command touches the network,
// translating redirect verdicts into actionable errors. On success the
// command's route becomes the current one, so a mid-command forced logout
// knows where the user was.
func (p *Provider) Gate(route sdk.Route, access sdk.Access) error {
	session, err := p.Session()
	if err != nil {
		return err
	}
	verdict := sdk.Evaluate(access, session.Current(), route)
	if verdict.Allowed {
		p.setRoute(route)
		return nil
	}
	switch verdict.Redirect {
	case sdk.RouteLogin:
		return fmt.Errorf("not logged in; run `cropctl auth login` and retry")
	default:
		return fmt.Errorf("this action requires expert or staff privileges")
	}
}

// CurrentRoute implements sdk.Navigator.
func (p *Provider) CurrentRoute() sdk.Route {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.route
}

// Navigate implements sdk.Navigator. The CLI cannot switch views, so the
// login redirect becomes printed guidance.
func (p *Provider) Navigate(target, resume sdk.Route) {
	if target != sdk.RouteLogin {
		return
	}
	pterm.Warning.Println("Session expired; run `cropctl auth login` to continue.")
	if resume != "" && resume != sdk.RouteHome {
		pterm.Info.Printf("After logging in, retry what you were doing on %s.\n", resume)
	}
}

func (p *Provider) setRoute(route sdk.Route) {
	p.mu.Lock()
	p.route = route
	p.mu.Unlock()
}
