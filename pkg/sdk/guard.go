package sdk

// Route names a navigable view in the hosting application. The constants
// cover the well-known views; hosts may define their own.
type Route string

const (
	RouteHome     Route = "/"
	RouteLogin    Route = "/login"
	RouteRegister Route = "/register"
	RouteUpload   Route = "/upload"
	RouteHistory  Route = "/history"
	RouteDiseases Route = "/diseases"
	RouteAdmin    Route = "/admin"
)

// Access is a view's declared access requirement.
type Access int

const (
	// AccessPublic renders for anyone.
	AccessPublic Access = iota
	// AccessSession requires any authenticated identity.
	AccessSession
	// AccessElevated requires an expert or staff identity.
	AccessElevated
)

// Verdict is the guard's decision for one navigation. When Allowed is
// false, Redirect names where the host should send the user instead;
// Resume, when set, is the originally requested route to return to after a
// successful login.
type Verdict struct {
	Allowed  bool
	Redirect Route
	Resume   Route
}

// Evaluate decides whether a view with the given access requirement may
// render for the identity (nil when anonymous). Authenticated but
// unprivileged requests for elevated views go home rather than to login:
// re-authenticating would not grant the missing role.
func Evaluate(access Access, identity *Identity, requested Route) Verdict {
	authenticated := identity != nil && identity.AccessToken != ""
	switch access {
	case AccessSession:
		if !authenticated {
			return Verdict{Redirect: RouteLogin, Resume: requested}
		}
	case AccessElevated:
		if !authenticated {
			return Verdict{Redirect: RouteLogin, Resume: requested}
		}
		if !identity.Elevated() {
			return Verdict{Redirect: RouteHome}
		}
	}
	return Verdict{Allowed: true}
}

// Navigator receives forced navigation from the request layer, decoupling
// it from any concrete view mechanism: a GUI routes, the CLI prints
// guidance.
type Navigator interface {
	// CurrentRoute is the route the user is on when the event fires.
	CurrentRoute() Route
	// Navigate sends the user to target; resume, when non-empty, is the
	// route to return to afterwards.
	Navigate(target, resume Route)
}
