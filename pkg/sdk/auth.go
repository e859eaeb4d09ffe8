package sdk

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsExpert bool   `json:"is_expert"`
}

// registerResponse accepts both registration reply shapes: the full
// login-style {access, refresh, user}, and the tokenless variant that
// returns the created profile fields at the top level.
type registerResponse struct {
	Identity
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsExpert bool   `json:"is_expert"`
}

// Login exchanges a username and password for a bearer credential. On
// success the identity is persisted and every subsequent request carries
// its token. On failure the session is left untouched and the server's
// most specific message is returned.
func (c *Client) Login(ctx context.Context, username, password string) (*Identity, error) {
	if username == "" {
		return nil, validationError("username", "username is required")
	}
	if password == "" {
		return nil, validationError("password", "password is required")
	}

	var identity Identity
	if err := c.Do(ctx, http.MethodPost, "api/login/", loginRequest{Username: username, Password: password}, &identity); err != nil {
		return nil, err
	}
	if identity.AccessToken == "" {
		return nil, &Error{Kind: KindAPI, Message: "login response carried no access token"}
	}
	if err := c.session.establish(&identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Register creates an account, requesting (but never assuming) expert
// privileges: the server decides the role actually granted, and the
// returned profile is the only truth about it. When the response carries
// tokens the new account is authenticated immediately, exactly as after
// Login; a tokenless response leaves the session anonymous and the caller
// must log in explicitly.
func (c *Client) Register(ctx context.Context, username, password string, requestExpert bool) (*Identity, error) {
	if username == "" {
		return nil, validationError("username", "username is required")
	}
	if password == "" {
		return nil, validationError("password", "password is required")
	}

	var resp registerResponse
	req := registerRequest{Username: username, Password: password, IsExpert: requestExpert}
	if err := c.Do(ctx, http.MethodPost, "api/register/", req, &resp); err != nil {
		return nil, err
	}

	identity := resp.Identity
	if identity.AccessToken == "" {
		identity.Profile = Profile{ID: resp.ID, Username: resp.Username, IsExpert: resp.IsExpert}
		return &identity, nil
	}
	if err := c.session.establish(&identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

// Logout drops the current identity and its persisted record. No network
// call is made; the server-side token simply ages out.
func (c *Client) Logout() {
	c.session.Logout()
}
