package gateway

import (
    "context"
    "encoding/json"
    "net/http"

    "github.com/example/meeting-room-web/internal/model"
)

// ListUsers returns every registered user (GET /users), cached when a read
// cache is configured.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
    var users []model.User
    if err := c.getJSONCached(ctx, "list users", "/users", "", &users); err != nil {
        return nil, err
    }
    return users, nil
}

// CurrentUser resolves the account behind a backend bearer token
// (GET /users/me).  A rejected or expired token surfaces as a *FetchFailure
// with the backend's status; callers treat any failure as "not
// authenticated".
func (c *Client) CurrentUser(ctx context.Context, token string) (*model.User, error) {
    var user model.User
    if err := c.getJSON(ctx, "current user", "/users/me", token, &user); err != nil {
        return nil, err
    }
    return &user, nil
}

// loginRequest is the body for POST /login.  The backend expects the numeric
// account id, not an email.
type loginRequest struct {
    UserID   int    `json:"user_id"`
    Password string `json:"password"`
}

type loginResponse struct {
    Token string `json:"token"`
}

// Login exchanges credentials for an opaque bearer token (POST /login).
func (c *Client) Login(ctx context.Context, userID int, password string) (string, error) {
    raw, err := c.do(ctx, "login", http.MethodPost, "/login", "", loginRequest{UserID: userID, Password: password})
    if err != nil {
        return "", err
    }
    var resp loginResponse
    if err := json.Unmarshal(raw, &resp); err != nil {
        return "", &FetchFailure{Op: "login", Err: err}
    }
    return resp.Token, nil
}
