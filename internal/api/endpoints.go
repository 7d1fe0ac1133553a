package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"

	"maidadmin/internal/domain"
)

// Credentials is the login request body
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Account is the body for registration and new-admin requests
type Account struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Tokens is returned by login, register and refresh
type Tokens struct {
	Token        string
	RefreshToken string
	Username     string
}

// Login exchanges credentials for tokens
func (c *Client) Login(ctx context.Context, creds Credentials) (Tokens, error) {
	body, err := c.do(ctx, http.MethodPost, "/Auth/login", creds, false)
	if err != nil {
		return Tokens{}, fmt.Errorf("login: %w", err)
	}
	return decodeTokens(body, "login response")
}

// Register creates a regular account and signs it in
func (c *Client) Register(ctx context.Context, account Account) (Tokens, error) {
	body, err := c.do(ctx, http.MethodPost, "/Auth/register", account, false)
	if err != nil {
		return Tokens{}, fmt.Errorf("register: %w", err)
	}
	return decodeTokens(body, "register response")
}

// Logout revokes a refresh token. The message the server returns is passed
// back for display.
func (c *Client) Logout(ctx context.Context, refreshToken string) (string, error) {
	body, err := c.do(ctx, http.MethodPost, "/Auth/logout", refreshToken, true)
	if err != nil {
		return "", fmt.Errorf("logout: %w", err)
	}
	return gjson.GetBytes(body, "message").String(), nil
}

// Refresh trades a refresh token for a new token pair
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	body, err := c.do(ctx, http.MethodPost, "/Auth/refresh", refreshToken, false)
	if err != nil {
		return Tokens{}, fmt.Errorf("refresh: %w", err)
	}
	return decodeTokens(body, "refresh response")
}

// AdminData fetches every user, project and dataset
func (c *Client) AdminData(ctx context.Context) (domain.AdminData, error) {
	body, err := c.do(ctx, http.MethodGet, "/Admin/admin-data", nil, true)
	if err != nil {
		return domain.AdminData{}, fmt.Errorf("admin data: %w", err)
	}
	return DecodeAdminData(body)
}

// Block blocks a user
func (c *Client) Block(ctx context.Context, userID string) error {
	if _, err := c.do(ctx, http.MethodPost, "/Admin/block/"+url.PathEscape(userID), nil, true); err != nil {
		return fmt.Errorf("block user %s: %w", userID, err)
	}
	return nil
}

// Unblock unblocks a user
func (c *Client) Unblock(ctx context.Context, userID string) error {
	if _, err := c.do(ctx, http.MethodPost, "/Admin/unblock/"+url.PathEscape(userID), nil, true); err != nil {
		return fmt.Errorf("unblock user %s: %w", userID, err)
	}
	return nil
}

// NewAdmin creates an administrator account
func (c *Client) NewAdmin(ctx context.Context, account Account) error {
	if _, err := c.do(ctx, http.MethodPost, "/Admin/newAdmin", account, true); err != nil {
		return fmt.Errorf("create admin %s: %w", account.Username, err)
	}
	return nil
}

// Delete removes one record
func (c *Client) Delete(ctx context.Context, resource domain.Resource, id string) error {
	path := "/Admin/" + resource.Singular() + "/" + url.PathEscape(id)
	if _, err := c.do(ctx, http.MethodDelete, path, nil, true); err != nil {
		return fmt.Errorf("delete %s %s: %w", resource.Singular(), id, err)
	}
	return nil
}
