//go:generate mockgen -source ./api.go -destination=./mocks/api.go -package=backend_mocks
package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/johnbooks/admin-gateway/internal/domain"
)

// API maps the gateway's logical operations onto the marketplace backend's
// REST surface. The backend owns every business rule; these calls only
// request and mirror.
type API interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.Admin, error)
	ListOwners(ctx context.Context, status domain.OwnerStatus) ([]domain.Owner, error)
	ApproveOwner(ctx context.Context, id string) error
	RejectOwner(ctx context.Context, id string) error
	DeleteOwner(ctx context.Context, id string) error
	ListEbooks(ctx context.Context) ([]domain.Ebook, error)
	GetTheme(ctx context.Context) (domain.ThemeMode, error)
	UpdateTheme(ctx context.Context, mode domain.ThemeMode) (domain.ThemeMode, error)
}

var _ API = (*Client)(nil)

func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	return c.request(ctx, http.MethodPost, "/api/appadmin/login", nil, payload, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/api/appadmin/logout", nil, nil, nil)
}

func (c *Client) Me(ctx context.Context) (*domain.Admin, error) {
	// Depending on the backend revision the identity arrives either wrapped
	// in {"admin": {...}} or as the bare object.
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/api/appadmin/me", nil, nil, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		Admin *domain.Admin `json:"admin"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Admin != nil {
		return envelope.Admin, nil
	}

	var admin domain.Admin
	if err := json.Unmarshal(raw, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) ListOwners(ctx context.Context, status domain.OwnerStatus) ([]domain.Owner, error) {
	var query url.Values
	if status != "" && status != domain.StatusAll {
		query = url.Values{"status": {string(status)}}
	}

	var owners []domain.Owner
	if err := c.request(ctx, http.MethodGet, "/api/appadmin/owners", query, nil, &owners); err != nil {
		return nil, err
	}
	return owners, nil
}

func (c *Client) ApproveOwner(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPut, "/api/appadmin/owners/"+url.PathEscape(id)+"/approve", nil, nil, nil)
}

func (c *Client) RejectOwner(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodPut, "/api/appadmin/owners/"+url.PathEscape(id)+"/reject", nil, nil, nil)
}

func (c *Client) DeleteOwner(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/appadmin/owners/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) ListEbooks(ctx context.Context) ([]domain.Ebook, error) {
	// Bare array or {"ebooks": [...]} depending on revision.
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/api/appadmin/ebooks", nil, nil, &raw); err != nil {
		return nil, err
	}

	var ebooks []domain.Ebook
	if err := json.Unmarshal(raw, &ebooks); err == nil {
		return ebooks, nil
	}

	var envelope struct {
		Ebooks []domain.Ebook `json:"ebooks"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Ebooks, nil
}

type themePayload struct {
	ThemeMode domain.ThemeMode `json:"themeMode"`
}

func (c *Client) GetTheme(ctx context.Context) (domain.ThemeMode, error) {
	var out themePayload
	if err := c.request(ctx, http.MethodGet, "/api/appadmin/settings/theme", nil, nil, &out); err != nil {
		return "", err
	}
	return out.ThemeMode, nil
}

func (c *Client) UpdateTheme(ctx context.Context, mode domain.ThemeMode) (domain.ThemeMode, error) {
	var out themePayload
	in := themePayload{ThemeMode: mode}
	if err := c.request(ctx, http.MethodPost, "/api/appadmin/settings/theme", nil, in, &out); err != nil {
		return "", err
	}
	return out.ThemeMode, nil
}
