package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	gorillasessions "github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/audit"
	backend_mocks "github.com/johnbooks/admin-gateway/internal/backend/mocks"
	"github.com/johnbooks/admin-gateway/internal/domain"
	"github.com/johnbooks/admin-gateway/internal/ebooks"
	"github.com/johnbooks/admin-gateway/internal/owners"
	"github.com/johnbooks/admin-gateway/internal/session"
	"github.com/johnbooks/admin-gateway/internal/settings"
)

type recordingAuditor struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (a *recordingAuditor) Record(_ context.Context, entry audit.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
}

func (a *recordingAuditor) Entries() []audit.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]audit.Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

type fixture struct {
	api      *backend_mocks.MockAPI
	sessions *session.Store
	theme    *ThemeState
	auditor  *recordingAuditor
	server   *httptest.Server
	client   *http.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := backend_mocks.NewMockAPI(ctrl)
	log := zap.NewNop()

	cookieStore := gorillasessions.NewCookieStore([]byte("test-session-key"))
	flasher := NewFlasher(cookieStore, log)
	theme := NewThemeState()

	sessionStore := session.NewStore(api, flasher, log)
	cache := settings.NewThemeCache(filepath.Join(t.TempDir(), "theme_cache.json"))
	settingsStore := settings.NewStore(api, cache, theme, flasher, log)
	ownerStore := owners.NewStore(api, flasher, log)
	ebookStore := ebooks.NewStore(api, flasher, log)

	templates := NewTemplateCache(log)
	require.NoError(t, templates.Load(filepath.Join("..", "..", "web", "templates")))

	auditor := &recordingAuditor{}
	handler := NewHandler(sessionStore, settingsStore, ownerStore, ebookStore,
		templates, flasher, theme, auditor, log)

	router := mux.NewRouter()
	handler.Routes(router)

	server := httptest.NewServer(flasher.Bind(handler.auditMiddleware(router)))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &fixture{
		api:      api,
		sessions: sessionStore,
		theme:    theme,
		auditor:  auditor,
		server:   server,
		client:   &http.Client{Jar: jar},
	}
}

func (f *fixture) authenticate(t *testing.T) {
	t.Helper()
	f.api.EXPECT().Me(gomock.Any()).Return(&domain.Admin{Username: "root"}, nil)
	require.NotNil(t, f.sessions.CheckSession(context.Background()))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestGuardRedirectsAnonymousToLogin(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().Me(gomock.Any()).Return(nil, errors.New("unauthorized"))

	resp, err := f.client.Get(f.server.URL + "/")
	require.NoError(t, err)
	body := readBody(t, resp)

	// followed the redirect to the login page, flash intact
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Please log in as app admin.")
}

func TestLoginFlowLandsOnDashboard(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.api.EXPECT().Login(gomock.Any(), "root", "pw").Return(nil),
		f.api.EXPECT().Me(gomock.Any()).Return(&domain.Admin{Username: "root"}, nil),
	)
	f.api.EXPECT().ListOwners(gomock.Any(), domain.StatusAll).Return([]domain.Owner{
		{ID: "o1", StoreName: "Paper Trail", Status: domain.StatusPending},
		{ID: "o2", StoreName: "Inkwell", Status: domain.StatusApproved},
	}, nil)
	f.api.EXPECT().ListEbooks(gomock.Any()).Return([]domain.Ebook{
		{ID: "b1", Title: "The Long Rains"},
	}, nil)

	resp, err := f.client.PostForm(f.server.URL+"/login", url.Values{
		"username": {"root"},
		"password": {"pw"},
	})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, "/", resp.Request.URL.Path)
	assert.Contains(t, body, "Welcome back, root.")
	assert.Contains(t, body, "The Long Rains")
}

func TestFailedLoginStaysOnLoginPage(t *testing.T) {
	f := newFixture(t)

	f.api.EXPECT().Login(gomock.Any(), "root", "nope").Return(errors.New("invalid"))

	resp, err := f.client.PostForm(f.server.URL+"/login", url.Values{
		"username": {"root"},
		"password": {"nope"},
	})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Login failed.")
	assert.Nil(t, f.sessions.Admin())
}

func TestApproveOwnerReloadsAndAudits(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	gomock.InOrder(
		f.api.EXPECT().ApproveOwner(gomock.Any(), "o1").Return(nil),
		// reload inside the store, then the page render after the redirect
		f.api.EXPECT().ListOwners(gomock.Any(), domain.StatusPending).Return([]domain.Owner{}, nil),
		f.api.EXPECT().ListOwners(gomock.Any(), domain.StatusPending).Return([]domain.Owner{}, nil),
	)

	resp, err := f.client.PostForm(f.server.URL+"/owners/approve", url.Values{"id": {"o1"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, "/owners", resp.Request.URL.Path)
	assert.Contains(t, body, "Owner approved.")

	entries := f.auditor.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "approve_owner", entries[0].Action)
	assert.Equal(t, "o1", entries[0].OwnerID)
	assert.Equal(t, "root", entries[0].Admin)
	assert.Equal(t, http.MethodPost, entries[0].Method)
}

func TestDeleteOwnerFailureSurfacesBackendMessage(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.api.EXPECT().ListOwners(gomock.Any(), domain.StatusAll).Return([]domain.Owner{
		{ID: "o1", StoreName: "Paper Trail"},
	}, nil).Times(2)

	// seed the held collection via the page
	resp, err := f.client.Get(f.server.URL + "/owners?status=all")
	require.NoError(t, err)
	readBody(t, resp)

	f.api.EXPECT().DeleteOwner(gomock.Any(), "o1").Return(errors.New("backend down"))

	resp, err = f.client.PostForm(f.server.URL+"/owners/delete", url.Values{"id": {"o1"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "Failed to delete owner.")
	// the record survived the failed delete
	assert.Contains(t, body, "Paper Trail")
}

func TestBooksSearchFiltersLocally(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.api.EXPECT().ListEbooks(gomock.Any()).Return([]domain.Ebook{
		{ID: "b1", Title: "Go Patterns"},
		{ID: "b2", Title: "Sourdough at Home"},
	}, nil)

	resp, err := f.client.Get(f.server.URL + "/books?q=go")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Contains(t, body, "Go Patterns")
	assert.NotContains(t, body, "Sourdough at Home")
	assert.Contains(t, body, "Showing 1 of 2")

	// reads leave no audit trail
	assert.Empty(t, f.auditor.Entries())
}

func TestThemeUpdateAppliesServerConfirmedValue(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	gomock.InOrder(
		// the backend confirms dark even though light was requested
		f.api.EXPECT().UpdateTheme(gomock.Any(), domain.ThemeLight).Return(domain.ThemeDark, nil),
		f.api.EXPECT().GetTheme(gomock.Any()).Return(domain.ThemeDark, nil),
	)

	resp, err := f.client.PostForm(f.server.URL+"/settings/theme", url.Values{"theme": {"light"}})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, "/settings", resp.Request.URL.Path)
	assert.Contains(t, body, "Theme updated successfully")
	assert.Contains(t, body, `class="theme-dark"`)
	assert.Equal(t, domain.ThemeDark, f.theme.Mode())
}

func TestLogoutRedirectsToLogin(t *testing.T) {
	f := newFixture(t)
	f.authenticate(t)

	f.api.EXPECT().Logout(gomock.Any()).Return(nil)

	resp, err := f.client.PostForm(f.server.URL+"/logout", url.Values{})
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, "/login", resp.Request.URL.Path)
	assert.Contains(t, body, "Logged out.")
	assert.Nil(t, f.sessions.Admin())
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)

	resp, err := f.client.Get(f.server.URL + "/healthz")
	require.NoError(t, err)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}
