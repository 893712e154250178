package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, zap.NewNop())
}

func TestLoginCarriesSessionCookie(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/appadmin/login":
			assert.Equal(t, http.MethodPost, r.Method)
			http.SetCookie(w, &http.Cookie{Name: "admin_session", Value: "s3cret"})
			w.WriteHeader(http.StatusOK)
		case "/api/appadmin/me":
			cookie, err := r.Cookie("admin_session")
			require.NoError(t, err)
			assert.Equal(t, "s3cret", cookie.Value)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"admin":{"username":"root"}}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	ctx := context.Background()
	require.NoError(t, client.Login(ctx, "root", "pw"))

	admin, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
}

func TestMeAcceptsBareIdentity(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"username":"root"}`))
	})

	admin, err := client.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "root", admin.Username)
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "message field", status: 401, body: `{"message":"Invalid credentials"}`, expected: "Invalid credentials"},
		{name: "error field", status: 400, body: `{"error":"Bad request"}`, expected: "Bad request"},
		{name: "plain body", status: 500, body: `boom`, expected: "boom"},
		{name: "empty body falls back", status: 502, body: ``, expected: "Login failed."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := client.Login(context.Background(), "root", "pw")
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.expected, ErrorMessage(err, "Login failed."))
		})
	}
}

func TestListOwnersStatusQuery(t *testing.T) {
	var gotStatus []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotStatus = append(gotStatus, r.URL.Query().Get("status"))
		_, _ = w.Write([]byte(`[{"_id":"o1","storeName":"Shelf","status":"pending"}]`))
	})

	ctx := context.Background()
	owners, err := client.ListOwners(ctx, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "o1", owners[0].ID)

	// "all" means no status parameter at all
	_, err = client.ListOwners(ctx, domain.StatusAll)
	require.NoError(t, err)

	assert.Equal(t, []string{"pending", ""}, gotStatus)
}

func TestListEbooksEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bare array", body: `[{"_id":"b1","title":"Foo","price":100}]`},
		{name: "wrapped", body: `{"ebooks":[{"_id":"b1","title":"Foo","price":100}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/appadmin/ebooks", r.URL.Path)
				_, _ = w.Write([]byte(tc.body))
			})

			ebooks, err := client.ListEbooks(context.Background())
			require.NoError(t, err)
			require.Len(t, ebooks, 1)
			assert.Equal(t, "Foo", ebooks[0].Title)
		})
	}
}

func TestOwnerMutationVerbs(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		w.WriteHeader(http.StatusOK)
	})

	ctx := context.Background()
	require.NoError(t, client.ApproveOwner(ctx, "o1"))
	require.NoError(t, client.RejectOwner(ctx, "o1"))
	require.NoError(t, client.DeleteOwner(ctx, "o1"))

	assert.Equal(t, []call{
		{http.MethodPut, "/api/appadmin/owners/o1/approve"},
		{http.MethodPut, "/api/appadmin/owners/o1/reject"},
		{http.MethodDelete, "/api/appadmin/owners/o1"},
	}, calls)
}

func TestThemeRoundtrip(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appadmin/settings/theme", r.URL.Path)
		// the server is authoritative: it may answer with a different value
		// than the one requested
		_, _ = w.Write([]byte(`{"themeMode":"dark"}`))
	})

	ctx := context.Background()
	mode, err := client.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, mode)

	confirmed, err := client.UpdateTheme(ctx, domain.ThemeLight)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, confirmed)
}
