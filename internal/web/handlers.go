package web

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/johnbooks/admin-gateway/internal/audit"
	"github.com/johnbooks/admin-gateway/internal/domain"
	"github.com/johnbooks/admin-gateway/internal/ebooks"
	"github.com/johnbooks/admin-gateway/internal/owners"
	"github.com/johnbooks/admin-gateway/internal/session"
	"github.com/johnbooks/admin-gateway/internal/settings"
)

const recentEbookCount = 5

// Auditor receives one entry per mutating admin action.
type Auditor interface {
	Record(ctx context.Context, entry audit.Entry)
}

// Handler renders the admin console pages on top of the domain stores.
type Handler struct {
	sessions  *session.Store
	settings  *settings.Store
	owners    *owners.Store
	ebooks    *ebooks.Store
	templates *TemplateCache
	flasher   *Flasher
	theme     *ThemeState
	auditor   Auditor
	logger    *zap.Logger
}

func NewHandler(
	sessions *session.Store,
	settings *settings.Store,
	owners *owners.Store,
	ebooks *ebooks.Store,
	templates *TemplateCache,
	flasher *Flasher,
	theme *ThemeState,
	auditor Auditor,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sessions:  sessions,
		settings:  settings,
		owners:    owners,
		ebooks:    ebooks,
		templates: templates,
		flasher:   flasher,
		theme:     theme,
		auditor:   auditor,
		logger:    logger,
	}
}

// Routes registers every console route on the router.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/login", h.LoginGet).Methods(http.MethodGet)
	r.HandleFunc("/login", h.LoginPost).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)

	r.HandleFunc("/", h.RequireAdmin(h.Dashboard)).Methods(http.MethodGet)
	r.HandleFunc("/owners", h.RequireAdmin(h.OwnersPage)).Methods(http.MethodGet)
	r.HandleFunc("/owners/approve", h.RequireAdmin(h.ApproveOwner)).Methods(http.MethodPost)
	r.HandleFunc("/owners/reject", h.RequireAdmin(h.RejectOwner)).Methods(http.MethodPost)
	r.HandleFunc("/owners/delete", h.RequireAdmin(h.DeleteOwner)).Methods(http.MethodPost)
	r.HandleFunc("/bookstores", h.RequireAdmin(h.Bookstores)).Methods(http.MethodGet)
	r.HandleFunc("/books", h.RequireAdmin(h.Books)).Methods(http.MethodGet)
	r.HandleFunc("/settings", h.RequireAdmin(h.SettingsPage)).Methods(http.MethodGet)
	r.HandleFunc("/settings/theme", h.RequireAdmin(h.UpdateTheme)).Methods(http.MethodPost)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
}

// RequireAdmin ensures an authenticated session before the page handler runs.
// A held identity passes straight through; otherwise the session is checked
// against the backend once, and only a confirmed nil redirects to login.
func (h *Handler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.sessions.Admin() == nil {
			if h.sessions.CheckSession(r.Context()) == nil {
				h.flasher.Error(r.Context(), "Please log in as app admin.")
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
		}
		next(w, r)
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) {
	tmpl := h.templates.Get(name)
	if tmpl == nil {
		h.logger.Error("template not found", zap.String("name", name))
		http.Error(w, "Template not found", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Theme"] = h.theme.Mode()
	data["Admin"] = h.sessions.Admin()
	data["Flashes"] = h.flasher.Drain(w, r)
	data["CsrfField"] = csrf.TemplateField(r)
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render template", zap.String("name", name), zap.Error(err))
	}
}

func (h *Handler) LoginGet(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Admin() != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, r, "login.html", nil)
}

func (h *Handler) LoginPost(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if err := h.sessions.Login(r.Context(), username, password); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(r.Context())
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	h.owners.Load(r.Context(), domain.StatusAll)
	h.ebooks.Load(r.Context())

	allOwners := h.owners.Owners()
	allEbooks := h.ebooks.Ebooks()

	h.render(w, r, "dashboard.html", map[string]interface{}{
		"Stats":  domain.Summarize(allOwners, allEbooks),
		"Recent": domain.RecentEbooks(allEbooks, recentEbookCount),
	})
}

func (h *Handler) OwnersPage(w http.ResponseWriter, r *http.Request) {
	filter := domain.ParseOwnerStatus(r.URL.Query().Get("status"))
	h.owners.Load(r.Context(), filter)

	h.render(w, r, "owners.html", map[string]interface{}{
		"Owners": h.owners.Owners(),
		"Filter": filter,
	})
}

func (h *Handler) ApproveOwner(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	if id == "" {
		h.flasher.Error(r.Context(), "Missing owner ID.")
		h.redirectToOwners(w, r)
		return
	}
	// the store reloads the filtered list and flashes the outcome itself
	_ = h.owners.Approve(r.Context(), id)
	h.redirectToOwners(w, r)
}

func (h *Handler) RejectOwner(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	if id == "" {
		h.flasher.Error(r.Context(), "Missing owner ID.")
		h.redirectToOwners(w, r)
		return
	}
	_ = h.owners.Reject(r.Context(), id)
	h.redirectToOwners(w, r)
}

func (h *Handler) DeleteOwner(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	if id == "" {
		h.flasher.Error(r.Context(), "Missing owner ID.")
		h.redirectToOwners(w, r)
		return
	}
	if err := h.owners.Delete(r.Context(), id); errors.Is(err, owners.ErrDeleteInFlight) {
		h.flasher.Error(r.Context(), "Delete already in progress for this owner.")
	}
	h.redirectToOwners(w, r)
}

func (h *Handler) redirectToOwners(w http.ResponseWriter, r *http.Request) {
	target := "/owners?status=" + url.QueryEscape(string(h.owners.Filter()))
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) Bookstores(w http.ResponseWriter, r *http.Request) {
	filter := domain.StatusAll
	if raw := r.URL.Query().Get("status"); raw != "" {
		filter = domain.ParseOwnerStatus(raw)
	}
	h.owners.Load(r.Context(), filter)

	h.render(w, r, "bookstores.html", map[string]interface{}{
		"Owners": h.owners.Owners(),
		"Filter": filter,
	})
}

func (h *Handler) Books(w http.ResponseWriter, r *http.Request) {
	h.ebooks.Load(r.Context())
	query := r.URL.Query().Get("q")

	h.render(w, r, "books.html", map[string]interface{}{
		"Ebooks": h.ebooks.Search(query),
		"Total":  len(h.ebooks.Ebooks()),
		"Query":  query,
	})
}

func (h *Handler) SettingsPage(w http.ResponseWriter, r *http.Request) {
	h.settings.FetchTheme(r.Context())

	h.render(w, r, "settings.html", map[string]interface{}{
		"Mode": h.settings.Mode(),
	})
}

func (h *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	mode := domain.ParseThemeMode(r.FormValue("theme"))
	_ = h.settings.UpdateTheme(r.Context(), mode)
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
