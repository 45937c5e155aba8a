package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"alpha-listings/internal/listing"
	"alpha-listings/internal/model"
	"alpha-listings/internal/notify"
	"alpha-listings/internal/render"
	"alpha-listings/internal/services/catalog"
)

// Catalog is the read side the handlers need.
type Catalog interface {
	Items() []model.Item
	Find(id int) (model.Item, error)
}

// Job runs in the background when triggered over HTTP.
type Job interface {
	Run(ctx context.Context)
}

type Handler struct {
	catalog  Catalog
	notifier notify.Notifier
	digest   Job
	html     *render.HTML
	pageSize int
}

func NewHandler(cat Catalog, notifier notify.Notifier, digest Job, pageSize int) *Handler {
	return &Handler{
		catalog:  cat,
		notifier: notifier,
		digest:   digest,
		html:     render.NewHTML(),
		pageSize: listing.ClampPageSize(pageSize),
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Get("/projects", h.handleProjectsPage)
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", h.handleListProjects)
		r.Get("/projects/{id}", h.handleGetProject)
		r.Post("/projects/{id}/apply", h.handleApply)
		r.Post("/digest", h.handleDigest)
	})
	r.Route("/debug/pprof", func(r chi.Router) {
		r.Get("/", pprof.Index)
		r.Get("/cmdline", pprof.Cmdline)
		r.Get("/profile", pprof.Profile)
		r.Get("/symbol", pprof.Symbol)
		r.Post("/symbol", pprof.Symbol)
		r.Get("/trace", pprof.Trace)
		r.Get("/allocs", pprof.Handler("allocs").ServeHTTP)
		r.Get("/block", pprof.Handler("block").ServeHTTP)
		r.Get("/goroutine", pprof.Handler("goroutine").ServeHTTP)
		r.Get("/heap", pprof.Handler("heap").ServeHTTP)
		r.Get("/mutex", pprof.Handler("mutex").ServeHTTP)
		r.Get("/threadcreate", pprof.Handler("threadcreate").ServeHTTP)
	})
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type listResponse struct {
	Items     []model.Item `json:"items"`
	Total     int          `json:"total"`
	Displayed int          `json:"displayed"`
	HasMore   bool         `json:"has_more"`
	Page      int          `json:"page"`
	PageSize  int          `json:"page_size"`
}

func (h *Handler) handleListProjects(w http.ResponseWriter, r *http.Request) {
	state, ok := h.parseState(w, r)
	if !ok {
		return
	}

	view := listing.Build(h.catalog.Items(), state)
	items := view.Items
	if items == nil {
		items = []model.Item{}
	}
	WriteJSON(w, http.StatusOK, listResponse{
		Items:     items,
		Total:     view.Total,
		Displayed: view.Displayed,
		HasMore:   view.HasMore,
		Page:      state.PageIndex,
		PageSize:  state.PageSize,
	})
}

func (h *Handler) handleProjectsPage(w http.ResponseWriter, r *http.Request) {
	state, ok := h.parseState(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// The skeleton fragment is what the page swaps in while the next
	// request is in flight; it holds one placeholder per card.
	if r.URL.Query().Get("partial") == "skeleton" {
		if err := h.html.Skeleton(w, state.PageSize); err != nil {
			log.Printf("render skeleton: %v", err)
		}
		return
	}

	if err := h.html.Page(w, listing.Build(h.catalog.Items(), state)); err != nil {
		log.Printf("render projects page: %v", err)
	}
}

func (h *Handler) handleGetProject(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findProject(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) handleApply(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findProject(w, r)
	if !ok {
		return
	}

	h.notifier.Notify(notify.Notification{
		Level:   notify.LevelInfo,
		Message: fmt.Sprintf("Applying to: %s", item.Title),
	})
	WriteJSON(w, http.StatusAccepted, map[string]any{"message": "Application started", "project": item})
}

func (h *Handler) handleDigest(w http.ResponseWriter, r *http.Request) {
	go h.digest.Run(context.Background())
	WriteJSON(w, http.StatusAccepted, map[string]string{"message": "Digest started"})
}

func (h *Handler) parseState(w http.ResponseWriter, r *http.Request) (listing.State, bool) {
	q := r.URL.Query()
	state, err := listing.ParseState(q.Get("q"), q.Get("category"), q.Get("budget"), q.Get("sort"), q.Get("page"), q.Get("page_size"))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_argument", err.Error())
		return listing.State{}, false
	}
	if q.Get("page_size") == "" {
		state.PageSize = h.pageSize
	}
	return state, true
}

func (h *Handler) findProject(w http.ResponseWriter, r *http.Request) (model.Item, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_argument", "invalid project id")
		return model.Item{}, false
	}

	item, err := h.catalog.Find(id)
	if errors.Is(err, catalog.ErrNotFound) {
		WriteError(w, r, http.StatusNotFound, "not_found", err.Error())
		return model.Item{}, false
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal", err.Error())
		return model.Item{}, false
	}
	return item, true
}
