// Package crmtest is an in-memory stand-in for the Zero CRM API, used by
// client tests and offline demo runs. It implements the consumed endpoint
// surface with the documented status codes; it is not the CRM product.
package crmtest

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/thierryteisseire/0crm-skill/pkg/models/api"
)

// Server holds the fake API state. All fields are guarded by mu; the
// handler is safe for concurrent requests.
type Server struct {
	router *chi.Mux
	apiKey string

	mu       sync.Mutex
	contacts map[string]api.Contact
	deals    map[string]api.Deal
	// contactOrder/dealOrder preserve insertion order for list responses.
	contactOrder []string
	dealOrder    []string
}

// NewServer creates a fake CRM API that accepts the given key on its
// authenticated routes.
func NewServer(logger zerolog.Logger, apiKey string) *Server {
	s := &Server{
		apiKey:   apiKey,
		contacts: make(map[string]api.Contact),
		deals:    make(map[string]api.Deal),
	}

	router := chi.NewRouter()
	router.Use(requestLogger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/api/health", s.handleHealth)

	router.Group(func(r chi.Router) {
		r.Use(s.requireAPIKey)

		r.Get("/api/user/profile", s.handleProfile)

		r.Get("/api/contacts", s.handleListContacts)
		r.Post("/api/contacts", s.handleCreateContacts)
		r.Get("/api/contacts/{id}", s.handleGetContact)
		r.Patch("/api/contacts/{id}", s.handleUpdateContact)
		r.Delete("/api/contacts/{id}", s.handleDeleteContact)

		r.Get("/api/deals", s.handleListDeals)
		r.Post("/api/deals", s.handleCreateDeals)
		r.Get("/api/deals/{id}", s.handleGetDeal)
		r.Patch("/api/deals/{id}", s.handleUpdateDeal)
		r.Delete("/api/deals/{id}", s.handleDeleteDeal)
	})

	s.router = router
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != s.apiKey {
			writeError(w, http.StatusUnauthorized, "invalid or missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func requestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			reqLogger := logger.With().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := reqLogger.WithContext(req.Context())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// Contacts returns a snapshot of the stored contacts in insertion order.
func (s *Server) Contacts() []api.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Contact, 0, len(s.contactOrder))
	for _, id := range s.contactOrder {
		out = append(out, s.contacts[id])
	}
	return out
}

// Deals returns a snapshot of the stored deals in insertion order.
func (s *Server) Deals() []api.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]api.Deal, 0, len(s.dealOrder))
	for _, id := range s.dealOrder {
		out = append(out, s.deals[id])
	}
	return out
}
