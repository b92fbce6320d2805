package crmtest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thierryteisseire/0crm-skill/pkg/models/api"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy", Platform: "crmtest"})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.UserProfile{
		ID:        "user-crmtest",
		Email:     "tester@example.com",
		APIKey:    s.apiKey,
		CreatedAt: "2024-01-01T00:00:00Z",
	})
}

func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Contacts())
}

func (s *Server) handleGetContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	contact, ok := s.contacts[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("contact %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

// handleCreateContacts accepts a single contact object or an array of
// them. Records missing the required name land in `skipped` with a
// reason; the rest are created. The 201 body mirrors the real bulk
// contract.
func (s *Server) handleCreateContacts(w http.ResponseWriter, r *http.Request) {
	payloads, err := decodeOneOrMany[api.Contact](r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := api.BulkCreateResponse{
		Created: []json.RawMessage{},
		Skipped: []json.RawMessage{},
	}

	s.mu.Lock()
	for _, contact := range payloads {
		if contact.Name == "" {
			resp.Skipped = append(resp.Skipped, mustMarshal(map[string]any{
				"record": contact,
				"reason": "missing required field: name",
			}))
			continue
		}
		contact.ID = uuid.NewString()
		s.contacts[contact.ID] = contact
		s.contactOrder = append(s.contactOrder, contact.ID)
		resp.Created = append(resp.Created, mustMarshal(contact))
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch api.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contact, ok := s.contacts[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("contact %s not found", id))
		return
	}

	applyString(&contact.Name, patch.Name)
	applyString(&contact.Email, patch.Email)
	applyString(&contact.Phone, patch.Phone)
	applyString(&contact.Company, patch.Company)
	applyString(&contact.Role, patch.Role)
	applyString(&contact.Location, patch.Location)
	applyString(&contact.Notes, patch.Notes)
	s.contacts[id] = contact

	writeJSON(w, http.StatusOK, contact)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.contacts[id]; !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("contact %s not found", id))
		return
	}
	delete(s.contacts, id)
	s.contactOrder = removeID(s.contactOrder, id)

	writeJSON(w, http.StatusOK, api.DeleteResponse{Message: fmt.Sprintf("contact %s deleted", id)})
}

func (s *Server) handleListDeals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Deals())
}

func (s *Server) handleGetDeal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	deal, ok := s.deals[id]
	s.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("deal %s not found", id))
		return
	}
	writeJSON(w, http.StatusOK, deal)
}

func (s *Server) handleCreateDeals(w http.ResponseWriter, r *http.Request) {
	payloads, err := decodeOneOrMany[api.Deal](r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := api.BulkCreateResponse{
		Created: []json.RawMessage{},
		Skipped: []json.RawMessage{},
	}

	s.mu.Lock()
	for _, deal := range payloads {
		if deal.Title == "" || deal.Stage == "" {
			resp.Skipped = append(resp.Skipped, mustMarshal(map[string]any{
				"record": deal,
				"reason": "missing required field: title and stage are required",
			}))
			continue
		}
		deal.ID = uuid.NewString()
		s.deals[deal.ID] = deal
		s.dealOrder = append(s.dealOrder, deal.ID)
		resp.Created = append(resp.Created, mustMarshal(deal))
	}
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateDeal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch api.DealPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	deal, ok := s.deals[id]
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("deal %s not found", id))
		return
	}

	applyString(&deal.Title, patch.Title)
	applyString(&deal.Stage, patch.Stage)
	applyString(&deal.Priority, patch.Priority)
	applyString(&deal.Notes, patch.Notes)
	if patch.Value != nil {
		deal.Value = *patch.Value
	}
	s.deals[id] = deal

	writeJSON(w, http.StatusOK, deal)
}

func (s *Server) handleDeleteDeal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deals[id]; !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("deal %s not found", id))
		return
	}
	delete(s.deals, id)
	s.dealOrder = removeID(s.dealOrder, id)

	writeJSON(w, http.StatusOK, api.DeleteResponse{Message: fmt.Sprintf("deal %s deleted", id)})
}

// decodeOneOrMany accepts either a single JSON object or an array of
// them, the way the real collection endpoints do.
func decodeOneOrMany[T any](r io.Reader) ([]T, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body")
	}

	var many []T
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}

	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("malformed request body")
	}
	return []T{one}, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"error": detail})
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
