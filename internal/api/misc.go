package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"premiumshop-be/internal/address"

	"github.com/google/uuid"
)

func formatAmount(n int64) string {
	return strconv.FormatInt(n, 10)
}

func (s *Server) handleListAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := s.addresses.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"addresses": addrs})
}

func (s *Server) handleCreateAddress(w http.ResponseWriter, r *http.Request) {
	var input address.CreateAddressInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}

	addr, err := s.addresses.Create(r.Context(), input)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusCreated, map[string]any{"address": addr})
}

func (s *Server) parseAddressID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.fail(w, address.ErrAddressNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) handleDeleteAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAddressID(w, r)
	if !ok {
		return
	}

	if err := s.addresses.Delete(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, nil)
}

func (s *Server) handleSetDefaultAddress(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseAddressID(w, r)
	if !ok {
		return
	}

	if err := s.addresses.SetDefaultAddress(r.Context(), id); err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, nil)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	added, err := s.news.Subscribe(req.Email)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"subscribed": added})
}
