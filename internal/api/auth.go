package api

import (
	"encoding/json"
	"net/http"

	"premiumshop-be/internal/user"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	token, u, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  u,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	token, u, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.ok(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u,
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.GetProfile(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"user": u})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var params user.UpdateProfileParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		badJSON(w)
		return
	}

	u, err := s.users.UpdateProfile(r.Context(), params)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"user": u})
}
