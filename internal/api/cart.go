package api

import (
	"encoding/json"
	"net/http"

	"premiumshop-be/internal/cart"
	"premiumshop-be/internal/utils"
	"premiumshop-be/internal/wishlist"
)

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		s.fail(w, cart.ErrUserNotAuthenticated)
		return
	}

	rc, err := s.carts.GetCart(r.Context(), userID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"cart": rc})
}

type putCartRequest struct {
	Items []cart.Item `json:"items"`
}

func (s *Server) handlePutCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		s.fail(w, cart.ErrUserNotAuthenticated)
		return
	}

	var req putCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	if err := s.carts.UpdateCart(r.Context(), userID, req.Items); err != nil {
		s.fail(w, err)
		return
	}

	s.metrics.CartMutations.Inc()
	s.ok(w, http.StatusOK, nil)
}

func (s *Server) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		s.fail(w, cart.ErrUserNotAuthenticated)
		return
	}

	items, err := s.wishlists.GetWishlist(r.Context(), userID)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"wishlist": items})
}

type putWishlistRequest struct {
	Items []wishlist.Item `json:"items"`
}

func (s *Server) handlePutWishlist(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		s.fail(w, cart.ErrUserNotAuthenticated)
		return
	}

	var req putWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	if err := s.wishlists.UpdateWishlist(r.Context(), userID, req.Items); err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, nil)
}
