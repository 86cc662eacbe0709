package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"premiumshop-be/internal/product"
	"premiumshop-be/internal/review"
)

func parseFilter(r *http.Request) (*product.Filter, string, *int32, *int32) {
	q := r.URL.Query()
	filter := &product.Filter{}

	if v := q.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := q.Get("brand"); v != "" {
		filter.Brand = &v
	}
	if v := q.Get("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MinPrice = &n
		}
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.MaxPrice = &n
		}
	}
	if v := q.Get("min_rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = &f
		}
	}
	if v := q.Get("search"); v != "" {
		filter.Search = &v
	}

	var limit, page *int32
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			l := int32(n)
			limit = &l
		}
	}
	if v := q.Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil {
			p := int32(n)
			page = &p
		}
	}

	return filter, q.Get("sort"), limit, page
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter, sortBy, limit, page := parseFilter(r)

	products, err := s.products.List(r.Context(), filter, sortBy, limit, page)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.products.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"product": p})
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.reviews.ListByProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"reviews": reviews})
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var input review.NewReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}

	rv, summary, err := s.reviews.Add(r.Context(), r.PathValue("id"), input)
	if err != nil {
		s.fail(w, err)
		return
	}

	s.metrics.ReviewsAdded.Inc()
	s.ok(w, http.StatusCreated, map[string]any{
		"review":  rv,
		"summary": summary,
	})
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.NewProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}

	p, err := s.products.Create(r.Context(), input)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusCreated, map[string]any{"product": p})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.UpdateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		badJSON(w)
		return
	}

	p, err := s.products.Update(r.Context(), r.PathValue("id"), input)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"product": p})
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.products.DashboardStats(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{
		"stats":   stats,
		"process": s.metrics.Snapshot(),
	})
}
