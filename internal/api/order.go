package api

import (
	"encoding/json"
	"net/http"

	"premiumshop-be/internal/checkout"
	"premiumshop-be/internal/order"
	"premiumshop-be/internal/payment"
)

type createOrderRequest struct {
	Items []order.Item  `json:"items"`
	Form  checkout.Form `json:"shipping"`
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	if fieldErr := req.Form.Validate(); fieldErr != nil {
		s.fail(w, fieldErr)
		return
	}

	o, err := s.orders.Create(r.Context(), order.CreateOrderInput{
		Items: req.Items,
		Shipping: order.ShippingInfo{
			Name:    req.Form.Name,
			Email:   req.Form.Email,
			Phone:   req.Form.Phone,
			Address: req.Form.Address,
			City:    req.Form.City,
			Note:    req.Form.Note,
		},
		PaymentMethod: req.Form.PaymentMethod,
		ShippingFee:   s.shippingFee,
	})
	if err != nil {
		s.fail(w, err)
		return
	}

	s.metrics.OrdersPlaced.Inc()

	instructions := payment.InjectVariables(
		payment.GetInstructions(o.PaymentMethod),
		payment.InstructionVars{
			"amount":          formatAmount(o.Total),
			"order_id":        o.ID,
			"merchant_number": s.merchantNumber,
		},
	)

	s.ok(w, http.StatusCreated, map[string]any{
		"order":        o,
		"instructions": instructions,
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListMine(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleTrackOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.orders.Track(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, map[string]any{"order": o})
}

type updateStatusRequest struct {
	Status order.Status `json:"status"`
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badJSON(w)
		return
	}

	if err := s.orders.UpdateStatus(r.Context(), r.PathValue("id"), req.Status); err != nil {
		s.fail(w, err)
		return
	}
	s.ok(w, http.StatusOK, nil)
}
