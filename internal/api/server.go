package api

import (
	"net/http"

	"premiumshop-be/internal/address"
	"premiumshop-be/internal/cart"
	"premiumshop-be/internal/metrics"
	"premiumshop-be/internal/middleware"
	"premiumshop-be/internal/newsletter"
	"premiumshop-be/internal/order"
	"premiumshop-be/internal/product"
	"premiumshop-be/internal/review"
	"premiumshop-be/internal/user"
	"premiumshop-be/internal/wishlist"

	"premiumshop-be/internal/logger"
)

// Server owns the HTTP surface. Every response uses the same envelope:
// {"success": true, ...} on success, {"success": false, "error": "..."}
// on failure.
type Server struct {
	users     user.Service
	products  product.Service
	carts     cart.Repository
	wishlists wishlist.Repository
	orders    order.Service
	reviews   review.Service
	addresses address.Service
	news      *newsletter.Service
	metrics   *metrics.Registry

	shippingFee    int64
	merchantNumber string
}

type Config struct {
	Users     user.Service
	Products  product.Service
	Carts     cart.Repository
	Wishlists wishlist.Repository
	Orders    order.Service
	Reviews   review.Service
	Addresses address.Service
	News      *newsletter.Service
	Metrics   *metrics.Registry

	ShippingFee    int64
	MerchantNumber string
}

func NewServer(cfg Config) *Server {
	return &Server{
		users:          cfg.Users,
		products:       cfg.Products,
		carts:          cfg.Carts,
		wishlists:      cfg.Wishlists,
		orders:         cfg.Orders,
		reviews:        cfg.Reviews,
		addresses:      cfg.Addresses,
		news:           cfg.News,
		metrics:        cfg.Metrics,
		shippingFee:    cfg.ShippingFee,
		merchantNumber: cfg.MerchantNumber,
	}
}

// Routes assembles the mux with the full middleware chain.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("GET /api/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /api/profile", s.handleUpdateProfile)

	// Catalog
	mux.HandleFunc("GET /api/products", s.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", s.handleGetProduct)
	mux.HandleFunc("GET /api/products/{id}/reviews", s.handleListReviews)
	mux.HandleFunc("POST /api/products/{id}/reviews", s.handleAddReview)

	// Cart and wishlist mirrors
	mux.HandleFunc("GET /api/cart", s.handleGetCart)
	mux.HandleFunc("PUT /api/cart", s.handlePutCart)
	mux.HandleFunc("GET /api/wishlist", s.handleGetWishlist)
	mux.HandleFunc("PUT /api/wishlist", s.handlePutWishlist)

	// Orders
	mux.HandleFunc("POST /api/orders", s.handleCreateOrder)
	mux.HandleFunc("GET /api/orders", s.handleListOrders)
	mux.HandleFunc("GET /api/orders/{id}", s.handleTrackOrder)

	// Addresses
	mux.HandleFunc("GET /api/addresses", s.handleListAddresses)
	mux.HandleFunc("POST /api/addresses", s.handleCreateAddress)
	mux.HandleFunc("DELETE /api/addresses/{id}", s.handleDeleteAddress)
	mux.HandleFunc("POST /api/addresses/{id}/default", s.handleSetDefaultAddress)

	// Newsletter
	mux.HandleFunc("POST /api/newsletter", s.handleSubscribe)

	// Admin panel
	mux.HandleFunc("POST /api/admin/products", s.handleCreateProduct)
	mux.HandleFunc("PUT /api/admin/products/{id}", s.handleUpdateProduct)
	mux.HandleFunc("DELETE /api/admin/products/{id}", s.handleDeleteProduct)
	mux.HandleFunc("GET /api/admin/dashboard", s.handleDashboard)
	mux.HandleFunc("PATCH /api/admin/orders/{id}/status", s.handleUpdateOrderStatus)

	var h http.Handler = mux
	h = middleware.RateLimit(h)
	h = middleware.Logging(s.metrics)(h)
	h = middleware.Auth(h)
	h = middleware.CORS(h)
	h = logger.RequestIDMiddleware(h)
	return h
}
