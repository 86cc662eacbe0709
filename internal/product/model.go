package product

import "time"

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand,omitempty"`
	Price       int64   `json:"price"`
	Stock       int     `json:"stock"`
	SoldCount   int     `json:"sold_count"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	ImageURL    string  `json:"image,omitempty"`
	IsActive    bool    `json:"is_active"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Filter holds the optional predicates of a catalog listing. Nil fields
// are not applied.
type Filter struct {
	Category  *string
	Brand     *string
	MinPrice  *int64
	MaxPrice  *int64
	MinRating *float64
	Search    *string
}

// Sort keys accepted by List. Anything else falls back to newest.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
	SortPopular   = "popular"
)

type NewProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"image"`
}

// UpdateProductInput carries explicit field-level updates; nil means
// "leave as is". No free-form merge of caller-supplied maps.
type UpdateProductInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Brand       *string `json:"brand,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
	ImageURL    *string `json:"image,omitempty"`
}

// DashboardStats backs the admin panel landing page.
type DashboardStats struct {
	TotalProducts int     `json:"total_products"`
	TotalOrders   int     `json:"total_orders"`
	TotalUsers    int     `json:"total_users"`
	TotalRevenue  int64   `json:"total_revenue"`
	RecentOrders  []Recent `json:"recent_orders"`
}

// Recent is the trimmed order row shown on the dashboard.
type Recent struct {
	OrderID   string    `json:"order_id"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
