package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ValidStatus reports whether s is one of the four order states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Order struct {
	ID            string       `json:"id"`
	UserID        uint         `json:"user_id"`
	Items         []Item       `json:"items"`
	Shipping      ShippingInfo `json:"shipping"`
	PaymentMethod string       `json:"payment_method"`
	Status        Status       `json:"status"`
	PaymentStatus string       `json:"payment_status"`
	Subtotal      int64        `json:"subtotal"`
	ShippingFee   int64        `json:"shipping_fee"`
	Total         int64        `json:"total"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Item is a snapshot of a cart line at placement time. Later cart edits
// never reach back into a placed order.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Note    string `json:"note,omitempty"`
}
