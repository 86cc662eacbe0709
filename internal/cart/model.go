package cart

import "time"

// Item is one line of a cart. IDs are unique within a cart; quantity is
// always >= 1 once persisted (zero means the line is removed instead).
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// RemoteCart is the shape of the user's cart document in the remote store.
type RemoteCart struct {
	UserID    uint      `json:"user_id"`
	Items     []Item    `json:"items"`
	Total     int64     `json:"total"`
	UpdatedAt time.Time `json:"updated_at"`
}
