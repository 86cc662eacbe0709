package wishlist

// Item is a wishlisted product. Unlike cart lines there is no quantity;
// a product is either on the list or not.
type Item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Image string `json:"image"`
}
