package domain

// CartItem is a single entry of a user's cart as reported by the cart service.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// ProductDetail is a cart item enriched against the product catalog. Quantity
// is carried over from the originating cart item.
type ProductDetail struct {
	ID          string
	Name        string
	Description string
	Picture     string
	Quantity    int
}

// GenerationRequest is the internal request model shared by every protocol
// facade. CartItems, when present, take precedence over a cart lookup by
// UserID.
type GenerationRequest struct {
	UserID             string
	CartItems          []CartItem
	StylePreference    string
	BackgroundImageURL string
}
