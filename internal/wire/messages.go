package wire

// Shapes mirror the hipstershop proto definitions in api/imagegen.proto.

type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type GetCartRequest struct {
	UserID string `json:"user_id"`
}

type Cart struct {
	UserID string     `json:"user_id"`
	Items  []CartItem `json:"items"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Picture     string   `json:"picture"`
	Categories  []string `json:"categories,omitempty"`
}

type GenerateCartImageRequest struct {
	UserID             string     `json:"user_id"`
	CartItems          []CartItem `json:"cart_items"`
	StylePreference    string     `json:"style_preference"`
	BackgroundImageURL string     `json:"background_image_url"`
}

type GenerateCartImageResponse struct {
	ImageURL     string `json:"image_url"`
	GenerationID string `json:"generation_id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type UploadBackgroundRequest struct {
	// ImageData is the raw image, base64 encoded.
	ImageData string `json:"image_data"`
}

type UploadBackgroundResponse struct {
	ImageURL     string `json:"image_url"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

type GetStatusRequest struct {
	GenerationID string `json:"generation_id"`
}

type GetStatusResponse struct {
	Status       string `json:"status"`
	ImageURL     string `json:"image_url"`
	Progress     int    `json:"progress"`
	ErrorMessage string `json:"error_message"`
}
