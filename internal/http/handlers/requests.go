package handlers

import (
	"imagegenservice/internal/domain"
	"imagegenservice/internal/orchestrator"
)

type cartItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// buildGenerationRequest is the single translation point from wire
// parameters to the internal request model. All JSON facades (v1 API, mcp,
// a2a) funnel through it so defaulting stays in one place.
func buildGenerationRequest(userID, style, backgroundURL string, items []cartItemPayload) domain.GenerationRequest {
	if style == "" {
		style = orchestrator.DefaultStyle
	}
	cartItems := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		q := it.Quantity
		if q <= 0 {
			q = 1
		}
		cartItems = append(cartItems, domain.CartItem{ProductID: it.ProductID, Quantity: q})
	}
	return domain.GenerationRequest{
		UserID:             userID,
		CartItems:          cartItems,
		StylePreference:    style,
		BackgroundImageURL: backgroundURL,
	}
}
