package orchestrator

import (
	"fmt"
	"strings"

	"imagegenservice/internal/domain"
)

// DefaultStyle is applied when a request carries no recognized style.
const DefaultStyle = "modern"

// styleModifiers maps a style keyword to the descriptive instruction appended
// to the generation prompt.
var styleModifiers = map[string]string{
	"modern":       "Modern, clean, minimalist aesthetic with contemporary styling and sleek presentation",
	"vintage":      "Vintage-inspired styling with classic, timeless appeal and warm, nostalgic tones",
	"minimalist":   "Ultra-clean, minimalist composition with focus on simplicity and negative space",
	"luxury":       "High-end, luxurious presentation with premium materials and sophisticated styling",
	"casual":       "Relaxed, casual styling with comfortable, everyday appeal",
	"professional": "Professional, business-appropriate styling suitable for corporate environments",
}

// styleModifier resolves a free-form style preference to a known modifier,
// defaulting for unrecognized input.
func styleModifier(style string) string {
	if m, ok := styleModifiers[strings.ToLower(strings.TrimSpace(style))]; ok {
		return m
	}
	return styleModifiers[DefaultStyle]
}

// knownStyle reports whether style maps to a dedicated modifier.
func knownStyle(style string) bool {
	_, ok := styleModifiers[strings.ToLower(strings.TrimSpace(style))]
	return ok
}

// describeProducts renders the enriched details as a prompt-ready list.
func describeProducts(details []domain.ProductDetail) string {
	var b strings.Builder
	for _, d := range details {
		name := d.Name
		if name == "" {
			name = "Unknown product"
		}
		desc := d.Description
		if desc == "" {
			desc = "No description"
		}
		fmt.Fprintf(&b, "- %s (%dx): %s\n", name, d.Quantity, desc)
	}
	return b.String()
}

// buildPrompt constructs the full generation instruction. It is pure string
// assembly and never fails.
func buildPrompt(details []domain.ProductDetail, style, backgroundURL string) string {
	background := "Use a clean, appropriate background that highlights the products."
	if backgroundURL != "" {
		background = "Use the provided background image as context."
	}
	if !knownStyle(style) {
		style = DefaultStyle
	}
	return fmt.Sprintf(`Generate a realistic product image showing the following items in a %s style:
%s
Style instructions: %s

Background: %s

Make it look like a professional product photography with good lighting and composition.`,
		strings.ToLower(strings.TrimSpace(style)), describeProducts(details), styleModifier(style), background)
}
