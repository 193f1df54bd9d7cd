package domain

import "errors"

var (
	// ErrEmptyRequest rejects a generation request that carries neither
	// explicit cart items nor a user id to resolve a cart from. No job is
	// created for such a request.
	ErrEmptyRequest = errors.New("request must include cart items or a user id")

	// ErrNoItems marks a job whose cart resolved to nothing.
	ErrNoItems = errors.New("no items found in cart")
)
