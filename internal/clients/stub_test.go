package clients

import (
	"context"
	"testing"
)

func TestStubCartClientReturnsEmptyCart(t *testing.T) {
	items, err := StubCartClient{}.GetCart(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCart returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(items))
	}
}

func TestStubProductClientIsDeterministic(t *testing.T) {
	a, err := StubProductClient{}.GetProduct(context.Background(), "OLJCESPC7Z")
	if err != nil {
		t.Fatalf("GetProduct returned error: %v", err)
	}
	b, _ := StubProductClient{}.GetProduct(context.Background(), "OLJCESPC7Z")
	if a != b {
		t.Fatalf("stub detail not deterministic: %+v vs %+v", a, b)
	}
	if a.Name != "Product OLJCESPC7Z" {
		t.Fatalf("Name = %q", a.Name)
	}
	if a.Picture != "/static/img/products/OLJCESPC7Z.jpg" {
		t.Fatalf("Picture = %q", a.Picture)
	}
}
