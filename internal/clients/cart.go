package clients

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"imagegenservice/internal/domain"
	"imagegenservice/internal/wire"
)

const getCartMethod = "/hipstershop.CartService/GetCart"

// CartClient looks up a user's cart.
type CartClient interface {
	GetCart(ctx context.Context, userID string) ([]domain.CartItem, error)
}

type grpcCartClient struct {
	conn *grpc.ClientConn
}

// NewCartClient connects to the cart service at addr. If the service is not
// reachable within ctx, the stub variant is returned instead of an error.
func NewCartClient(ctx context.Context, addr string, logger zerolog.Logger) CartClient {
	conn, err := dial(ctx, addr)
	if err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("cart service unreachable, using stub client")
		return StubCartClient{}
	}
	logger.Info().Str("addr", addr).Msg("cart service connected")
	return &grpcCartClient{conn: conn}
}

func (c *grpcCartClient) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	in := wire.GetCartRequest{UserID: userID}
	var out wire.Cart
	if err := c.conn.Invoke(ctx, getCartMethod, &in, &out, grpc.CallContentSubtype(wire.CodecName)); err != nil {
		return nil, fmt.Errorf("get cart for %s: %w", userID, err)
	}
	items := make([]domain.CartItem, 0, len(out.Items))
	for _, it := range out.Items {
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items, nil
}

// StubCartClient synthesizes an empty cart for environments without a cart
// service.
type StubCartClient struct{}

func (StubCartClient) GetCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return nil, nil
}
