package clients

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"

	"imagegenservice/internal/domain"
	"imagegenservice/internal/wire"
)

const getProductMethod = "/hipstershop.ProductCatalogService/GetProduct"

// ProductClient looks up catalog detail for a product id.
type ProductClient interface {
	GetProduct(ctx context.Context, id string) (domain.ProductDetail, error)
}

type grpcProductClient struct {
	conn *grpc.ClientConn
}

// NewProductClient connects to the product catalog at addr, falling back to
// the stub variant when the service is unreachable.
func NewProductClient(ctx context.Context, addr string, logger zerolog.Logger) ProductClient {
	conn, err := dial(ctx, addr)
	if err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("product catalog unreachable, using stub client")
		return StubProductClient{}
	}
	logger.Info().Str("addr", addr).Msg("product catalog connected")
	return &grpcProductClient{conn: conn}
}

func (c *grpcProductClient) GetProduct(ctx context.Context, id string) (domain.ProductDetail, error) {
	in := wire.GetProductRequest{ID: id}
	var out wire.Product
	if err := c.conn.Invoke(ctx, getProductMethod, &in, &out, grpc.CallContentSubtype(wire.CodecName)); err != nil {
		return domain.ProductDetail{}, fmt.Errorf("get product %s: %w", id, err)
	}
	return domain.ProductDetail{
		ID:          out.ID,
		Name:        out.Name,
		Description: out.Description,
		Picture:     out.Picture,
	}, nil
}

// StubProductClient derives deterministic placeholder detail from the
// requested id.
type StubProductClient struct{}

func (StubProductClient) GetProduct(ctx context.Context, id string) (domain.ProductDetail, error) {
	return domain.ProductDetail{
		ID:          id,
		Name:        fmt.Sprintf("Product %s", id),
		Description: fmt.Sprintf("Description for product %s", id),
		Picture:     fmt.Sprintf("/static/img/products/%s.jpg", id),
	}, nil
}
