// Package clients resolves cart and product catalog lookups against sibling
// services. Each client has a live gRPC variant and a stub variant; the
// variant is chosen once at construction based on reachability, so the
// orchestrator always holds a working client.
package clients

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// dial establishes a connection to addr and waits for it to become ready
// within the bounds of ctx. Sibling services inside the mesh are plaintext.
func dial(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	conn.Connect()
	for {
		st := conn.GetState()
		if st == connectivity.Ready {
			return conn, nil
		}
		if !conn.WaitForStateChange(ctx, st) {
			_ = conn.Close()
			return nil, fmt.Errorf("dial %s: not ready: %w", addr, ctx.Err())
		}
	}
}
