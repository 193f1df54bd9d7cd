package rpc

import (
	"context"

	"google.golang.org/grpc"

	"imagegenservice/internal/wire"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "hipstershop.ImageGenerationService"

// ImageGenerationServer is the service contract registered with gRPC.
type ImageGenerationServer interface {
	GenerateCartImage(ctx context.Context, req *wire.GenerateCartImageRequest) (*wire.GenerateCartImageResponse, error)
	UploadBackground(ctx context.Context, req *wire.UploadBackgroundRequest) (*wire.UploadBackgroundResponse, error)
	GetImageGenerationStatus(ctx context.Context, req *wire.GetStatusRequest) (*wire.GetStatusResponse, error)
}

// Register attaches the service to a gRPC server. The service descriptor is
// written by hand because messages travel over the JSON codec rather than
// generated protobuf bindings.
func Register(s *grpc.Server, srv ImageGenerationServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ImageGenerationServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateCartImage", Handler: generateCartImageHandler},
		{MethodName: "UploadBackground", Handler: uploadBackgroundHandler},
		{MethodName: "GetImageGenerationStatus", Handler: getImageGenerationStatusHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/imagegen.proto",
}

func generateCartImageHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wire.GenerateCartImageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageGenerationServer).GenerateCartImage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GenerateCartImage"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImageGenerationServer).GenerateCartImage(ctx, req.(*wire.GenerateCartImageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func uploadBackgroundHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wire.UploadBackgroundRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageGenerationServer).UploadBackground(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/UploadBackground"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImageGenerationServer).UploadBackground(ctx, req.(*wire.UploadBackgroundRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getImageGenerationStatusHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wire.GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ImageGenerationServer).GetImageGenerationStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetImageGenerationStatus"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ImageGenerationServer).GetImageGenerationStatus(ctx, req.(*wire.GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}
