package grpc

// proto.go defines the PremiumService server and client by hand, in the shape
// protoc-gen-go-grpc would emit for insuremate/premium/v1/premium.proto.
// Messages travel with the JSON codec.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "insuremate.premium.v1.PremiumService"

const (
	methodPredict       = "/" + ServiceName + "/Predict"
	methodListResults   = "/" + ServiceName + "/ListResults"
	methodGetStatistics = "/" + ServiceName + "/GetStatistics"
)

// PremiumServiceServer is the server API for PremiumService.
type PremiumServiceServer interface {
	Predict(context.Context, *PredictRequest) (*PredictResponse, error)
	ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error)
	GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error)
	mustEmbedUnimplementedPremiumServiceServer()
}

// UnimplementedPremiumServiceServer provides forward-compatible default implementations.
type UnimplementedPremiumServiceServer struct{}

func (UnimplementedPremiumServiceServer) Predict(context.Context, *PredictRequest) (*PredictResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Predict not implemented")
}
func (UnimplementedPremiumServiceServer) ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResults not implemented")
}
func (UnimplementedPremiumServiceServer) GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatistics not implemented")
}
func (UnimplementedPremiumServiceServer) mustEmbedUnimplementedPremiumServiceServer() {}

// RegisterPremiumServiceServer registers the PremiumServiceServer with the gRPC server.
func RegisterPremiumServiceServer(s grpclib.ServiceRegistrar, srv PremiumServiceServer) {
	s.RegisterService(&_PremiumService_serviceDesc, srv)
}

var _PremiumService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PremiumServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "Predict", Handler: _PremiumService_Predict_Handler},
		{MethodName: "ListResults", Handler: _PremiumService_ListResults_Handler},
		{MethodName: "GetStatistics", Handler: _PremiumService_GetStatistics_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "insuremate/premium/v1/premium.proto",
}

func _PremiumService_Predict_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(PredictRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PremiumServiceServer).Predict(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: methodPredict}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PremiumServiceServer).Predict(ctx, req.(*PredictRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _PremiumService_ListResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ListResultsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PremiumServiceServer).ListResults(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: methodListResults}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PremiumServiceServer).ListResults(ctx, req.(*ListResultsRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func _PremiumService_GetStatistics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(GetStatisticsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PremiumServiceServer).GetStatistics(ctx, req)
	}
	info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: methodGetStatistics}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PremiumServiceServer).GetStatistics(ctx, req.(*GetStatisticsRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// PremiumServiceClient is the client API for PremiumService.
type PremiumServiceClient interface {
	Predict(ctx context.Context, in *PredictRequest, opts ...grpclib.CallOption) (*PredictResponse, error)
	ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpclib.CallOption) (*ListResultsResponse, error)
	GetStatistics(ctx context.Context, in *GetStatisticsRequest, opts ...grpclib.CallOption) (*GetStatisticsResponse, error)
}

type premiumServiceClient struct {
	cc grpclib.ClientConnInterface
}

// NewPremiumServiceClient creates a client that always requests the JSON codec.
func NewPremiumServiceClient(cc grpclib.ClientConnInterface) PremiumServiceClient {
	return &premiumServiceClient{cc: cc}
}

func (c *premiumServiceClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpclib.CallOption) error {
	opts = append([]grpclib.CallOption{grpclib.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *premiumServiceClient) Predict(ctx context.Context, in *PredictRequest, opts ...grpclib.CallOption) (*PredictResponse, error) {
	out := new(PredictResponse)
	if err := c.invoke(ctx, methodPredict, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *premiumServiceClient) ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpclib.CallOption) (*ListResultsResponse, error) {
	out := new(ListResultsResponse)
	if err := c.invoke(ctx, methodListResults, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *premiumServiceClient) GetStatistics(ctx context.Context, in *GetStatisticsRequest, opts ...grpclib.CallOption) (*GetStatisticsResponse, error) {
	out := new(GetStatisticsResponse)
	if err := c.invoke(ctx, methodGetStatistics, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
