package service

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/lotofacil/internal/lotofacil/i18n"
	platformerrors "github.com/louisbranch/lotofacil/internal/platform/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name, also used for health
// checks.
const ServiceName = "lotofacil.v1.LotteryService"

// LocaleHeader is the gRPC metadata key selecting the error message locale.
const LocaleHeader = "x-lotofacil-locale"

const (
	generateBatchMethod  = "/" + ServiceName + "/GenerateBatch"
	evaluateTicketMethod = "/" + ServiceName + "/EvaluateTicket"
)

// LotteryServiceServer is the server API for the lottery service.
type LotteryServiceServer interface {
	GenerateBatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EvaluateTicket(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// LotteryServiceDesc describes the lottery service for grpc.Server.
var LotteryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LotteryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GenerateBatch", Handler: generateBatchHandler},
		{MethodName: "EvaluateTicket", Handler: evaluateTicketHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lotofacil/v1/lottery.proto",
}

// RegisterLotteryServiceServer registers srv on s.
func RegisterLotteryServiceServer(s grpc.ServiceRegistrar, srv LotteryServiceServer) {
	s.RegisterService(&LotteryServiceDesc, srv)
}

func generateBatchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LotteryServiceServer).GenerateBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: generateBatchMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LotteryServiceServer).GenerateBatch(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func evaluateTicketHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LotteryServiceServer).EvaluateTicket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: evaluateTicketMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(LotteryServiceServer).EvaluateTicket(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// GRPCServer adapts Service to LotteryServiceServer.
type GRPCServer struct {
	service   *Service
	localizer platformerrors.Localizer
}

// NewGRPCServer creates the gRPC binding for service.
func NewGRPCServer(service *Service) *GRPCServer {
	return &GRPCServer{service: service, localizer: i18n.Localizer{}}
}

// GenerateBatch handles batch generation requests.
func (s *GRPCServer) GenerateBatch(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "generate batch request is required")
	}
	locale := localeFromContext(ctx)

	req, err := decodeGenerateRequest(in)
	if err != nil {
		return nil, s.handleError(err, locale)
	}
	resp, err := s.service.Generate(ctx, req)
	if err != nil {
		return nil, s.handleError(err, locale)
	}
	out, err := encodeGenerateResponse(resp)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode batch: %v", err)
	}
	return out, nil
}

// EvaluateTicket handles ticket evaluation requests.
func (s *GRPCServer) EvaluateTicket(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "evaluate ticket request is required")
	}
	locale := localeFromContext(ctx)

	req, err := decodeEvaluateRequest(in)
	if err != nil {
		return nil, s.handleError(err, locale)
	}
	resp, err := s.service.Evaluate(ctx, req)
	if err != nil {
		return nil, s.handleError(err, locale)
	}
	out, err := encodeEvaluateResponse(resp)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode evaluation: %v", err)
	}
	return out, nil
}

func (s *GRPCServer) handleError(err error, locale string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err).Err()
	}
	return platformerrors.HandleError(err, locale, s.localizer)
}

func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(LocaleHeader)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimSpace(values[0])
}
