package server

import (
	"context"

	pb "github.com/msto63/pascal/api/pascal/v1"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	"github.com/msto63/pascal/internal/pascal/service"
	coreGrpc "github.com/msto63/pascal/pkg/core/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Ensure Server implements CalculatorServer
var _ pb.CalculatorServer = (*Server)(nil)

// Evaluate implements CalculatorServer.Evaluate. Evaluation failures are
// returned in the response message, not as a gRPC status.
func (s *Server) Evaluate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := pb.RequestFromStruct(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := s.service.Evaluate(ctx, &service.EvaluateRequest{
		First:    req.First,
		Second:   req.Second,
		Operator: req.Operator,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, status.FromContextError(ctxErr).Err()
		}
		requestID := coreGrpc.GetRequestID(ctx)
		s.logger.WithRequestID(requestID).LogError(mdwerror.Wrap(err, "Evaluate failed").
			WithOperation("server.Evaluate").
			WithRequestID(requestID))
		return nil, status.Error(codes.Internal, err.Error())
	}

	return toProto(resp).ToStruct(), nil
}

func toProto(resp *service.EvaluateResponse) *pb.EvaluateResponse {
	return &pb.EvaluateResponse{
		OK:        resp.OK,
		Display:   resp.Display,
		Value:     resp.Value,
		ErrorKind: resp.ErrorKind,
		Title:     resp.Title,
		Message:   resp.Message,
	}
}
