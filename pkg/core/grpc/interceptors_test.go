package grpc

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/pascal.v1.Calculator/Evaluate"}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor()

	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("boom")
	})

	if status.Code(err) != codes.Internal {
		t.Errorf("code = %v, want Internal", status.Code(err))
	}
}

func TestRequestIDInterceptor_Generates(t *testing.T) {
	interceptor := RequestIDInterceptor()

	var got string
	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		got = GetRequestID(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("interceptor error = %v", err)
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("request id %q is not a UUID: %v", got, err)
	}
}

func TestRequestIDInterceptor_KeepsIncoming(t *testing.T) {
	interceptor := RequestIDInterceptor()
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-123"))

	var got string
	interceptor(ctx, nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		got = GetRequestID(ctx)
		return nil, nil
	})

	if got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	interceptor := LoggingInterceptor()

	resp, err := interceptor(context.Background(), "req", testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", status.Error(codes.InvalidArgument, "bad")
	})

	if resp != "resp" {
		t.Errorf("resp = %v, want resp", resp)
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if GetRequestID(ctx) != "abc" {
		t.Errorf("GetRequestID() = %q, want abc", GetRequestID(ctx))
	}
	if GetRequestID(context.Background()) != "" {
		t.Error("GetRequestID() on empty context should be empty")
	}
}
