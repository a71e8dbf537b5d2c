package server

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	pb "github.com/msto63/pascal/api/pascal/v1"
	"github.com/msto63/pascal/pkg/core/health"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func startBufconn(t *testing.T) (*Server, *grpc.ClientConn) {
	t.Helper()

	srv, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.grpc.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient() error = %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	})

	return srv, conn
}

func TestServer_Evaluate(t *testing.T) {
	_, conn := startBufconn(t)
	client := pb.NewCalculatorClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tests := []struct {
		name        string
		req         pb.EvaluateRequest
		wantOK      bool
		wantDisplay string
		wantKind    string
		wantTitle   string
	}{
		{"division", pb.EvaluateRequest{First: "6", Second: "3", Operator: "/"}, true, "2", "", ""},
		{"third", pb.EvaluateRequest{First: "1", Second: "3", Operator: "/"}, true, "0.3333333333...", "", ""},
		{"division by zero", pb.EvaluateRequest{First: "6", Second: "0", Operator: "/"}, false, "", "DivisionByZero", "Operation Error"},
		{"invalid operand", pb.EvaluateRequest{First: "abc", Second: "3", Operator: "+"}, false, "", "InvalidOperand", "Input Error"},
		{"missing operator", pb.EvaluateRequest{First: "1", Second: "2"}, false, "", "MissingOperator", "Operator Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := client.Evaluate(ctx, tt.req.ToStruct())
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			resp := pb.ResponseFromStruct(out)
			if resp.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", resp.OK, tt.wantOK)
			}
			if resp.Display != tt.wantDisplay {
				t.Errorf("Display = %q, want %q", resp.Display, tt.wantDisplay)
			}
			if resp.ErrorKind != tt.wantKind {
				t.Errorf("ErrorKind = %q, want %q", resp.ErrorKind, tt.wantKind)
			}
			if resp.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", resp.Title, tt.wantTitle)
			}
		})
	}
}

func TestServer_Evaluate_InvalidArgument(t *testing.T) {
	_, conn := startBufconn(t)
	client := pb.NewCalculatorClient(conn)

	in := &structpb.Struct{Fields: map[string]*structpb.Value{
		pb.FieldFirst: structpb.NewNumberValue(6),
	}}
	_, err := client.Evaluate(context.Background(), in)
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("status = %v, want InvalidArgument", status.Code(err))
	}
}

func TestServer_GRPCHealth(t *testing.T) {
	_, conn := startBufconn(t)
	client := healthpb.NewHealthClient(conn)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: pb.ServiceName})
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("status = %v, want SERVING", resp.GetStatus())
	}
}

func TestServer_HealthRegistry(t *testing.T) {
	srv, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	report := srv.HealthRegistry().Check(context.Background())
	if report.Status != health.StatusHealthy {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
	if len(report.Checks) != 1 || report.Checks[0].Name != "calculator" {
		t.Errorf("Checks = %+v", report.Checks)
	}
}

func TestServer_StatsCountRemoteCalls(t *testing.T) {
	srv, conn := startBufconn(t)
	client := pb.NewCalculatorClient(conn)

	req := pb.EvaluateRequest{First: "2", Second: "3", Operator: "*"}
	if _, err := client.Evaluate(context.Background(), req.ToStruct()); err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}

	stats := srv.Service().Stats()
	if stats.Total != 1 || stats.Succeeded != 1 {
		t.Errorf("Stats() = %+v, want one success", stats)
	}
}

func TestServer_AddressAfterStartAsync(t *testing.T) {
	srv, err := New(Config{Host: "127.0.0.1", Port: 0})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := srv.StartAsync(); err != nil {
		t.Fatalf("StartAsync() error = %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Stop(ctx)
	}()

	addr := srv.Address()
	if !strings.HasPrefix(addr, "127.0.0.1:") || addr == "127.0.0.1:0" {
		t.Errorf("Address() = %q, want the bound port", addr)
	}
}
