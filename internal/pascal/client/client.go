package client

import (
	"context"
	"sync"
	"time"

	pb "github.com/msto63/pascal/api/pascal/v1"
	mdwerror "github.com/msto63/pascal/foundation/core/error"
	coreGrpc "github.com/msto63/pascal/pkg/core/grpc"
	"github.com/msto63/pascal/pkg/core/logging"
	"google.golang.org/grpc"
)

// Config holds client configuration
type Config struct {
	Address string
	Timeout time.Duration
}

// DefaultConfig returns default client configuration
func DefaultConfig() Config {
	return Config{
		Address: "localhost:9160",
		Timeout: 5 * time.Second,
	}
}

// Client calls a remote Pascal service
type Client struct {
	mu     sync.Mutex
	logger *logging.Logger
	config Config
	conn   *grpc.ClientConn
	calc   pb.CalculatorClient
}

// New creates a client. The connection is opened on first use.
func New(cfg Config, opts ...grpc.DialOption) (*Client, error) {
	if cfg.Address == "" {
		return nil, mdwerror.New("address is required").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("client.New")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	grpcCfg := coreGrpc.DefaultClientConfig(cfg.Address)
	grpcCfg.Timeout = cfg.Timeout

	conn, err := coreGrpc.Dial(grpcCfg, opts...)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to connect to pascal").
			WithCode(mdwerror.CodeNetworkError).
			WithOperation("client.New").
			WithDetail("address", cfg.Address)
	}

	return &Client{
		logger: logging.New("pascal-client"),
		config: cfg,
		conn:   conn,
		calc:   pb.NewCalculatorClient(conn),
	}, nil
}

// Evaluate runs one calculation on the remote service
func (c *Client) Evaluate(ctx context.Context, first, second, operator string) (*pb.EvaluateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req := &pb.EvaluateRequest{First: first, Second: second, Operator: operator}
	out, err := c.calc.Evaluate(ctx, req.ToStruct())
	if err != nil {
		c.logger.Debug("Remote evaluate failed", "address", c.config.Address, "error", err)
		return nil, mdwerror.Wrap(err, "remote evaluate failed").
			WithCode(mdwerror.CodeServiceUnavailable).
			WithOperation("client.Evaluate").
			WithDetail("address", c.config.Address)
	}

	return pb.ResponseFromStruct(out), nil
}

// Close closes the connection
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}
