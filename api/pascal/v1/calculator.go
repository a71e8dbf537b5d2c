// Package pascalv1 defines the pascal.v1.Calculator gRPC contract.
//
// Messages travel as google.protobuf.Struct so the service needs no
// generated code. Request fields are "first", "second" and "operator";
// absent or null fields read as empty strings.
package pascalv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified gRPC service name
	ServiceName = "pascal.v1.Calculator"
	// EvaluateMethod is the full method path of Evaluate
	EvaluateMethod = "/" + ServiceName + "/Evaluate"
)

// Request field names
const (
	FieldFirst    = "first"
	FieldSecond   = "second"
	FieldOperator = "operator"
)

// Response field names
const (
	FieldOK        = "ok"
	FieldDisplay   = "display"
	FieldValue     = "value"
	FieldErrorKind = "error_kind"
	FieldTitle     = "title"
	FieldMessage   = "message"
)

// EvaluateRequest is the decoded request message
type EvaluateRequest struct {
	First    string
	Second   string
	Operator string
}

// EvaluateResponse is the decoded response message
type EvaluateResponse struct {
	OK        bool
	Display   string
	Value     float64
	ErrorKind string
	Title     string
	Message   string
}

// ToStruct encodes the request
func (r *EvaluateRequest) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldFirst:    structpb.NewStringValue(r.First),
		FieldSecond:   structpb.NewStringValue(r.Second),
		FieldOperator: structpb.NewStringValue(r.Operator),
	}}
}

// RequestFromStruct decodes a request. Fields that are present but not
// strings are rejected.
func RequestFromStruct(s *structpb.Struct) (*EvaluateRequest, error) {
	req := &EvaluateRequest{}
	var err error
	if req.First, err = stringField(s, FieldFirst); err != nil {
		return nil, err
	}
	if req.Second, err = stringField(s, FieldSecond); err != nil {
		return nil, err
	}
	if req.Operator, err = stringField(s, FieldOperator); err != nil {
		return nil, err
	}
	return req, nil
}

// ToStruct encodes the response. Failure responses omit display and value.
func (r *EvaluateResponse) ToStruct() *structpb.Struct {
	fields := map[string]*structpb.Value{
		FieldOK: structpb.NewBoolValue(r.OK),
	}
	if r.OK {
		fields[FieldDisplay] = structpb.NewStringValue(r.Display)
		fields[FieldValue] = structpb.NewNumberValue(r.Value)
	} else {
		fields[FieldErrorKind] = structpb.NewStringValue(r.ErrorKind)
		fields[FieldTitle] = structpb.NewStringValue(r.Title)
		fields[FieldMessage] = structpb.NewStringValue(r.Message)
	}
	return &structpb.Struct{Fields: fields}
}

// ResponseFromStruct decodes a response
func ResponseFromStruct(s *structpb.Struct) *EvaluateResponse {
	fields := s.GetFields()
	return &EvaluateResponse{
		OK:        fields[FieldOK].GetBoolValue(),
		Display:   fields[FieldDisplay].GetStringValue(),
		Value:     fields[FieldValue].GetNumberValue(),
		ErrorKind: fields[FieldErrorKind].GetStringValue(),
		Title:     fields[FieldTitle].GetStringValue(),
		Message:   fields[FieldMessage].GetStringValue(),
	}
}

func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok || v == nil {
		return "", nil
	}
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NullValue, nil:
		return "", nil
	default:
		return "", fmt.Errorf("field %q must be a string", name)
	}
}

// CalculatorServer is the server API of pascal.v1.Calculator
type CalculatorServer interface {
	Evaluate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterCalculatorServer registers srv on s
func RegisterCalculatorServer(s grpc.ServiceRegistrar, srv CalculatorServer) {
	s.RegisterService(&Calculator_ServiceDesc, srv)
}

func evaluateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CalculatorServer).Evaluate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CalculatorServer).Evaluate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Calculator_ServiceDesc is the grpc.ServiceDesc for pascal.v1.Calculator
var Calculator_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CalculatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Evaluate",
			Handler:    evaluateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pascal/v1/calculator.proto",
}

// CalculatorClient is the client API of pascal.v1.Calculator
type CalculatorClient interface {
	Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type calculatorClient struct {
	cc grpc.ClientConnInterface
}

// NewCalculatorClient creates a client on cc
func NewCalculatorClient(cc grpc.ClientConnInterface) CalculatorClient {
	return &calculatorClient{cc}
}

func (c *calculatorClient) Evaluate(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, EvaluateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
