package grpclib

import (
	"encoding/json"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"
)

// RecoveryHandlerFunc converts a panic into an Internal error
func RecoveryHandlerFunc(p interface{}) error {
	return status.Errorf(codes.Internal, "panic: %v", p)
}

// JSONCodec encodes plain Go request and response structs, used instead of generated protobuf messages
type JSONCodec struct {
}

var _ encoding.Codec = JSONCodec{}

// registered so that clients can select it with grpc.CallContentSubtype("json")
func init() {
	encoding.RegisterCodec(JSONCodec{})
}

// Marshal ...
func (JSONCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal ...
func (JSONCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// Name ...
func (JSONCodec) Name() string {
	return "json"
}
