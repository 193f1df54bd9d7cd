// Package wire holds the message shapes and codec shared by the gRPC surface
// and the sibling-service clients. Messages travel as JSON over gRPC framing:
// the codec registers under the "json" content-subtype, so no generated
// protobuf bindings are required on either side of a call.
package wire

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// CodecName is the gRPC content-subtype the JSON codec registers under.
// Callers select it with grpc.CallContentSubtype(CodecName).
const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

func (jsonCodec) Name() string { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
