package connectutil

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec serializes plain Go structs with encoding/json so services can
// speak the Connect protocol without generated protobuf messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to decode request: %w", err)
	}
	return nil
}

// WithJSON configures a Connect handler or client to use the JSON codec
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
