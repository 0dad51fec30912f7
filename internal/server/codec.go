package server

import (
	"encoding/json"
	"fmt"
)

// jsonCodec lets connect carry the plain Go request and response structs of
// this package as JSON. It replaces connect's default protobuf JSON codec.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(message any) ([]byte, error) {
	data, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	return data, nil
}

func (jsonCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, message); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	return nil
}
