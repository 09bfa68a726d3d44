package seats

import "fmt"

// Codec is the connect codec for seat service messages. It is registered
// under the name "proto" so gRPC peers see application/grpc+proto.
type Codec struct{}

// Name returns "proto".
func (Codec) Name() string {
	return "proto"
}

// Marshal encodes a seat service message.
func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(Message)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotMessage, v)
	}
	return m.appendWire(nil), nil
}

// Unmarshal decodes data into a seat service message, replacing its
// previous contents.
func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(Message)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMessage, v)
	}
	return m.consumeWire(data)
}
