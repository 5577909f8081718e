package eventbus

import (
	"encoding/json"
	"fmt"

	"eats/internal/core/domain/model/event"
)

// Encode serializes msg for a broker.
func Encode(msg event.Message) ([]byte, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s message: %w", msg.Channel, err)
	}
	return body, nil
}

// Decode parses a broker payload. The channel the payload arrived on wins
// over the one it names.
func Decode(channel event.Channel, body []byte) (event.Message, error) {
	var msg event.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return event.Message{}, fmt.Errorf("decode %s message: %w", channel, err)
	}
	msg.Channel = channel
	return msg, nil
}
