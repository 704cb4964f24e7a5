package remoteid

import (
	"errors"
	"fmt"
)

// Encoder turns an Aircraft record into wire messages. Location and System
// messages carry the time of encoding, read from the encoder's clock.
type Encoder struct {
	clock Clock
}

// NewEncoder creates an encoder reading time from clock, or from the host
// clock when clock is nil
func NewEncoder(clock Clock) *Encoder {
	if clock == nil {
		clock = SystemClock
	}
	return &Encoder{clock: clock}
}

// Encode builds a single 25-byte message of type t from a
func (e *Encoder) Encode(a *Aircraft, t MessageType) ([]byte, error) {
	if a == nil {
		return nil, errors.New("nil aircraft record")
	}

	switch t {
	case MessageTypeBasicID:
		return e.encodeBasicID(a)
	case MessageTypeLocation:
		return e.encodeLocation(a)
	case MessageTypeAuth:
		return nil, &NotImplementedError{Type: t, Operation: "encoding"}
	case MessageTypeSelfID:
		return e.encodeSelfID(a)
	case MessageTypeSystem:
		return e.encodeSystem(a)
	case MessageTypeOperatorID:
		return e.encodeOperatorID(a)
	case MessageTypePack:
		return nil, fmt.Errorf("%s needs a list of message types, use EncodePack", t)
	default:
		return nil, &UnknownMessageTypeError{Code: uint8(t)}
	}
}

// Encode builds a message with the host clock
func Encode(a *Aircraft, t MessageType) ([]byte, error) {
	return NewEncoder(nil).Encode(a, t)
}

// EncodePack builds a Pack with the host clock
func EncodePack(a *Aircraft, types []MessageType) ([]byte, error) {
	return NewEncoder(nil).EncodePack(a, types)
}
