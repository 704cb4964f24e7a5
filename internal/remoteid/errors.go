package remoteid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage is returned when decoding a zero-length buffer
	ErrEmptyMessage = errors.New("empty message")

	// ErrNestedPack is returned when a Pack is placed inside another Pack
	ErrNestedPack = errors.New("pack message cannot contain another pack")
)

// FieldTooLongError reports a text field longer than its fixed width
type FieldTooLongError struct {
	Field  string
	Length int
	Max    int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("%s is %d bytes long, maximum is %d", e.Field, e.Length, e.Max)
}

// FieldCharsetError reports a text field holding a byte outside 7-bit ASCII
type FieldCharsetError struct {
	Field  string
	Offset int
}

func (e *FieldCharsetError) Error() string {
	return fmt.Sprintf("%s has a non-ASCII byte at offset %d", e.Field, e.Offset)
}

// FieldRangeError reports a numeric field outside its valid domain
type FieldRangeError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *FieldRangeError) Error() string {
	return fmt.Sprintf("%s %v out of range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// InvalidEnumValueError reports an enumerated code with no defined variant
type InvalidEnumValueError struct {
	Field string
	Enum  string
	Value uint8
}

func (e *InvalidEnumValueError) Error() string {
	if e.Field == e.Enum {
		return fmt.Sprintf("invalid %s value 0x%02X", e.Enum, e.Value)
	}
	return fmt.Sprintf("%s: invalid %s value 0x%02X", e.Field, e.Enum, e.Value)
}

// BadLengthError reports a buffer whose size does not match its message type
type BadLengthError struct {
	Type     MessageType
	Length   int
	Expected int
}

func (e *BadLengthError) Error() string {
	return fmt.Sprintf("%s message is %d bytes, expected %d", e.Type, e.Length, e.Expected)
}

// ProtocolVersionError reports a header from a newer protocol version
type ProtocolVersionError struct {
	Version   uint8
	Supported uint8
}

func (e *ProtocolVersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version %d, this codec implements version %d", e.Version, e.Supported)
}

// UnknownMessageTypeError reports a header type nibble with no defined subtype
type UnknownMessageTypeError struct {
	Code uint8
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type 0x%X", e.Code)
}

// TooManyMessagesError reports a Pack whose message count is outside 1..9,
// or whose declared per-message size is not 25.
type TooManyMessagesError struct {
	Count       int
	MessageSize int
}

func (e *TooManyMessagesError) Error() string {
	if e.MessageSize != MessageSize {
		return fmt.Sprintf("pack declares %d-byte messages, expected %d", e.MessageSize, MessageSize)
	}
	return fmt.Sprintf("pack holds %d messages, expected 1 to %d", e.Count, MaxPackMessages)
}

// NotImplementedError reports a message subtype this codec does not handle
type NotImplementedError struct {
	Type      MessageType
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s %s is not implemented", e.Type, e.Operation)
}
