package remoteid

import "fmt"

// Pack layout:
//   [0]  header (type 0xF)
//   [1]  size of each contained message, always 25
//   [2]  number of contained messages, 1 to 9
//   [3:] messages, each a complete 25-byte message with its own header

// PackLength returns the wire size of a Pack holding n messages
func PackLength(n int) int {
	return PackHeaderSize + n*MessageSize
}

// EncodePack encodes one message per entry of types, in order, into a single Pack
func (e *Encoder) EncodePack(a *Aircraft, types []MessageType) ([]byte, error) {
	if len(types) < 1 || len(types) > MaxPackMessages {
		return nil, &TooManyMessagesError{Count: len(types), MessageSize: MessageSize}
	}

	pack := make([]byte, PackHeaderSize, PackLength(len(types)))
	pack[0] = EncodeHeader(MessageTypePack)
	pack[1] = MessageSize
	pack[2] = byte(len(types))

	for i, t := range types {
		if t == MessageTypePack {
			return nil, ErrNestedPack
		}
		msg, err := e.Encode(a, t)
		if err != nil {
			return nil, fmt.Errorf("pack message %d (%s): %w", i, t, err)
		}
		pack = append(pack, msg...)
	}

	return pack, nil
}

// checkPack validates the Pack sub-header against the buffer and returns the message count
func checkPack(buf []byte) (int, error) {
	if len(buf) < PackHeaderSize {
		return 0, &BadLengthError{Type: MessageTypePack, Length: len(buf), Expected: PackLength(1)}
	}

	size, count := int(buf[1]), int(buf[2])
	if size != MessageSize {
		return 0, &TooManyMessagesError{Count: count, MessageSize: size}
	}
	if count < 1 || count > MaxPackMessages {
		return 0, &TooManyMessagesError{Count: count, MessageSize: size}
	}
	if len(buf) != PackLength(count) {
		return 0, &BadLengthError{Type: MessageTypePack, Length: len(buf), Expected: PackLength(count)}
	}

	return count, nil
}

// decodePack applies every contained message to a, in order
func decodePack(a *Aircraft, buf []byte) error {
	count, err := checkPack(buf)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		start := PackHeaderSize + i*MessageSize
		if err := decodeMessage(a, buf[start:start+MessageSize], false); err != nil {
			return fmt.Errorf("pack message %d: %w", i, err)
		}
	}

	return nil
}

// ContainedTypes lists the message types inside a message: the types of the
// contained messages for a Pack, or the message's own type otherwise
func ContainedTypes(buf []byte) ([]MessageType, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyMessage
	}
	h, err := DecodeHeader(buf[0])
	if err != nil {
		return nil, err
	}
	if h.Type != MessageTypePack {
		return []MessageType{h.Type}, nil
	}

	count, err := checkPack(buf)
	if err != nil {
		return nil, err
	}
	types := make([]MessageType, 0, count)
	for i := 0; i < count; i++ {
		inner, err := DecodeHeader(buf[PackHeaderSize+i*MessageSize])
		if err != nil {
			return nil, fmt.Errorf("pack message %d: %w", i, err)
		}
		types = append(types, inner.Type)
	}
	return types, nil
}

// FrameLength reports how many bytes the message starting at buf[0] occupies.
// It returns 0 with a nil error when buf is too short to tell yet.
func FrameLength(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	h, err := DecodeHeader(buf[0])
	if err != nil {
		return 0, err
	}
	if h.Type != MessageTypePack {
		return MessageSize, nil
	}

	if len(buf) < PackHeaderSize {
		return 0, nil
	}
	size, count := int(buf[1]), int(buf[2])
	if size != MessageSize || count < 1 || count > MaxPackMessages {
		return 0, &TooManyMessagesError{Count: count, MessageSize: size}
	}
	return PackLength(count), nil
}
