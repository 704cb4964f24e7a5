package remoteid

// Header is the first byte of every message
type Header struct {
	Type    MessageType
	Version uint8
}

// EncodeHeader packs the message type into the high nibble and the protocol version into the low nibble
func EncodeHeader(t MessageType) byte {
	return packNibbles(uint8(t), ProtocolVersion)
}

// DecodeHeader splits a header byte into message type and protocol version.
// Versions newer than ProtocolVersion are rejected; older ones are accepted.
func DecodeHeader(b byte) (Header, error) {
	code, version := unpackNibbles(b)

	t := MessageType(code)
	if !messageTypes.valid(t) {
		return Header{}, &UnknownMessageTypeError{Code: code}
	}
	if version > ProtocolVersion {
		return Header{}, &ProtocolVersionError{Version: version, Supported: ProtocolVersion}
	}

	return Header{Type: t, Version: version}, nil
}

// newMessage allocates a zeroed 25-byte message with its header set
func newMessage(t MessageType) []byte {
	msg := make([]byte, MessageSize)
	msg[0] = EncodeHeader(t)
	return msg
}
