package feed

import (
	"time"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

// Frame is one complete Remote ID message or Pack cut from a byte stream
type Frame struct {
	Type     remoteid.MessageType
	Types    []remoteid.MessageType // Contained subtypes, one entry unless Type is Pack
	Raw      []byte
	Received time.Time

	// Message holds only this frame's fields over record defaults
	Message remoteid.Aircraft

	// Aircraft is the running record after this frame was applied
	Aircraft remoteid.Aircraft
}

// Stats counts decoder activity since creation or the last Reset
type Stats struct {
	Frames       int
	Messages     int // Subtype messages, counting each message of a Pack
	Rejected     int // Complete frames that failed to decode
	SkippedBytes int
}
