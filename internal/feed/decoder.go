package feed

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

const (
	initialBufferSize = 4096
	maxBuffered       = 2048
)

// Decoder splits a Remote ID byte stream into frames. Input may arrive in
// arbitrary chunks; bytes that cannot start a frame are dropped one at a time
// until the stream lines up again.
type Decoder struct {
	logger   *logrus.Logger
	clock    remoteid.Clock
	buffer   []byte
	aircraft remoteid.Aircraft
	stats    Stats
}

// NewDecoder creates a new stream decoder
func NewDecoder(logger *logrus.Logger) *Decoder {
	return &Decoder{
		logger:   logger,
		clock:    remoteid.SystemClock,
		buffer:   make([]byte, 0, initialBufferSize),
		aircraft: remoteid.NewAircraft(),
	}
}

// SetClock sets the clock used to stamp received frames
func (d *Decoder) SetClock(clock remoteid.Clock) {
	d.clock = clock
}

// Decode appends data to the stream and returns every frame it completes
func (d *Decoder) Decode(data []byte) []*Frame {
	d.buffer = append(d.buffer, data...)

	var frames []*Frame

	for len(d.buffer) > 0 {
		frameLen, err := remoteid.FrameLength(d.buffer)
		if err != nil {
			d.logger.WithFields(logrus.Fields{
				"header": fmt.Sprintf("0x%02X", d.buffer[0]),
			}).WithError(err).Debug("Not a frame start, skipping byte")
			d.skip(1)
			continue
		}

		// Need more data
		if frameLen == 0 || len(d.buffer) < frameLen {
			break
		}

		raw := make([]byte, frameLen)
		copy(raw, d.buffer[:frameLen])

		frame, err := d.decodeFrame(raw)
		if err != nil {
			d.logger.WithFields(logrus.Fields{
				"frame_len": frameLen,
			}).WithError(err).Debug("Failed to decode frame, dropping it")
			d.stats.Rejected++
			d.skip(frameLen)
			continue
		}

		d.logger.WithFields(logrus.Fields{
			"type":     frame.Type.String(),
			"messages": len(frame.Types),
			"id":       frame.Aircraft.ID,
		}).Debug("Decoded frame")

		frames = append(frames, frame)
		d.buffer = d.buffer[frameLen:]
	}

	// Keep buffer size reasonable
	if len(d.buffer) > maxBuffered {
		d.logger.WithFields(logrus.Fields{
			"buffer_size": len(d.buffer),
		}).Debug("Buffer overflow, clearing")
		d.skip(len(d.buffer))
	}

	return frames
}

// Aircraft returns the record built from every frame decoded so far
func (d *Decoder) Aircraft() remoteid.Aircraft {
	return d.aircraft
}

// Stats returns the decoder counters
func (d *Decoder) Stats() Stats {
	return d.stats
}

// Pending returns the number of buffered bytes not yet forming a frame
func (d *Decoder) Pending() int {
	return len(d.buffer)
}

// Reset drops buffered input, the running record and the counters
func (d *Decoder) Reset() {
	d.buffer = d.buffer[:0]
	d.aircraft = remoteid.NewAircraft()
	d.stats = Stats{}
}

func (d *Decoder) decodeFrame(raw []byte) (*Frame, error) {
	types, err := remoteid.ContainedTypes(raw)
	if err != nil {
		return nil, err
	}
	msg, err := remoteid.Decode(raw)
	if err != nil {
		return nil, err
	}
	if err := remoteid.DecodeInto(&d.aircraft, raw); err != nil {
		return nil, err
	}

	d.stats.Frames++
	d.stats.Messages += len(types)

	header, _ := remoteid.DecodeHeader(raw[0])
	return &Frame{
		Type:     header.Type,
		Types:    types,
		Raw:      raw,
		Received: d.clock.Now(),
		Message:  msg,
		Aircraft: d.aircraft,
	}, nil
}

func (d *Decoder) skip(n int) {
	d.stats.SkippedBytes += n
	d.buffer = d.buffer[n:]
}
