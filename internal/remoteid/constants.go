package remoteid

import "time"

// Framing constants shared by every message subtype
const (
	ProtocolVersion = 2  // Version nibble written into every header
	MessageSize     = 25 // 1 header byte + 24 body bytes
	PackHeaderSize  = 3  // Header + message size + message count
	MaxPackMessages = 9
)

// Fixed widths of the ASCII text fields
const (
	IDLength          = 20
	DescriptionLength = 23
	OperatorIDLength  = 20
)

// Altitude encoding: unsigned 16-bit, 0.5 m resolution, -1000 m offset
const (
	AltitudeOffset     = 1000.0
	AltitudeResolution = 0.5
	MinAltitude        = -1000.0
	MaxAltitude        = 31767.0
)

// Horizontal speed encoding
const (
	SpeedLowResolution  = 0.25
	SpeedHighResolution = 0.75
	SpeedLowMax         = 255 * SpeedLowResolution // 63.75 m/s, largest value at 0.25 m/s
	SpeedSaturation     = 254.25                   // Speeds at or above this clamp to SpeedSaturatedByte
	SpeedSaturatedByte  = 254
)

// Remaining scaled fields
const (
	CoordinateScale         = 1e7
	MaxLatitude             = 90.0
	MaxLongitude            = 180.0
	VerticalSpeedResolution = 0.5
	MaxVerticalSpeed        = 62.0
	AreaRadiusResolution    = 10.0
	MaxAreaRadius           = 2554.0
	MinAreaCount            = 1
	MaxAreaCount            = 65535
	MaxDirection            = 359

	TimestampAccuracyResolution = 100 * time.Millisecond
	MaxTimestampAccuracy        = 1500 * time.Millisecond
	LocationTimestampResolution = 100 * time.Millisecond
)

// SystemEpochUnix is 2019-01-01T00:00:00Z, the zero point of the System timestamp.
const SystemEpochUnix = 1546300800
