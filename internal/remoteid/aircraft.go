package remoteid

import "time"

// Aircraft holds the union of the fields of every message subtype. A single
// aircraft is described by several message types over time, so decoding a
// message only touches the fields of its own subtype.
type Aircraft struct {
	// Basic ID (0x0)
	IDType IDType
	UAType UAType
	ID     string

	// Location/Vector (0x1)
	OperationalStatus  OperationalStatus
	HeightType         HeightType
	Direction          int     // Track over ground, degrees 0-359
	HorizontalSpeed    float64 // m/s
	VerticalSpeed      float64 // m/s, positive up
	Latitude           float64 // Degrees
	Longitude          float64 // Degrees
	PressureAltitude   float64 // m
	GeodeticAltitude   float64 // m
	Height             float64 // m, see HeightType
	GeodeticAccuracy   VerticalAccuracy
	HorizontalAccuracy HorizontalAccuracy
	PressureAccuracy   VerticalAccuracy
	SpeedAccuracy      SpeedAccuracy
	TimestampAccuracy  time.Duration

	// Timestamp is the Location time since the top of the hour. Set by
	// decode only; encode always writes the encoder clock.
	Timestamp time.Duration

	// Self-ID (0x3)
	DescriptionType DescriptionType
	Description     string

	// System (0x4)
	OperatorLocationSourceType OperatorLocationSourceType
	Classification             Classification
	OperatorLatitude           float64 // Degrees
	OperatorLongitude          float64 // Degrees
	AreaCount                  int
	AreaRadius                 float64 // m
	AreaCeiling                float64 // m
	AreaFloor                  float64 // m
	OperatorAltitude           float64 // m

	// SystemTimestamp is set by decode only, like Timestamp
	SystemTimestamp time.Time

	// Operator ID (0x5)
	OperatorIDType OperatorIDType
	OperatorID     string
}

// NewAircraft returns a record with the format's default values: every
// altitude at its -1000 m floor and an area count of one.
func NewAircraft() Aircraft {
	return Aircraft{
		PressureAltitude: MinAltitude,
		GeodeticAltitude: MinAltitude,
		Height:           MinAltitude,
		AreaCount:        MinAreaCount,
		AreaCeiling:      MinAltitude,
		AreaFloor:        MinAltitude,
		OperatorAltitude: MinAltitude,
	}
}
