package remoteid

import (
	"math"
	"strings"
	"time"
)

// round matches the format's reference rounding (half to even)
func round(v float64) float64 {
	return math.RoundToEven(v)
}

// packNibbles puts hi in bits 7-4 and lo in bits 3-0
func packNibbles(hi, lo uint8) byte {
	return (hi&0x0F)<<4 | lo&0x0F
}

// unpackNibbles splits a byte into its high and low nibbles
func unpackNibbles(b byte) (hi, lo uint8) {
	return (b >> 4) & 0x0F, b & 0x0F
}

// encodeDirection maps a track angle to its half-compass segment and offset byte
func encodeDirection(degrees int) (DirectionSegment, uint8, error) {
	switch {
	case degrees >= 0 && degrees < 180:
		return DirectionBelow180, uint8(degrees), nil
	case degrees >= 180 && degrees <= MaxDirection:
		return DirectionAbove180, uint8(degrees - 180), nil
	default:
		return 0, 0, &FieldRangeError{Field: "direction", Value: float64(degrees), Min: 0, Max: MaxDirection}
	}
}

// decodeDirection is the inverse of encodeDirection
func decodeDirection(segment DirectionSegment, b uint8) (int, error) {
	if b >= 180 {
		return 0, &FieldRangeError{Field: "direction", Value: float64(b), Min: 0, Max: 179}
	}
	if segment == DirectionAbove180 {
		return int(b) + 180, nil
	}
	return int(b), nil
}

// encodeSpeed maps a ground speed to a multiplier flag and speed byte.
// Speeds at or above SpeedSaturation clamp instead of failing.
func encodeSpeed(speed float64) (SpeedMultiplier, uint8, error) {
	switch {
	case !(speed >= 0):
		return 0, 0, &FieldRangeError{Field: "horizontal speed", Value: speed, Min: 0, Max: SpeedSaturation}
	case speed <= SpeedLowMax:
		return SpeedMultiplier0p25, uint8(round(speed / SpeedLowResolution)), nil
	case speed < SpeedSaturation:
		return SpeedMultiplier0p75, uint8(round((speed - SpeedLowMax) / SpeedHighResolution)), nil
	default:
		return SpeedMultiplier0p75, SpeedSaturatedByte, nil
	}
}

// decodeSpeed is the inverse of encodeSpeed
func decodeSpeed(multiplier SpeedMultiplier, b uint8) float64 {
	if multiplier == SpeedMultiplier0p25 {
		return float64(b) * SpeedLowResolution
	}
	return SpeedLowMax + float64(b)*SpeedHighResolution
}

// encodeVerticalSpeed maps a climb rate to a signed 0.5 m/s step count
func encodeVerticalSpeed(speed float64) (int8, error) {
	if !(math.Abs(speed) <= MaxVerticalSpeed) {
		return 0, &FieldRangeError{Field: "vertical speed", Value: speed, Min: -MaxVerticalSpeed, Max: MaxVerticalSpeed}
	}
	return int8(round(speed / VerticalSpeedResolution)), nil
}

func decodeVerticalSpeed(v int8) float64 {
	return float64(v) * VerticalSpeedResolution
}

// encodeCoordinate maps degrees to a signed 1e-7 degree integer
func encodeCoordinate(field string, degrees, limit float64) (int32, error) {
	if !(math.Abs(degrees) <= limit) {
		return 0, &FieldRangeError{Field: field, Value: degrees, Min: -limit, Max: limit}
	}
	return int32(round(degrees * CoordinateScale)), nil
}

func decodeCoordinate(v int32) float64 {
	return float64(v) / CoordinateScale
}

// encodeAltitude maps metres to the offset 0.5 m unsigned encoding
func encodeAltitude(field string, meters float64) (uint16, error) {
	if !(meters >= MinAltitude && meters <= MaxAltitude) {
		return 0, &FieldRangeError{Field: field, Value: meters, Min: MinAltitude, Max: MaxAltitude}
	}
	return uint16(round((meters + AltitudeOffset) / AltitudeResolution)), nil
}

func decodeAltitude(v uint16) float64 {
	return float64(v)*AltitudeResolution - AltitudeOffset
}

// encodeAreaRadius maps metres to a 10 m step count
func encodeAreaRadius(meters float64) (uint8, error) {
	if !(meters >= 0 && meters <= MaxAreaRadius) {
		return 0, &FieldRangeError{Field: "area radius", Value: meters, Min: 0, Max: MaxAreaRadius}
	}
	return uint8(round(meters / AreaRadiusResolution)), nil
}

func decodeAreaRadius(v uint8) float64 {
	return float64(v) * AreaRadiusResolution
}

// encodeAreaCount checks the operation area aircraft count
func encodeAreaCount(count int) (uint16, error) {
	if count < MinAreaCount || count > MaxAreaCount {
		return 0, &FieldRangeError{Field: "area count", Value: float64(count), Min: MinAreaCount, Max: MaxAreaCount}
	}
	return uint16(count), nil
}

// encodeTimestampAccuracy maps a duration to a nibble of 0.1 s steps
func encodeTimestampAccuracy(d time.Duration) (uint8, error) {
	if d < 0 || d > MaxTimestampAccuracy {
		return 0, &FieldRangeError{
			Field: "timestamp accuracy",
			Value: d.Seconds(),
			Min:   0,
			Max:   MaxTimestampAccuracy.Seconds(),
		}
	}
	return uint8(round(float64(d) / float64(TimestampAccuracyResolution))), nil
}

func decodeTimestampAccuracy(v uint8) time.Duration {
	return time.Duration(v&0x0F) * TimestampAccuracyResolution
}

// encodeLocationTimestamp counts tenths of a second since the top of the UTC hour.
// The hour itself is not carried.
func encodeLocationTimestamp(t time.Time) uint16 {
	t = t.UTC()
	return uint16(t.Minute()*600 + t.Second()*10 + t.Nanosecond()/int(LocationTimestampResolution))
}

func decodeLocationTimestamp(v uint16) time.Duration {
	return time.Duration(v) * LocationTimestampResolution
}

// encodeSystemTimestamp counts whole seconds since 2019-01-01T00:00:00Z
func encodeSystemTimestamp(t time.Time) (uint32, error) {
	secs := t.Unix() - SystemEpochUnix
	if secs < 0 || secs > math.MaxUint32 {
		return 0, &FieldRangeError{Field: "system timestamp", Value: float64(secs), Min: 0, Max: math.MaxUint32}
	}
	return uint32(secs), nil
}

func decodeSystemTimestamp(v uint32) time.Time {
	return time.Unix(SystemEpochUnix+int64(v), 0).UTC()
}

// encodeText null-pads an ASCII string to width bytes
func encodeText(field, s string, width int) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return nil, &FieldCharsetError{Field: field, Offset: i}
		}
	}
	if len(s) > width {
		return nil, &FieldTooLongError{Field: field, Length: len(s), Max: width}
	}
	out := make([]byte, width)
	copy(out, s)
	return out, nil
}

// decodeText strips trailing nulls only; embedded bytes are kept as-is
func decodeText(field string, b []byte) (string, error) {
	for i, c := range b {
		if c > 0x7F {
			return "", &FieldCharsetError{Field: field, Offset: i}
		}
	}
	return strings.TrimRight(string(b), "\x00"), nil
}
