package remoteid

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeDirection tests the half-compass segment split
func TestEncodeDirection(t *testing.T) {
	tests := []struct {
		name        string
		direction   int
		wantSegment DirectionSegment
		wantByte    uint8
		wantErr     bool
	}{
		{name: "north", direction: 0, wantSegment: DirectionBelow180, wantByte: 0},
		{name: "last below 180", direction: 179, wantSegment: DirectionBelow180, wantByte: 179},
		{name: "180 starts upper segment", direction: 180, wantSegment: DirectionAbove180, wantByte: 0},
		{name: "west", direction: 270, wantSegment: DirectionAbove180, wantByte: 90},
		{name: "359", direction: 359, wantSegment: DirectionAbove180, wantByte: 179},
		{name: "360 rejected", direction: 360, wantErr: true},
		{name: "negative rejected", direction: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment, b, err := encodeDirection(tt.direction)
			if tt.wantErr {
				var rangeErr *FieldRangeError
				require.ErrorAs(t, err, &rangeErr)
				assert.Equal(t, "direction", rangeErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSegment, segment)
			assert.Equal(t, tt.wantByte, b)

			decoded, err := decodeDirection(segment, b)
			require.NoError(t, err)
			assert.Equal(t, tt.direction, decoded)
		})
	}
}

// TestDecodeDirectionRejectsOffsetOver179 tests that an impossible direction byte fails
func TestDecodeDirectionRejectsOffsetOver179(t *testing.T) {
	_, err := decodeDirection(DirectionAbove180, 180)
	var rangeErr *FieldRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

// TestEncodeSpeed tests both resolutions and the saturating upper bound
func TestEncodeSpeed(t *testing.T) {
	tests := []struct {
		name           string
		speed          float64
		wantMultiplier SpeedMultiplier
		wantByte       uint8
		wantDecoded    float64
	}{
		{name: "stationary", speed: 0, wantMultiplier: SpeedMultiplier0p25, wantByte: 0, wantDecoded: 0},
		{name: "15 m/s", speed: 15, wantMultiplier: SpeedMultiplier0p25, wantByte: 60, wantDecoded: 15},
		{name: "low range ceiling", speed: 63.75, wantMultiplier: SpeedMultiplier0p25, wantByte: 255, wantDecoded: 63.75},
		{name: "first high range value", speed: 64.0, wantMultiplier: SpeedMultiplier0p75, wantByte: 0, wantDecoded: 63.75},
		{name: "high range", speed: 100.5, wantMultiplier: SpeedMultiplier0p75, wantByte: 49, wantDecoded: 100.5},
		{name: "saturation threshold", speed: 254.25, wantMultiplier: SpeedMultiplier0p75, wantByte: 254, wantDecoded: 254.25},
		{name: "saturated", speed: 300, wantMultiplier: SpeedMultiplier0p75, wantByte: 254, wantDecoded: 254.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, b, err := encodeSpeed(tt.speed)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMultiplier, multiplier)
			assert.Equal(t, tt.wantByte, b)
			assert.InDelta(t, tt.wantDecoded, decodeSpeed(multiplier, b), 1e-9)
		})
	}

	t.Run("negative rejected", func(t *testing.T) {
		_, _, err := encodeSpeed(-0.25)
		var rangeErr *FieldRangeError
		assert.ErrorAs(t, err, &rangeErr)
	})
	t.Run("NaN rejected", func(t *testing.T) {
		_, _, err := encodeSpeed(math.NaN())
		assert.Error(t, err)
	})
}

// TestEncodeVerticalSpeed tests the signed 0.5 m/s encoding and its hard limits
func TestEncodeVerticalSpeed(t *testing.T) {
	tests := []struct {
		speed   float64
		want    int8
		wantErr bool
	}{
		{speed: 0, want: 0},
		{speed: 2, want: 4},
		{speed: -3.5, want: -7},
		{speed: 62, want: 124},
		{speed: -62, want: -124},
		{speed: 62.5, wantErr: true},
		{speed: -100, wantErr: true},
	}

	for _, tt := range tests {
		v, err := encodeVerticalSpeed(tt.speed)
		if tt.wantErr {
			assert.Error(t, err, "speed %v", tt.speed)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, v)
		assert.Equal(t, tt.speed, decodeVerticalSpeed(v))
	}
}

// TestEncodeAltitude tests the offset encoding at its range ends
func TestEncodeAltitude(t *testing.T) {
	tests := []struct {
		meters  float64
		want    uint16
		wantErr bool
	}{
		{meters: -1000, want: 0},
		{meters: 0, want: 2000},
		{meters: 100, want: 2200},
		{meters: 120.5, want: 2241},
		{meters: 31767, want: 65534},
		{meters: -1000.5, wantErr: true},
		{meters: 31768, wantErr: true},
	}

	for _, tt := range tests {
		v, err := encodeAltitude("height", tt.meters)
		if tt.wantErr {
			var rangeErr *FieldRangeError
			require.ErrorAs(t, err, &rangeErr, "altitude %v", tt.meters)
			assert.Equal(t, "height", rangeErr.Field)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, v)
		assert.Equal(t, tt.meters, decodeAltitude(v))
	}
}

// TestEncodeCoordinate tests the 1e-7 degree encoding
func TestEncodeCoordinate(t *testing.T) {
	v, err := encodeCoordinate("latitude", 39.9042, MaxLatitude)
	require.NoError(t, err)
	assert.Equal(t, int32(399042000), v)
	assert.InDelta(t, 39.9042, decodeCoordinate(v), 1e-9)

	v, err = encodeCoordinate("longitude", -180, MaxLongitude)
	require.NoError(t, err)
	assert.Equal(t, int32(-1800000000), v)

	_, err = encodeCoordinate("latitude", 90.0000001, MaxLatitude)
	assert.Error(t, err)
	_, err = encodeCoordinate("longitude", math.Inf(1), MaxLongitude)
	assert.Error(t, err)
}

// TestAreaFields tests area radius and area count limits
func TestAreaFields(t *testing.T) {
	r, err := encodeAreaRadius(100)
	require.NoError(t, err)
	assert.Equal(t, uint8(10), r)

	r, err = encodeAreaRadius(2554)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, 2550.0, decodeAreaRadius(r))

	_, err = encodeAreaRadius(2555)
	assert.Error(t, err)
	_, err = encodeAreaRadius(-10)
	assert.Error(t, err)

	c, err := encodeAreaCount(65535)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), c)
	_, err = encodeAreaCount(0)
	assert.Error(t, err)
	_, err = encodeAreaCount(65536)
	assert.Error(t, err)
}

// TestTimestampFields tests the timestamp accuracy nibble and both message timestamps
func TestTimestampFields(t *testing.T) {
	acc, err := encodeTimestampAccuracy(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, uint8(15), acc)
	assert.Equal(t, 1500*time.Millisecond, decodeTimestampAccuracy(acc))

	_, err = encodeTimestampAccuracy(1600 * time.Millisecond)
	assert.Error(t, err)
	_, err = encodeTimestampAccuracy(-time.Millisecond)
	assert.Error(t, err)

	at := time.Date(2024, 5, 17, 10, 23, 45, 600_000_000, time.UTC)
	assert.Equal(t, uint16(14256), encodeLocationTimestamp(at))
	assert.Equal(t, 23*time.Minute+45600*time.Millisecond, decodeLocationTimestamp(14256))

	// Top of the next hour wraps to zero
	assert.Equal(t, uint16(0), encodeLocationTimestamp(at.Truncate(time.Hour).Add(time.Hour)))

	// Local zones are converted first
	shanghai := time.FixedZone("CST", 8*3600)
	assert.Equal(t, uint16(14256), encodeLocationTimestamp(at.In(shanghai)))

	secs, err := encodeSystemTimestamp(at)
	require.NoError(t, err)
	assert.Equal(t, uint32(169640625), secs)
	assert.True(t, at.Truncate(time.Second).Equal(decodeSystemTimestamp(secs)))

	_, err = encodeSystemTimestamp(time.Date(2018, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.Error(t, err)
}

// TestEncodeText tests padding, length limits and the ASCII charset
func TestEncodeText(t *testing.T) {
	exact := "ABCDEFGHIJ0123456789"
	b, err := encodeText("id", exact, IDLength)
	require.NoError(t, err)
	assert.Equal(t, []byte(exact), b)

	b, err = encodeText("id", "DRONE001", IDLength)
	require.NoError(t, err)
	assert.Len(t, b, IDLength)
	assert.Equal(t, make([]byte, IDLength-8), b[8:])

	_, err = encodeText("id", exact+"X", IDLength)
	var tooLong *FieldTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 21, tooLong.Length)
	assert.Equal(t, IDLength, tooLong.Max)

	_, err = encodeText("description", "café", DescriptionLength)
	var charset *FieldCharsetError
	require.ErrorAs(t, err, &charset)
	assert.Equal(t, 3, charset.Offset)
}

// TestDecodeText tests that only trailing nulls are removed
func TestDecodeText(t *testing.T) {
	s, err := decodeText("id", []byte("AB\x00CD\x00\x00\x00"))
	require.NoError(t, err)
	assert.Equal(t, "AB\x00CD", s)

	s, err = decodeText("id", make([]byte, IDLength))
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = decodeText("id", []byte{'A', 0xC3, 0xA9})
	assert.Error(t, err)
}
