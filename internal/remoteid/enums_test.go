package remoteid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseMessageType tests name, alias and numeric parsing
func TestParseMessageType(t *testing.T) {
	tests := []struct {
		input   string
		want    MessageType
		wantErr bool
	}{
		{input: "BASIC_ID", want: MessageTypeBasicID},
		{input: "basic-id", want: MessageTypeBasicID},
		{input: " Location ", want: MessageTypeLocation},
		{input: "self_id", want: MessageTypeSelfID},
		{input: "operator-id", want: MessageTypeOperatorID},
		{input: "pack", want: MessageTypePack},
		{input: "0x4", want: MessageTypeSystem},
		{input: "15", want: MessageTypePack},
		{input: "7", wantErr: true},
		{input: "vector", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMessageType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestEnumAliases tests that aliases share a code and print the canonical name
func TestEnumAliases(t *testing.T) {
	assert.Equal(t, UATypeHelicopter, UATypeMultirotor)
	assert.Equal(t, "HELICOPTER", UATypeMultirotor.String())

	var ua UAType
	require.NoError(t, ua.UnmarshalText([]byte("multirotor")))
	assert.Equal(t, UATypeMultirotor, ua)

	var acc HorizontalAccuracy
	require.NoError(t, acc.UnmarshalText([]byte("beyond-10nm")))
	assert.Equal(t, HorizontalAccuracyUnknown, acc)

	var cls EUUAClass
	require.NoError(t, cls.UnmarshalText([]byte("class_1")))
	assert.Equal(t, EUClass1, cls)
	assert.Equal(t, uint8(0x2), uint8(cls))
}

// TestEnumMarshalText tests canonical names and rejection of undefined codes
func TestEnumMarshalText(t *testing.T) {
	b, err := IDTypeSerialNumber.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SERIAL_NUMBER", string(b))

	b, err = DescriptionTypePrivate.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "PRIVATE", string(b))

	_, err = IDType(0xF).MarshalText()
	var enumErr *InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, uint8(0xF), enumErr.Value)

	assert.Equal(t, "UNDEFINED(0x0F)", IDType(0xF).String())
}

// TestEnumDecodeIsExhaustive tests that every undefined code of a nibble field fails
func TestEnumDecodeIsExhaustive(t *testing.T) {
	defined := 0
	for code := 0; code < 16; code++ {
		_, err := verticalAccuracies.decode("geodetic accuracy", uint8(code))
		if err == nil {
			defined++
			continue
		}
		var enumErr *InvalidEnumValueError
		require.ErrorAs(t, err, &enumErr)
		assert.Equal(t, "geodetic accuracy", enumErr.Field)
		assert.Equal(t, "vertical accuracy", enumErr.Enum)
	}
	assert.Equal(t, 8, defined)
}
