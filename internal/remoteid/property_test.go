package remoteid

import (
	"testing"
	"time"
	"unicode"

	"pgregory.net/rapid"
)

// printableASCII excludes NUL so trailing-null trimming cannot eat input
var printableASCII = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x20, Hi: 0x7E, Stride: 1}},
}

func asciiString(maxLen int) *rapid.Generator[string] {
	return rapid.StringOfN(rapid.RuneFrom(nil, printableASCII), 0, maxLen, maxLen)
}

func drawAltitude(t *rapid.T, label string) float64 {
	return float64(rapid.IntRange(0, 65534).Draw(t, label))*AltitudeResolution - AltitudeOffset
}

func drawCoordinate(t *rapid.T, label string, limit float64) float64 {
	steps := int(limit * CoordinateScale)
	return float64(rapid.IntRange(-steps, steps).Draw(t, label)) / CoordinateScale
}

// TestPropertyRoundTrip checks decode(encode(x)) == x for every subtype over
// values on each field's quantization grid
func TestPropertyRoundTrip(t *testing.T) {
	enc := NewEncoder(FixedClock(testTime))

	rapid.Check(t, func(t *rapid.T) {
		a := NewAircraft()

		a.IDType = rapid.SampledFrom(enumValues(idTypes)).Draw(t, "id_type")
		a.UAType = rapid.SampledFrom(enumValues(uaTypes)).Draw(t, "ua_type")
		a.ID = asciiString(IDLength).Draw(t, "id")

		a.OperationalStatus = rapid.SampledFrom(enumValues(operationalStatuses)).Draw(t, "operational_status")
		a.HeightType = rapid.SampledFrom(enumValues(heightTypes)).Draw(t, "height_type")
		a.Direction = rapid.IntRange(0, MaxDirection).Draw(t, "direction")
		if rapid.Bool().Draw(t, "low_speed") {
			a.HorizontalSpeed = float64(rapid.IntRange(0, 255).Draw(t, "speed_steps")) * SpeedLowResolution
		} else {
			a.HorizontalSpeed = SpeedLowMax + float64(rapid.IntRange(1, 254).Draw(t, "speed_steps"))*SpeedHighResolution
		}
		a.VerticalSpeed = float64(rapid.IntRange(-124, 124).Draw(t, "vspeed_steps")) * VerticalSpeedResolution
		a.Latitude = drawCoordinate(t, "latitude", MaxLatitude)
		a.Longitude = drawCoordinate(t, "longitude", MaxLongitude)
		a.PressureAltitude = drawAltitude(t, "pressure_altitude")
		a.GeodeticAltitude = drawAltitude(t, "geodetic_altitude")
		a.Height = drawAltitude(t, "height")
		a.GeodeticAccuracy = rapid.SampledFrom(enumValues(verticalAccuracies)).Draw(t, "geodetic_accuracy")
		a.HorizontalAccuracy = rapid.SampledFrom(enumValues(horizontalAccuracies)).Draw(t, "horizontal_accuracy")
		a.PressureAccuracy = rapid.SampledFrom(enumValues(verticalAccuracies)).Draw(t, "pressure_accuracy")
		a.SpeedAccuracy = rapid.SampledFrom(enumValues(speedAccuracies)).Draw(t, "speed_accuracy")
		a.TimestampAccuracy = time.Duration(rapid.IntRange(0, 15).Draw(t, "ts_accuracy")) * TimestampAccuracyResolution

		a.DescriptionType = rapid.SampledFrom(enumValues(descriptionTypes)).Draw(t, "description_type")
		a.Description = asciiString(DescriptionLength).Draw(t, "description")

		a.OperatorLocationSourceType = rapid.SampledFrom(enumValues(operatorLocationSources)).Draw(t, "location_source")
		a.Classification = drawClassification(t)
		a.OperatorLatitude = drawCoordinate(t, "operator_latitude", MaxLatitude)
		a.OperatorLongitude = drawCoordinate(t, "operator_longitude", MaxLongitude)
		a.AreaCount = rapid.IntRange(MinAreaCount, MaxAreaCount).Draw(t, "area_count")
		a.AreaRadius = float64(rapid.IntRange(0, 255).Draw(t, "area_radius_steps")) * AreaRadiusResolution
		a.AreaCeiling = drawAltitude(t, "area_ceiling")
		a.AreaFloor = drawAltitude(t, "area_floor")
		a.OperatorAltitude = drawAltitude(t, "operator_altitude")

		a.OperatorIDType = rapid.SampledFrom(enumValues(operatorIDTypes)).Draw(t, "operator_id_type")
		a.OperatorID = asciiString(OperatorIDLength).Draw(t, "operator_id")

		types := []MessageType{
			MessageTypeBasicID, MessageTypeLocation, MessageTypeSelfID,
			MessageTypeSystem, MessageTypeOperatorID,
		}
		pack, err := enc.EncodePack(&a, types)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		decoded, err := Decode(pack)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}

		want, got := withoutClockFields(a), withoutClockFields(decoded)
		if want != got {
			t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
		}
	})
}

// TestPropertyDecodeNeverPanics feeds arbitrary bytes to the dispatcher
func TestPropertyDecodeNeverPanics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		buf := rapid.SliceOfN(rapid.Byte(), 0, PackLength(MaxPackMessages)+2).Draw(t, "buf")
		a := NewAircraft()
		before := a
		if err := DecodeInto(&a, buf); err != nil && a != before {
			t.Fatalf("record changed on error %v", err)
		}
	})
}

// TestPropertySpeedIsMonotonic checks that faster input never encodes slower
func TestPropertySpeedIsMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(0, 400).Draw(t, "x")
		y := rapid.Float64Range(x, 400).Draw(t, "y")

		mx, bx, err := encodeSpeed(x)
		if err != nil {
			t.Fatal(err)
		}
		my, by, err := encodeSpeed(y)
		if err != nil {
			t.Fatal(err)
		}
		if decodeSpeed(mx, bx) > decodeSpeed(my, by) {
			t.Fatalf("speed %v decodes above %v", x, y)
		}
	})
}

func drawClassification(t *rapid.T) Classification {
	switch rapid.SampledFrom(enumValues(classificationTypes)).Draw(t, "classification_type") {
	case ClassificationEuropeanUnion:
		return EUClassified(
			rapid.SampledFrom(enumValues(euCategories)).Draw(t, "eu_category"),
			rapid.SampledFrom(enumValues(euClasses)).Draw(t, "eu_class"),
		)
	case ClassificationChina:
		return ChinaClassified(
			rapid.SampledFrom(enumValues(chinaCategories)).Draw(t, "china_category"),
			rapid.SampledFrom(enumValues(chinaClasses)).Draw(t, "china_class"),
		)
	case ClassificationReserved:
		return Unclassified(ClassificationReserved)
	default:
		return Classification{}
	}
}

func enumValues[T ~uint8](table *enumTable[T]) []T {
	values := make([]T, 0, len(table.entries))
	for _, en := range table.entries {
		values = append(values, en.value)
	}
	return values
}
