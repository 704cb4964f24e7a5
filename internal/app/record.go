package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

// Record is the flat, file-friendly form of remoteid.Aircraft. Enumerated
// fields are written by name and durations in seconds.
type Record struct {
	// Basic ID
	IDType remoteid.IDType `yaml:"id_type"`
	UAType remoteid.UAType `yaml:"ua_type"`
	ID     string          `yaml:"id"`

	// Location/Vector
	OperationalStatus  remoteid.OperationalStatus  `yaml:"operational_status"`
	HeightType         remoteid.HeightType         `yaml:"height_type"`
	Direction          int                         `yaml:"direction"`
	HorizontalSpeed    float64                     `yaml:"horizontal_speed"`
	VerticalSpeed      float64                     `yaml:"vertical_speed"`
	Latitude           float64                     `yaml:"latitude"`
	Longitude          float64                     `yaml:"longitude"`
	PressureAltitude   float64                     `yaml:"pressure_altitude"`
	GeodeticAltitude   float64                     `yaml:"geodetic_altitude"`
	Height             float64                     `yaml:"height"`
	GeodeticAccuracy   remoteid.VerticalAccuracy   `yaml:"geodetic_accuracy"`
	HorizontalAccuracy remoteid.HorizontalAccuracy `yaml:"horizontal_accuracy"`
	PressureAccuracy   remoteid.VerticalAccuracy   `yaml:"pressure_accuracy"`
	SpeedAccuracy      remoteid.SpeedAccuracy      `yaml:"speed_accuracy"`
	TimestampAccuracy  float64                     `yaml:"timestamp_accuracy"`

	// Self-ID
	DescriptionType remoteid.DescriptionType `yaml:"description_type"`
	Description     string                   `yaml:"description"`

	// System
	ClassificationType         remoteid.ClassificationType         `yaml:"classification_type"`
	OperatorLocationSourceType remoteid.OperatorLocationSourceType `yaml:"operator_location_source_type"`
	OperatorLatitude           float64                             `yaml:"operator_latitude"`
	OperatorLongitude          float64                             `yaml:"operator_longitude"`
	AreaCount                  int                                 `yaml:"area_count"`
	AreaRadius                 float64                             `yaml:"area_radius"`
	AreaCeiling                float64                             `yaml:"area_ceiling"`
	AreaFloor                  float64                             `yaml:"area_floor"`
	EUUACategory               remoteid.EUUACategory               `yaml:"eu_ua_category"`
	EUUAClass                  remoteid.EUUAClass                  `yaml:"eu_ua_class"`
	ChinaUACategory            remoteid.ChinaUACategory            `yaml:"china_ua_category"`
	ChinaUAClass               remoteid.ChinaUAClass               `yaml:"china_ua_class"`
	OperatorAltitude           float64                             `yaml:"operator_altitude"`

	// Operator ID
	OperatorIDType remoteid.OperatorIDType `yaml:"operator_id_type"`
	OperatorID     string                  `yaml:"operator_id"`

	// Set from decoded messages only, ignored when encoding
	Timestamp       *float64   `yaml:"timestamp,omitempty"`
	SystemTimestamp *time.Time `yaml:"system_timestamp,omitempty"`
}

// RecordFromAircraft flattens a record for output
func RecordFromAircraft(a *remoteid.Aircraft) Record {
	r := Record{
		IDType:                     a.IDType,
		UAType:                     a.UAType,
		ID:                         a.ID,
		OperationalStatus:          a.OperationalStatus,
		HeightType:                 a.HeightType,
		Direction:                  a.Direction,
		HorizontalSpeed:            a.HorizontalSpeed,
		VerticalSpeed:              a.VerticalSpeed,
		Latitude:                   a.Latitude,
		Longitude:                  a.Longitude,
		PressureAltitude:           a.PressureAltitude,
		GeodeticAltitude:           a.GeodeticAltitude,
		Height:                     a.Height,
		GeodeticAccuracy:           a.GeodeticAccuracy,
		HorizontalAccuracy:         a.HorizontalAccuracy,
		PressureAccuracy:           a.PressureAccuracy,
		SpeedAccuracy:              a.SpeedAccuracy,
		TimestampAccuracy:          a.TimestampAccuracy.Seconds(),
		DescriptionType:            a.DescriptionType,
		Description:                a.Description,
		ClassificationType:         a.Classification.Type(),
		OperatorLocationSourceType: a.OperatorLocationSourceType,
		OperatorLatitude:           a.OperatorLatitude,
		OperatorLongitude:          a.OperatorLongitude,
		AreaCount:                  a.AreaCount,
		AreaRadius:                 a.AreaRadius,
		AreaCeiling:                a.AreaCeiling,
		AreaFloor:                  a.AreaFloor,
		OperatorAltitude:           a.OperatorAltitude,
		OperatorIDType:             a.OperatorIDType,
		OperatorID:                 a.OperatorID,
	}

	if eu, ok := a.Classification.EU(); ok {
		r.EUUACategory = eu.Category
		r.EUUAClass = eu.Class
	}
	if cn, ok := a.Classification.China(); ok {
		r.ChinaUACategory = cn.Category
		r.ChinaUAClass = cn.Class
	}
	if a.Timestamp != 0 {
		secs := a.Timestamp.Seconds()
		r.Timestamp = &secs
	}
	if !a.SystemTimestamp.IsZero() {
		ts := a.SystemTimestamp
		r.SystemTimestamp = &ts
	}

	return r
}

// Aircraft converts the record back to the codec's form. Only the payload
// selected by ClassificationType is kept.
func (r *Record) Aircraft() (remoteid.Aircraft, error) {
	if math.IsNaN(r.TimestampAccuracy) || math.IsInf(r.TimestampAccuracy, 0) {
		return remoteid.Aircraft{}, fmt.Errorf("timestamp_accuracy %v is not a number of seconds", r.TimestampAccuracy)
	}

	a := remoteid.Aircraft{
		IDType:                     r.IDType,
		UAType:                     r.UAType,
		ID:                         r.ID,
		OperationalStatus:          r.OperationalStatus,
		HeightType:                 r.HeightType,
		Direction:                  r.Direction,
		HorizontalSpeed:            r.HorizontalSpeed,
		VerticalSpeed:              r.VerticalSpeed,
		Latitude:                   r.Latitude,
		Longitude:                  r.Longitude,
		PressureAltitude:           r.PressureAltitude,
		GeodeticAltitude:           r.GeodeticAltitude,
		Height:                     r.Height,
		GeodeticAccuracy:           r.GeodeticAccuracy,
		HorizontalAccuracy:         r.HorizontalAccuracy,
		PressureAccuracy:           r.PressureAccuracy,
		SpeedAccuracy:              r.SpeedAccuracy,
		TimestampAccuracy:          time.Duration(math.Round(r.TimestampAccuracy * float64(time.Second))),
		DescriptionType:            r.DescriptionType,
		Description:                r.Description,
		OperatorLocationSourceType: r.OperatorLocationSourceType,
		OperatorLatitude:           r.OperatorLatitude,
		OperatorLongitude:          r.OperatorLongitude,
		AreaCount:                  r.AreaCount,
		AreaRadius:                 r.AreaRadius,
		AreaCeiling:                r.AreaCeiling,
		AreaFloor:                  r.AreaFloor,
		OperatorAltitude:           r.OperatorAltitude,
		OperatorIDType:             r.OperatorIDType,
		OperatorID:                 r.OperatorID,
	}

	switch r.ClassificationType {
	case remoteid.ClassificationEuropeanUnion:
		a.Classification = remoteid.EUClassified(r.EUUACategory, r.EUUAClass)
	case remoteid.ClassificationChina:
		a.Classification = remoteid.ChinaClassified(r.ChinaUACategory, r.ChinaUAClass)
	default:
		a.Classification = remoteid.Unclassified(r.ClassificationType)
	}

	return a, nil
}

// ParseRecord reads a YAML record. Keys left out keep the record defaults.
func ParseRecord(data []byte) (Record, error) {
	defaults := remoteid.NewAircraft()
	r := RecordFromAircraft(&defaults)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil && !errors.Is(err, io.EOF) {
		return Record{}, fmt.Errorf("failed to parse record: %w", err)
	}
	return r, nil
}

// LoadRecord reads a YAML record file
func LoadRecord(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("failed to read record file: %w", err)
	}
	return ParseRecord(data)
}

// MarshalRecord renders a record as YAML
func MarshalRecord(r Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("failed to encode record: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
