package remoteid

import "encoding/binary"

// System body layout, multi-byte fields little-endian:
//   [1]     reserved (7-5) | classification type (4-2) | operator location source (1-0)
//   [2:6]   operator latitude, signed
//   [6:10]  operator longitude, signed
//   [10:12] area count
//   [12]    area radius, 10 m steps
//   [13:15] area ceiling
//   [15:17] area floor
//   [17]    UA category (7-4) | UA class (3-0), meaning set by classification type
//   [18:20] operator altitude
//   [20:24] timestamp, seconds since 2019-01-01T00:00:00Z
//   [24]    reserved

func (e *Encoder) encodeSystem(a *Aircraft) ([]byte, error) {
	if err := operatorLocationSources.check("operator location source type", a.OperatorLocationSourceType); err != nil {
		return nil, err
	}
	classType, classByte, err := a.Classification.encode()
	if err != nil {
		return nil, err
	}

	opLat, err := encodeCoordinate("operator latitude", a.OperatorLatitude, MaxLatitude)
	if err != nil {
		return nil, err
	}
	opLon, err := encodeCoordinate("operator longitude", a.OperatorLongitude, MaxLongitude)
	if err != nil {
		return nil, err
	}
	count, err := encodeAreaCount(a.AreaCount)
	if err != nil {
		return nil, err
	}
	radius, err := encodeAreaRadius(a.AreaRadius)
	if err != nil {
		return nil, err
	}
	ceiling, err := encodeAltitude("area ceiling", a.AreaCeiling)
	if err != nil {
		return nil, err
	}
	floor, err := encodeAltitude("area floor", a.AreaFloor)
	if err != nil {
		return nil, err
	}
	opAlt, err := encodeAltitude("operator altitude", a.OperatorAltitude)
	if err != nil {
		return nil, err
	}
	timestamp, err := encodeSystemTimestamp(e.clock.Now())
	if err != nil {
		return nil, err
	}

	msg := newMessage(MessageTypeSystem)
	msg[1] = (classType&0x07)<<2 | uint8(a.OperatorLocationSourceType)&0x03
	binary.LittleEndian.PutUint32(msg[2:6], uint32(opLat))
	binary.LittleEndian.PutUint32(msg[6:10], uint32(opLon))
	binary.LittleEndian.PutUint16(msg[10:12], count)
	msg[12] = radius
	binary.LittleEndian.PutUint16(msg[13:15], ceiling)
	binary.LittleEndian.PutUint16(msg[15:17], floor)
	msg[17] = classByte
	binary.LittleEndian.PutUint16(msg[18:20], opAlt)
	binary.LittleEndian.PutUint32(msg[20:24], timestamp)
	return msg, nil
}

func decodeSystem(a *Aircraft, msg []byte) error {
	flags := msg[1]

	source, err := operatorLocationSources.decode("operator location source type", flags&0x03)
	if err != nil {
		return err
	}
	classification, err := decodeClassification((flags>>2)&0x07, msg[17])
	if err != nil {
		return err
	}

	count := binary.LittleEndian.Uint16(msg[10:12])
	if count < MinAreaCount {
		return &FieldRangeError{Field: "area count", Value: float64(count), Min: MinAreaCount, Max: MaxAreaCount}
	}

	a.OperatorLocationSourceType = source
	a.Classification = classification
	a.OperatorLatitude = decodeCoordinate(int32(binary.LittleEndian.Uint32(msg[2:6])))
	a.OperatorLongitude = decodeCoordinate(int32(binary.LittleEndian.Uint32(msg[6:10])))
	a.AreaCount = int(count)
	a.AreaRadius = decodeAreaRadius(msg[12])
	a.AreaCeiling = decodeAltitude(binary.LittleEndian.Uint16(msg[13:15]))
	a.AreaFloor = decodeAltitude(binary.LittleEndian.Uint16(msg[15:17]))
	a.OperatorAltitude = decodeAltitude(binary.LittleEndian.Uint16(msg[18:20]))
	a.SystemTimestamp = decodeSystemTimestamp(binary.LittleEndian.Uint32(msg[20:24]))
	return nil
}
