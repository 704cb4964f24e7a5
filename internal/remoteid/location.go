package remoteid

import "encoding/binary"

// Location/Vector body layout, multi-byte fields little-endian:
//   [1]     status: operational status (7-4) | reserved (3) | height type (2) |
//           direction segment (1) | speed multiplier (0)
//   [2]     direction
//   [3]     horizontal speed
//   [4]     vertical speed, signed
//   [5:9]   latitude, signed
//   [9:13]  longitude, signed
//   [13:15] pressure altitude
//   [15:17] geodetic altitude
//   [17:19] height
//   [19]    geodetic accuracy (7-4) | horizontal accuracy (3-0)
//   [20]    pressure accuracy (7-4) | speed accuracy (3-0)
//   [21:23] timestamp, tenths of a second since the hour
//   [23]    reserved (7-4) | timestamp accuracy (3-0)
//   [24]    reserved

const (
	statusHeightTypeBit = 2
	statusSegmentBit    = 1
)

func (e *Encoder) encodeLocation(a *Aircraft) ([]byte, error) {
	if err := operationalStatuses.check("operational status", a.OperationalStatus); err != nil {
		return nil, err
	}
	if err := heightTypes.check("height type", a.HeightType); err != nil {
		return nil, err
	}
	if err := verticalAccuracies.check("geodetic accuracy", a.GeodeticAccuracy); err != nil {
		return nil, err
	}
	if err := horizontalAccuracies.check("horizontal accuracy", a.HorizontalAccuracy); err != nil {
		return nil, err
	}
	if err := verticalAccuracies.check("pressure accuracy", a.PressureAccuracy); err != nil {
		return nil, err
	}
	if err := speedAccuracies.check("speed accuracy", a.SpeedAccuracy); err != nil {
		return nil, err
	}

	segment, direction, err := encodeDirection(a.Direction)
	if err != nil {
		return nil, err
	}
	multiplier, speed, err := encodeSpeed(a.HorizontalSpeed)
	if err != nil {
		return nil, err
	}
	vspeed, err := encodeVerticalSpeed(a.VerticalSpeed)
	if err != nil {
		return nil, err
	}
	lat, err := encodeCoordinate("latitude", a.Latitude, MaxLatitude)
	if err != nil {
		return nil, err
	}
	lon, err := encodeCoordinate("longitude", a.Longitude, MaxLongitude)
	if err != nil {
		return nil, err
	}
	pressureAlt, err := encodeAltitude("pressure altitude", a.PressureAltitude)
	if err != nil {
		return nil, err
	}
	geodeticAlt, err := encodeAltitude("geodetic altitude", a.GeodeticAltitude)
	if err != nil {
		return nil, err
	}
	height, err := encodeAltitude("height", a.Height)
	if err != nil {
		return nil, err
	}
	tsAccuracy, err := encodeTimestampAccuracy(a.TimestampAccuracy)
	if err != nil {
		return nil, err
	}

	msg := newMessage(MessageTypeLocation)
	msg[1] = uint8(a.OperationalStatus)<<4 |
		uint8(a.HeightType)<<statusHeightTypeBit |
		uint8(segment)<<statusSegmentBit |
		uint8(multiplier)
	msg[2] = direction
	msg[3] = speed
	msg[4] = byte(vspeed)
	binary.LittleEndian.PutUint32(msg[5:9], uint32(lat))
	binary.LittleEndian.PutUint32(msg[9:13], uint32(lon))
	binary.LittleEndian.PutUint16(msg[13:15], pressureAlt)
	binary.LittleEndian.PutUint16(msg[15:17], geodeticAlt)
	binary.LittleEndian.PutUint16(msg[17:19], height)
	msg[19] = packNibbles(uint8(a.GeodeticAccuracy), uint8(a.HorizontalAccuracy))
	msg[20] = packNibbles(uint8(a.PressureAccuracy), uint8(a.SpeedAccuracy))
	binary.LittleEndian.PutUint16(msg[21:23], encodeLocationTimestamp(e.clock.Now()))
	msg[23] = tsAccuracy & 0x0F
	return msg, nil
}

func decodeLocation(a *Aircraft, msg []byte) error {
	status := msg[1]

	opStatus, err := operationalStatuses.decode("operational status", status>>4)
	if err != nil {
		return err
	}
	heightType, err := heightTypes.decode("height type", (status>>statusHeightTypeBit)&0x01)
	if err != nil {
		return err
	}
	segment := DirectionSegment((status >> statusSegmentBit) & 0x01)
	multiplier := SpeedMultiplier(status & 0x01)

	direction, err := decodeDirection(segment, msg[2])
	if err != nil {
		return err
	}

	geoAccCode, horizAccCode := unpackNibbles(msg[19])
	geodeticAccuracy, err := verticalAccuracies.decode("geodetic accuracy", geoAccCode)
	if err != nil {
		return err
	}
	horizontalAccuracy, err := horizontalAccuracies.decode("horizontal accuracy", horizAccCode)
	if err != nil {
		return err
	}
	pressAccCode, speedAccCode := unpackNibbles(msg[20])
	pressureAccuracy, err := verticalAccuracies.decode("pressure accuracy", pressAccCode)
	if err != nil {
		return err
	}
	speedAccuracy, err := speedAccuracies.decode("speed accuracy", speedAccCode)
	if err != nil {
		return err
	}

	a.OperationalStatus = opStatus
	a.HeightType = heightType
	a.Direction = direction
	a.HorizontalSpeed = decodeSpeed(multiplier, msg[3])
	a.VerticalSpeed = decodeVerticalSpeed(int8(msg[4]))
	a.Latitude = decodeCoordinate(int32(binary.LittleEndian.Uint32(msg[5:9])))
	a.Longitude = decodeCoordinate(int32(binary.LittleEndian.Uint32(msg[9:13])))
	a.PressureAltitude = decodeAltitude(binary.LittleEndian.Uint16(msg[13:15]))
	a.GeodeticAltitude = decodeAltitude(binary.LittleEndian.Uint16(msg[15:17]))
	a.Height = decodeAltitude(binary.LittleEndian.Uint16(msg[17:19]))
	a.GeodeticAccuracy = geodeticAccuracy
	a.HorizontalAccuracy = horizontalAccuracy
	a.PressureAccuracy = pressureAccuracy
	a.SpeedAccuracy = speedAccuracy
	a.Timestamp = decodeLocationTimestamp(binary.LittleEndian.Uint16(msg[21:23]))
	a.TimestampAccuracy = decodeTimestampAccuracy(msg[23])
	return nil
}
