package remoteid

// Basic ID body layout:
//   [1]     ID type (7-4) | UA type (3-0)
//   [2:22]  UAS ID, ASCII, null padded
//   [22:25] reserved

func (e *Encoder) encodeBasicID(a *Aircraft) ([]byte, error) {
	if err := idTypes.check("id type", a.IDType); err != nil {
		return nil, err
	}
	if err := uaTypes.check("ua type", a.UAType); err != nil {
		return nil, err
	}
	id, err := encodeText("id", a.ID, IDLength)
	if err != nil {
		return nil, err
	}

	msg := newMessage(MessageTypeBasicID)
	msg[1] = packNibbles(uint8(a.IDType), uint8(a.UAType))
	copy(msg[2:2+IDLength], id)
	return msg, nil
}

func decodeBasicID(a *Aircraft, msg []byte) error {
	idCode, uaCode := unpackNibbles(msg[1])

	idType, err := idTypes.decode("id type", idCode)
	if err != nil {
		return err
	}
	uaType, err := uaTypes.decode("ua type", uaCode)
	if err != nil {
		return err
	}
	id, err := decodeText("id", msg[2:2+IDLength])
	if err != nil {
		return err
	}

	a.IDType = idType
	a.UAType = uaType
	a.ID = id
	return nil
}
