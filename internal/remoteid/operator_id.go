package remoteid

// Operator ID body layout:
//   [1]     operator ID type
//   [2:22]  operator ID, ASCII, null padded
//   [22:25] reserved

func (e *Encoder) encodeOperatorID(a *Aircraft) ([]byte, error) {
	if err := operatorIDTypes.check("operator id type", a.OperatorIDType); err != nil {
		return nil, err
	}
	id, err := encodeText("operator id", a.OperatorID, OperatorIDLength)
	if err != nil {
		return nil, err
	}

	msg := newMessage(MessageTypeOperatorID)
	msg[1] = byte(a.OperatorIDType)
	copy(msg[2:2+OperatorIDLength], id)
	return msg, nil
}

func decodeOperatorID(a *Aircraft, msg []byte) error {
	idType, err := operatorIDTypes.decode("operator id type", msg[1])
	if err != nil {
		return err
	}
	id, err := decodeText("operator id", msg[2:2+OperatorIDLength])
	if err != nil {
		return err
	}

	a.OperatorIDType = idType
	a.OperatorID = id
	return nil
}
