package remoteid

func (e *Encoder) encodeSelfID(a *Aircraft) ([]byte, error) {
	if err := descriptionTypes.check("description type", a.DescriptionType); err != nil {
		return nil, err
	}
	desc, err := encodeText("description", a.Description, DescriptionLength)
	if err != nil {
		return nil, err
	}

	msg := newMessage(MessageTypeSelfID)
	msg[1] = byte(a.DescriptionType)
	copy(msg[2:], desc) // [2:25]
	return msg, nil
}

func decodeSelfID(a *Aircraft, msg []byte) error {
	descType, err := descriptionTypes.decode("description type", msg[1])
	if err != nil {
		return err
	}
	desc, err := decodeText("description", msg[2:2+DescriptionLength])
	if err != nil {
		return err
	}

	a.DescriptionType = descType
	a.Description = desc
	return nil
}
