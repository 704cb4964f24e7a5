package remoteid

// Decode builds a fresh record from a single message or a Pack. Fields of
// subtypes not present in buf keep the NewAircraft defaults.
func Decode(buf []byte) (Aircraft, error) {
	a := NewAircraft()
	if err := decodeMessage(&a, buf, true); err != nil {
		return Aircraft{}, err
	}
	return a, nil
}

// DecodeInto applies a message or Pack to dst. The update is all or nothing:
// on error dst is unchanged, even when earlier messages of a Pack were valid.
func DecodeInto(dst *Aircraft, buf []byte) error {
	work := *dst
	if err := decodeMessage(&work, buf, true); err != nil {
		return err
	}
	*dst = work
	return nil
}

// decodeMessage routes buf to its subtype decoder. Packs are only accepted at
// the top level.
func decodeMessage(a *Aircraft, buf []byte, allowPack bool) error {
	if len(buf) == 0 {
		return ErrEmptyMessage
	}

	h, err := DecodeHeader(buf[0])
	if err != nil {
		return err
	}

	if h.Type == MessageTypePack {
		if !allowPack {
			return ErrNestedPack
		}
		return decodePack(a, buf)
	}

	if len(buf) != MessageSize {
		return &BadLengthError{Type: h.Type, Length: len(buf), Expected: MessageSize}
	}

	switch h.Type {
	case MessageTypeBasicID:
		return decodeBasicID(a, buf)
	case MessageTypeLocation:
		return decodeLocation(a, buf)
	case MessageTypeSelfID:
		return decodeSelfID(a, buf)
	case MessageTypeSystem:
		return decodeSystem(a, buf)
	case MessageTypeOperatorID:
		return decodeOperatorID(a, buf)
	default:
		// Auth
		return &NotImplementedError{Type: h.Type, Operation: "decoding"}
	}
}
