package remoteid

// EUClassification is the EU category/class payload
type EUClassification struct {
	Category EUUACategory
	Class    EUUAClass
}

// ChinaClassification is the China category/class payload
type ChinaClassification struct {
	Category ChinaUACategory
	Class    ChinaUAClass
}

// Classification is the UA classification of a System message: one region
// tag and at most one active payload. The zero value is UNDECLARED.
type Classification struct {
	kind  ClassificationType
	eu    EUClassification
	china ChinaClassification
}

// Unclassified returns a classification of type t with no payload. Use it for
// UNDECLARED and RESERVED; EU and China types get their payload's defaults.
func Unclassified(t ClassificationType) Classification {
	return Classification{kind: t}
}

// EUClassified returns an EUROPEAN_UNION classification
func EUClassified(category EUUACategory, class EUUAClass) Classification {
	return Classification{
		kind: ClassificationEuropeanUnion,
		eu:   EUClassification{Category: category, Class: class},
	}
}

// ChinaClassified returns a CHINA classification
func ChinaClassified(category ChinaUACategory, class ChinaUAClass) Classification {
	return Classification{
		kind:  ClassificationChina,
		china: ChinaClassification{Category: category, Class: class},
	}
}

// Type returns the region tag
func (c Classification) Type() ClassificationType {
	return c.kind
}

// EU returns the EU payload when the tag is EUROPEAN_UNION
func (c Classification) EU() (EUClassification, bool) {
	return c.eu, c.kind == ClassificationEuropeanUnion
}

// China returns the China payload when the tag is CHINA
func (c Classification) China() (ChinaClassification, bool) {
	return c.china, c.kind == ClassificationChina
}

// encode returns the 3-bit type and the category/class byte
func (c Classification) encode() (uint8, byte, error) {
	if err := classificationTypes.check("classification type", c.kind); err != nil {
		return 0, 0, err
	}

	switch c.kind {
	case ClassificationEuropeanUnion:
		if err := euCategories.check("EU UA category", c.eu.Category); err != nil {
			return 0, 0, err
		}
		if err := euClasses.check("EU UA class", c.eu.Class); err != nil {
			return 0, 0, err
		}
		return uint8(c.kind), packNibbles(uint8(c.eu.Category), uint8(c.eu.Class)), nil
	case ClassificationChina:
		if err := chinaCategories.check("China UA category", c.china.Category); err != nil {
			return 0, 0, err
		}
		if err := chinaClasses.check("China UA class", c.china.Class); err != nil {
			return 0, 0, err
		}
		return uint8(c.kind), packNibbles(uint8(c.china.Category), uint8(c.china.Class)), nil
	default:
		return uint8(c.kind), 0x00, nil
	}
}

// decodeClassification reads the category/class byte as selected by code
func decodeClassification(code uint8, b byte) (Classification, error) {
	kind, err := classificationTypes.decode("classification type", code)
	if err != nil {
		return Classification{}, err
	}

	category, class := unpackNibbles(b)

	switch kind {
	case ClassificationEuropeanUnion:
		cat, err := euCategories.decode("EU UA category", category)
		if err != nil {
			return Classification{}, err
		}
		cls, err := euClasses.decode("EU UA class", class)
		if err != nil {
			return Classification{}, err
		}
		return EUClassified(cat, cls), nil
	case ClassificationChina:
		cat, err := chinaCategories.decode("China UA category", category)
		if err != nil {
			return Classification{}, err
		}
		cls, err := chinaClasses.decode("China UA class", class)
		if err != nil {
			return Classification{}, err
		}
		return ChinaClassified(cat, cls), nil
	default:
		return Unclassified(kind), nil
	}
}
