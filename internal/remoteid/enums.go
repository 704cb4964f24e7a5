package remoteid

// MessageType is the high nibble of every message header
type MessageType uint8

const (
	MessageTypeBasicID    MessageType = 0x0
	MessageTypeLocation   MessageType = 0x1
	MessageTypeAuth       MessageType = 0x2
	MessageTypeSelfID     MessageType = 0x3
	MessageTypeSystem     MessageType = 0x4
	MessageTypeOperatorID MessageType = 0x5
	MessageTypePack       MessageType = 0xF
)

var messageTypes = newEnumTable("message type", []enumEntry[MessageType]{
	{MessageTypeBasicID, "BASIC_ID"},
	{MessageTypeLocation, "LOCATION"},
	{MessageTypeAuth, "AUTH"},
	{MessageTypeSelfID, "SELF_ID"},
	{MessageTypeSystem, "SYSTEM"},
	{MessageTypeOperatorID, "OPERATOR_ID"},
	{MessageTypePack, "PACK"},
})

func (t MessageType) String() string { return messageTypes.name(t) }
func (t MessageType) MarshalText() ([]byte, error) { return messageTypes.marshal(t) }
func (t *MessageType) UnmarshalText(b []byte) error { return messageTypes.unmarshal(t, b) }

// ParseMessageType parses a message type name such as "basic-id" or "LOCATION"
func ParseMessageType(s string) (MessageType, error) { return messageTypes.parse(s) }

// IDType identifies what kind of identifier a Basic ID message carries
type IDType uint8

const (
	IDTypeNone              IDType = 0x0
	IDTypeSerialNumber      IDType = 0x1
	IDTypeCAARegistrationID IDType = 0x2
	IDTypeUTMAssignedUUID   IDType = 0x3
	IDTypeSpecificSessionID IDType = 0x4
)

var idTypes = newEnumTable("id type", []enumEntry[IDType]{
	{IDTypeNone, "NONE"},
	{IDTypeSerialNumber, "SERIAL_NUMBER"},
	{IDTypeCAARegistrationID, "CAA_ASSIGNED_REGISTRATION_ID"},
	{IDTypeUTMAssignedUUID, "UTM_ASSIGNED_UUID"},
	{IDTypeSpecificSessionID, "SPECIFIC_SESSION_ID"},
})

func (t IDType) String() string { return idTypes.name(t) }
func (t IDType) MarshalText() ([]byte, error) { return idTypes.marshal(t) }
func (t *IDType) UnmarshalText(b []byte) error { return idTypes.unmarshal(t, b) }

// UAType is the airframe category of the unmanned aircraft
type UAType uint8

const (
	UATypeNone                    UAType = 0x0
	UATypeNotDeclared             UAType = 0x0
	UATypeAeroplane               UAType = 0x1
	UATypeHelicopter              UAType = 0x2
	UATypeMultirotor              UAType = 0x2
	UATypeGyroplane               UAType = 0x3
	UATypeHybridLift              UAType = 0x4
	UATypeOrnithopter             UAType = 0x5
	UATypeGlider                  UAType = 0x6
	UATypeKite                    UAType = 0x7
	UATypeFreeBalloon             UAType = 0x8
	UATypeCaptiveBalloon          UAType = 0x9
	UATypeAirship                 UAType = 0xA
	UATypeFreeFall                UAType = 0xB
	UATypeParachute               UAType = 0xB
	UATypeRocket                  UAType = 0xC
	UATypeTetheredPoweredAircraft UAType = 0xD
	UATypeGroundObstacle          UAType = 0xE
	UATypeOther                   UAType = 0xF
)

var uaTypes = newEnumTable("ua type", []enumEntry[UAType]{
	{UATypeNone, "NONE"},
	{UATypeNotDeclared, "NOT_DECLARED"},
	{UATypeAeroplane, "AEROPLANE"},
	{UATypeHelicopter, "HELICOPTER"},
	{UATypeMultirotor, "MULTIROTOR"},
	{UATypeGyroplane, "GYROPLANE"},
	{UATypeHybridLift, "HYBRID_LIFT"},
	{UATypeOrnithopter, "ORNITHOPTER"},
	{UATypeGlider, "GLIDER"},
	{UATypeKite, "KITE"},
	{UATypeFreeBalloon, "FREE_BALLOON"},
	{UATypeCaptiveBalloon, "CAPTIVE_BALLOON"},
	{UATypeAirship, "AIRSHIP"},
	{UATypeFreeFall, "FREE_FALL"},
	{UATypeParachute, "PARACHUTE"},
	{UATypeRocket, "ROCKET"},
	{UATypeTetheredPoweredAircraft, "TETHERED_POWERED_AIRCRAFT"},
	{UATypeGroundObstacle, "GROUND_OBSTACLE"},
	{UATypeOther, "OTHER"},
})

func (t UAType) String() string { return uaTypes.name(t) }
func (t UAType) MarshalText() ([]byte, error) { return uaTypes.marshal(t) }
func (t *UAType) UnmarshalText(b []byte) error { return uaTypes.unmarshal(t, b) }

// OperationalStatus is the flight state reported in a Location message
type OperationalStatus uint8

const (
	OperationalStatusUndeclared            OperationalStatus = 0x0
	OperationalStatusGround                OperationalStatus = 0x1
	OperationalStatusAirborne              OperationalStatus = 0x2
	OperationalStatusEmergency             OperationalStatus = 0x3
	OperationalStatusRemoteIDSystemFailure OperationalStatus = 0x4
	OperationalStatusReserved              OperationalStatus = 0x5
)

var operationalStatuses = newEnumTable("operational status", []enumEntry[OperationalStatus]{
	{OperationalStatusUndeclared, "UNDECLARED"},
	{OperationalStatusGround, "GROUND"},
	{OperationalStatusAirborne, "AIRBORNE"},
	{OperationalStatusEmergency, "EMERGENCY"},
	{OperationalStatusRemoteIDSystemFailure, "REMOTE_ID_SYSTEM_FAILURE"},
	{OperationalStatusReserved, "RESERVED"},
})

func (s OperationalStatus) String() string { return operationalStatuses.name(s) }
func (s OperationalStatus) MarshalText() ([]byte, error) { return operationalStatuses.marshal(s) }
func (s *OperationalStatus) UnmarshalText(b []byte) error { return operationalStatuses.unmarshal(s, b) }

// HeightType is the reference the Location height field is measured from
type HeightType uint8

const (
	HeightTypeAboveTakeoff HeightType = 0x0
	HeightTypeAGL          HeightType = 0x1
)

var heightTypes = newEnumTable("height type", []enumEntry[HeightType]{
	{HeightTypeAboveTakeoff, "ABOVE_TAKEOFF"},
	{HeightTypeAGL, "AGL"},
})

func (t HeightType) String() string { return heightTypes.name(t) }
func (t HeightType) MarshalText() ([]byte, error) { return heightTypes.marshal(t) }
func (t *HeightType) UnmarshalText(b []byte) error { return heightTypes.unmarshal(t, b) }

// DirectionSegment selects which half of the compass the direction byte is offset into
type DirectionSegment uint8

const (
	DirectionBelow180 DirectionSegment = 0x0
	DirectionAbove180 DirectionSegment = 0x1
)

var directionSegments = newEnumTable("direction segment", []enumEntry[DirectionSegment]{
	{DirectionBelow180, "BELOW_180"},
	{DirectionAbove180, "ABOVE_180"},
})

func (s DirectionSegment) String() string { return directionSegments.name(s) }

// SpeedMultiplier selects the resolution of the horizontal speed byte
type SpeedMultiplier uint8

const (
	SpeedMultiplier0p25 SpeedMultiplier = 0x0
	SpeedMultiplier0p75 SpeedMultiplier = 0x1
)

var speedMultipliers = newEnumTable("speed multiplier", []enumEntry[SpeedMultiplier]{
	{SpeedMultiplier0p25, "MULTIPLIER_0p25"},
	{SpeedMultiplier0p75, "MULTIPLIER_0p75"},
})

func (m SpeedMultiplier) String() string { return speedMultipliers.name(m) }

// HorizontalAccuracy is the horizontal position accuracy class
type HorizontalAccuracy uint8

const (
	HorizontalAccuracyUnknown      HorizontalAccuracy = 0x0
	HorizontalAccuracyBeyond10NM   HorizontalAccuracy = 0x0
	HorizontalAccuracyWithin10NM   HorizontalAccuracy = 0x1
	HorizontalAccuracyWithin4NM    HorizontalAccuracy = 0x2
	HorizontalAccuracyWithin2NM    HorizontalAccuracy = 0x3
	HorizontalAccuracyWithin1NM    HorizontalAccuracy = 0x4
	HorizontalAccuracyWithin0p5NM  HorizontalAccuracy = 0x5
	HorizontalAccuracyWithin0p3NM  HorizontalAccuracy = 0x6
	HorizontalAccuracyWithin0p1NM  HorizontalAccuracy = 0x7
	HorizontalAccuracyWithin0p05NM HorizontalAccuracy = 0x8
	HorizontalAccuracyWithin30m    HorizontalAccuracy = 0x9
	HorizontalAccuracyWithin10m    HorizontalAccuracy = 0xA
	HorizontalAccuracyWithin3m     HorizontalAccuracy = 0xB
	HorizontalAccuracyWithin1m     HorizontalAccuracy = 0xC
	HorizontalAccuracyReserved     HorizontalAccuracy = 0xD
)

var horizontalAccuracies = newEnumTable("horizontal accuracy", []enumEntry[HorizontalAccuracy]{
	{HorizontalAccuracyUnknown, "UNKNOWN"},
	{HorizontalAccuracyBeyond10NM, "BEYOND_10NM"},
	{HorizontalAccuracyWithin10NM, "WITHIN_10NM"},
	{HorizontalAccuracyWithin4NM, "WITHIN_4NM"},
	{HorizontalAccuracyWithin2NM, "WITHIN_2NM"},
	{HorizontalAccuracyWithin1NM, "WITHIN_1NM"},
	{HorizontalAccuracyWithin0p5NM, "WITHIN_0p5NM"},
	{HorizontalAccuracyWithin0p3NM, "WITHIN_0p3NM"},
	{HorizontalAccuracyWithin0p1NM, "WITHIN_0p1NM"},
	{HorizontalAccuracyWithin0p05NM, "WITHIN_0p05NM"},
	{HorizontalAccuracyWithin30m, "WITHIN_30m"},
	{HorizontalAccuracyWithin10m, "WITHIN_10m"},
	{HorizontalAccuracyWithin3m, "WITHIN_3m"},
	{HorizontalAccuracyWithin1m, "WITHIN_1m"},
	{HorizontalAccuracyReserved, "RESERVED"},
})

func (a HorizontalAccuracy) String() string { return horizontalAccuracies.name(a) }
func (a HorizontalAccuracy) MarshalText() ([]byte, error) { return horizontalAccuracies.marshal(a) }
func (a *HorizontalAccuracy) UnmarshalText(b []byte) error { return horizontalAccuracies.unmarshal(a, b) }

// VerticalAccuracy is the accuracy class of the geodetic and pressure altitudes
type VerticalAccuracy uint8

const (
	VerticalAccuracyUnknown    VerticalAccuracy = 0x0
	VerticalAccuracyBeyond150m VerticalAccuracy = 0x0
	VerticalAccuracyWithin150m VerticalAccuracy = 0x1
	VerticalAccuracyWithin45m  VerticalAccuracy = 0x2
	VerticalAccuracyWithin25m  VerticalAccuracy = 0x3
	VerticalAccuracyWithin10m  VerticalAccuracy = 0x4
	VerticalAccuracyWithin3m   VerticalAccuracy = 0x5
	VerticalAccuracyWithin1m   VerticalAccuracy = 0x6
	VerticalAccuracyReserved   VerticalAccuracy = 0x7
)

var verticalAccuracies = newEnumTable("vertical accuracy", []enumEntry[VerticalAccuracy]{
	{VerticalAccuracyUnknown, "UNKNOWN"},
	{VerticalAccuracyBeyond150m, "BEYOND_150m"},
	{VerticalAccuracyWithin150m, "WITHIN_150m"},
	{VerticalAccuracyWithin45m, "WITHIN_45m"},
	{VerticalAccuracyWithin25m, "WITHIN_25m"},
	{VerticalAccuracyWithin10m, "WITHIN_10m"},
	{VerticalAccuracyWithin3m, "WITHIN_3m"},
	{VerticalAccuracyWithin1m, "WITHIN_1m"},
	{VerticalAccuracyReserved, "RESERVED"},
})

func (a VerticalAccuracy) String() string { return verticalAccuracies.name(a) }
func (a VerticalAccuracy) MarshalText() ([]byte, error) { return verticalAccuracies.marshal(a) }
func (a *VerticalAccuracy) UnmarshalText(b []byte) error { return verticalAccuracies.unmarshal(a, b) }

// SpeedAccuracy is the horizontal and vertical speed accuracy class
type SpeedAccuracy uint8

const (
	SpeedAccuracyUnknown      SpeedAccuracy = 0x0
	SpeedAccuracyBeyond10mps  SpeedAccuracy = 0x0
	SpeedAccuracyWithin10mps  SpeedAccuracy = 0x1
	SpeedAccuracyWithin3mps   SpeedAccuracy = 0x2
	SpeedAccuracyWithin1mps   SpeedAccuracy = 0x3
	SpeedAccuracyWithin0p3mps SpeedAccuracy = 0x4
	SpeedAccuracyReserved     SpeedAccuracy = 0x5
)

var speedAccuracies = newEnumTable("speed accuracy", []enumEntry[SpeedAccuracy]{
	{SpeedAccuracyUnknown, "UNKNOWN"},
	{SpeedAccuracyBeyond10mps, "BEYOND_10mps"},
	{SpeedAccuracyWithin10mps, "WITHIN_10mps"},
	{SpeedAccuracyWithin3mps, "WITHIN_3mps"},
	{SpeedAccuracyWithin1mps, "WITHIN_1mps"},
	{SpeedAccuracyWithin0p3mps, "WITHIN_0p3mps"},
	{SpeedAccuracyReserved, "RESERVED"},
})

func (a SpeedAccuracy) String() string { return speedAccuracies.name(a) }
func (a SpeedAccuracy) MarshalText() ([]byte, error) { return speedAccuracies.marshal(a) }
func (a *SpeedAccuracy) UnmarshalText(b []byte) error { return speedAccuracies.unmarshal(a, b) }

// DescriptionType is the kind of free text carried by a Self-ID message
type DescriptionType uint8

const (
	DescriptionTypeText           DescriptionType = 0x00
	DescriptionTypeEmergency      DescriptionType = 0x01
	DescriptionTypeExtendedStatus DescriptionType = 0x02
	DescriptionTypeReserved       DescriptionType = 0x03
	DescriptionTypePrivate        DescriptionType = 0xC9
)

var descriptionTypes = newEnumTable("description type", []enumEntry[DescriptionType]{
	{DescriptionTypeText, "TEXT_DESCRIPTION"},
	{DescriptionTypeEmergency, "EMERGENCY_DESCRIPTION"},
	{DescriptionTypeExtendedStatus, "EXTENDED_STATUS_DESCRIPTION"},
	{DescriptionTypeReserved, "RESERVED"},
	{DescriptionTypePrivate, "PRIVATE"},
})

func (t DescriptionType) String() string { return descriptionTypes.name(t) }
func (t DescriptionType) MarshalText() ([]byte, error) { return descriptionTypes.marshal(t) }
func (t *DescriptionType) UnmarshalText(b []byte) error { return descriptionTypes.unmarshal(t, b) }

// OperatorLocationSourceType tells where the System operator position comes from
type OperatorLocationSourceType uint8

const (
	OperatorLocationTakeOff OperatorLocationSourceType = 0x0
	OperatorLocationDynamic OperatorLocationSourceType = 0x1
	OperatorLocationFixed   OperatorLocationSourceType = 0x2
)

var operatorLocationSources = newEnumTable("operator location source type", []enumEntry[OperatorLocationSourceType]{
	{OperatorLocationTakeOff, "TAKE_OFF"},
	{OperatorLocationDynamic, "DYNAMIC"},
	{OperatorLocationFixed, "FIXED"},
})

func (t OperatorLocationSourceType) String() string { return operatorLocationSources.name(t) }
func (t OperatorLocationSourceType) MarshalText() ([]byte, error) {
	return operatorLocationSources.marshal(t)
}
func (t *OperatorLocationSourceType) UnmarshalText(b []byte) error {
	return operatorLocationSources.unmarshal(t, b)
}

// ClassificationType selects the regulatory region of the UA classification byte
type ClassificationType uint8

const (
	ClassificationUndeclared    ClassificationType = 0x0
	ClassificationEuropeanUnion ClassificationType = 0x1
	ClassificationChina         ClassificationType = 0x2
	ClassificationReserved      ClassificationType = 0x3
)

var classificationTypes = newEnumTable("classification type", []enumEntry[ClassificationType]{
	{ClassificationUndeclared, "UNDECLARED"},
	{ClassificationEuropeanUnion, "EUROPEAN_UNION"},
	{ClassificationChina, "CHINA"},
	{ClassificationReserved, "RESERVED"},
})

func (t ClassificationType) String() string { return classificationTypes.name(t) }
func (t ClassificationType) MarshalText() ([]byte, error) { return classificationTypes.marshal(t) }
func (t *ClassificationType) UnmarshalText(b []byte) error { return classificationTypes.unmarshal(t, b) }

// EUUACategory is the EU operation category
type EUUACategory uint8

const (
	EUCategoryUndefined EUUACategory = 0x0
	EUCategoryOpen      EUUACategory = 0x1
	EUCategorySpecific  EUUACategory = 0x2
	EUCategoryCertified EUUACategory = 0x3
	EUCategoryReserved  EUUACategory = 0x4
)

var euCategories = newEnumTable("EU UA category", []enumEntry[EUUACategory]{
	{EUCategoryUndefined, "UNDEFINED"},
	{EUCategoryOpen, "OPEN"},
	{EUCategorySpecific, "SPECIFIC"},
	{EUCategoryCertified, "CERTIFIED"},
	{EUCategoryReserved, "RESERVED"},
})

func (c EUUACategory) String() string { return euCategories.name(c) }
func (c EUUACategory) MarshalText() ([]byte, error) { return euCategories.marshal(c) }
func (c *EUUACategory) UnmarshalText(b []byte) error { return euCategories.unmarshal(c, b) }

// EUUAClass is the EU UA class marking
type EUUAClass uint8

const (
	EUClassUndefined EUUAClass = 0x0
	EUClass0         EUUAClass = 0x1
	EUClass1         EUUAClass = 0x2
	EUClass2         EUUAClass = 0x3
	EUClass3         EUUAClass = 0x4
	EUClass4         EUUAClass = 0x5
	EUClass5         EUUAClass = 0x6
	EUClass6         EUUAClass = 0x7
	EUClassReserved  EUUAClass = 0x8
)

var euClasses = newEnumTable("EU UA class", []enumEntry[EUUAClass]{
	{EUClassUndefined, "UNDEFINED"},
	{EUClass0, "CLASS_0"},
	{EUClass1, "CLASS_1"},
	{EUClass2, "CLASS_2"},
	{EUClass3, "CLASS_3"},
	{EUClass4, "CLASS_4"},
	{EUClass5, "CLASS_5"},
	{EUClass6, "CLASS_6"},
	{EUClassReserved, "RESERVED"},
})

func (c EUUAClass) String() string { return euClasses.name(c) }
func (c EUUAClass) MarshalText() ([]byte, error) { return euClasses.marshal(c) }
func (c *EUUAClass) UnmarshalText(b []byte) error { return euClasses.unmarshal(c, b) }

// ChinaUACategory is the China operation category
type ChinaUACategory uint8

const (
	ChinaCategoryUndefined ChinaUACategory = 0x0
	ChinaCategoryOpen      ChinaUACategory = 0x1
	ChinaCategorySpecific  ChinaUACategory = 0x2
	ChinaCategoryCertified ChinaUACategory = 0x3
	ChinaCategoryReserved  ChinaUACategory = 0x4
)

var chinaCategories = newEnumTable("China UA category", []enumEntry[ChinaUACategory]{
	{ChinaCategoryUndefined, "UNDEFINED"},
	{ChinaCategoryOpen, "OPEN"},
	{ChinaCategorySpecific, "SPECIFIC"},
	{ChinaCategoryCertified, "CERTIFIED"},
	{ChinaCategoryReserved, "RESERVED"},
})

func (c ChinaUACategory) String() string { return chinaCategories.name(c) }
func (c ChinaUACategory) MarshalText() ([]byte, error) { return chinaCategories.marshal(c) }
func (c *ChinaUACategory) UnmarshalText(b []byte) error { return chinaCategories.unmarshal(c, b) }

// ChinaUAClass is the China UA weight class
type ChinaUAClass uint8

const (
	ChinaClassMini     ChinaUAClass = 0x0
	ChinaClassLight    ChinaUAClass = 0x1
	ChinaClassSmall    ChinaUAClass = 0x2
	ChinaClassOther    ChinaUAClass = 0x3
	ChinaClassReserved ChinaUAClass = 0x4
)

var chinaClasses = newEnumTable("China UA class", []enumEntry[ChinaUAClass]{
	{ChinaClassMini, "MINI"},
	{ChinaClassLight, "LIGHT"},
	{ChinaClassSmall, "SMALL"},
	{ChinaClassOther, "OTHER"},
	{ChinaClassReserved, "RESERVED"},
})

func (c ChinaUAClass) String() string { return chinaClasses.name(c) }
func (c ChinaUAClass) MarshalText() ([]byte, error) { return chinaClasses.marshal(c) }
func (c *ChinaUAClass) UnmarshalText(b []byte) error { return chinaClasses.unmarshal(c, b) }

// AuthenticationType is the authentication scheme of an Auth message.
// Auth messages are recognised but not encoded or decoded.
type AuthenticationType uint8

const (
	AuthenticationNone                AuthenticationType = 0x0
	AuthenticationUASIDSignature      AuthenticationType = 0x1
	AuthenticationOperatorIDSignature AuthenticationType = 0x2
	AuthenticationMessageSetSignature AuthenticationType = 0x3
	AuthenticationNetworkRemoteID     AuthenticationType = 0x4
	AuthenticationSpecificMethod      AuthenticationType = 0x5
	AuthenticationReserved            AuthenticationType = 0x6
	AuthenticationPrivate             AuthenticationType = 0xA
)

var authenticationTypes = newEnumTable("authentication type", []enumEntry[AuthenticationType]{
	{AuthenticationNone, "NONE"},
	{AuthenticationUASIDSignature, "UAS_ID_SIGNATURE"},
	{AuthenticationOperatorIDSignature, "OPERATOR_ID_SIGNATURE"},
	{AuthenticationMessageSetSignature, "MESSAGE_SET_SIGNATURE"},
	{AuthenticationNetworkRemoteID, "AUTHENTICATION_PROVIDED_BY_NETWORK_REMOTE_ID"},
	{AuthenticationSpecificMethod, "SPECIFIC_AUTHENTICATION_METHOD"},
	{AuthenticationReserved, "RESERVED"},
	{AuthenticationPrivate, "PRIVATE"},
})

func (t AuthenticationType) String() string { return authenticationTypes.name(t) }
func (t AuthenticationType) MarshalText() ([]byte, error) { return authenticationTypes.marshal(t) }
func (t *AuthenticationType) UnmarshalText(b []byte) error { return authenticationTypes.unmarshal(t, b) }

// OperatorIDType is the kind of identifier carried by an Operator ID message
type OperatorIDType uint8

const (
	OperatorIDTypeOperatorID OperatorIDType = 0x00
	OperatorIDTypeReserved   OperatorIDType = 0x01
	OperatorIDTypePrivate    OperatorIDType = 0xC9
)

var operatorIDTypes = newEnumTable("operator id type", []enumEntry[OperatorIDType]{
	{OperatorIDTypeOperatorID, "OPERATOR_ID"},
	{OperatorIDTypeReserved, "RESERVED"},
	{OperatorIDTypePrivate, "PRIVATE"},
})

func (t OperatorIDType) String() string { return operatorIDTypes.name(t) }
func (t OperatorIDType) MarshalText() ([]byte, error) { return operatorIDTypes.marshal(t) }
func (t *OperatorIDType) UnmarshalText(b []byte) error { return operatorIDTypes.unmarshal(t, b) }
