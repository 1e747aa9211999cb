// Package q931 provides the Q.931 called/calling party number field
// constants and the mapping between the type-of-number/numbering-plan octet
// and the generic telno categories.
package q931

import "github.com/ghettovoice/telno"

// Type-of-number values, the high nibble of the type/plan octet.
const (
	TypeUnknown         byte = 0x00
	TypeInternational   byte = 0x10
	TypeNational        byte = 0x20
	TypeNetworkSpecific byte = 0x30
	TypeSubscriber      byte = 0x40
	TypeAbbreviated     byte = 0x60

	TypeMask byte = 0x70
)

// Numbering-plan identification values, the low nibble of the type/plan octet.
const (
	PlanUnknown  byte = 0x00
	PlanE164     byte = 0x01
	PlanData     byte = 0x03 // X.121
	PlanTelex    byte = 0x04 // F.69
	PlanNational byte = 0x08
	PlanPrivate  byte = 0x09

	PlanMask byte = 0x0F
)

// Presentation and screening indicators of the calling party number octet.
// Part of the same byte family but orthogonal to type/plan: Encode and Decode
// never touch these bits.
const (
	PresentationMask        byte = 0x60
	PresentationAllowed     byte = 0x00
	PresentationRestricted  byte = 0x20
	PresentationUnavailable byte = 0x40

	ScreeningMask           byte = 0x03
	ScreeningNotScreened    byte = 0x00
	ScreeningVerifiedPassed byte = 0x01
	ScreeningVerifiedFailed byte = 0x02
	ScreeningNetwork        byte = 0x03
)

// Encode maps a generic number category to a Q.931 type/plan octet.
func Encode(t telno.Type) byte {
	switch t {
	case telno.TypeInternational:
		return TypeInternational | PlanE164
	case telno.TypePrivate:
		return TypeUnknown | PlanPrivate
	case telno.TypeUnknownTelephony:
		return TypeUnknown | PlanE164
	case telno.TypeUnknown:
		return TypeUnknown | PlanUnknown
	default: // unreachable for defined categories
		return TypeUnknown | PlanUnknown
	}
}

// Decode maps a Q.931 type/plan octet back to a generic number category.
// The octet is masked to the type and plan bits first. Combinations outside
// the four encoded by [Encode] collapse to [telno.TypeUnknown]: the mapping
// is total but deliberately lossy, not a round-trip-preserving inverse.
func Decode(b byte) telno.Type {
	switch b & (TypeMask | PlanMask) {
	case TypeInternational | PlanE164:
		return telno.TypeInternational
	case TypeUnknown | PlanPrivate:
		return telno.TypePrivate
	case TypeUnknown | PlanE164:
		return telno.TypeUnknownTelephony
	default:
		return telno.TypeUnknown
	}
}
