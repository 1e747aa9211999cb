// Package q763 provides the Q.763 (ISUP) called/calling party number field
// constants and the mapping between the nature-of-address/numbering-plan bits
// and the generic telno categories.
package q763

import "github.com/ghettovoice/telno"

// OddEven is the odd/even indicator: set for an odd number of address signals.
const OddEven uint16 = 0x8000

// Nature-of-address indicator values, byte-aligned in the high octet.
const (
	NatureSubscriber      uint16 = 0x0100
	NatureUnknown         uint16 = 0x0200
	NatureNational        uint16 = 0x0300
	NatureInternational   uint16 = 0x0400
	NatureNetworkSpecific uint16 = 0x0500

	NatureMask uint16 = 0x7F00
)

// Incomplete is the number incomplete indicator.
const Incomplete uint16 = 0x0080

// Numbering-plan indicator values.
const (
	PlanUnknown uint16 = 0x0000
	PlanE164    uint16 = 0x0010
	PlanData    uint16 = 0x0030 // X.121
	PlanTelex   uint16 = 0x0040 // F.69
	PlanPrivate uint16 = 0x0050

	PlanMask uint16 = 0x0070
)

// Address presentation restricted indicator values.
const (
	PresentationAllowed     uint16 = 0x0000
	PresentationRestricted  uint16 = 0x0004
	PresentationUnavailable uint16 = 0x0008

	PresentationMask uint16 = 0x000C
)

// Screening indicator values.
const (
	ScreeningUserNotVerified uint16 = 0x0000
	ScreeningUserVerified    uint16 = 0x0001
	ScreeningUserFailed      uint16 = 0x0002
	ScreeningNetwork         uint16 = 0x0003

	ScreeningMask uint16 = 0x0003
)

// Encode maps a generic number category to the Q.763 nature-of-address and
// numbering-plan bits. The odd/even, incomplete, presentation and screening
// bits are left clear.
func Encode(t telno.Type) uint16 {
	switch t {
	case telno.TypeInternational:
		return NatureInternational | PlanE164
	case telno.TypePrivate:
		return NatureUnknown | PlanPrivate
	case telno.TypeUnknownTelephony:
		return NatureUnknown | PlanE164
	case telno.TypeUnknown:
		return NatureUnknown | PlanUnknown
	default: // unreachable for defined categories
		return NatureUnknown | PlanUnknown
	}
}

// Decode maps a Q.763 number field back to a generic number category.
// The field is masked to the nature-of-address and numbering-plan bits first.
// Combinations outside the four encoded by [Encode] collapse to
// [telno.TypeUnknown]: the mapping is total but deliberately lossy.
func Decode(f uint16) telno.Type {
	switch f & (NatureMask | PlanMask) {
	case NatureInternational | PlanE164:
		return telno.TypeInternational
	case NatureUnknown | PlanPrivate:
		return telno.TypePrivate
	case NatureUnknown | PlanE164:
		return telno.TypeUnknownTelephony
	default:
		return telno.TypeUnknown
	}
}
