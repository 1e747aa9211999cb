package telno

import "fmt"

// Type is a closed set of generic telephone number categories.
// Each category has a fixed correspondence to a (type of number, numbering plan)
// pair in both the Q.931 and Q.763 encodings, see the q931 and q763 packages.
type Type uint8

const (
	// TypeUnknown is an unknown type of number in an unknown numbering plan.
	// It is the default category and the fallback for any unrecognized input.
	TypeUnknown Type = iota
	// TypeInternational is an international number in the E.164 numbering plan.
	TypeInternational
	// TypePrivate is a number in a private numbering plan.
	TypePrivate
	// TypeUnknownTelephony is an unknown type of number in the E.164 numbering plan.
	TypeUnknownTelephony
)

// IsValid checks whether t is one of the defined categories.
func (t Type) IsValid() bool { return t <= TypeUnknownTelephony }

// Equal compares t with another Type or *Type for equality.
func (t Type) Equal(val any) bool {
	var other Type
	switch v := val.(type) {
	case Type:
		other = v
	case *Type:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return t == other
}

func (t Type) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeInternational:
		return "international"
	case TypePrivate:
		return "private"
	case TypeUnknownTelephony:
		return "unknown-telephony"
	default:
		return fmt.Sprintf("type(%d)", uint8(t))
	}
}
