package q850

import "fmt"

// Cause location values.
const (
	LocationUser                 Location = 0x00 // U
	LocationLocalPrivateNetwork  Location = 0x01 // LPN
	LocationLocalNetwork         Location = 0x02 // LN
	LocationTransitNetwork       Location = 0x03 // TN
	LocationRemoteLocalNetwork   Location = 0x04 // RLN
	LocationRemotePrivateNetwork Location = 0x05 // RPN
	LocationInternationalNetwork Location = 0x07 // INTL
	LocationBeyondInterworking   Location = 0x0A // BI
)

// Location is a Q.850 cause location value: where in the network a cause
// was generated.
type Location byte

// Equal compares l with another Location or *Location for equality.
func (l Location) Equal(val any) bool {
	var other Location
	switch v := val.(type) {
	case Location:
		other = v
	case *Location:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return l == other
}

func (l Location) String() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return fmt.Sprintf("location(%d)", byte(l))
}

var locationNames = map[Location]string{
	LocationUser:                 "U",
	LocationLocalPrivateNetwork:  "LPN",
	LocationLocalNetwork:         "LN",
	LocationTransitNetwork:       "TN",
	LocationRemoteLocalNetwork:   "RLN",
	LocationRemotePrivateNetwork: "RPN",
	LocationInternationalNetwork: "INTL",
	LocationBeyondInterworking:   "BI",
}
