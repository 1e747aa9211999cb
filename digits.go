package telno

import "github.com/ghettovoice/telno/internal/constraints"

// ParseOptions contains options for parsing digit strings.
type ParseOptions struct {
	// StarHash enables the keypad digit alphabet: '*' and '#' produce 0xA and
	// 0xB, letters A-D produce 0xC-0xF, and E/F are rejected. When unset, the
	// letters A-F produce 0xA-0xF and '*'/'#' are rejected.
	StarHash bool
}

// RenderOptions contains options for rendering digit strings.
type RenderOptions struct {
	// StarHash selects the keypad digit alphabet, the inverse of
	// [ParseOptions.StarHash]: 0xA and 0xB come out as '*' and '#',
	// 0xC-0xF as the letters A-D.
	StarHash bool
}

// Parse converts a digit string into a [Number] with the given category.
//
// The characters '0'-'9' map to the decimal digits, letters map according to
// opts.StarHash (case-insensitive), and the visual separators '-', '.',
// '(' and ')' are skipped. Any other character invalidates the whole input:
// the result is then the zero Number sentinel, never a partially filled one.
// Parse is the library's sole error channel for textual input, it does not
// return an error value.
func Parse[T constraints.Byteseq](src T, typ Type, opts *ParseOptions) Number {
	if opts == nil {
		opts = &ParseOptions{}
	}

	digits := make([]byte, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c == '-' || c == '.' || c == '(' || c == ')':
			continue
		case c >= 'A' && c <= 'F', c >= 'a' && c <= 'f':
			c |= 0x20
			if opts.StarHash {
				if c >= 'e' {
					return Number{}
				}
				d = c - 'a' + 0xC
			} else {
				d = c - 'a' + 0xA
			}
		case c == '*':
			if !opts.StarHash {
				return Number{}
			}
			d = 0xA
		case c == '#':
			if !opts.StarHash {
				return Number{}
			}
			d = 0xB
		default:
			return Number{}
		}
		digits = append(digits, d)
	}
	return Number{typ: typ, digits: digits}
}

// digitChar maps a nibble digit to its character under the given alphabet.
// Digits outside 0x0-0xF have no mapping.
func digitChar(d byte, starHash bool) (byte, bool) {
	switch {
	case d <= 9:
		return '0' + d, true
	case starHash:
		switch d {
		case 0xA:
			return '*', true
		case 0xB:
			return '#', true
		case 0xC, 0xD, 0xE, 0xF:
			return 'A' + d - 0xC, true
		}
	case d <= 0xF:
		return 'A' + d - 0xA, true
	}
	return 0, false
}
