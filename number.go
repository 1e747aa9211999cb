package telno

//go:generate go tool errtrace -w .

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/telno/internal/ioutil"
	"github.com/ghettovoice/telno/internal/util"
)

// Number is a generic telephone number: a category plus an ordered sequence of
// nibble digits (0x0-0xF), first-dialled digit first. The sequence may be empty.
//
// Number is an immutable value. Constructors and accessors always copy the
// digit sequence, so a Number never aliases a caller's buffer or another
// Number's storage. The zero Number ([TypeUnknown], no digits) is the
// canonical invalid-value sentinel, see [Parse].
type Number struct {
	typ    Type
	digits []byte
}

// New returns a Number with the given category and digits.
// The digit slice is copied and each digit is masked to its low 4 bits.
func New(typ Type, digits []byte) Number {
	ds := util.CloneBytes(digits)
	for i, d := range ds {
		ds[i] = d & 0x0F
	}
	return Number{typ: typ, digits: ds}
}

// Type returns the number category.
func (n Number) Type() Type { return n.typ }

// Digits returns a copy of the digit sequence.
func (n Number) Digits() []byte { return util.CloneBytes(n.digits) }

// Len returns the number of digits.
func (n Number) Len() int { return len(n.digits) }

// IsZero checks whether n is the invalid-value sentinel:
// an unknown category with no digits.
func (n Number) IsZero() bool { return n.typ == TypeUnknown && len(n.digits) == 0 }

// Clone returns a deep copy of the Number.
func (n Number) Clone() Number { return Number{typ: n.typ, digits: util.CloneBytes(n.digits)} }

// Equal compares this Number with another for structural equality:
// same category and same digit sequence contents.
func (n Number) Equal(val any) bool {
	var other Number
	switch v := val.(type) {
	case Number:
		other = v
	case *Number:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return n.typ == other.typ && bytes.Equal(n.digits, other.digits)
}

// RenderTo writes the digit string to the provided writer, see [Number.Render].
func (n Number) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if opts == nil {
		opts = &RenderOptions{}
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for _, d := range n.digits {
		c, ok := digitChar(d&0x0F, opts.StarHash)
		if !ok {
			continue
		}
		cw.WriteByte(c) //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the digit string representation of the Number.
// It is the exact inverse of [Parse] for values produced by it, restricted to
// the canonical character set: letters come out uppercase and visual
// separators are not preserved.
func (n Number) Render(opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	n.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the digit string representation of the Number
// in the hex-letter alphabet.
func (n Number) String() string { return n.Render(nil) }

// Format implements fmt.Formatter for custom formatting of the Number.
func (n Number) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, n.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(n.String()))
		return
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), struct {
			Type   Type
			Digits []byte
		}{n.typ, n.digits})
		return
	}
}
