package telno_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/telno"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("copies the input slice", func(t *testing.T) {
		t.Parallel()

		buf := []byte{1, 2, 3}
		n := telno.New(telno.TypePrivate, buf)
		buf[0] = 9
		if got, want := n.Digits(), []byte{1, 2, 3}; !bytes.Equal(got, want) {
			t.Errorf("num.Digits() = %v, want %v", got, want)
		}
	})

	t.Run("masks digits to low nibble", func(t *testing.T) {
		t.Parallel()

		n := telno.New(telno.TypePrivate, []byte{0x1F, 0xA5, 0x10})
		if got, want := n.Digits(), []byte{0xF, 0x5, 0x0}; !bytes.Equal(got, want) {
			t.Errorf("num.Digits() = %v, want %v", got, want)
		}
	})
}

func TestNumber_Digits(t *testing.T) {
	t.Parallel()

	n := telno.New(telno.TypePrivate, []byte{1, 2, 3})
	ds := n.Digits()
	ds[0] = 9
	if got, want := n.Digits(), []byte{1, 2, 3}; !bytes.Equal(got, want) {
		t.Errorf("num.Digits() after mutating a previous copy = %v, want %v", got, want)
	}
}

func TestNumber_Equal(t *testing.T) {
	t.Parallel()

	n := telno.New(telno.TypePrivate, []byte{1, 2, 3})

	cases := []struct {
		name string
		num  telno.Number
		val  any
		want bool
	}{
		{"zero to zero", telno.Number{}, telno.Number{}, true},
		{"zero to empty constructed", telno.Number{}, telno.New(telno.TypeUnknown, nil), true},
		{"value match", n, telno.New(telno.TypePrivate, []byte{1, 2, 3}), true},
		{"pointer match", n, &n, true},
		{"nil pointer", n, (*telno.Number)(nil), false},
		{"type mismatch", n, "123", false},
		{"category differs", n, telno.New(telno.TypeInternational, []byte{1, 2, 3}), false},
		{"digits differ", n, telno.New(telno.TypePrivate, []byte{1, 2}), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.num.Equal(c.val); got != c.want {
				t.Errorf("num.Equal(%+v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestNumber_Clone(t *testing.T) {
	t.Parallel()

	n := telno.New(telno.TypeInternational, []byte{4, 4, 7})
	got := n.Clone()
	if !got.Equal(n) {
		t.Errorf("num.Clone() = %v, want %v", got, n)
	}
	if diff := cmp.Diff(got.Digits(), n.Digits()); diff != "" {
		t.Errorf("clone digits mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestNumber_IsZero(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		num  telno.Number
		want bool
	}{
		{"zero", telno.Number{}, true},
		{"unknown with digits", telno.New(telno.TypeUnknown, []byte{1}), false},
		{"typed without digits", telno.New(telno.TypePrivate, nil), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.num.IsZero(); got != c.want {
				t.Errorf("num.IsZero() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestNumber_RenderTo(t *testing.T) {
	t.Parallel()

	n := telno.New(telno.TypePrivate, []byte{1, 2, 0xA})

	var sb strings.Builder
	num, err := n.RenderTo(&sb, nil)
	if err != nil {
		t.Fatalf("num.RenderTo(sb, nil) error = %v, want nil", err)
	}
	if got, want := sb.String(), "12A"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	if num != len("12A") {
		t.Errorf("num.RenderTo(sb, nil) = %d, want %d", num, len("12A"))
	}
}

func TestNumber_Format(t *testing.T) {
	t.Parallel()

	n := telno.New(telno.TypePrivate, []byte{1, 2, 0xA})

	if got, want := fmt.Sprintf("%s", n), "12A"; got != want {
		t.Errorf("fmt.Sprintf(%%s, num) = %q, want %q", got, want)
	}
	if got, want := fmt.Sprintf("%q", n), `"12A"`; got != want {
		t.Errorf("fmt.Sprintf(%%q, num) = %q, want %q", got, want)
	}
}
