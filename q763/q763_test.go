package q763_test

import (
	"testing"

	"github.com/ghettovoice/telno"
	"github.com/ghettovoice/telno/q763"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ  telno.Type
		want uint16
	}{
		{telno.TypeUnknown, q763.NatureUnknown | q763.PlanUnknown},
		{telno.TypeInternational, q763.NatureInternational | q763.PlanE164},
		{telno.TypePrivate, q763.NatureUnknown | q763.PlanPrivate},
		{telno.TypeUnknownTelephony, q763.NatureUnknown | q763.PlanE164},
	}

	for _, c := range cases {
		t.Run(c.typ.String(), func(t *testing.T) {
			t.Parallel()

			if got := q763.Encode(c.typ); got != c.want {
				t.Errorf("q763.Encode(%v) = %#04x, want %#04x", c.typ, got, c.want)
			}
		})
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range []telno.Type{
		telno.TypeUnknown, telno.TypeInternational, telno.TypePrivate, telno.TypeUnknownTelephony,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()

			if got := q763.Decode(q763.Encode(typ)); got != typ {
				t.Errorf("q763.Decode(q763.Encode(%v)) = %v, want %v", typ, got, typ)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		f    uint16
		want telno.Type
	}{
		{"national E.164 unrecognized", q763.NatureNational | q763.PlanE164, telno.TypeUnknown},
		{"subscriber private unrecognized", q763.NatureSubscriber | q763.PlanPrivate, telno.TypeUnknown},
		{"international data unrecognized", q763.NatureInternational | q763.PlanData, telno.TypeUnknown},
		{
			"odd/even and incomplete masked",
			q763.OddEven | q763.Incomplete | q763.NatureInternational | q763.PlanE164,
			telno.TypeInternational,
		},
		{
			"presentation and screening masked",
			q763.PresentationRestricted | q763.ScreeningNetwork | q763.NatureUnknown | q763.PlanPrivate,
			telno.TypePrivate,
		},
		{"all bits set", 0xFFFF, telno.TypeUnknown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := q763.Decode(c.f); got != c.want {
				t.Errorf("q763.Decode(%#04x) = %v, want %v", c.f, got, c.want)
			}
		})
	}
}
