// Package telsub builds telephone-subscriber strings, the number part of
// SIP and tel URIs (RFC 3966 subset), from generic telephone numbers.
//
// A [telno.TypeInternational] number whose digit string passes the digit test
// becomes a global-number ("+" followed by the digits). Everything else is a
// local-number, which needs a phone-context to be unambiguous: either one
// embedded in the digit string after the context separator, or the default
// supplied via [Options.DefaultContext]. A local-number with neither fails
// with [ErrNoPhoneContext], the package's only error.
package telsub

//go:generate go tool errtrace -w .

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/telno"
	"github.com/ghettovoice/telno/internal/errorutil"
	"github.com/ghettovoice/telno/internal/ioutil"
	"github.com/ghettovoice/telno/internal/util"
)

const (
	// DefaultContextParam is the parameter name used when [Options.ContextParam] is empty.
	DefaultContextParam = "phone-context"
	// DefaultContextSep is the separator used when [Options.ContextSep] is zero.
	DefaultContextSep byte = ';'
)

// ErrNoPhoneContext is returned when a local-number has neither an embedded
// nor a default phone-context.
const ErrNoPhoneContext errorutil.Error = "no phone-context"

// NewNoPhoneContextError creates a new error with [ErrNoPhoneContext] or
// wraps provided error with [ErrNoPhoneContext].
func NewNoPhoneContextError(args ...any) error {
	return errorutil.NewWrapperError(ErrNoPhoneContext, args...) //errtrace:skip
}

// Options contains options for building telephone-subscriber strings.
// The zero value is ready to use.
type Options struct {
	// ContextParam is the phone-context parameter name.
	// Defaults to [DefaultContextParam].
	ContextParam string
	// ContextSep is the character separating the local-number from an
	// embedded phone-context in the digit string.
	// Defaults to [DefaultContextSep].
	ContextSep byte
	// DefaultContext is the phone-context applied to a local-number whose
	// digit string does not embed one. nil means there is no default and the
	// conversion fails with [ErrNoPhoneContext]. The explicit empty string
	// emits the local-number with no phone-context parameter at all.
	DefaultContext *string
	// HexDigits widens the digit test used for global-numbers and embedded
	// phone-contexts from decimal digits to hex digits.
	//
	// Known limitation, preserved for compatibility with deployed equipment:
	// with HexDigits set, a non-international number whose digit string
	// contains the context separator is decided by the digit test alone, so
	// it can be mis-split into a local part and a phone-context.
	HexDigits bool
}

func (o *Options) contextParam() string {
	if o.ContextParam == "" {
		return DefaultContextParam
	}
	return o.ContextParam
}

func (o *Options) contextSep() byte {
	if o.ContextSep == 0 {
		return DefaultContextSep
	}
	return o.ContextSep
}

// Render returns the telephone-subscriber string for the given Number.
// The Number's digits are rendered in the hex-letter alphabet first,
// then converted, see [RenderDigits].
func Render(n telno.Number, opts *Options) (string, error) {
	return errtrace.Wrap2(RenderDigits(n.Render(nil), n.Type(), opts))
}

// RenderTo writes the telephone-subscriber string for the given Number
// to the provided writer.
func RenderTo(w io.Writer, n telno.Number, opts *Options) (num int, err error) {
	return errtrace.Wrap2(renderDigits(w, n.Render(nil), n.Type(), opts))
}

// RenderDigits returns the telephone-subscriber string for an already
// rendered digit string and its category.
//
// A [telno.TypeInternational] number passing the digit test becomes
// "+" + digits. Otherwise the digit string is split at the first context
// separator: when the part after it passes the digit test, it becomes a
// "+"-prefixed phone-context following the local part; when it does not,
// the phone-context defaulting from [Options.DefaultContext] applies.
func RenderDigits(digits string, typ telno.Type, opts *Options) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if _, err := renderDigits(sb, digits, typ, opts); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

func renderDigits(w io.Writer, digits string, typ telno.Type, opts *Options) (num int, err error) {
	if opts == nil {
		opts = &Options{}
	}
	sep := opts.contextSep()

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	// Global-number. The decision deliberately tests only the category and
	// digit purity, see the note on Options.HexDigits.
	if typ == telno.TypeInternational && isDigits(digits, opts.HexDigits) {
		cw.WriteByte('+')      //nolint:errcheck
		cw.WriteString(digits) //nolint:errcheck
		return errtrace.Wrap2(cw.Result())
	}

	// Local-number, possibly with an embedded phone-context.
	local := digits
	if i := strings.IndexByte(digits, sep); i >= 0 {
		if ctx := digits[i+1:]; i > 0 && isDigits(ctx, opts.HexDigits) {
			cw.WriteString(digits[:i])          //nolint:errcheck
			cw.WriteByte(sep)                   //nolint:errcheck
			cw.WriteString(opts.contextParam()) //nolint:errcheck
			cw.WriteString("=+")                //nolint:errcheck
			cw.WriteString(ctx)                 //nolint:errcheck
			return errtrace.Wrap2(cw.Result())
		}
		if i == 0 {
			local = digits[1:]
		} else {
			local = digits[:i]
		}
	}

	if opts.DefaultContext == nil {
		return 0, errtrace.Wrap(NewNoPhoneContextError("local number %q", local))
	}

	cw.WriteString(local) //nolint:errcheck
	if dctx := *opts.DefaultContext; dctx != "" {
		cw.WriteByte(sep)                   //nolint:errcheck
		cw.WriteString(opts.contextParam()) //nolint:errcheck
		cw.WriteByte('=')                   //nolint:errcheck
		cw.WriteString(dctx)                //nolint:errcheck
	}
	return errtrace.Wrap2(cw.Result())
}

// isDigits reports whether s is non-empty and composed entirely of decimal
// digits, or of hex digits when hex is set.
func isDigits(s string, hex bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case hex && (c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'):
		default:
			return false
		}
	}
	return true
}
