// Package telno converts telephone numbers between textual digit strings,
// a generic in-memory representation, and legacy ITU-T signalling fields.
//
// # Overview
//
// The package centers on [Number], a value holding a number category ([Type])
// and an ordered sequence of nibble digits. All conversions pass through it:
//
//   - [Parse] builds a [Number] from a digit string, with an optional
//     star/hash digit alphabet for keypad input.
//   - [Number.Render] produces the canonical digit string back.
//   - telsub builds telephone-subscriber strings (RFC 3966 subset) with
//     phone-context handling.
//   - q931 and q763 map [Type] to and from the Q.931 type-of-number/plan
//     octet and the Q.763 nature-of-address/plan field.
//
// Invalid textual input never produces an error: it collapses to the zero
// [Number] (unknown category, no digits), which is the library's canonical
// invalid-value sentinel.
//
//	n := telno.Parse("1-2-3*45#", telno.TypePrivate, &telno.ParseOptions{StarHash: true})
//	n.Render(nil) // "123A45B"
//	n.Render(&telno.RenderOptions{StarHash: true}) // "123*45#"
//
// All operations are pure and safe for concurrent use: a [Number] never
// shares its digit storage with callers or other Numbers.
package telno
