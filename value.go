package dumpdiff

import "sort"

// Kind enumerates the variants of the Value union
type Kind uint8

const (
	// KindNull is the explicit null value
	KindNull Kind = iota
	// KindBool is a true/false literal
	KindBool
	// KindNumber is any token that parses as a numeric literal
	KindNumber
	// KindString is the fallback for tokens that are none of the above
	KindString
	// KindList is an ordered sequence of values
	KindList
	// KindObject is a string-keyed mapping of values
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node in a parsed tree: a scalar, a list, or an object.
// The six implementations (Null, Bool, Number, String, List, Object) are the
// complete set; consumers switch on Kind or on the concrete type and can
// treat the match as exhaustive.
//
// Values are treated as immutable once constructed. Nothing in this package
// mutates a tree after returning it.
type Value interface {
	Kind() Kind
	// Native converts to the plain Go representation: nil, bool, float64,
	// string, []any, or map[string]any. Handy for handing trees to
	// encoding/json or other generic consumers.
	Native() any
}

// Null is the parsed form of a "null" (or "<null>") token
type Null struct{}

func (Null) Kind() Kind  { return KindNull }
func (Null) Native() any { return nil }

// MarshalJSON renders Null as a JSON null rather than an empty object
func (Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Bool is a parsed true/false literal
type Bool bool

func (b Bool) Kind() Kind  { return KindBool }
func (b Bool) Native() any { return bool(b) }

// Number is a parsed numeric literal. All numbers are float64, matching the
// widest literal the source format can express.
type Number float64

func (n Number) Kind() Kind  { return KindNumber }
func (n Number) Native() any { return float64(n) }

// String is any token that isn't null, bool, number, list, or keyed object.
// It holds the raw token text, unquoted.
type String string

func (s String) Kind() Kind  { return KindString }
func (s String) Native() any { return string(s) }

// List is an ordered sequence of values
type List []Value

func (l List) Kind() Kind { return KindList }
func (l List) Native() any {
	vs := make([]any, len(l))
	for i, v := range l {
		vs[i] = v.Native()
	}
	return vs
}

// Object maps string keys to values. Insertion order is not retained;
// duplicate keys cannot survive construction (last write wins).
type Object map[string]Value

func (o Object) Kind() Kind { return KindObject }
func (o Object) Native() any {
	m := make(map[string]any, len(o))
	for k, v := range o {
		m[k] = v.Native()
	}
	return m
}

// sortedKeys returns o's keys in lexical order. map iteration is random, so
// anything producing user-visible output walks keys through this
func sortedKeys(o Object) []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
