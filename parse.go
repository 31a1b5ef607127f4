package dumpdiff

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrNoOpeningBracket is returned by Parse when the input contains no
	// "[" at all: there is no structure to extract. It is the only failure
	// the default, permissive mode can produce, so callers can use it to
	// tell genuinely non-conforming input apart from sparse-but-valid dumps
	// like "Label[]".
	ErrNoOpeningBracket = errors.New("no opening bracket in input")

	// ErrMalformed is returned in strict mode when brackets don't balance.
	// The default mode never returns it: unbalanced input degrades to
	// best-effort partial extraction instead.
	ErrMalformed = errors.New("malformed input")
)

// classPrefix matches a serializer class name wedged between a key and its
// opening bracket ("addr=Address[" or "addr=com.example.Address["), which
// normalization strips down to "addr=["
var classPrefix = regexp.MustCompile(`=[A-Za-z_][A-Za-z0-9_.$]*\[`)

// ParseConfig are any possible configuration parameters for parsing dumps
type ParseConfig struct {
	// Strict makes Parse fail with ErrMalformed on bracket imbalance
	// instead of extracting what it can
	Strict bool
	// BareKey, when non-empty, collects bare (keyless) tokens found at
	// object scope into a List under this key. The default is to drop
	// them, matching the behavior of the serializers this format is
	// scraped from.
	BareKey string
}

// ParseOption is a function that adjusts a config, zero or more ParseOptions
// can be passed to the Parse function
type ParseOption func(cfg *ParseConfig)

// OptionStrict enables bracket-balance validation
func OptionStrict() ParseOption {
	return func(cfg *ParseConfig) {
		cfg.Strict = true
	}
}

// OptionCollectBare gathers bare object-scope entries under the given
// synthetic key instead of silently dropping them
func OptionCollectBare(key string) ParseOption {
	return func(cfg *ParseConfig) {
		cfg.BareKey = key
	}
}

// Parse converts one textual object dump into its Object tree.
//
// Input is expected to look like
// Label[key1=val1, key2=val2[nested=...], key3=[item1, item2]], possibly
// containing the literal token <null> wherever the serializer wrote a null,
// and possibly carrying class names before nested brackets. The label and
// class names are discarded; everything between the first "[" and the final
// character parses as the top-level object scope.
//
// Parse fails only when the input has no "[" at all (ErrNoOpeningBracket),
// or, with OptionStrict, when brackets don't balance (ErrMalformed). Any
// other malformed input yields whatever could be extracted.
func Parse(input string, opts ...ParseOption) (Object, error) {
	cfg := &ParseConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	p := &parser{cfg: cfg}
	return p.parse(input)
}

// parser carries config through the recursive descent
type parser struct {
	cfg *ParseConfig
}

func (p *parser) parse(input string) (Object, error) {
	s := normalize(input)

	open := strings.Index(s, "[")
	if open < 0 {
		return nil, ErrNoOpeningBracket
	}
	if p.cfg.Strict {
		if err := checkBalanced(s[open:]); err != nil {
			return nil, err
		}
	}

	// the trailing character is assumed to be the matching "]" and sliced
	// off without verification. Known laxity, kept for compatibility;
	// OptionStrict validates up front for callers that care.
	scope := ""
	if open+1 <= len(s)-1 {
		scope = s[open+1 : len(s)-1]
	}
	return p.parseObject(scope), nil
}

// normalize rewrites <null> tokens to bare null and strips class-name
// prefixes so that every nested object opens directly with "=["
func normalize(input string) string {
	s := strings.ReplaceAll(input, "<null>", "null")
	return classPrefix.ReplaceAllString(s, "=[")
}

// checkBalanced verifies the bracket structure of a scope-bearing suffix:
// no "]" without a matching "[", no unclosed "[", nothing after the final "]"
func checkBalanced(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unmatched ']' at offset %d", ErrMalformed, i)
			}
		}
	}
	if depth != 0 {
		return fmt.Errorf("%w: %d unclosed '['", ErrMalformed, depth)
	}
	if !strings.HasSuffix(strings.TrimSpace(s), "]") {
		return fmt.Errorf("%w: content after final ']'", ErrMalformed)
	}
	return nil
}

// tokenize splits one scope into its comma-separated tokens. A comma only
// separates at depth 0; inside any bracketed sub-scope it stays in the
// current token, which is what lets nested lists and objects carry commas
// without confusing the outer scope.
func tokenize(scope string) []string {
	var (
		tokens []string
		buf    strings.Builder
		depth  int
	)
	flush := func() {
		if tok := strings.TrimSpace(buf.String()); tok != "" {
			tokens = append(tokens, tok)
		}
		buf.Reset()
	}

	for _, r := range scope {
		switch {
		case r == '[':
			depth++
			buf.WriteRune(r)
		case r == ']':
			depth--
			buf.WriteRune(r)
		case r == ',' && depth == 0:
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// parseItem parses one token at object scope.
//
// A token shaped key=[...=...] is a keyed sub-object: the text before the
// first "=" is the key, the interior of the brackets parses as an object
// scope. The "= somewhere inside the brackets" requirement is what separates
// nested objects from plain lists: key=[a, b, c] has no inner "=" and falls
// through to parseValue, which produces a List.
//
// Any other token with "=" splits at the first "=" only; the remainder is
// the value text even if it contains more "=" characters. Tokens without
// "=" are bare values, legal when this is invoked from list scope.
func (p *parser) parseItem(token string) Value {
	eq := strings.Index(token, "=")
	if eq < 0 {
		return p.parseValue(token)
	}

	if open := strings.Index(token, "["); open > eq &&
		strings.HasSuffix(token, "]") && strings.Contains(token[open:], "=") {
		return Object{token[:eq]: p.parseObject(token[open+1 : len(token)-1])}
	}

	return Object{token[:eq]: p.parseValue(token[eq+1:])}
}

// parseValue parses right-hand-side value text. Numeric coercion runs before
// the string fallback so a numeric-looking value is never left as text.
func (p *parser) parseValue(token string) Value {
	switch token {
	case "null":
		return Null{}
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	if n, err := strconv.ParseFloat(token, 64); err == nil {
		return Number(n)
	}

	if strings.HasPrefix(token, "[") && strings.HasSuffix(token, "]") {
		items := tokenize(token[1 : len(token)-1])
		list := make(List, 0, len(items))
		for _, item := range items {
			// parseItem, not parseValue: a key=[...] pair nested in a
			// list scope becomes a single-key Object element
			list = append(list, p.parseItem(item))
		}
		return list
	}

	return String(token)
}

// parseObject parses one object scope: tokenize, parse each item, and merge
// every object-shaped result into the accumulating map. Later tokens
// overwrite earlier ones on key collision. Bare scalars and lists at object
// scope are dropped (an artifact of only merging object-shaped results, kept
// for compatibility) unless OptionCollectBare rehomes them.
func (p *parser) parseObject(scope string) Object {
	out := Object{}
	var bare List

	for _, token := range tokenize(scope) {
		switch item := p.parseItem(token).(type) {
		case Object:
			for k, v := range item {
				out[k] = v
			}
		default:
			if p.cfg.BareKey != "" {
				bare = append(bare, item)
			}
		}
	}

	if len(bare) > 0 {
		out[p.cfg.BareKey] = bare
	}
	return out
}
