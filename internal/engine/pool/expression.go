// Package pool parses dice pool expressions and resolves them into successes.
package pool

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/KirkDiggler/pokerole-bot/internal/errors"
)

// Term is one signed operand of an expression
type Term struct {
	Sign    int
	Literal int
	Name    string
}

// Expression is a parsed dice pool expression such as "2 + dexterity - 1"
type Expression struct {
	Source string
	Terms  []Term
}

// Lookup resolves attribute, skill and derived value names
type Lookup interface {
	Value(name string) (int, bool)
}

// MapLookup is a Lookup over a fixed set of values
type MapLookup map[string]int

// Value implements Lookup with case-insensitive names
func (m MapLookup) Value(name string) (int, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	for k, v := range m {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return 0, false
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenName
	tokenPlus
	tokenMinus
)

type token struct {
	kind  tokenKind
	text  string
	value int
}

// Parse turns source into an Expression. Grammar: term (('+'|'-') term)*
// where a term is an integer literal or a name.
func Parse(source string) (*Expression, error) {
	tokens, err := tokenize(source)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, errors.Expression("dice pool expression is empty")
	}

	expr := &Expression{Source: strings.TrimSpace(source)}
	sign := 1
	expectOperand := true
	for _, tok := range tokens {
		switch tok.kind {
		case tokenPlus, tokenMinus:
			if expectOperand {
				return nil, errors.Expressionf("unexpected %q in %q", tok.text, source)
			}
			sign = 1
			if tok.kind == tokenMinus {
				sign = -1
			}
			expectOperand = true
		case tokenNumber, tokenName:
			if !expectOperand {
				return nil, errors.Expressionf("missing operator before %q in %q", tok.text, source)
			}
			term := Term{Sign: sign}
			if tok.kind == tokenNumber {
				term.Literal = tok.value
			} else {
				term.Name = strings.ToLower(tok.text)
			}
			expr.Terms = append(expr.Terms, term)
			expectOperand = false
		}
	}
	if expectOperand {
		return nil, errors.Expressionf("expression %q ends with an operator", source)
	}

	return expr, nil
}

func tokenize(source string) ([]token, error) {
	var tokens []token
	runes := []rune(source)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+':
			tokens = append(tokens, token{kind: tokenPlus, text: "+"})
			i++
		case r == '-':
			tokens = append(tokens, token{kind: tokenMinus, text: "-"})
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			text := string(runes[start:i])
			value, err := strconv.Atoi(text)
			if err != nil {
				return nil, errors.Expressionf("invalid number %q", text)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, value: value})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, token{kind: tokenName, text: string(runes[start:i])})
		default:
			return nil, errors.Expressionf("unexpected character %q in %q", r, source)
		}
	}
	return tokens, nil
}

// Evaluate sums the expression using lookup for names. The result may be
// negative; callers clamp.
func (e *Expression) Evaluate(lookup Lookup) (int, error) {
	var (
		total int
		ok    bool
	)
	for _, term := range e.Terms {
		if term.Name == "" {
			if total, ok = addChecked(total, term.Sign*term.Literal); !ok {
				return 0, errors.Expressionf("expression %q is too large", e.Source)
			}
			continue
		}
		if lookup == nil {
			return 0, errors.Expressionf("unknown attribute or skill: %s", term.Name)
		}
		v, found := lookup.Value(term.Name)
		if !found {
			return 0, errors.Expressionf("unknown attribute or skill: %s", term.Name)
		}
		if total, ok = addChecked(total, term.Sign*v); !ok {
			return 0, errors.Expressionf("expression %q is too large", e.Source)
		}
	}
	return total, nil
}

func addChecked(a, b int) (int, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Names returns the names referenced by the expression
func (e *Expression) Names() []string {
	var names []string
	for _, term := range e.Terms {
		if term.Name != "" {
			names = append(names, term.Name)
		}
	}
	return names
}
