package pegdsl

import (
	"strings"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/corvidlang/peg"
)

// lexToken adapts a lexmachine-scanned match to peg.Token.
type lexToken struct {
	kind   int32
	lexeme string
	value  interface{}
}

var _ peg.Token = lexToken{}

func (t lexToken) Kind() int32        { return t.kind }
func (t lexToken) Lexeme() string     { return t.lexeme }
func (t lexToken) Value() interface{} { return t.value }

// TokenRule is one entry of a LexerSpec: a pattern (a lexmachine regex
// over bytes, e.g. `[0-9]+` or a literal escaped by Literal) mapped to a
// token kind. Skip, when true, scans and discards the match (for
// whitespace and comments) instead of producing a token.
type TokenRule struct {
	Pattern string
	Kind    int32
	Skip    bool
}

// Literal escapes s as a lexmachine pattern matching exactly the
// literal sequence s — lexmachine patterns are regexes, so every
// character of s is backslash-escaped, whether or not it carries
// special regex meaning.
func Literal(s string) string {
	return "\\" + strings.Join(strings.Split(s, ""), "\\")
}

// LexerSpec describes a complete token language for NewLexer.
type LexerSpec struct {
	Rules []TokenRule
}

// Lexer wraps a compiled lexmachine DFA.
type Lexer struct {
	lex *lexmachine.Lexer
}

// NewLexer compiles spec into a reusable Lexer. Rules are tried in the
// order given — as with lexmachine generally, prefer the longest match,
// and break ties by earliest-added rule.
func NewLexer(spec LexerSpec) (*Lexer, error) {
	lex := lexmachine.NewLexer()
	for _, r := range spec.Rules {
		kind := r.Kind
		if r.Skip {
			lex.Add([]byte(r.Pattern), func(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
				return nil, nil
			})
			continue
		}
		lex.Add([]byte(r.Pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return lexToken{kind: kind, lexeme: string(m.Bytes)}, nil
		})
	}
	if err := lex.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Lexer{lex: lex}, nil
}

// Tokenize scans src completely and returns every produced token, ready
// to be wrapped in a peg.TokenInput via peg.NewTokenInput. It stops at
// the first unconsumed-input error, returning the tokens found so far
// alongside the error.
func (l *Lexer) Tokenize(src string) ([]peg.Token, error) {
	scanner, err := l.lex.Scanner([]byte(src))
	if err != nil {
		return nil, err
	}
	var tokens []peg.Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, ok := err.(*machines.UnconsumedInput); ok {
				return tokens, ui
			}
			return tokens, err
		}
		if eof {
			return tokens, nil
		}
		if tok == nil {
			continue // a Skip rule matched
		}
		tokens = append(tokens, tok.(lexToken))
	}
}
