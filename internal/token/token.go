// Package token turns source text into a flat token stream. The scanner is
// pure: same input and registry always produce the same tokens, and it never
// consults parser state. Longest-match operator detection and Unicode-aware
// identifier scanning are the two nontrivial pieces; everything else is a
// straightforward left-to-right dispatch on the current rune.
package token

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/vhaisman/boolexpr/internal/perror"
	"github.com/vhaisman/boolexpr/internal/registry"
)

// Kind discriminates the five token categories named in the specification.
type Kind int

const (
	LeftParen Kind = iota
	RightParen
	Operator
	Identifier
	Constant
)

func (k Kind) String() string {
	switch k {
	case LeftParen:
		return "left-paren"
	case RightParen:
		return "right-paren"
	case Operator:
		return "operator"
	case Identifier:
		return "identifier"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// Token is a discriminated value: a kind, the literal text that produced it
// (already resolved to canonical form for Operator and Constant tokens), and
// the 0-based rune index in the (possibly normalized) source where it starts.
type Token struct {
	Kind   Kind
	Lexeme string
	Pos    int
}

// Tokenize scans src into a token stream. When normalize is true, src is
// first put into NFKC form using golang.org/x/text/unicode/norm, so that
// visually identical operator glyphs compare equal regardless of input
// encoding quirks.
func Tokenize(src string, reg *registry.Registry, normalize bool) ([]Token, error) {
	if normalize {
		src = norm.NFKC.String(src)
	}
	runes := []rune(src)
	var toks []Token
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			toks = append(toks, Token{Kind: LeftParen, Lexeme: "(", Pos: i})
			i++
		case r == ')':
			toks = append(toks, Token{Kind: RightParen, Lexeme: ")", Pos: i})
			i++
		case r == '0' || r == '1':
			toks = append(toks, Token{Kind: Constant, Lexeme: string(r), Pos: i})
			i++
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && isIdentRune(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			switch {
			case reg.IsPrefixUnaryWord(word):
				toks = append(toks, Token{Kind: Operator, Lexeme: "~", Pos: start})
			case func() bool { _, ok := reg.Resolve(word); return ok }():
				canon, _ := reg.Resolve(word)
				toks = append(toks, Token{Kind: Operator, Lexeme: canon, Pos: start})
			case func() bool { _, ok := reg.ResolveConstant(word); return ok }():
				v, _ := reg.ResolveConstant(word)
				lex := "0"
				if v {
					lex = "1"
				}
				toks = append(toks, Token{Kind: Constant, Lexeme: lex, Pos: start})
			default:
				toks = append(toks, Token{Kind: Identifier, Lexeme: word, Pos: start})
			}
		default:
			// Single-rune symbolic constant aliases such as "⊤" and "⊥".
			if v, ok := reg.ResolveConstant(string(r)); ok {
				lex := "0"
				if v {
					lex = "1"
				}
				toks = append(toks, Token{Kind: Constant, Lexeme: lex, Pos: i})
				i++
				continue
			}
			// The "<=>" special case the specification calls out (recognized
			// eagerly so it is not mistaken for a run of "<" and "="
			// followed by "="+">") falls straight out of longest-match: as
			// long as "<=>" is a registered candidate, it is tried before
			// any shorter prefix because Candidates() is sorted by
			// descending length.
			match, ok := longestMatch(runes[i:], reg)
			if !ok {
				return nil, unknownToken(runes, i, reg)
			}
			canon, _ := reg.Resolve(match)
			toks = append(toks, Token{Kind: Operator, Lexeme: canon, Pos: i})
			i += len([]rune(match))
		}
	}
	return toks, nil
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// longestMatch tries every registered symbolic candidate (already sorted by
// descending length) as a prefix of remaining, case-insensitively.
func longestMatch(remaining []rune, reg *registry.Registry) (string, bool) {
	for _, cand := range reg.Candidates() {
		candRunes := []rune(cand)
		if len(candRunes) > len(remaining) {
			continue
		}
		if equalFoldRunes(remaining[:len(candRunes)], candRunes) {
			return string(remaining[:len(candRunes)]), true
		}
	}
	return "", false
}

func equalFoldRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}

func unknownToken(runes []rune, pos int, reg *registry.Registry) error {
	// Consume a short run of non-space, non-paren characters as the
	// offending lexeme, for a more useful message than a single rune.
	end := pos
	for end < len(runes) && !unicode.IsSpace(runes[end]) && runes[end] != '(' && runes[end] != ')' {
		end++
	}
	if end == pos {
		end = pos + 1
	}
	lexeme := string(runes[pos:end])
	maxDist, maxItems := reg.SuggestionParams()
	suggestions := Suggest(lexeme, reg.AllAliasWords(), maxDist, maxItems)
	return &perror.ParseError{
		Code:        perror.UnknownToken,
		TokenIndex:  -1,
		CharIndex:   pos,
		CharStart:   pos,
		CharEnd:     end,
		CharCode:    runes[pos],
		Lexeme:      lexeme,
		Category:    "unknown",
		Suggestions: suggestions,
	}
}
