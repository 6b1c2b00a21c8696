package token

import "fmt"

// BracketMismatchError reports unbalanced brackets in a token sequence,
// carrying the token offset of the offending bracket (spec §4.A).
type BracketMismatchError struct {
	Offset int
}

func (e *BracketMismatchError) Error() string {
	return fmt.Sprintf("token: bracket mismatch at offset %d", e.Offset)
}

// Message is an ordered, immutable sequence of tokens forming a balanced
// bracketed structure (spec §3 TokenMessage). The zero value is the empty
// message.
//
// Submessage boundaries are computed once, at construction, rather than
// lazily cached behind a mutex: Message values are meant to be cheap,
// immutable, and freely copied (they are plain slices plus a small index),
// matching the donor's general preference for small owned value types over
// shared mutable caches (see pkg/diplomacy/map.go's fixed-size arrays).
type Message struct {
	tokens     []Token
	subStarts  []int // token index of the start of each top-level submessage
	subEnds    []int // token index one past the end of each top-level submessage (inclusive of brackets)
}

// NewMessage validates and wraps a flat token slice as a Message.
func NewMessage(tokens []Token) (Message, error) {
	subStarts, subEnds, err := findSubmessages(tokens)
	if err != nil {
		return Message{}, err
	}
	cp := make([]Token, len(tokens))
	copy(cp, tokens)
	return Message{tokens: cp, subStarts: subStarts, subEnds: subEnds}, nil
}

// Single builds a one-token message.
func Single(t Token) Message {
	m, _ := NewMessage([]Token{t})
	return m
}

// FromText parses a textual representation into a Message.
func FromText(text string) (Message, error) {
	toks, err := ParseText(text)
	if err != nil {
		return Message{}, err
	}
	return NewMessage(toks)
}

// findSubmessages walks a flat token sequence, checking bracket balance and
// recording the [start, end) token range of each top-level submessage (a
// bracketed group counts as one submessage spanning its brackets; an
// unbracketed token is its own one-token submessage).
func findSubmessages(tokens []Token) ([]int, []int, error) {
	var starts, ends []int
	depth := 0
	groupStart := -1
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch {
		case t == OpenBracket:
			if depth == 0 {
				groupStart = i
			}
			depth++
		case t == CloseBracket:
			depth--
			if depth < 0 {
				return nil, nil, &BracketMismatchError{Offset: i}
			}
			if depth == 0 {
				starts = append(starts, groupStart)
				ends = append(ends, i+1)
			}
		case depth == 0 && t.Category() == CategoryASCII:
			// A bare literal run is one atomic submessage, matching
			// RenderText's treatment of consecutive ASCII tokens.
			start := i
			for i+1 < len(tokens) && tokens[i+1].Category() == CategoryASCII {
				i++
			}
			starts = append(starts, start)
			ends = append(ends, i+1)
		default:
			if depth == 0 {
				starts = append(starts, i)
				ends = append(ends, i+1)
			}
		}
	}
	if depth != 0 {
		return nil, nil, &BracketMismatchError{Offset: len(tokens)}
	}
	return starts, ends, nil
}

// Tokens returns the raw token sequence (a copy; callers must not assume
// aliasing with internal state).
func (m Message) Tokens() []Token {
	cp := make([]Token, len(m.tokens))
	copy(cp, m.tokens)
	return cp
}

// Len returns the number of tokens in the message.
func (m Message) Len() int { return len(m.tokens) }

// Token returns the token at index i.
func (m Message) Token(i int) Token { return m.tokens[i] }

// IsSingleToken reports whether the message is exactly one token.
func (m Message) IsSingleToken() bool { return len(m.tokens) == 1 }

// First returns the first token (for a single-token message, the only one).
func (m Message) First() Token {
	if len(m.tokens) == 0 {
		return 0
	}
	return m.tokens[0]
}

// ContainsSubmessages reports whether the message is made up of more than
// one top-level submessage, or a single bracketed one.
func (m Message) ContainsSubmessages() bool {
	return len(m.subStarts) != 1 || (len(m.tokens) > 0 && m.tokens[0] == OpenBracket)
}

// SubmessageCount returns the number of top-level submessages.
func (m Message) SubmessageCount() int { return len(m.subStarts) }

// SubmessageStart returns the token index at which submessage i begins
// (including its brackets, if bracketed).
func (m Message) SubmessageStart(i int) int { return m.subStarts[i] }

// SubmessageIsSingleToken reports whether submessage i is a single
// (necessarily unbracketed) token.
func (m Message) SubmessageIsSingleToken(i int) bool {
	return m.subEnds[i]-m.subStarts[i] == 1
}

// Submessage extracts submessage i, stripping its outer brackets iff it has
// them (spec §4.A: "get_submessage(i) strips the outer brackets iff the
// submessage has them").
func (m Message) Submessage(i int) Message {
	start, end := m.subStarts[i], m.subEnds[i]
	inner := m.tokens[start:end]
	if len(inner) >= 2 && inner[0] == OpenBracket && inner[len(inner)-1] == CloseBracket {
		inner = inner[1 : len(inner)-1]
	}
	sub, _ := NewMessage(inner)
	return sub
}

// Enclose wraps the whole message in a single bracket pair and returns the
// result; m itself is unchanged.
func (m Message) Enclose() Message {
	wrapped := make([]Token, 0, len(m.tokens)+2)
	wrapped = append(wrapped, OpenBracket)
	wrapped = append(wrapped, m.tokens...)
	wrapped = append(wrapped, CloseBracket)
	out, _ := NewMessage(wrapped)
	return out
}

// Concat appends other's tokens verbatim (the "+" operator of spec §3).
func (m Message) Concat(other Message) Message {
	combined := make([]Token, 0, len(m.tokens)+len(other.tokens))
	combined = append(combined, m.tokens...)
	combined = append(combined, other.tokens...)
	out, _ := NewMessage(combined)
	return out
}

// ConcatToken appends a single token verbatim.
func (m Message) ConcatToken(t Token) Message {
	combined := make([]Token, 0, len(m.tokens)+1)
	combined = append(combined, m.tokens...)
	combined = append(combined, t)
	out, _ := NewMessage(combined)
	return out
}

// And appends enclose(other) (the "&" operator of spec §3: A & B = A + enclose(B)).
func (m Message) And(other Message) Message {
	return m.Concat(other.Enclose())
}

// AndToken appends enclose(Single(t)).
func (m Message) AndToken(t Token) Message {
	return m.Concat(Single(t).Enclose())
}

// Equal reports element-wise equality (spec §4.A).
func (m Message) Equal(other Message) bool {
	if len(m.tokens) != len(other.tokens) {
		return false
	}
	for i, t := range m.tokens {
		if other.tokens[i] != t {
			return false
		}
	}
	return true
}

// Less implements the lexicographic-on-token-values ordering spec §4.A
// requires.
func (m Message) Less(other Message) bool {
	n := len(m.tokens)
	if len(other.tokens) < n {
		n = len(other.tokens)
	}
	for i := 0; i < n; i++ {
		if m.tokens[i] != other.tokens[i] {
			return m.tokens[i] < other.tokens[i]
		}
	}
	return len(m.tokens) < len(other.tokens)
}

// Text renders the message as DAIDE textual syntax.
func (m Message) Text() string { return RenderText(m.tokens) }

func (m Message) String() string { return m.Text() }
