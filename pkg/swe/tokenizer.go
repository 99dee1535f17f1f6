package swe

// Tokenize turns a pattern string into an ordered sequence of tokens of the
// same length as the string: every character in 'A'..'Z' becomes a
// TokenVariable, every other character becomes a TokenLiteral. There is no
// escaping. Tokenize is deterministic and side-effect-free.
func Tokenize(pattern string) []Token {
	tokens := make([]Token, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if IsValidVariable(c) {
			tokens[i] = Token{Kind: TokenVariable, Var: Variable(c)}
		} else {
			tokens[i] = Token{Kind: TokenLiteral, Literal: c}
		}
	}
	return tokens
}

// NewPattern tokenizes raw and attaches the given stable id.
func NewPattern(id int, raw string) Pattern {
	return Pattern{ID: id, Raw: raw, Tokens: Tokenize(raw)}
}
