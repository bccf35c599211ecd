package parser

import (
	"github.com/pontaoski/logoparse/types"
)

type cursor struct {
	offset int
	tokens []types.Token
}

func newCursor(tokens []types.Token) *cursor {
	return &cursor{offset: 0, tokens: tokens}
}

func (cursor *cursor) peek() (types.Token, bool) {
	if cursor.isOutOfBound() {
		return types.Token{}, false
	}
	return cursor.tokens[cursor.offset], true
}

func (cursor *cursor) next() (types.Token, bool) {
	token, ok := cursor.peek()
	if ok {
		cursor.offset++
	}
	return token, ok
}

func (cursor *cursor) nextIs(text string) bool {
	token, ok := cursor.peek()
	return ok && token.Text == text
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)
}

// last is the location reported for errors found at end of input.
func (cursor *cursor) last() types.Span {
	if len(cursor.tokens) == 0 {
		return types.Span{}
	}
	if cursor.isOutOfBound() {
		return cursor.tokens[len(cursor.tokens)-1].Location
	}
	return cursor.tokens[cursor.offset].Location
}
