package lexer

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/logoparse/errors"
	"github.com/pontaoski/logoparse/types"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/logoparse", "lexer")

// Lexer splits source text into words, one line at a time. Every line,
// blank or not, ends with a newline token.
type Lexer struct {
	pos     types.Position
	reader  *bufio.Reader
	pending []types.Token
	done    bool
}

func NewLexer(reader io.Reader, filename string) *Lexer {
	return &Lexer{
		pos:    types.Position{Line: 0, Column: 0, Filename: filename},
		reader: bufio.NewReader(reader),
	}
}

func isPrefix(r rune) bool {
	return string(r) == types.LiteralPrefix || string(r) == types.VariablePrefix
}

func (l *Lexer) at(column int) types.Position {
	p := l.pos
	p.Column = column
	return p
}

// readLine returns the next line without its terminator. ok is false once
// the input is exhausted.
func (l *Lexer) readLine() (line string, ok bool, err error) {
	line, err = l.reader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}

	l.pos.Line++
	l.pos.Column = 0
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func (l *Lexer) lexWord(word string, column int) error {
	first, size := utf8.DecodeRuneInString(word)
	width := utf8.RuneCountInString(word)

	if !isPrefix(first) {
		l.pending = append(l.pending, types.Token{
			Text:     word,
			Location: types.Span{From: l.at(column), To: l.at(column + width - 1)},
		})
		return nil
	}

	prefix := types.Token{
		Text:     word[:size],
		Location: types.SingleCharSpan(l.at(column)),
	}
	rest := word[size:]
	if rest == "" {
		return errors.LexError{
			Reason:   "could not remove prefix " + prefix.Text,
			Location: prefix.Location,
		}
	}

	l.pending = append(l.pending, prefix, types.Token{
		Text:     rest,
		Location: types.Span{From: l.at(column + 1), To: l.at(column + width - 1)},
	})
	return nil
}

// checkEncoding reports the first byte of line that is not valid UTF-8.
func (l *Lexer) checkEncoding(line string) error {
	column := 0
	for i, r := range line {
		column++
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(line[i:]); size == 1 {
				return errors.LexError{
					Reason:   "invalid UTF-8",
					Location: types.SingleCharSpan(l.at(column)),
				}
			}
		}
	}
	return nil
}

func (l *Lexer) lexLine(line string) error {
	if err := l.checkEncoding(line); err != nil {
		return err
	}

	var word strings.Builder
	start := 0
	column := 0

	flush := func() error {
		if word.Len() == 0 {
			return nil
		}
		err := l.lexWord(word.String(), start)
		word.Reset()
		return err
	}

	for _, r := range line {
		column++
		if unicode.IsSpace(r) {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		if word.Len() == 0 {
			start = column
		}
		word.WriteRune(r)
	}
	if err := flush(); err != nil {
		return err
	}

	l.pending = append(l.pending, types.Token{
		Text:     types.Newline,
		Location: types.SingleCharSpan(l.at(column + 1)),
	})
	return nil
}

// Lex returns the next token, or io.EOF once every line has been consumed.
func (l *Lexer) Lex() (types.Token, error) {
	for len(l.pending) == 0 {
		if l.done {
			return types.Token{}, io.EOF
		}

		line, ok, err := l.readLine()
		if err != nil {
			return types.Token{}, errors.LexError{
				Reason:   "could not read source",
				Location: types.SingleCharSpan(l.pos),
				Err:      err,
			}
		}
		if !ok {
			l.done = true
			continue
		}

		plog.Tracef("%s: %q", l.pos, line)
		if err := l.lexLine(line); err != nil {
			return types.Token{}, err
		}
	}

	tok := l.pending[0]
	l.pending = l.pending[1:]
	return tok, nil
}

// Tokens lexes the rest of the input.
func (l *Lexer) Tokens() ([]types.Token, error) {
	var ret []types.Token
	for {
		tok, err := l.Lex()
		if err == io.EOF {
			return ret, nil
		}
		if err != nil {
			return nil, err
		}
		ret = append(ret, tok)
	}
}

func Tokenize(reader io.Reader, filename string) ([]types.Token, error) {
	tokens, err := NewLexer(reader, filename).Tokens()
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return tokens, nil
}

func TokenizeFile(path string) ([]types.Token, error) {
	handle, err := os.Open(path)
	if err != nil {
		return nil, tracerr.Wrap(errors.LexError{
			Reason:   "file does not exist",
			Location: types.SingleCharSpan(types.Position{Filename: path}),
			Err:      err,
		})
	}
	defer handle.Close()

	return Tokenize(handle, path)
}
