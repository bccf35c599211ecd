package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/pontaoski/logoparse/types"
	"github.com/ztrue/tracerr"
)

// Kind groups errors by the condition that produced them.
type Kind int

const (
	KindUnknown Kind = iota
	KindLex
	KindUnbalancedBlock
	KindUnknownCommand
	KindMalformedOperand
	KindTrailingToken
)

func (k Kind) String() string {
	data := map[Kind]string{
		KindUnknown:          "Unknown",
		KindLex:              "LexError",
		KindUnbalancedBlock:  "UnbalancedBlock",
		KindUnknownCommand:   "UnknownCommand",
		KindMalformedOperand: "MalformedOperand",
		KindTrailingToken:    "TrailingToken",
	}
	return data[k]
}

type kinded interface {
	Kind() Kind
}

// KindOf reports the kind of the outermost typed error in err's chain.
func KindOf(err error) Kind {
	var k kinded
	if stderrors.As(tracerr.Unwrap(err), &k) {
		return k.Kind()
	}
	return KindUnknown
}

// Root follows MalformedOperand causes down to the error that started it.
func Root(err error) error {
	err = tracerr.Unwrap(err)
	for {
		var m MalformedOperand
		if !stderrors.As(err, &m) || m.Err == nil {
			return err
		}
		err = m.Err
	}
}

type LexError struct {
	Reason   string
	Location types.Span
	Err      error
}

func (e LexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s. %s", e.Reason, e.Err, e.Location)
	}
	return fmt.Sprintf("%s. %s", e.Reason, e.Location)
}

func (e LexError) Unwrap() error { return e.Err }
func (e LexError) Kind() Kind    { return KindLex }

type UnbalancedBlock struct {
	Token    string
	Location types.Span
}

func (e UnbalancedBlock) Error() string {
	if e.Token == types.CloseBracket {
		return fmt.Sprintf("unbalanced brackets: %s with no open block. %s", e.Token, e.Location)
	}
	return fmt.Sprintf("unbalanced block: %s with no open block. %s", e.Token, e.Location)
}

func (e UnbalancedBlock) Kind() Kind { return KindUnbalancedBlock }

// UnterminatedBlock is returned when the input ends while blocks are still open.
type UnterminatedBlock struct {
	Depth    int
	Location types.Span
}

func (e UnterminatedBlock) Error() string {
	return fmt.Sprintf("invalid codeblock: %d block(s) left open at end of input. %s", e.Depth, e.Location)
}

func (e UnterminatedBlock) Kind() Kind { return KindUnbalancedBlock }

type UnknownCommand struct {
	Name     string
	Location types.Span
}

func (e UnknownCommand) Error() string {
	return fmt.Sprintf("unknown command %q. %s", e.Name, e.Location)
}

func (e UnknownCommand) Kind() Kind { return KindUnknownCommand }

// MalformedOperand reports which operand of Command could not be parsed.
// Err is nil when the operand was missing altogether.
type MalformedOperand struct {
	Command  string
	Operand  string
	Location types.Span
	Err      error
}

func (e MalformedOperand) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing %s of %s. %s", e.Operand, e.Command, e.Location)
	}
	return fmt.Sprintf("invalid %s of %s. %s: %s", e.Operand, e.Command, e.Location, e.Err)
}

func (e MalformedOperand) Unwrap() error { return e.Err }
func (e MalformedOperand) Kind() Kind    { return KindMalformedOperand }

type MissingValue struct {
	Prefix   string
	Location types.Span
}

func (e MissingValue) Error() string {
	return fmt.Sprintf("missing value after %s. %s", e.Prefix, e.Location)
}

func (e MissingValue) Kind() Kind { return KindMalformedOperand }

type TrailingToken struct {
	Token    string
	Location types.Span
}

func (e TrailingToken) Error() string {
	return fmt.Sprintf("unexpected token %q following a complete statement. %s", e.Token, e.Location)
}

func (e TrailingToken) Kind() Kind { return KindTrailingToken }
