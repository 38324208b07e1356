package lookahead

import (
	"errors"
	"fmt"
)

// --- Symbol names ----------------------------------------------------------

// Namer is a type to be provided by a grammar to be able to print out symbol ids
// by name. It returns false if id has no name.
type Namer func(id int) (string, bool)

// Sentinel symbol ids. Sentinels are negative and have to lie within the negative
// window of a symbol set.
const (
	EOF = -1 // end of input
)

// EOFName is the display name for the EOF sentinel.
const EOFName = "#eof"

// SymbolName returns the name for a symbol id, as resolved by namer.
// If namer is nil or does not know id, a hexadecimal literal is returned.
func SymbolName(id int, namer Namer) string {
	if namer != nil {
		if name, ok := namer(id); ok {
			return name
		}
	}
	return fmt.Sprintf("%#x", id)
}

// --- Errors ----------------------------------------------------------------

// Kinds of contract violations.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("out of range")
	ErrUnsupported     = errors.New("unsupported operation")
)

// ContractError is signalled if a caller violates the contract of an operation.
// Operations of the set algebra panic with a *ContractError, as violations are
// programming errors in the calling code. Kind is one of the Err… variables.
type ContractError struct {
	Kind error  // ErrInvalidArgument, ErrOutOfRange or ErrUnsupported
	Op   string // operation which detected the violation
	Msg  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap makes ContractError work with errors.Is.
func (e *ContractError) Unwrap() error {
	return e.Kind
}

// InvalidArgument creates a contract error of kind ErrInvalidArgument.
func InvalidArgument(op string, format string, args ...interface{}) *ContractError {
	return &ContractError{Kind: ErrInvalidArgument, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// OutOfRange creates a contract error of kind ErrOutOfRange.
func OutOfRange(op string, format string, args ...interface{}) *ContractError {
	return &ContractError{Kind: ErrOutOfRange, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Unsupported creates a contract error of kind ErrUnsupported.
func Unsupported(op string, format string, args ...interface{}) *ContractError {
	return &ContractError{Kind: ErrUnsupported, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Catch calls f and converts a panic with a *ContractError into an error return.
// Other panics are propagated unchanged.
//
//    err := lookahead.Catch(func() {
//        first.Or(other)   // may panic with mismatched bias
//    })
//
func Catch(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*ContractError); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()
	f()
	return nil
}
