package shell

import "errors"

var (
	// ErrUnknownCommand is returned by Parse for an unrecognized keyword.
	ErrUnknownCommand = errors.New("command not found")

	// ErrMissingOperand is returned by Parse when a command lacks a required path.
	ErrMissingOperand = errors.New("missing operand")

	// ErrInvalidPattern is returned when a grep pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("Invalid pattern")
)

// Reasons rendered at the end of user-facing error lines.
const (
	reasonNoDirectory = "No such directory"
	reasonNoNode      = "No such file or directory"
	reasonExists      = "Node exists"
	reasonExistsAtDst = "Node exists at destination"
	reasonRoot        = "Root directory"
	reasonIntoSelf    = "Destination inside source"
)
