package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/abandoned-station/internal/station"
)

var (
	ErrMalformedInput = errors.New("malformed coordinates")
	ErrOutOfBounds    = errors.New("coordinates out of bounds")
)

// InputError carries the message shown to the player. It unwraps to
// [ErrMalformedInput] or [ErrOutOfBounds].
type InputError struct {
	Kind    error
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return e.Kind
}

type InputKind int8

const (
	InputCoords InputKind = iota
	InputQuit
	InputInvalid
)

type Input struct {
	Kind  InputKind
	Point station.Point // set for InputCoords
	Err   error         // set for InputInvalid
}

const quitCommand = "q"

func malformed(msg string) Input {
	return Input{
		Kind: InputInvalid,
		Err:  &InputError{Kind: ErrMalformedInput, Message: msg},
	}
}

// ParseCoordinates reads an "x y" pair or the quit command from a line of
// player input and checks the pair against the grid size.
func ParseCoordinates(line string, width, height int) Input {
	line = strings.TrimSpace(line)
	if strings.ToLower(line) == quitCommand {
		return Input{Kind: InputQuit}
	}

	parts := strings.Fields(line)
	if len(parts) != 2 {
		return malformed("Invalid input. Please enter two numbers in the format 'x y'.")
	}

	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return malformed("Invalid input. Please enter two whole numbers.")
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return malformed("Invalid input. Please enter two whole numbers.")
	}

	if !(0 <= x && x < width && 0 <= y && y < height) {
		return Input{
			Kind: InputInvalid,
			Err: &InputError{
				Kind: ErrOutOfBounds,
				Message: fmt.Sprintf(
					"Coordinates out of bounds. Valid ranges: 0-%d for x, 0-%d for y.",
					width-1, height-1,
				),
			},
		}
	}

	return Input{Kind: InputCoords, Point: station.Point{X: x, Y: y}}
}
