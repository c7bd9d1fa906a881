package console

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInputClosed = errors.New("input closed")

type prompter struct {
	scanner *bufio.Scanner
	out     *termenv.Output
}

// next - reads the next whitespace separated token.
func (that *prompter) next() (string, error) {
	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrInputClosed
	}

	return that.scanner.Text(), nil
}

// promptMark - asks until the answer is X or O.
func (that *prompter) promptMark(message string) (entity.Mark, error) {
	for {
		fmt.Fprintf(that.out, "%s: ", message)

		token, err := that.next()
		if err != nil {
			return entity.EmptyCell, err
		}

		if mark, err := entity.ParseMark(token); err == nil {
			return mark, nil
		}
	}
}

// promptInt - asks until the answer is an integer.
func (that *prompter) promptInt(message string) (int, error) {
	fmt.Fprintf(that.out, "%s: ", message)

	for {
		token, err := that.next()
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(token)
		if err == nil {
			return value, nil
		}

		fmt.Fprintf(that.out, "  %q is not a valid integer.\n", token)
		fmt.Fprintf(that.out, "%s: ", message)
	}
}
