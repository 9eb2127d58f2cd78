package graph

/**
 * window.go - graph windows and traffic directions
 */

import (
	"errors"
	"fmt"
)

/**
 * ErrInvalidWindow is returned when a window token is not one of
 * daily, weekly, monthly or yearly
 */
var ErrInvalidWindow = errors.New("invalid window")

/**
 * Window is one of the fixed statistic ranges the device graphs
 */
type Window int

const (
	Daily Window = iota
	Weekly
	Monthly
	Yearly
)

/**
 * Windows in the order the device reports them
 */
var Windows = []Window{Daily, Weekly, Monthly, Yearly}

var windowTokens = [...]string{"daily", "weekly", "monthly", "yearly"}

var windowLabels = [...]string{
	`"Daily" Graph`,
	`"Weekly" Graph`,
	`"Monthly" Graph`,
	`"Yearly" Graph`,
}

func (w Window) valid() bool {
	return w >= Daily && w <= Yearly
}

/**
 * String returns the token used in urls and json keys
 */
func (w Window) String() string {
	if !w.valid() {
		return fmt.Sprintf("Window(%d)", int(w))
	}
	return windowTokens[w]
}

/**
 * Label returns the heading that opens the window's block on the graph page
 */
func (w Window) Label() string {
	if !w.valid() {
		return ""
	}
	return windowLabels[w]
}

/**
 * ParseWindow maps a token (as found in a request path) to a Window
 */
func ParseWindow(token string) (Window, error) {
	for _, w := range Windows {
		if windowTokens[w] == token {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, token)
}

/**
 * Direction of measured traffic within a window
 */
type Direction int

const (
	In Direction = iota
	Out
)

/**
 * Directions in the order they appear on the page
 */
var Directions = []Direction{In, Out}

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

/* word used by the device after Max / Average / Current */
func (d Direction) keyword() string {
	if d == Out {
		return "Out"
	}
	return "In"
}
