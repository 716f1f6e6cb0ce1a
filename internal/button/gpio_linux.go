//go:build linux

package button

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// Line owns the button's GPIO line for the life of the process.
type Line struct {
	line *gpiocdev.Line
}

// RequestLine claims the button pin as a pulled-down input and registers
// onRisingEdge to run on every rising edge. Falling edges are not requested.
func RequestLine(chip string, pin int, onRisingEdge func()) (*Line, error) {
	l, err := gpiocdev.RequestLine(chip, pin,
		gpiocdev.AsInput,
		gpiocdev.WithPullDown,
		gpiocdev.WithRisingEdge,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			if evt.Type == gpiocdev.LineEventRisingEdge {
				onRisingEdge()
			}
		}),
		gpiocdev.WithConsumer("argonone-ng"))
	if err != nil {
		return nil, fmt.Errorf("button: request %s line %d: %w", chip, pin, err)
	}
	return &Line{line: l}, nil
}

func (l *Line) Close() error {
	if l == nil || l.line == nil {
		return nil
	}
	err := l.line.Close()
	l.line = nil
	return err
}
