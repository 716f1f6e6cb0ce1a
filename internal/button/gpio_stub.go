//go:build !linux

package button

import "fmt"

type Line struct{}

func RequestLine(chip string, pin int, onRisingEdge func()) (*Line, error) {
	return nil, fmt.Errorf("button: gpio unsupported on this platform")
}

func (l *Line) Close() error { return nil }
