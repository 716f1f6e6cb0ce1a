package fan

import (
	"bytes"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Temperature comes from an external reporter (vcgencmd on the Pi) whose
// stdout looks like "temp=48.3'C".

var runTempCommandFn = runTempCommand

func runTempCommand(argv []string) (string, error) {
	cmd := exec.Command(argv[0], argv[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%v: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

func parseTempC(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "temp=")
	s = strings.TrimSuffix(s, "'C")
	if s == "" {
		return 0, fmt.Errorf("temperature output empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse temperature %q: %w", s, err)
	}
	return v, nil
}

// CommandReader returns a sampler that runs argv and parses its output as
// degrees Celsius.
func CommandReader(argv []string) func() (float64, error) {
	return func() (float64, error) {
		if len(argv) == 0 {
			return 0, fmt.Errorf("temperature command not configured")
		}
		out, err := runTempCommandFn(argv)
		if err != nil {
			return 0, fmt.Errorf("read temperature: %w", err)
		}
		return parseTempC(out)
	}
}
