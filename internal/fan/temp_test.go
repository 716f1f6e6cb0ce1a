package fan

import (
	"errors"
	"testing"
)

func TestParseTempC(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"temp=48.3'C\n", 48.3},
		{"temp=60'C", 60},
		{"temp=-2.5'C\n", -2.5},
		{"48.3", 48.3},
	}
	for _, c := range cases {
		got, err := parseTempC(c.in)
		if err != nil {
			t.Fatalf("parseTempC(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseTempC(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestParseTempC_Invalid(t *testing.T) {
	for _, in := range []string{"", "\n", "temp='C", "temp=abc'C"} {
		if _, err := parseTempC(in); err == nil {
			t.Fatalf("parseTempC(%q) expected error", in)
		}
	}
}

func TestCommandReader_UsesCommandOutput(t *testing.T) {
	old := runTempCommandFn
	runTempCommandFn = func(argv []string) (string, error) {
		if len(argv) != 2 || argv[1] != "measure_temp" {
			t.Fatalf("argv=%v want vcgencmd measure_temp", argv)
		}
		return "temp=51.5'C\n", nil
	}
	t.Cleanup(func() { runTempCommandFn = old })

	read := CommandReader([]string{"/opt/vc/bin/vcgencmd", "measure_temp"})
	got, err := read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got != 51.5 {
		t.Fatalf("got %v want 51.5", got)
	}
}

func TestCommandReader_PropagatesCommandError(t *testing.T) {
	want := errors.New("exec failed")
	old := runTempCommandFn
	runTempCommandFn = func(argv []string) (string, error) { return "", want }
	t.Cleanup(func() { runTempCommandFn = old })

	read := CommandReader([]string{"vcgencmd", "measure_temp"})
	if _, err := read(); !errors.Is(err, want) {
		t.Fatalf("err=%v want wrapped %v", err, want)
	}
}

func TestCommandReader_EmptyArgv(t *testing.T) {
	read := CommandReader(nil)
	if _, err := read(); err == nil {
		t.Fatalf("expected error for empty argv")
	}
}
