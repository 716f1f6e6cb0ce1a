package power

import (
	"errors"
	"testing"
)

func TestSystemd_RejectsUnknownAction(t *testing.T) {
	err := Systemd{}.Trigger(Action("halt"))
	if err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestRecorder_CapturesActions(t *testing.T) {
	r := &Recorder{}
	if err := r.Trigger(Reboot); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	if err := r.Trigger(Poweroff); err != nil {
		t.Fatalf("Trigger: %v", err)
	}
	got := r.Actions()
	if len(got) != 2 || got[0] != Reboot || got[1] != Poweroff {
		t.Fatalf("actions=%v want [reboot poweroff]", got)
	}
}

func TestRecorder_PropagatesError(t *testing.T) {
	want := errors.New("spawn failed")
	r := &Recorder{Err: want}
	if err := r.Trigger(Reboot); !errors.Is(err, want) {
		t.Fatalf("err=%v want %v", err, want)
	}
	if got := r.Actions(); len(got) != 0 {
		t.Fatalf("actions recorded despite error: %v", got)
	}
}
