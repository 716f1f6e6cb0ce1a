package fan

import (
	"testing"

	"argonone-ng/internal/config"
)

func testTable(t *testing.T) StepTable {
	t.Helper()
	tbl, err := NewStepTable([]config.Step{
		{Temperature: 40, Level: 10},
		{Temperature: 60, Level: 40},
		{Temperature: 80, Level: 80},
	})
	if err != nil {
		t.Fatalf("NewStepTable: %v", err)
	}
	return tbl
}

func TestNewStepTable_Empty(t *testing.T) {
	if _, err := NewStepTable(nil); err == nil {
		t.Fatalf("expected error for empty table")
	}
}

func TestNewStepTable_SortsInput(t *testing.T) {
	tbl, err := NewStepTable([]config.Step{
		{Temperature: 80, Level: 80},
		{Temperature: 40, Level: 10},
	})
	if err != nil {
		t.Fatalf("NewStepTable: %v", err)
	}
	if tbl[0].Temperature != 40 || tbl[1].Temperature != 80 {
		t.Fatalf("table not sorted: %+v", tbl)
	}
}

func TestLevel_FirstStrictlyGreaterThresholdWins(t *testing.T) {
	tbl := testTable(t)
	cases := []struct {
		tempC float64
		want  int
	}{
		{-10, 10},
		{35, 10},
		{39.9, 10},
		{45, 40},
		{65, 80},
		{79.9, 80},
	}
	for _, c := range cases {
		if got := tbl.Level(c.tempC); got != c.want {
			t.Fatalf("Level(%v)=%d want %d", c.tempC, got, c.want)
		}
	}
}

func TestLevel_BoundaryIsStrict(t *testing.T) {
	tbl := testTable(t)
	// A sample exactly at a threshold belongs to the band below it.
	if got := tbl.Level(40); got != 40 {
		t.Fatalf("Level(40)=%d want 40", got)
	}
	if got := tbl.Level(60); got != 80 {
		t.Fatalf("Level(60)=%d want 80", got)
	}
}

func TestLevel_AboveHighestThresholdFallsToZero(t *testing.T) {
	tbl, err := NewStepTable([]config.Step{{Temperature: 50, Level: 20}})
	if err != nil {
		t.Fatalf("NewStepTable: %v", err)
	}
	if got := tbl.Level(55); got != 0 {
		t.Fatalf("Level(55)=%d want 0", got)
	}
	if got := tbl.Level(50); got != 0 {
		t.Fatalf("Level(50)=%d want 0", got)
	}
}

func TestLevel_Idempotent(t *testing.T) {
	tbl := testTable(t)
	first := tbl.Level(52)
	for i := 0; i < 5; i++ {
		if got := tbl.Level(52); got != first {
			t.Fatalf("Level(52)=%d want %d on repeat %d", got, first, i)
		}
	}
}
