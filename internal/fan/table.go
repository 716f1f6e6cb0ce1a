package fan

import (
	"fmt"
	"sort"

	"argonone-ng/internal/config"
)

// StepTable is the fan policy: entries sorted ascending by temperature, each
// meaning "run at Level while the temperature stays below Temperature".
type StepTable []config.Step

func NewStepTable(steps []config.Step) (StepTable, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("fan: step table is empty")
	}
	t := make(StepTable, len(steps))
	copy(t, steps)
	sort.SliceStable(t, func(i, j int) bool { return t[i].Temperature < t[j].Temperature })
	return t, nil
}

// Level returns the level of the first entry whose threshold strictly exceeds
// tempC. A sample exactly at a threshold belongs to the band below it. If the
// sample is at or above every threshold the level falls through to 0, so
// tables need an effectively unbounded final threshold to keep a ceiling
// level.
func (t StepTable) Level(tempC float64) int {
	for _, s := range t {
		if tempC < float64(s.Temperature) {
			return s.Level
		}
	}
	return 0
}
