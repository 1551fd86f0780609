package model

// DefaultStabilityThreshold is the number of consecutive unchanged live counts
// after which a board is considered stable.
const DefaultStabilityThreshold = 20

// StabilityTracker watches the live cell count generation by generation
type StabilityTracker struct {
	threshold             int
	lastCount             int
	consecutiveMatches    int
	firstStableGeneration int
	stable                bool
}

// NewStabilityTracker returns a tracker; threshold <= 0 selects DefaultStabilityThreshold
func NewStabilityTracker(threshold int) *StabilityTracker {
	if threshold <= 0 {
		threshold = DefaultStabilityThreshold
	}
	t := &StabilityTracker{threshold: threshold}
	t.Reset()
	return t
}

// Reset forgets every observation, including a latched stable generation
func (t *StabilityTracker) Reset() {
	t.lastCount = -1
	t.consecutiveMatches = 0
	t.firstStableGeneration = -1
	t.stable = false
}

// Threshold returns the configured run length
func (t *StabilityTracker) Threshold() int {
	return t.threshold
}

// ConsecutiveMatches returns the length of the current run of equal counts
func (t *StabilityTracker) ConsecutiveMatches() int {
	return t.consecutiveMatches
}

/*
CheckStable records one observation and reports whether the count has been
unchanged for at least threshold consecutive observations. The observation
that starts a run counts toward it, so threshold identical observations in a
row are stable. Once reached, the generation is latched and never overwritten.
*/
func (t *StabilityTracker) CheckStable(currentLiveCount, currentGeneration int) bool {
	if currentLiveCount == t.lastCount {
		t.consecutiveMatches++
	} else {
		t.lastCount = currentLiveCount
		t.consecutiveMatches = 1
	}

	if t.consecutiveMatches < t.threshold {
		return false
	}
	if !t.stable {
		t.stable = true
		t.firstStableGeneration = currentGeneration
	}
	return true
}

// FirstStableGeneration returns the generation at which stability was first
// reached, and false if it never was.
func (t *StabilityTracker) FirstStableGeneration() (int, bool) {
	return t.firstStableGeneration, t.stable
}
