package xbrl

import "fmt"

// PeriodResolutionError reports that no duration context matching the
// requested reporting period could be found in the instance document.
// It is fatal for that period load only; callers may retry with a
// different period type or skip the period.
type PeriodResolutionError struct {
	Reason   string
	DeltaDay int // day count of the best candidate, when one existed
	WantDay  int // expected day count for the period type
}

func (e *PeriodResolutionError) Error() string {
	if e.WantDay > 0 {
		return fmt.Sprintf("period resolution: %s (found delta=%d days, needed %d)", e.Reason, e.DeltaDay, e.WantDay)
	}
	return "period resolution: " + e.Reason
}

// SegmentDisambiguationError reports that the elimination filters could
// not reduce a segment's candidate contexts to exactly one. It is fatal
// only to that segment; other segments of the same query still resolve.
type SegmentDisambiguationError struct {
	Segment    string
	Candidates int
}

func (e *SegmentDisambiguationError) Error() string {
	return fmt.Sprintf("segment %q: could not eliminate enough candidate contexts (%d remain)", e.Segment, e.Candidates)
}
