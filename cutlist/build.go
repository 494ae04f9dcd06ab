package cutlist

import (
	"fmt"

	"vdcut/vdscript"
)

// Segment is one surviving cut, converted to seconds.
type Segment struct {
	Start float64
	End   float64
	Name  string
}

// SkippedSegment records a cut whose duration became non-positive
// after the boundary adjustments.
type SkippedSegment struct {
	// Position is the cut's 1-based position in the source list.
	Position int
	// Start and End are the adjusted frame bounds that made the cut
	// invalid (End <= Start).
	Start int
	End   int
}

func (s SkippedSegment) String() string {
	return fmt.Sprintf("segment %d has non-positive duration after adjusting frames (start %d, end %d); skipped",
		s.Position, s.Start, s.End)
}

// Build adjusts, converts and names the parsed ranges. Ranges that
// lose their entire duration to the adjustments are dropped and
// reported as skipped; everything else keeps its source order. The
// Config must have been validated, in particular FPS is assumed
// positive.
func Build(ranges []vdscript.RawRange, cfg Config) ([]Segment, []SkippedSegment) {
	segments := make([]Segment, 0, len(ranges))
	var skipped []SkippedSegment

	for i, r := range ranges {
		start := r.Start - cfg.ExtraFramesStart
		if start < 0 {
			start = 0
		}
		end := r.End + cfg.ExtraFramesEnd

		if end <= start {
			skipped = append(skipped, SkippedSegment{Position: i + 1, Start: start, End: end})
			continue
		}

		var name string
		if cfg.AddSegmentNumber {
			// Skipped cuts do not consume a number.
			name = fmt.Sprintf("segment %d", len(segments)+1)
		}

		segments = append(segments, Segment{
			Start: Seconds(start, cfg.FPS),
			End:   Seconds(end, cfg.FPS),
			Name:  name,
		})
	}

	return segments, skipped
}

// Seconds converts a frame index to a timestamp at the given frame
// rate.
func Seconds(frame int, fps float64) float64 {
	return float64(frame) / fps
}
