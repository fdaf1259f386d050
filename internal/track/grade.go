package track

import "math"

// DefaultGradeSegmentLength is the grade sampling interval in meters.
const DefaultGradeSegmentLength = 50.0

// GradeSegment is a distance interval with its boundary elevations.
// End is always greater than Start.
type GradeSegment struct {
	Start          float64
	End            float64
	ElevationStart float64
	ElevationEnd   float64
}

// Grade returns the slope over the segment.
func (s GradeSegment) Grade() float64 {
	return (s.ElevationEnd - s.ElevationStart) / (s.End - s.Start)
}

// NewGradeSegmentWithGrade builds a segment from a fixed grade and start
// elevation, deriving the end elevation over the span.
func NewGradeSegmentWithGrade(start, end, grade, elevationStart float64) GradeSegment {
	return GradeSegment{
		Start:          start,
		End:            end,
		ElevationStart: elevationStart,
		ElevationEnd:   elevationStart + grade*(end-start),
	}
}

// GradeSegments chops the track into spans of the given length (the final
// span may be shorter) with boundary elevations sampled from the
// interpolated profile. A non-positive length falls back to
// DefaultGradeSegmentLength.
func (g Graph) GradeSegments(length float64) []GradeSegment {
	if length <= 0 {
		length = DefaultGradeSegmentLength
	}
	if g.TotalDistance == 0 {
		return nil
	}

	count := int(math.Ceil(g.TotalDistance / length))
	segments := make([]GradeSegment, 0, count)

	for i := 0; i < count; i++ {
		start := float64(i) * length
		end := min(start+length, g.TotalDistance)
		if end <= start {
			break
		}

		segments = append(segments, GradeSegment{
			Start:          start,
			End:            end,
			ElevationStart: g.ElevationAt(start),
			ElevationEnd:   g.ElevationAt(end),
		})
	}

	return segments
}

// FlattenGrades bounds the grade change between consecutive segments to
// maxDelta in a single left-to-right pass. The first segment passes through
// unchanged. Every later output keeps its input's distance span, starts at
// the previous output's end elevation, and keeps its own grade when the jump
// from the previous output grade is within maxDelta; otherwise the grade
// moves exactly maxDelta toward the target. The pass never looks ahead and
// never revisits earlier segments.
func FlattenGrades(segments []GradeSegment, maxDelta float64) []GradeSegment {
	if len(segments) == 0 {
		return nil
	}

	out := make([]GradeSegment, len(segments))
	out[0] = segments[0]

	for i := 1; i < len(segments); i++ {
		seg := segments[i]
		prev := out[i-1]

		grade := seg.Grade()
		if delta := grade - prev.Grade(); math.Abs(delta) > maxDelta {
			grade = prev.Grade() + math.Copysign(maxDelta, delta)
		}

		out[i] = NewGradeSegmentWithGrade(seg.Start, seg.End, grade, prev.ElevationEnd)
	}

	return out
}
