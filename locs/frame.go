package locs

// Frame is one of the six reading lanes of a genome: three codon offsets
// on each strand. FrameNone is the sentinel for a location whose strand
// is not known.
type Frame int

const (
	FrameNone Frame = iota
	M0
	M1
	M2
	P0
	P1
	P2

	numFrames = 7
)

var frameNames = [numFrames]string{"XX", "-1", "-2", "-3", "+1", "+2", "+3"}

func (f Frame) String() string {
	if f < 0 || f >= numFrames {
		return "??"
	}
	return frameNames[f]
}
