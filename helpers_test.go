package tactile

import "time"

var t0 = time.Unix(1000, 0)

// at returns t0 plus ms milliseconds.
func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func mouseInput(typ InputType, ms int, x, y float64) Input {
	return Input{Source: SourceMouse, Type: typ, Time: at(ms), X: x, Y: y, Button: MouseButtonLeft}
}

func touchInput(typ InputType, ms int, touches ...Touch) Input {
	return Input{Source: SourceTouch, Type: typ, Time: at(ms), Touches: touches}
}

func pointerInput(typ InputType, ms, id int, x, y float64) Input {
	return Input{Source: SourcePointer, Type: typ, Time: at(ms), PointerID: id, Kind: PointerTouch, X: x, Y: y}
}

// newRecorded returns a detector with the built-in recognizers and a recorder
// attached.
func newRecorded(opts Options) (*Detector, *Recorder) {
	d := NewDetector(opts)
	return d, NewRecorder(d)
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
