// internal/simulator/input.go
package simulator

// Input is one discrete control event delivered to a session.
type Input int

const (
	// InputUp selects the previous setting.
	InputUp Input = iota
	// InputDown selects the next setting.
	InputDown
	// InputLeft is the decrease input. On an inverted setting it raises
	// the stored value.
	InputLeft
	// InputRight is the increase input. On an inverted setting it lowers
	// the stored value.
	InputRight
)

func (i Input) String() string {
	switch i {
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	}
	return "Unknown"
}
