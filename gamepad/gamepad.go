// Package gamepad turns game controller buttons and axis motion into the
// direction the example's arrow points at.
package gamepad

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DeadZone is the default analog stick dead zone. Axis values lie in
// [-32768, 32767].
const DeadZone = 8000

// Button values follow SDL's game controller button order.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

var buttonNames = map[Button]string{
	ButtonA:             "A",
	ButtonB:             "B",
	ButtonX:             "X",
	ButtonY:             "Y",
	ButtonBack:          "Back",
	ButtonGuide:         "Guide",
	ButtonStart:         "Start",
	ButtonLeftStick:     "Left Stick",
	ButtonRightStick:    "Right Stick",
	ButtonLeftShoulder:  "Left Shoulder",
	ButtonRightShoulder: "Right Shoulder",
	ButtonDPadUp:        "D-Pad Up",
	ButtonDPadDown:      "D-Pad Down",
	ButtonDPadLeft:      "D-Pad Left",
	ButtonDPadRight:     "D-Pad Right",
}

func (b Button) String() string {
	name, ok := buttonNames[b]
	if !ok {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return name
}

// Axis values follow SDL's game controller axis order.
type Axis uint8

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

var axisNames = map[Axis]string{
	AxisLeftX:        "Left X",
	AxisLeftY:        "Left Y",
	AxisRightX:       "Right X",
	AxisRightY:       "Right Y",
	AxisTriggerLeft:  "Left Trigger",
	AxisTriggerRight: "Right Trigger",
}

func (a Axis) String() string {
	name, ok := axisNames[a]
	if !ok {
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
	return name
}

// Step maps an axis value to -1, 0 or 1, with 0 anywhere inside the dead zone.
func Step(value int16, deadZone int) int {
	switch {
	case int(value) < -deadZone:
		return -1
	case int(value) > deadZone:
		return 1
	default:
		return 0
	}
}

// Direction is the left stick's position, normalized to -1, 0 or 1 per axis.
// Y grows downward, as it does on screen.
type Direction struct {
	X int
	Y int
}

// Apply updates the direction from the motion of an axis and reports whether
// it changed. Axes other than the left stick's are ignored.
func (d *Direction) Apply(axis Axis, value int16, deadZone int) bool {
	var target *int
	switch axis {
	case AxisLeftX:
		target = &d.X
	case AxisLeftY:
		target = &d.Y
	default:
		return false
	}

	step := Step(value, deadZone)
	if *target == step {
		return false
	}
	*target = step
	return true
}

// Angle is the clockwise rotation in degrees that points an arrow drawn facing
// right toward the direction. The centred stick gives 0.
func (d Direction) Angle() float64 {
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return mgl64.RadToDeg(math.Atan2(float64(d.Y), float64(d.X)))
}

// Describe names the motion of the right stick or a trigger once it leaves the
// dead zone. It returns "" for anything else.
func Describe(axis Axis, value int16, deadZone int) string {
	step := Step(value, deadZone)
	switch axis {
	case AxisRightX:
		if step < 0 {
			return "Right stick left!"
		} else if step > 0 {
			return "Right stick right!"
		}
	case AxisRightY:
		if step < 0 {
			return "Right stick up!"
		} else if step > 0 {
			return "Right stick down!"
		}
	case AxisTriggerLeft:
		if step > 0 {
			return "Left trigger!"
		}
	case AxisTriggerRight:
		if step > 0 {
			return "Right trigger!"
		}
	}
	return ""
}
