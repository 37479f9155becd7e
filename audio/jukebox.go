// Package audio maps controller buttons to sound effects and music.
package audio

import (
	"fmt"

	"github.com/sdlgamepad/examples/gamepad"
)

// Cue is one of the example's sound effects.
type Cue int

const (
	CueHigh Cue = iota
	CueMedium
	CueLow
	CueScratch
)

var cueFiles = map[Cue]string{
	CueHigh:    "high.wav",
	CueMedium:  "medium.wav",
	CueLow:     "low.wav",
	CueScratch: "scratch.wav",
}

const MusicFile = "beat.wav"

func (c Cue) String() string {
	switch c {
	case CueHigh:
		return "high"
	case CueMedium:
		return "medium"
	case CueLow:
		return "low"
	case CueScratch:
		return "scratch"
	}
	return fmt.Sprintf("Cue(%d)", int(c))
}

// File is the name of the sound file the cue is loaded from.
func (c Cue) File() string {
	return cueFiles[c]
}

// CueForButton maps the D-pad to sound effects.
func CueForButton(b gamepad.Button) (Cue, bool) {
	switch b {
	case gamepad.ButtonDPadUp:
		return CueHigh, true
	case gamepad.ButtonDPadDown:
		return CueMedium, true
	case gamepad.ButtonDPadLeft:
		return CueLow, true
	case gamepad.ButtonDPadRight:
		return CueScratch, true
	}
	return 0, false
}

type Mixer interface {
	PlayEffect(cue Cue) error
	PlayMusic() error
	PlayingMusic() bool
	PausedMusic() bool
	PauseMusic()
	ResumeMusic()
}

// Jukebox plays the sounds bound to controller buttons.
type Jukebox struct {
	mixer Mixer
}

func NewJukebox(mixer Mixer) *Jukebox {
	return &Jukebox{mixer: mixer}
}

// HandleButton plays the button's sound effect, or for Start cycles the music
// between playing and paused, starting it if nothing is playing yet.
func (j *Jukebox) HandleButton(b gamepad.Button) error {
	if cue, ok := CueForButton(b); ok {
		return j.mixer.PlayEffect(cue)
	}

	if b != gamepad.ButtonStart {
		return nil
	}

	switch {
	case !j.mixer.PlayingMusic():
		return j.mixer.PlayMusic()
	case j.mixer.PausedMusic():
		j.mixer.ResumeMusic()
	default:
		j.mixer.PauseMusic()
	}
	return nil
}
