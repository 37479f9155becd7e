// Package sdlaudio implements audio.Mixer with SDL_mixer.
package sdlaudio

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/mix"

	"github.com/sdlgamepad/examples/audio"
)

// Mixer plays sounds through SDL_mixer. The audio device must already be
// open (mix.OpenAudio) when it is created.
type Mixer struct {
	music   *mix.Music
	effects map[audio.Cue]*mix.Chunk
}

// Open loads the music and every sound effect from dir.
func Open(dir string) (*Mixer, error) {
	m := &Mixer{effects: make(map[audio.Cue]*mix.Chunk)}

	musicPath := filepath.Join(dir, audio.MusicFile)
	music, err := mix.LoadMUS(musicPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load music %s", musicPath)
	}
	m.music = music

	for _, cue := range []audio.Cue{audio.CueScratch, audio.CueHigh, audio.CueMedium, audio.CueLow} {
		path := filepath.Join(dir, cue.File())
		chunk, err := mix.LoadWAV(path)
		if err != nil {
			m.Close()
			return nil, errors.Wrapf(err, "failed to load %s sound effect %s", cue, path)
		}
		m.effects[cue] = chunk
	}

	return m, nil
}

// PlayEffect plays the cue once on the first free channel.
func (m *Mixer) PlayEffect(cue audio.Cue) error {
	chunk, ok := m.effects[cue]
	if !ok {
		return errors.Newf("no sound effect loaded for %s", cue)
	}
	_, err := chunk.Play(-1, 0)
	return err
}

// PlayMusic starts the music, looping forever.
func (m *Mixer) PlayMusic() error {
	return m.music.Play(-1)
}

func (m *Mixer) PlayingMusic() bool {
	return mix.PlayingMusic()
}

func (m *Mixer) PausedMusic() bool {
	return mix.PausedMusic()
}

func (m *Mixer) PauseMusic() {
	mix.PauseMusic()
}

func (m *Mixer) ResumeMusic() {
	mix.ResumeMusic()
}

func (m *Mixer) Close() {
	for cue, chunk := range m.effects {
		chunk.Free()
		delete(m.effects, cue)
	}

	if m.music != nil {
		m.music.Free()
		m.music = nil
	}
}

var _ audio.Mixer = (*Mixer)(nil)
