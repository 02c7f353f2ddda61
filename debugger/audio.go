// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package debugger

import (
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// AudioSink is the "audio mixer" SleepUntilResume stops and resumes around
// a user-visible break (§4.3 step 3). The coordinator never touches PCM
// data directly; it only calls Stop/Resume.
type AudioSink interface {
	Stop()
	Resume()
}

// NopAudioSink is the default AudioSink for consoles with no audio backend
// attached (headless test runs, unit tests).
type NopAudioSink struct{}

func (NopAudioSink) Stop()   {}
func (NopAudioSink) Resume() {}

// SilenceSink is a minimal AudioSink backed by go-audio/audio and
// go-audio/wav: while stopped, Render produces a silence buffer of the
// configured format instead of forwarding real samples, so a UI audio
// pipeline downstream of the coordinator never has to special-case a
// paused emulator. Stop/Resume are called from the emulation thread inside
// sleepUntilResume while Render is pulled from a separate audio-rendering
// goroutine, so stopped is guarded by mu rather than left a bare bool.
type SilenceSink struct {
	mu      sync.Mutex
	format  *audio.Format
	stopped bool
}

// NewSilenceSink creates a SilenceSink for the given sample rate and
// channel count.
func NewSilenceSink(sampleRate, numChannels int) *SilenceSink {
	return &SilenceSink{
		format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
	}
}

func (s *SilenceSink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

func (s *SilenceSink) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = false
}

// Render returns n frames of audio: silence while stopped, or the samples
// already present in buf otherwise. It exists so a downstream consumer can
// pull a fixed-size block regardless of break state.
func (s *SilenceSink) Render(buf *audio.IntBuffer, n int) *audio.IntBuffer {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()

	if !stopped {
		return buf
	}
	out := &audio.IntBuffer{
		Format:         s.format,
		Data:           make([]int, n*s.format.NumChannels),
		SourceBitDepth: 16,
	}
	return out
}

// WriteSilenceWav writes n silent frames to w in WAV format, at the sink's
// configured sample rate/channel count, whether or not the sink is
// stopped. Used by tests asserting the sink produces a well-formed silent
// clip.
func (s *SilenceSink) WriteSilenceWav(w wavWriter, n int) error {
	enc := wav.NewEncoder(w, s.format.SampleRate, 16, s.format.NumChannels, 1)
	defer enc.Close()

	buf := &audio.IntBuffer{
		Format:         s.format,
		Data:           make([]int, n*s.format.NumChannels),
		SourceBitDepth: 16,
	}
	return enc.Write(buf)
}

// wavWriter is the subset of io.WriteSeeker wav.NewEncoder needs; declared
// locally so callers can pass an *os.File or an in-memory equivalent
// without this package importing os.
type wavWriter interface {
	Write(p []byte) (n int, err error)
	Seek(offset int64, whence int) (int64, error)
}
