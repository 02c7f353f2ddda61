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
	"bytes"
	"testing"

	"github.com/go-audio/audio"

	"github.com/jetsetilly/coordinator/test"
)

// memWriteSeeker is a minimal in-memory wavWriter, standing in for an
// *os.File without this package (or its tests) touching the filesystem.
type memWriteSeeker struct {
	buf []byte
	pos int64
}

func (m *memWriteSeeker) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], p)
	m.pos = end
	return len(p), nil
}

func (m *memWriteSeeker) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		m.pos = offset
	case 1:
		m.pos += offset
	case 2:
		m.pos = int64(len(m.buf)) + offset
	}
	return m.pos, nil
}

func TestSilenceSinkRendersSilenceWhenStopped(t *testing.T) {
	s := NewSilenceSink(44100, 2)

	live := &audio.IntBuffer{Data: []int{1, 2, 3, 4}}
	test.ExpectEquality(t, s.Render(live, 2), live)

	s.Stop()
	out := s.Render(live, 2)
	test.ExpectEquality(t, len(out.Data), 4)
	for _, v := range out.Data {
		test.ExpectEquality(t, v, 0)
	}

	s.Resume()
	test.ExpectEquality(t, s.Render(live, 2), live)
}

func TestWriteSilenceWavProducesNonEmptyClip(t *testing.T) {
	s := NewSilenceSink(8000, 1)

	var w memWriteSeeker
	test.ExpectSuccess(t, s.WriteSilenceWav(&w, 100))
	test.ExpectSuccess(t, len(w.buf) > 0)
	test.ExpectSuccess(t, bytes.Contains(w.buf[:4], []byte("RIFF")))
}

func TestNopAudioSinkIsANoop(t *testing.T) {
	var sink NopAudioSink
	sink.Stop()
	sink.Resume()
}
