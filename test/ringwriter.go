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

package test

import "fmt"

// RingWriter is an io.Writer that keeps only the most recently written
// `limit` bytes.
type RingWriter struct {
	limit int
	buf   []byte
}

// NewRingWriter creates a RingWriter with the given limit.
func NewRingWriter(limit int) (*RingWriter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("ring writer: limit must be greater than zero")
	}
	return &RingWriter{
		limit: limit,
		buf:   make([]byte, 0, limit),
	}, nil
}

// Write implements io.Writer.
func (r *RingWriter) Write(p []byte) (int, error) {
	r.buf = append(r.buf, p...)
	if len(r.buf) > r.limit {
		r.buf = r.buf[len(r.buf)-r.limit:]
	}
	return len(p), nil
}

// String returns the most recently written content, up to the ring's limit.
func (r *RingWriter) String() string {
	return string(r.buf)
}

// Reset empties the writer.
func (r *RingWriter) Reset() {
	r.buf = r.buf[:0]
}
