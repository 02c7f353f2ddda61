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

// Package test collects small assertion helpers and io.Writer
// implementations used by the rest of the module's test suites.
package test

import (
	"math"
	"reflect"
	"testing"
)

// ExpectFailure checks that v represents a failure. v may be a bool (false
// is a failure) or an error (non-nil is a failure).
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	switch vv := v.(type) {
	case bool:
		if vv {
			t.Errorf("expected failure, got success")
		}
	case error:
		if vv == nil {
			t.Errorf("expected failure, got success")
		}
	default:
		t.Errorf("unsupported type passed to ExpectFailure: %T", v)
	}
}

// ExpectSuccess checks that v represents a success. v may be a bool (true
// is success) or an error (nil is success).
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	switch vv := v.(type) {
	case bool:
		if !vv {
			t.Errorf("expected success, got failure")
		}
	case error:
		if vv != nil {
			t.Errorf("expected success, got: %v", vv)
		}
	case nil:
		// nil passed directly (not as a typed error) is success
	default:
		t.Errorf("unsupported type passed to ExpectSuccess: %T", v)
	}
}

// ExpectEquality checks that a and b are equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality checks that a and b are not equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate checks that a is within tolerance of b, where tolerance
// is a fraction of b (0.1 accepts any a within 10% of b).
func ExpectApproximate(t *testing.T, a, b float64, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > math.Abs(b)*tolerance {
		t.Errorf("expected %v to be within %v%% of %v", a, tolerance*100, b)
	}
}
