// This file is part of Specx.
//
// Specx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Specx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Specx.  If not, see <https://www.gnu.org/licenses/>.

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/specx/prefs"
	"github.com/jetsetilly/specx/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(10))
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestLoadAndPreserve(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	// first disk writes two values
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.String
	var b prefs.Int
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectSuccess(t, dsk.Add("b", &b))
	test.ExpectSuccess(t, a.Set("48"))
	test.ExpectSuccess(t, b.Set(16))
	test.DemandSuccess(t, dsk.Save())

	// second disk only knows about one value. saving should not lose the
	// other value
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var c prefs.String
	test.ExpectSuccess(t, dsk2.Add("a", &c))
	test.DemandSuccess(t, dsk2.Load())
	test.ExpectEquality(t, c.String(), "48")
	test.ExpectSuccess(t, c.Set("TC2048"))
	test.DemandSuccess(t, dsk2.Save())
	cmpFile(t, fn, "a :: TC2048\nb :: 16\n")

	// duplicate keys are not allowed
	test.ExpectFailure(t, dsk2.Add("a", &c))
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("machine", &v))
	test.ExpectSuccess(t, v.Set("48"))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("machine::SE; unused::value")
	test.DemandSuccess(t, dsk.Load())
	test.ExpectEquality(t, v.String(), "SE")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "unused::value")
}

func TestHookPost(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(value prefs.Value) error {
		seen = value.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(32))
	test.ExpectEquality(t, seen, 32)
}
