// This file is part of Riskyv.
//
// Riskyv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Riskyv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Riskyv.  If not, see <https://www.gnu.org/licenses/>.

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/riskyv/test"
)

func TestDescribe(t *testing.T) {
	b := describe("", nil)
	test.ExpectEquality(t, b.version, "local")
	test.ExpectEquality(t, b.revision, "no revision information")

	info := &debug.BuildInfo{
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	b = describe("", info)
	test.ExpectEquality(t, b.version, "unreleased")
	test.ExpectEquality(t, b.revision, "abc123+dirty")

	info.Settings[2].Value = "false"
	b = describe("v0.1.0", info)
	test.ExpectEquality(t, b.version, "v0.1.0")
	test.ExpectEquality(t, b.revision, "abc123")
}
