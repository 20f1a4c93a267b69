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

// Package modalflag wraps the flag package in the Go standard library. It
// adds program modes (and sub-modes), each with its own set of flags.
//
// Arguments are given to NewArgs() and then Parse() is called without
// arguments:
//
//	md := Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PATCH")
//	p, err := md.Parse()
//
// After a successful Parse(), Mode() returns the selected mode. If the first
// non-flag argument does not name a mode then the first mode in the list is
// selected, so the first mode is the default mode.
//
// Each mode then starts a new flag set with NewMode(), adds its own flags and
// calls Parse() again to process the arguments that follow the mode selector:
//
//	md.NewMode()
//	out := md.AddString("o", "", "output file")
//	p, err = md.Parse()
//	switch p {
//	case modalflag.ParseError:
//		return err
//	case modalflag.ParseHelp:
//		return nil
//	}
//	args := md.RemainingArgs()
//
// All mode comparisons are case insensitive.
package modalflag
