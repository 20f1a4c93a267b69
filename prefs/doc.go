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

// Package prefs facilitates the storage of preferential values in the
// filesystem.
//
// Preference values of type Bool, Int, Float and String are added to a Disk
// with a key that is unique to the Disk. Save() writes every value as a
// "key :: value" line and Load() reads them back.
//
//	dsk, _ := prefs.NewDisk(pth)
//	var width prefs.Int
//	_ = dsk.Add("memory.width", &width)
//	_ = width.Set(2048)
//	err := dsk.Load()
//
// Values can also be supplied on the command line as a single string of the
// form "key::value; key::value". The string is pushed with
// PushCommandLineStack() and the values are consumed by the next call to
// Load(), where they take precedence over values in the file.
package prefs
