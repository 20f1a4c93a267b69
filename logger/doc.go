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

// Package logger is the central log repository for riskyv. There is only
// one log for the entire application and the package level functions all
// operate on it.
//
// Entries are tagged with the component making the log request. Consecutive
// entries with the same tag and detail are folded into a single entry with a
// repeat count. This is important for per-frame logging, which would
// otherwise flood the log.
//
// Logging requests are gated by a Permission. The Allow value permits all
// logging. Other implementations of the Permission interface can be used to
// silence logging from a particular source, for example frame-by-frame
// logging that is only wanted while diagnosing a problem.
//
// The log can be echoed to an io.Writer with SetEcho().
package logger
