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

// Package harness ties the components together. It creates every GPU
// resource from the preferences, runs the frame loop until the platform
// reports that the window should close, and destroys the resources
// afterwards.
//
// Setup is all or nothing. If any resource cannot be created then the
// resources already created are destroyed and the error is returned. No frame
// is run.
//
// The frame loop polls the platform for events, checks whether it should
// stop, runs one frame of the scheduler and swaps the display buffers. A
// request to stop is only ever acted on between frames.
package harness
