// This file is part of EE.
//
// EE is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EE is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EE.  If not, see <https://www.gnu.org/licenses/>.

// Package performance measures how fast the emulation runs.
//
// Check() runs a machine for a fixed duration and reports the effective clock
// rate. It optionally writes CPU and memory profiles in the pprof format.
//
// The limiter sub-package regulates the rate of events, such as the pacing of
// the CPU or the refresh of the display.
package performance
