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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test harness
//
// The Expect functions report an error and allow the test to continue. The
// Demand functions stop the test on failure and should be used when later
// parts of the test depend on the value.
//
// It is worth describing how nil is handled because it is not obvious. A nil
// value is considered a success and consequently will cause ExpectFailure to
// fail and ExpectSuccess to succeed. Because of how errors usually work (nil
// to indicate no error) we need to interpret nil in this way.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test
