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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderImage()
//	}
//
// The Limiter should be closed when it is no longer required.
package limiter

import (
	"sync/atomic"
	"time"
)

// this is a really rough attempt at rate limiting. probably only any good if
// base performance of the machine is well above the required rate.

// Limiter will trigger at a fixed number of times per second.
type Limiter struct {
	// nanoseconds between ticks
	period atomic.Int64

	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for Limiter type. The
// rate is the number of ticks per second.
func NewLimiter(rate float64) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}
	lim.SetLimit(rate)

	// run ticker concurrently
	go func() {
		adjusted := time.Duration(lim.period.Load())
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			if adjusted > 0 {
				time.Sleep(adjusted)
			}

			// compensate for the time lost to sleep inaccuracies
			period := time.Duration(lim.period.Load())
			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			if adjusted > period {
				adjusted = period
			}
			t = nt
		}
	}()

	return lim
}

// SetLimit changes the rate at which the Limiter triggers. A rate of zero or
// less is ignored.
func (lim *Limiter) SetLimit(rate float64) {
	if rate <= 0 {
		return
	}
	lim.period.Store(int64(float64(time.Second) / rate))
}

// Period returns the time between triggers.
func (lim *Limiter) Period() time.Duration {
	return time.Duration(lim.period.Load())
}

// Wait will block until trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false if it is
// still yet to happen.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Close stops the Limiter. Wait() must not be called after Close().
func (lim *Limiter) Close() {
	close(lim.quit)
}
