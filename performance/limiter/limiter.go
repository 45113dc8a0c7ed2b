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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FPSLimiter can be created with:
//
//	fps := limiter.NewFPSLimiter(50.08)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		runFrame()
//	}
package limiter

import (
	"time"
)

// FPSLimiter will trigger at the frames per second rate.
type FPSLimiter struct {
	ticker *time.Ticker
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type. Values less than one are treated as one frame per second.
func NewFPSLimiter(framesPerSecond float32) *FPSLimiter {
	return &FPSLimiter{
		ticker: time.NewTicker(period(framesPerSecond)),
	}
}

func period(framesPerSecond float32) time.Duration {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	return time.Duration(float64(time.Second) / float64(framesPerSecond))
}

// SetLimit changes the rate at which the FPSLimiter triggers.
func (lim *FPSLimiter) SetLimit(framesPerSecond float32) {
	lim.ticker.Reset(period(framesPerSecond))
}

// Wait will block until the next trigger.
func (lim *FPSLimiter) Wait() {
	<-lim.ticker.C
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FPSLimiter) Stop() {
	lim.ticker.Stop()
}
