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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/specx/curated"
	"github.com/jetsetilly/specx/hardware/television/specification"
)

// FrameRunner implementations run the emulation for a number of frames.
type FrameRunner interface {
	Run(ctx context.Context, frames int) error
}

// Check the performance of the emulator. The emulation is run for the
// duration and the frame rate is written to output. The profiles requested
// by the profile argument are generated while the emulation runs.
func Check(output io.Writer, profile Profile, r FrameRunner, spec specification.Spec, duration time.Duration) error {
	if duration <= 0 {
		return curated.Errorf(ProfileError, "duration must be positive")
	}

	var numFrames int

	runner := func() error {
		// signals true when the duration has expired
		timesUp := make(chan bool, 1)
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			err := r.Run(context.Background(), 1)
			if err != nil {
				return err
			}
			numFrames++
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	fps, accuracy := CalcFPS(spec, numFrames, duration.Seconds())
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)))

	return nil
}
