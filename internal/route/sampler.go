package route

import (
	"errors"

	"github.com/bnylez/authenticfinder/internal/geo"
)

// ErrInvalidInterval is returned when the sampling interval is not positive.
var ErrInvalidInterval = errors.New("sampling interval must be positive")

// SampleWaypoints resamples a route at a fixed mileage interval, carrying
// remainder distance across steps. Each emitted waypoint is the end
// coordinate of the step during which the cumulative distance crossed the
// interval threshold; a step longer than several intervals emits several
// copies of its end coordinate. The waypoint count is always
// floor(totalMiles/intervalMiles).
func SampleWaypoints(steps []Step, intervalMiles float64) ([]geo.Location, error) {
	if intervalMiles <= 0 {
		return nil, ErrInvalidInterval
	}

	var waypoints []geo.Location
	acc := 0.0

	for _, step := range steps {
		acc += geo.MetersToMiles(step.Distance.Value)

		for acc >= intervalMiles {
			waypoints = append(waypoints, step.EndLocation)
			acc -= intervalMiles
		}
	}

	return waypoints, nil
}
