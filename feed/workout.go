////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package feed

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Activity is the kind of exercise a workout records.
type Activity string

const (
	Running Activity = "running"
	Cycling Activity = "cycling"
	Walking Activity = "walking"
)

// caloriesPerMinute is the flat burn rate used for estimates.
var caloriesPerMinute = map[Activity]float64{
	Cycling: 8,
	Running: 10,
	Walking: 4,
}

// ParseActivity returns the activity with the given name.
func ParseActivity(s string) (Activity, error) {
	a := Activity(s)
	if _, ok := caloriesPerMinute[a]; !ok {
		return "", errors.Errorf("unknown activity %q", s)
	}
	return a, nil
}

// Workout is one recorded exercise session.
type Workout struct {
	ID       string    `json:"id"`
	Activity Activity  `json:"activity"`
	Date     time.Time `json:"date"`

	// Duration in seconds
	Duration int64 `json:"duration"`

	// Distance in kilometres
	Distance float64 `json:"distance"`

	// Average speed in km/h
	AvgSpeed float64 `json:"avgSpeed"`
	Calories int64   `json:"calories"`
	Location string  `json:"location"`
}

// NewWorkout builds a workout and fills in its derived speed and calories.
func NewWorkout(id string, activity Activity, date time.Time,
	durationSeconds int64, distance float64, location string) Workout {
	return Workout{
		ID:       id,
		Activity: activity,
		Date:     date,
		Duration: durationSeconds,
		Distance: distance,
		AvgSpeed: AverageSpeed(distance, durationSeconds),
		Calories: Calories(activity, durationSeconds),
		Location: location,
	}
}

// AverageSpeed returns the distance covered per hour. A zero duration has no
// speed.
func AverageSpeed(distance float64, durationSeconds int64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return distance / float64(durationSeconds) * 3600
}

// Calories estimates the calories burnt, rounded down. Unknown activities
// burn nothing.
func Calories(activity Activity, durationSeconds int64) int64 {
	rate, ok := caloriesPerMinute[activity]
	if !ok || durationSeconds <= 0 {
		return 0
	}
	return int64(math.Floor(float64(durationSeconds) / 60 * rate))
}
