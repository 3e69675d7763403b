////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package mock

import (
	"math/rand"
	"sort"
	"strconv"
	"time"

	"gitlab.com/stride/client/feed"
)

const numCuratedPosts = 25

var captions = []string{
	"Great morning run! Feeling energized 💪",
	"New personal record today!",
	"Beautiful weather for a workout ☀️",
	"Pushed through and finished strong!",
	"Training for my next race 🏃",
	"Weekend warrior mode activated!",
	"Love this route! 🌳",
	"Tired but happy 😊",
	"Another one in the books!",
	"Making progress every day 📈",
}

var locations = []string{
	"Central Park", "Riverside Trail", "City Loop", "Mountain Path",
	"Beach Road",
}

// sampleDistance returns a plausible distance in km for the activity.
func sampleDistance(a feed.Activity, rng *rand.Rand) float64 {
	switch a {
	case feed.Running:
		return 5 + rng.Float64()*10
	case feed.Cycling:
		return 15 + rng.Float64()*30
	default:
		return 3 + rng.Float64()*7
	}
}

// CuratedPosts generates the sample timeline of posts by the sample users
// over the week before now, newest first. The same seed gives the same posts.
func CuratedPosts(now time.Time, rng *rand.Rand) []feed.Post {
	posts := make([]feed.Post, 0, numCuratedPosts)

	for i := 0; i < numCuratedPosts; i++ {
		user := users[i%len(users)]
		activity := user.Activities[rng.Intn(len(user.Activities))]
		daysAgo := rng.Intn(7)
		hoursAgo := rng.Intn(24)
		timestamp := now.AddDate(0, 0, -daysAgo).
			Add(-time.Duration(hoursAgo) * time.Hour)

		duration := int64(1200 + rng.Intn(3600))
		distance := sampleDistance(activity, rng)
		location := locations[rng.Intn(len(locations))]
		workout := feed.NewWorkout("workout-"+strconv.Itoa(i), activity,
			timestamp, duration, distance, location)

		post := feed.Post{
			Kind:      feed.KindCommunity,
			ID:        "post-" + strconv.Itoa(i),
			UserID:    user.ID,
			Workout:   workout,
			Kudos:     []uint64{},
			Comments:  []feed.Comment{},
			Timestamp: timestamp,
		}
		if i%2 == 0 {
			post.Kind = feed.KindSponsored
		}

		kudosCount := 3 + rng.Intn(12)
		for idx := 0; idx < kudosCount; idx++ {
			post.GiveKudos(uint64((idx+i)%10 + 1))
		}

		if rng.Float64() > 0.3 {
			post.Caption = captions[i%len(captions)]
		}

		posts = append(posts, post)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
	return posts
}
