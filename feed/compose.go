////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package feed builds the activity feed: curated posts merged with the local
// user's own workouts, newest first.
package feed

import (
	"sort"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

const syntheticIDPrefix = "user-post-"

var (
	// ErrInvalidPost is returned for posts that fail validation.
	ErrInvalidPost = errors.New("invalid post")

	// ErrSyntheticCurated is returned when a workout post is passed in as
	// curated content.
	ErrSyntheticCurated = errors.New(
		"workout posts cannot be part of the curated timeline")
)

// SyntheticPostID returns the ID of the post built from the workout with the
// given ID.
func SyntheticPostID(workoutID string) string {
	return syntheticIDPrefix + workoutID
}

// PostFromWorkout builds the feed post for one of the local user's workouts.
func PostFromWorkout(w Workout, authorID uint64) Post {
	return Post{
		Kind:      KindWorkout,
		ID:        SyntheticPostID(w.ID),
		UserID:    authorID,
		Workout:   w,
		Kudos:     []uint64{},
		Comments:  []Comment{},
		Timestamp: w.Date,
	}
}

// ComposeFeed merges the curated posts with posts built from the workouts of
// authorID and returns them newest first. Posts with the same timestamp keep
// their input order, curated before workouts. Nothing is de-duplicated, so
// passing the same workout twice yields two posts.
func ComposeFeed(
	curated []Post, workouts []Workout, authorID uint64) ([]Post, error) {
	for i := range curated {
		if err := curated[i].Validate(); err != nil {
			return nil, errors.WithMessagef(err, "curated post %d", i)
		}
		if !curated[i].Kind.IsCurated() {
			return nil, errors.Wrapf(ErrSyntheticCurated,
				"curated post %d (%s)", i, curated[i].ID)
		}
	}

	posts := make([]Post, 0, len(curated)+len(workouts))
	posts = append(posts, curated...)
	for _, w := range workouts {
		posts = append(posts, PostFromWorkout(w, authorID))
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})

	jww.DEBUG.Printf("[FEED] Composed %d curated posts and %d workouts "+
		"for %d", len(curated), len(workouts), authorID)
	return posts, nil
}
