////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package mock contains the sample users, posts and conversations the app
// shows before it has any content of its own.
package mock

import (
	"fmt"

	"gitlab.com/stride/client/feed"
)

// User is a sample user profile.
type User struct {
	ID         uint64          `json:"id"`
	Username   string          `json:"username"`
	Avatar     string          `json:"avatar"`
	Activities []feed.Activity `json:"activities"`
	Bio        string          `json:"bio,omitempty"`
}

func avatar(n int) string {
	return fmt.Sprintf("https://i.pravatar.cc/150?img=%d", n)
}

var users = []User{
	{1, "Sarah Johnson", avatar(1), []feed.Activity{feed.Running, feed.Walking},
		"Marathon runner 🏃‍♀️ | Fitness enthusiast | Coffee lover ☕"},
	{2, "Mike Chen", avatar(2), []feed.Activity{feed.Cycling, feed.Running},
		"Cyclist | Trail explorer | Weekend warrior 🚴"},
	{3, "Emma Davis", avatar(3), []feed.Activity{feed.Walking, feed.Running},
		"Walking enthusiast | Nature lover 🌲 | Wellness coach"},
	{4, "James Wilson", avatar(4), []feed.Activity{feed.Running},
		"Ultra runner | Mountain lover | Always training 💪"},
	{5, "Lisa Anderson", avatar(5), []feed.Activity{feed.Walking, feed.Cycling},
		"Fitness instructor | Motivating others daily ✨"},
	{6, "Tom Roberts", avatar(6), []feed.Activity{feed.Cycling},
		"Road cyclist | Weekend rides | Chasing PRs 🚴‍♂️"},
	{7, "Rachel Green", avatar(7), []feed.Activity{feed.Running, feed.Walking},
		"Morning runner | Sunset walker | Living healthy 🌅"},
	{8, "David Kim", avatar(8), []feed.Activity{feed.Running, feed.Cycling},
		"Triathlete in training | Always moving forward 🏊‍♂️"},
	{9, "Sophie Martin", avatar(9), []feed.Activity{feed.Walking},
		"Daily walker | 10k steps minimum | Health first 🚶‍♀️"},
	{10, "Alex Turner", avatar(10),
		[]feed.Activity{feed.Running, feed.Cycling, feed.Walking},
		"All-around athlete | Outdoor adventurer | Never stopping 🎯"},
}

// Users returns a copy of the sample users.
func Users() []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}

// UserByID returns the sample user with the given ID.
func UserByID(id uint64) (User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}
