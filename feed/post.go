////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package feed

import (
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Kind discriminates the origin of a post.
type Kind uint8

const (
	// KindSponsored posts are curated promotional content.
	KindSponsored Kind = iota + 1

	// KindCommunity posts are curated posts by other users.
	KindCommunity

	// KindWorkout posts are built from the local user's own workouts.
	KindWorkout
)

// String returns the serialized name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSponsored:
		return "sponsored"
	case KindCommunity:
		return "community"
	case KindWorkout:
		return "workout"
	default:
		return "INVALID KIND " + strconv.Itoa(int(k))
	}
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, errors.Wrapf(ErrInvalidPost, "unknown kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sponsored":
		*k = KindSponsored
	case "community":
		*k = KindCommunity
	case "workout":
		*k = KindWorkout
	default:
		return errors.Wrapf(ErrInvalidPost, "unknown kind %q", text)
	}
	return nil
}

// IsCurated returns true for kinds that come from the content timeline rather
// than from the local user.
func (k Kind) IsCurated() bool {
	return k == KindSponsored || k == KindCommunity
}

func (k Kind) valid() bool {
	return k.IsCurated() || k == KindWorkout
}

// Comment is a reply on a post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    uint64    `json:"userId"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Post is a single feed item.
type Post struct {
	Kind     Kind      `json:"kind"`
	ID       string    `json:"id"`
	UserID   uint64    `json:"userId"`
	Workout  Workout   `json:"workout"`
	Photos   []string  `json:"photos,omitempty"`
	Caption  string    `json:"caption,omitempty"`
	Kudos    []uint64  `json:"kudos"`
	Comments []Comment `json:"comments"`

	// Ordering key of the feed
	Timestamp time.Time `json:"timestamp"`
}

// Validate returns ErrInvalidPost if the post is missing its discriminant,
// identity or timestamp, or if the same user gave kudos twice.
func (p *Post) Validate() error {
	if !p.Kind.valid() {
		return errors.Wrapf(ErrInvalidPost, "post %q has kind %d",
			p.ID, uint8(p.Kind))
	}
	if p.ID == "" {
		return errors.Wrap(ErrInvalidPost, "post has no ID")
	}
	if p.Timestamp.IsZero() {
		return errors.Wrapf(ErrInvalidPost, "post %q has no timestamp", p.ID)
	}

	seen := make(map[uint64]struct{}, len(p.Kudos))
	for _, uid := range p.Kudos {
		if _, exists := seen[uid]; exists {
			return errors.Wrapf(ErrInvalidPost,
				"post %q has duplicate kudos from %d", p.ID, uid)
		}
		seen[uid] = struct{}{}
	}
	return nil
}

// HasKudos returns true if uid gave the post kudos.
func (p *Post) HasKudos(uid uint64) bool {
	for _, giver := range p.Kudos {
		if giver == uid {
			return true
		}
	}
	return false
}

// GiveKudos records kudos from uid. It returns false if uid already gave
// kudos.
func (p *Post) GiveKudos(uid uint64) bool {
	if p.HasKudos(uid) {
		return false
	}
	p.Kudos = append(p.Kudos, uid)
	return true
}

// RemoveKudos takes back the kudos from uid. It returns false if there were
// none.
func (p *Post) RemoveKudos(uid uint64) bool {
	for i, giver := range p.Kudos {
		if giver == uid {
			p.Kudos = append(p.Kudos[:i], p.Kudos[i+1:]...)
			return true
		}
	}
	return false
}

// AddComment appends a comment to the post.
func (p *Post) AddComment(c Comment) {
	p.Comments = append(p.Comments, c)
}
