////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package feed

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	require.Equal(t, "sponsored", KindSponsored.String())
	require.Equal(t, "community", KindCommunity.String())
	require.Equal(t, "workout", KindWorkout.String())
	require.Equal(t, "INVALID KIND 0", Kind(0).String())
}

func TestKind_IsCurated(t *testing.T) {
	require.True(t, KindSponsored.IsCurated())
	require.True(t, KindCommunity.IsCurated())
	require.False(t, KindWorkout.IsCurated())
	require.False(t, Kind(0).IsCurated())
}

// The discriminant is written by name and unknown names are refused.
func TestPost_JSON(t *testing.T) {
	p := curatedPost("p-1", 60)
	p.Kind = KindSponsored
	p.Caption = "New personal record today!"

	data, err := json.Marshal(&p)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(data), `"kind":"sponsored"`),
		"%s", data)

	var decoded Post
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, p.Kind, decoded.Kind)
	require.Equal(t, p.ID, decoded.ID)
	require.True(t, p.Timestamp.Equal(decoded.Timestamp))

	bad := strings.Replace(string(data), `"sponsored"`, `"advert"`, 1)
	err = json.Unmarshal([]byte(bad), &decoded)
	require.True(t, errors.Is(err, ErrInvalidPost), "%+v", err)

	p.Kind = 0
	_, err = json.Marshal(&p)
	require.Error(t, err)
}

func TestPost_Kudos(t *testing.T) {
	p := curatedPost("k", 1)
	p.Kudos = []uint64{}

	require.True(t, p.GiveKudos(5))
	require.False(t, p.GiveKudos(5))
	require.True(t, p.GiveKudos(6))
	require.True(t, p.HasKudos(5))
	require.Equal(t, []uint64{5, 6}, p.Kudos)
	require.NoError(t, p.Validate())

	require.True(t, p.RemoveKudos(5))
	require.False(t, p.RemoveKudos(5))
	require.False(t, p.HasKudos(5))
	require.Equal(t, []uint64{6}, p.Kudos)
}

func TestPost_AddComment(t *testing.T) {
	p := curatedPost("c", 1)
	p.AddComment(Comment{ID: "1", UserID: 2, Text: "Nice pace!", Timestamp: at(2)})
	p.AddComment(Comment{ID: "2", UserID: 3, Text: "See you Sunday", Timestamp: at(3)})

	require.Len(t, p.Comments, 2)
	require.Equal(t, "1", p.Comments[0].ID)
	require.Equal(t, "2", p.Comments[1].ID)
}

func TestStripEmoji(t *testing.T) {
	require.Equal(t, "Great morning run! Feeling energized",
		StripEmoji("Great morning run! Feeling energized 💪"))
	require.Equal(t, "Love this route!", StripEmoji("Love this route! 🌳"))
	require.Equal(t, "Another one in the books!",
		StripEmoji("Another one in the books!"))
	require.Equal(t, "", StripEmoji("💪"))
}
