////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package mock

import (
	"time"

	"github.com/pkg/errors"
	"gitlab.com/stride/client/inbox"
	"gitlab.com/stride/client/storage/relationship"
)

// Conversation is a sample conversation and whether it started as a message
// request from someone who is not yet a friend.
type Conversation struct {
	inbox.Summary
	IsRequest bool
}

type sampleConversation struct {
	userID      uint64
	lastMessage string
	ago         time.Duration
	unread      int
	isRequest   bool
}

var sampleConversations = []sampleConversation{
	{1, "Hi! Want to workout together?", 2 * time.Minute, 1, false},
	{2, "Great to see another runner nearby!", 5 * time.Minute, 0, false},
	{3, "Would you like to join me for a run?", time.Hour, 2, false},
	{4, "That sounds great! What time works for you?", 2 * time.Hour, 0, false},
	{5, "Thanks for the run today! Let's do it again soon.", 24 * time.Hour, 0, false},
	{7, "Hey! I saw you're into running too 🏃‍♀️", 3 * time.Hour, 1, true},
	{9, "Want to be walking buddies?", 6 * time.Hour, 1, true},
}

// Conversations returns the sample conversation list relative to now.
func Conversations(now time.Time) []Conversation {
	out := make([]Conversation, 0, len(sampleConversations))
	for _, sc := range sampleConversations {
		u, _ := UserByID(sc.userID)
		out = append(out, Conversation{
			Summary: inbox.Summary{
				UserID:      sc.userID,
				UserName:    u.Username,
				Avatar:      u.Avatar,
				LastMessage: sc.lastMessage,
				Timestamp:   now.Add(-sc.ago).UnixMilli(),
				UnreadCount: sc.unread,
			},
			IsRequest: sc.isRequest,
		})
	}
	return out
}

// Summaries returns only the list rows of the conversations.
func Summaries(conversations []Conversation) []inbox.Summary {
	out := make([]inbox.Summary, len(conversations))
	for i := range conversations {
		out[i] = conversations[i].Summary
	}
	return out
}

// Seed records the starting relationship of every conversation: friends are
// accepted and requests are pending. Existing statuses are not overwritten.
func Seed(store *relationship.Store, conversations []Conversation) error {
	for _, c := range conversations {
		var err error
		if c.IsRequest {
			err = store.ReceiveRequest(c.UserID)
		} else {
			err = store.AcceptNewRequest(c.UserID)
		}
		if err != nil {
			return errors.WithMessagef(err, "failed to seed conversation "+
				"with %d", c.UserID)
		}
	}
	return nil
}
