////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package inbox decides which conversations are shown in the Chats, Requests
// and Archived lists of the messaging screen. It holds no state of its own.
package inbox

import (
	"sort"
	"strconv"

	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/stride/client/storage/relationship"
)

// Summary is the list-row view of one conversation.
type Summary struct {
	UserID      uint64 `json:"userId"`
	UserName    string `json:"userName"`
	Avatar      string `json:"avatar,omitempty"`
	LastMessage string `json:"lastMessage"`

	// Epoch milliseconds of the last message
	Timestamp   int64 `json:"timestamp"`
	UnreadCount int   `json:"unreadCount"`
}

// Relationships is the relationship state the inbox is derived from.
// *relationship.Store implements it.
type Relationships interface {
	GetRequestStatus(uid uint64) (relationship.RequestStatus, bool)
	IsBlocked(uid uint64) bool
	GetConversationMetadata(uid uint64) relationship.ConversationMetadata
}

// Bucket is the list a conversation is shown in.
type Bucket uint8

const (
	// Hidden conversations are in no list: the counterpart is blocked or
	// their request was declined.
	Hidden Bucket = iota
	Chats
	Requests
	Archived
)

// String returns a human-readable name for the bucket.
func (b Bucket) String() string {
	switch b {
	case Hidden:
		return "Hidden"
	case Chats:
		return "Chats"
	case Requests:
		return "Requests"
	case Archived:
		return "Archived"
	default:
		return "INVALID BUCKET " + strconv.Itoa(int(b))
	}
}

// Buckets is the messaging screen's lists, each sorted newest first.
type Buckets struct {
	Chats    []Summary
	Requests []Summary
	Archived []Summary
}

// Classify returns the bucket the conversation with the summary's counterpart
// belongs in.
func Classify(s Summary, rel Relationships) Bucket {
	if rel.IsBlocked(s.UserID) {
		return Hidden
	}

	status, exists := rel.GetRequestStatus(s.UserID)
	if exists && status == relationship.Declined {
		return Hidden
	}

	if rel.GetConversationMetadata(s.UserID).IsArchived {
		return Archived
	}

	if exists && status == relationship.Accepted {
		return Chats
	}
	return Requests
}

// Sort routes every conversation into its bucket. The input is not modified.
func Sort(conversations []Summary, rel Relationships) Buckets {
	b := Buckets{
		Chats:    make([]Summary, 0),
		Requests: make([]Summary, 0),
		Archived: make([]Summary, 0),
	}

	for _, s := range conversations {
		switch Classify(s, rel) {
		case Chats:
			b.Chats = append(b.Chats, s)
		case Requests:
			b.Requests = append(b.Requests, s)
		case Archived:
			b.Archived = append(b.Archived, s)
		default:
			jww.TRACE.Printf("[INBOX] Conversation with %d hidden", s.UserID)
		}
	}

	sortNewestFirst(b.Chats)
	sortNewestFirst(b.Requests)
	sortNewestFirst(b.Archived)

	jww.DEBUG.Printf("[INBOX] Sorted %d conversations: %d chats, "+
		"%d requests, %d archived", len(conversations), len(b.Chats),
		len(b.Requests), len(b.Archived))
	return b
}

// sortNewestFirst orders by descending timestamp, then ascending uid.
func sortNewestFirst(list []Summary) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Timestamp != list[j].Timestamp {
			return list[i].Timestamp > list[j].Timestamp
		}
		return list[i].UserID < list[j].UserID
	})
}

// ShouldNotify returns true if a new message from uid may raise a
// notification. Muting only affects notifications, never list membership.
func ShouldNotify(uid uint64, rel Relationships) bool {
	if rel.IsBlocked(uid) {
		return false
	}
	if status, exists := rel.GetRequestStatus(uid); exists &&
		status == relationship.Declined {
		return false
	}
	return !rel.GetConversationMetadata(uid).IsMuted
}
