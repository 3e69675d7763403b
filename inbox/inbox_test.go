////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package inbox

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/elixxir/ekv"
	"gitlab.com/stride/client/storage/relationship"
	"gitlab.com/stride/client/storage/versioned"
)

// mockRelationships is an in-memory Relationships.
type mockRelationships struct {
	status   map[uint64]relationship.RequestStatus
	blocked  map[uint64]bool
	muted    map[uint64]bool
	archived map[uint64]bool
}

func newMockRelationships() *mockRelationships {
	return &mockRelationships{
		status:   make(map[uint64]relationship.RequestStatus),
		blocked:  make(map[uint64]bool),
		muted:    make(map[uint64]bool),
		archived: make(map[uint64]bool),
	}
}

func (m *mockRelationships) GetRequestStatus(
	uid uint64) (relationship.RequestStatus, bool) {
	s, ok := m.status[uid]
	return s, ok
}

func (m *mockRelationships) IsBlocked(uid uint64) bool { return m.blocked[uid] }

func (m *mockRelationships) GetConversationMetadata(
	uid uint64) relationship.ConversationMetadata {
	return relationship.ConversationMetadata{
		UserID:     uid,
		IsMuted:    m.muted[uid],
		IsArchived: m.archived[uid],
	}
}

func userIDs(list []Summary) []uint64 {
	ids := make([]uint64, len(list))
	for i := range list {
		ids[i] = list[i].UserID
	}
	return ids
}

func TestBucket_String(t *testing.T) {
	require.Equal(t, "Chats", Chats.String())
	require.Equal(t, "Requests", Requests.String())
	require.Equal(t, "Archived", Archived.String())
	require.Equal(t, "Hidden", Hidden.String())
	require.Equal(t, "INVALID BUCKET 9", Bucket(9).String())
}

func TestClassify(t *testing.T) {
	rel := newMockRelationships()
	rel.status[1] = relationship.Accepted
	rel.status[2] = relationship.Pending
	rel.status[4] = relationship.Declined
	rel.status[5] = relationship.Accepted
	rel.blocked[5] = true
	rel.status[6] = relationship.Accepted
	rel.archived[6] = true
	rel.status[7] = relationship.Accepted
	rel.muted[7] = true
	rel.status[8] = relationship.Declined
	rel.archived[8] = true

	tests := []struct {
		uid      uint64
		expected Bucket
	}{
		{1, Chats},
		{2, Requests},
		{3, Requests}, // no status
		{4, Hidden},
		{5, Hidden},
		{6, Archived},
		{7, Chats},
		{8, Hidden},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, Classify(Summary{UserID: tt.uid}, rel),
			"uid %d", tt.uid)
	}
}

func TestSort(t *testing.T) {
	rel := newMockRelationships()
	rel.status[1] = relationship.Accepted
	rel.status[2] = relationship.Accepted
	rel.status[3] = relationship.Accepted
	rel.status[4] = relationship.Pending
	rel.status[6] = relationship.Declined
	rel.status[8] = relationship.Accepted
	rel.archived[8] = true

	conversations := []Summary{
		{UserID: 3, Timestamp: 100},
		{UserID: 1, Timestamp: 300},
		{UserID: 5, Timestamp: 250},
		{UserID: 2, Timestamp: 100},
		{UserID: 6, Timestamp: 400},
		{UserID: 4, Timestamp: 250},
		{UserID: 8, Timestamp: 50},
	}
	original := append([]Summary(nil), conversations...)

	b := Sort(conversations, rel)
	require.Equal(t, []uint64{1, 2, 3}, userIDs(b.Chats))
	require.Equal(t, []uint64{4, 5}, userIDs(b.Requests))
	require.Equal(t, []uint64{8}, userIDs(b.Archived))
	require.Equal(t, original, conversations)
}

func TestSort_Empty(t *testing.T) {
	b := Sort(nil, newMockRelationships())
	require.Empty(t, b.Chats)
	require.Empty(t, b.Requests)
	require.Empty(t, b.Archived)
}

// A blocked counterpart is hidden even when their request was accepted.
func TestSort_BlockedAccepted(t *testing.T) {
	store := relationship.NewStore(versioned.NewKV(ekv.MakeMemstore()))
	require.NoError(t, store.AcceptRequest(3))
	require.NoError(t, store.Block(3))

	b := Sort([]Summary{{UserID: 3, Timestamp: 10}}, store)
	require.Empty(t, b.Chats)
	require.Empty(t, b.Requests)
	require.Empty(t, b.Archived)
}

// With no request status at all the conversation is a request.
func TestSort_AbsentStatusIsRequest(t *testing.T) {
	store := relationship.NewStore(versioned.NewKV(ekv.MakeMemstore()))

	b := Sort([]Summary{{UserID: 7, Timestamp: 10}}, store)
	require.Equal(t, []uint64{7}, userIDs(b.Requests))
	require.Empty(t, b.Chats)
}

// Muting changes notifications but not the list a conversation is in.
func TestSort_MutedKeepsBucket(t *testing.T) {
	store := relationship.NewStore(versioned.NewKV(ekv.MakeMemstore()))
	require.NoError(t, store.AcceptRequest(2))
	require.NoError(t, store.SetMuted(2, true))
	require.NoError(t, store.SetMuted(9, true))

	b := Sort([]Summary{{UserID: 2}, {UserID: 9}}, store)
	require.Equal(t, []uint64{2}, userIDs(b.Chats))
	require.Equal(t, []uint64{9}, userIDs(b.Requests))

	require.False(t, ShouldNotify(2, store))
	require.False(t, ShouldNotify(9, store))
}

func TestShouldNotify(t *testing.T) {
	rel := newMockRelationships()
	rel.status[1] = relationship.Accepted
	rel.status[2] = relationship.Declined
	rel.blocked[3] = true
	rel.muted[4] = true

	require.True(t, ShouldNotify(1, rel))
	require.False(t, ShouldNotify(2, rel))
	require.False(t, ShouldNotify(3, rel))
	require.False(t, ShouldNotify(4, rel))
	require.True(t, ShouldNotify(5, rel))
}
