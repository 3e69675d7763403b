////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package relationship

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/netTime"
)

// ConversationMetadata holds the local settings of a conversation with one
// counterpart.
type ConversationMetadata struct {
	UserID     uint64 `json:"userId"`
	IsMuted    bool   `json:"isMuted"`
	IsArchived bool   `json:"isArchived"`

	// Epoch milliseconds of the last message activity
	LastMessageTime int64 `json:"lastMessageTime"`
}

// LastActivity returns LastMessageTime as a time.Time.
func (cm ConversationMetadata) LastActivity() time.Time {
	return time.UnixMilli(cm.LastMessageTime)
}

func newConversationMetadata(uid uint64) ConversationMetadata {
	return ConversationMetadata{
		UserID:          uid,
		LastMessageTime: netTime.Now().UnixMilli(),
	}
}

func conversationKey(uid uint64) string {
	return fmt.Sprintf(conversationKeyFmt, uid)
}

// loadOrMakeConversation returns the stored metadata for uid or a fresh
// default record. The default is not written. A stored null reads as absent
// and a record without a last message time gets the current time.
func (s *Store) loadOrMakeConversation(uid uint64) ConversationMetadata {
	var cm *ConversationMetadata
	if !s.load(conversationKey(uid), conversationVersion, &cm) || cm == nil {
		return newConversationMetadata(uid)
	}

	if cm.UserID != uid {
		jww.WARN.Printf("[REL] Conversation record for %d claims user %d, "+
			"using defaults", uid, cm.UserID)
		return newConversationMetadata(uid)
	}

	if cm.LastMessageTime == 0 {
		cm.LastMessageTime = netTime.Now().UnixMilli()
	}
	return *cm
}

// GetConversationMetadata returns a copy of the metadata for the conversation
// with uid. A conversation without stored metadata gets default settings,
// which are only persisted by a later write.
func (s *Store) GetConversationMetadata(uid uint64) ConversationMetadata {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loadOrMakeConversation(uid)
}

// SetMuted sets whether the conversation with uid is muted.
func (s *Store) SetMuted(uid uint64, muted bool) error {
	return s.updateConversation(uid, func(cm *ConversationMetadata) {
		cm.IsMuted = muted
	})
}

// SetArchived sets whether the conversation with uid is archived.
func (s *Store) SetArchived(uid uint64, archived bool) error {
	return s.updateConversation(uid, func(cm *ConversationMetadata) {
		cm.IsArchived = archived
	})
}

// TouchConversation records message activity in the conversation with uid at
// the given time.
func (s *Store) TouchConversation(uid uint64, at time.Time) error {
	return s.updateConversation(uid, func(cm *ConversationMetadata) {
		cm.LastMessageTime = at.UnixMilli()
	})
}

func (s *Store) updateConversation(
	uid uint64, mutate func(cm *ConversationMetadata)) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	cm := s.loadOrMakeConversation(uid)
	mutate(&cm)

	err := s.save(conversationKey(uid), conversationVersion, cm)
	if err != nil {
		return errors.WithMessagef(err,
			"failed to update conversation with %d", uid)
	}

	jww.DEBUG.Printf("[REL] Conversation with %d updated: %+v", uid, cm)
	return nil
}

// DeleteConversation removes the metadata of the conversation with uid and
// its request status. The two deletions are not atomic; both are attempted
// and the first failure is returned.
func (s *Store) DeleteConversation(uid uint64) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	metaErr := s.remove(conversationKey(uid), conversationVersion)
	reqErr := s.deleteRequest(uid)

	if metaErr != nil {
		return errors.WithMessagef(metaErr,
			"failed to delete conversation with %d", uid)
	}
	if reqErr != nil {
		return reqErr
	}

	jww.DEBUG.Printf("[REL] Conversation with %d deleted", uid)
	return nil
}
