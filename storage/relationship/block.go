////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package relationship

import (
	"github.com/golang-collections/collections/set"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// loadBlocked returns the stored block list with any duplicates dropped.
func (s *Store) loadBlocked() []uint64 {
	var stored []uint64
	if !s.load(blockListKey, blockListVersion, &stored) {
		return []uint64{}
	}

	seen := set.New()
	blocked := make([]uint64, 0, len(stored))
	for _, uid := range stored {
		if seen.Has(uid) {
			continue
		}
		seen.Insert(uid)
		blocked = append(blocked, uid)
	}
	return blocked
}

func indexOf(blocked []uint64, uid uint64) int {
	for i := range blocked {
		if blocked[i] == uid {
			return i
		}
	}
	return -1
}

// GetBlockedUsers returns every blocked uid in the order they were blocked.
func (s *Store) GetBlockedUsers() []uint64 {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.loadBlocked()
}

// Block adds uid to the block list. Blocking a blocked user does nothing.
func (s *Store) Block(uid uint64) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	blocked := s.loadBlocked()
	if indexOf(blocked, uid) != -1 {
		return nil
	}

	blocked = append(blocked, uid)
	if err := s.save(blockListKey, blockListVersion, blocked); err != nil {
		return errors.WithMessagef(err, "failed to block %d", uid)
	}

	jww.DEBUG.Printf("[REL] Blocked %d", uid)
	return nil
}

// Unblock removes uid from the block list if present.
func (s *Store) Unblock(uid uint64) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	blocked := s.loadBlocked()
	i := indexOf(blocked, uid)
	if i == -1 {
		return nil
	}

	blocked = append(blocked[:i], blocked[i+1:]...)
	if err := s.save(blockListKey, blockListVersion, blocked); err != nil {
		return errors.WithMessagef(err, "failed to unblock %d", uid)
	}

	jww.DEBUG.Printf("[REL] Unblocked %d", uid)
	return nil
}

// IsBlocked returns true if uid is on the block list.
func (s *Store) IsBlocked(uid uint64) bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return indexOf(s.loadBlocked(), uid) != -1
}
