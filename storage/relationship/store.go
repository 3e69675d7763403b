////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package relationship stores the local user's relationship state with other
// users: the message-request table, the block list and per-conversation
// metadata. Each table is persisted as a whole JSON blob and rewritten on every
// mutation.
//
// In the backend, a table named key is stored at "relationships/<key>_0" (for
// example "relationships/conversation-42_0") wrapped in a versioned.Object
// envelope whose Data field holds the JSON.
package relationship

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/stride/client/storage/versioned"
)

const (
	storePrefix = "relationships"

	requestTableKey     = "messageRequests"
	requestTableVersion = 0

	blockListKey     = "blockedUsers"
	blockListVersion = 0

	conversationKeyFmt  = "conversation-%d"
	conversationVersion = 0
)

// Store owns every read and write of the relationship tables. All methods are
// safe for concurrent use within one process.
type Store struct {
	kv  *versioned.KV
	mux sync.Mutex
}

// NewStore returns a store operating on its own prefix of the given KV.
// Nothing is written until the first mutation.
func NewStore(kv *versioned.KV) *Store {
	return &Store{kv: kv.Prefix(storePrefix)}
}

// load reads and decodes the table stored under key into v. It returns false,
// leaving v untouched, if the table does not exist or cannot be read; storage
// faults are logged and otherwise treated as missing data.
func (s *Store) load(key string, version uint64, v interface{}) bool {
	data, err := s.kv.GetBytes(key, version)
	if err != nil {
		if versioned.Exists(err) {
			jww.WARN.Printf("[REL] Failed to load %s, using defaults: %+v",
				key, err)
		}
		return false
	}

	if err = json.Unmarshal(data, v); err != nil {
		jww.WARN.Printf("[REL] Stored %s is malformed, using defaults: %+v",
			key, err)
		return false
	}
	return true
}

// save encodes v and writes it under key, replacing the whole table.
func (s *Store) save(key string, version uint64, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s", key)
	}

	if err = s.kv.SetBytes(key, version, data); err != nil {
		jww.ERROR.Printf("[REL] Failed to save %s: %+v", key, err)
		return errors.WithMessagef(err, "failed to save %s", key)
	}
	return nil
}

// remove deletes key. Keys that are already gone are not an error.
func (s *Store) remove(key string, version uint64) error {
	err := s.kv.Delete(key, version)
	if err != nil && versioned.Exists(err) {
		jww.ERROR.Printf("[REL] Failed to delete %s: %+v", key, err)
		return errors.WithMessagef(err, "failed to delete %s", key)
	}
	return nil
}
