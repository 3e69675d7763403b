////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package relationship

import (
	"strconv"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// RequestStatus is the lifecycle state of an inbound message request. A user
// with no entry in the request table has no status at all, which callers must
// tell apart from Pending.
type RequestStatus uint8

const (
	Pending RequestStatus = iota + 1
	Accepted
	Declined
)

// String returns the stored name of the status.
func (rs RequestStatus) String() string {
	switch rs {
	case Pending:
		return "pending"
	case Accepted:
		return "accepted"
	case Declined:
		return "declined"
	default:
		return "INVALID STATUS " + strconv.Itoa(int(rs))
	}
}

// MarshalText encodes the status as its name.
func (rs RequestStatus) MarshalText() ([]byte, error) {
	switch rs {
	case Pending, Accepted, Declined:
		return []byte(rs.String()), nil
	default:
		return nil, errors.Errorf("invalid request status %d", uint8(rs))
	}
}

// UnmarshalText decodes a status name.
func (rs *RequestStatus) UnmarshalText(text []byte) error {
	status, err := ParseRequestStatus(string(text))
	if err != nil {
		return err
	}
	*rs = status
	return nil
}

// ParseRequestStatus returns the status with the given name.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "accepted":
		return Accepted, nil
	case "declined":
		return Declined, nil
	default:
		return 0, errors.Errorf("unknown request status %q", s)
	}
}

// requestTable maps the stringified uid of a counterpart to its status.
type requestTable map[string]RequestStatus

func requestKey(uid uint64) string {
	return strconv.FormatUint(uid, 10)
}

// loadRequests returns the stored request table or an empty one. A stored
// null reads as empty.
func (s *Store) loadRequests() requestTable {
	var table requestTable
	if !s.load(requestTableKey, requestTableVersion, &table) || table == nil {
		return make(requestTable)
	}
	return table
}

// GetRequestStatus returns the request status for uid and false if there is
// none.
func (s *Store) GetRequestStatus(uid uint64) (RequestStatus, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()

	status, exists := s.loadRequests()[requestKey(uid)]
	return status, exists
}

// AcceptRequest marks the request from uid as accepted.
func (s *Store) AcceptRequest(uid uint64) error {
	return s.setRequestStatus(uid, Accepted, true)
}

// DeclineRequest marks the request from uid as declined.
func (s *Store) DeclineRequest(uid uint64) error {
	return s.setRequestStatus(uid, Declined, true)
}

// ReceiveRequest records an inbound request from uid as pending. A user that
// already has a status keeps it.
func (s *Store) ReceiveRequest(uid uint64) error {
	return s.setRequestStatus(uid, Pending, false)
}

// AcceptNewRequest marks uid as accepted only if it has no status yet. The
// check and the write happen under one lock, so a concurrent decline is never
// overwritten.
func (s *Store) AcceptNewRequest(uid uint64) error {
	return s.setRequestStatus(uid, Accepted, false)
}

func (s *Store) setRequestStatus(
	uid uint64, status RequestStatus, overwrite bool) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	table := s.loadRequests()
	key := requestKey(uid)
	if old, exists := table[key]; exists && (!overwrite || old == status) {
		jww.TRACE.Printf("[REL] Request status for %d stays %s", uid, old)
		return nil
	}

	table[key] = status
	if err := s.save(requestTableKey, requestTableVersion, table); err != nil {
		return errors.WithMessagef(err, "failed to set request status for "+
			"%d to %s", uid, status)
	}

	jww.DEBUG.Printf("[REL] Request status for %d set to %s", uid, status)
	return nil
}

// DeleteRequest removes any request status for uid. Deleting a missing entry
// does nothing.
func (s *Store) DeleteRequest(uid uint64) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.deleteRequest(uid)
}

func (s *Store) deleteRequest(uid uint64) error {
	table := s.loadRequests()
	key := requestKey(uid)
	if _, exists := table[key]; !exists {
		return nil
	}

	delete(table, key)
	if err := s.save(requestTableKey, requestTableVersion, table); err != nil {
		return errors.WithMessagef(err, "failed to delete request for %d", uid)
	}

	jww.DEBUG.Printf("[REL] Request status for %d deleted", uid)
	return nil
}
