////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package relationship

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequestStatus_String(t *testing.T) {
	tests := map[RequestStatus]string{
		Pending:  "pending",
		Accepted: "accepted",
		Declined: "declined",
		0:        "INVALID STATUS 0",
		42:       "INVALID STATUS 42",
	}
	for status, expected := range tests {
		require.Equal(t, expected, status.String())
	}
}

func TestParseRequestStatus(t *testing.T) {
	for _, status := range []RequestStatus{Pending, Accepted, Declined} {
		parsed, err := ParseRequestStatus(status.String())
		require.NoError(t, err)
		require.Equal(t, status, parsed)
	}

	_, err := ParseRequestStatus("blocked")
	require.Error(t, err)
}

// The request table is stored as a map from stringified uid to status name.
func TestStore_RequestTable_Format(t *testing.T) {
	s, _, kv := newTestStore(t)
	require.NoError(t, s.AcceptRequest(1))
	require.NoError(t, s.DeclineRequest(22))

	data, err := kv.GetBytes(requestTableKey, requestTableVersion)
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, map[string]string{"1": "accepted", "22": "declined"}, raw)
}

func TestStore_AcceptRequest(t *testing.T) {
	s, _, _ := newTestStore(t)
	for _, uid := range []uint64{0, 1, 7, 1 << 40} {
		require.NoError(t, s.AcceptRequest(uid))
		require.NoError(t, s.AcceptRequest(uid))

		status, exists := s.GetRequestStatus(uid)
		require.True(t, exists)
		require.Equal(t, Accepted, status)
	}
}

func TestStore_DeclineRequest(t *testing.T) {
	s, _, _ := newTestStore(t)
	require.NoError(t, s.AcceptRequest(3))
	require.NoError(t, s.DeclineRequest(3))
	require.NoError(t, s.DeclineRequest(3))

	status, exists := s.GetRequestStatus(3)
	require.True(t, exists)
	require.Equal(t, Declined, status)
}

// Repeating a terminal transition does not rewrite the table.
func TestStore_AcceptRequest_NoRewrite(t *testing.T) {
	s, backend, _ := newTestStore(t)
	require.NoError(t, s.AcceptRequest(3))
	writes := backend.setCalled

	require.NoError(t, s.AcceptRequest(3))
	require.Equal(t, writes, backend.setCalled)
}

func TestStore_ReceiveRequest(t *testing.T) {
	s, _, _ := newTestStore(t)

	require.NoError(t, s.ReceiveRequest(4))
	status, exists := s.GetRequestStatus(4)
	require.True(t, exists)
	require.Equal(t, Pending, status)

	// Terminal states are never downgraded
	require.NoError(t, s.AcceptRequest(5))
	require.NoError(t, s.ReceiveRequest(5))
	status, _ = s.GetRequestStatus(5)
	require.Equal(t, Accepted, status)

	require.NoError(t, s.DeclineRequest(6))
	require.NoError(t, s.ReceiveRequest(6))
	status, _ = s.GetRequestStatus(6)
	require.Equal(t, Declined, status)

	// Pending can still be resolved
	require.NoError(t, s.AcceptRequest(4))
	status, _ = s.GetRequestStatus(4)
	require.Equal(t, Accepted, status)
}

func TestStore_DeleteRequest(t *testing.T) {
	s, backend, _ := newTestStore(t)
	require.NoError(t, s.AcceptRequest(9))
	require.NoError(t, s.AcceptRequest(10))

	for i := 0; i < 2; i++ {
		require.NoError(t, s.DeleteRequest(9))
		_, exists := s.GetRequestStatus(9)
		require.False(t, exists)
	}

	// Unrelated entries survive
	status, exists := s.GetRequestStatus(10)
	require.True(t, exists)
	require.Equal(t, Accepted, status)

	// Deleting an unknown uid does not write
	writes := backend.setCalled
	require.NoError(t, s.DeleteRequest(11))
	require.Equal(t, writes, backend.setCalled)
}

func TestStore_AcceptNewRequest(t *testing.T) {
	s, backend, _ := newTestStore(t)

	require.NoError(t, s.AcceptNewRequest(7))
	status, exists := s.GetRequestStatus(7)
	require.True(t, exists)
	require.Equal(t, Accepted, status)

	// An existing status is kept and the table is not rewritten
	require.NoError(t, s.DeclineRequest(8))
	writes := backend.setCalled
	require.NoError(t, s.AcceptNewRequest(8))
	require.Equal(t, writes, backend.setCalled)
	status, _ = s.GetRequestStatus(8)
	require.Equal(t, Declined, status)
}

// A stored null table reads as empty and every mutator still works on it.
func TestStore_RequestTable_Null(t *testing.T) {
	s, _, kv := newTestStore(t)
	require.NoError(t, kv.SetBytes(
		requestTableKey, requestTableVersion, []byte("null")))

	_, exists := s.GetRequestStatus(3)
	require.False(t, exists)

	require.NotPanics(t, func() {
		require.NoError(t, s.AcceptRequest(3))
	})
	status, exists := s.GetRequestStatus(3)
	require.True(t, exists)
	require.Equal(t, Accepted, status)

	require.NoError(t, kv.SetBytes(
		requestTableKey, requestTableVersion, []byte("null")))
	require.NotPanics(t, func() {
		require.NoError(t, s.DeclineRequest(4))
	})
	status, _ = s.GetRequestStatus(4)
	require.Equal(t, Declined, status)

	require.NoError(t, kv.SetBytes(
		requestTableKey, requestTableVersion, []byte("null")))
	require.NotPanics(t, func() {
		require.NoError(t, s.DeleteRequest(4))
	})
	require.NotPanics(t, func() {
		require.NoError(t, s.ReceiveRequest(5))
	})
	status, _ = s.GetRequestStatus(5)
	require.Equal(t, Pending, status)
}

// A malformed table reads as empty and is replaced by the next write.
func TestStore_RequestTable_Malformed(t *testing.T) {
	for name, data := range map[string]string{
		"not json":       "{accepted",
		"unknown status": `{"1":"blocked"}`,
		"wrong type":     `[1,2,3]`,
	} {
		t.Run(name, func(t *testing.T) {
			s, _, kv := newTestStore(t)
			require.NoError(t, kv.SetBytes(
				requestTableKey, requestTableVersion, []byte(data)))

			_, exists := s.GetRequestStatus(1)
			require.False(t, exists)

			require.NoError(t, s.AcceptRequest(2))
			status, exists := s.GetRequestStatus(2)
			require.True(t, exists)
			require.Equal(t, Accepted, status)
		})
	}
}
