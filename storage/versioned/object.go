////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package versioned

import (
	"encoding/json"
	"time"

	jww "github.com/spf13/jwalterweatherman"
)

// Object is the envelope every value is wrapped in before it reaches the
// backend.
type Object struct {
	// Schema version of Data
	Version uint64

	// Set when this object is written
	Timestamp time.Time

	// Serialized version of original object
	Data []byte
}

// Unmarshal deserializes an Object from a byte slice.
func (v *Object) Unmarshal(data []byte) error {
	return json.Unmarshal(data, v)
}

// Marshal serializes an Object into a byte slice. The object only holds simple
// types, so failing to marshal it means something is really wrong.
func (v *Object) Marshal() []byte {
	d, err := json.Marshal(v)
	if err != nil {
		jww.FATAL.Panicf("Could not marshal versioned object: %+v", err)
	}
	return d
}
