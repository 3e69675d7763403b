////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package versioned

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/ekv"
	"gitlab.com/xx_network/primitives/netTime"
)

const PrefixSeparator = "/"

// Backend is the device-local storage a KV writes through to. Any
// ekv.KeyValue satisfies it, as does the SQLite store in storage/sqlkv.
type Backend interface {
	Set(key string, objectToStore ekv.Marshaler) error
	Get(key string, loadIntoThis ekv.Unmarshaler) error
	Delete(key string) error
}

type root struct {
	data Backend
}

// KV stores versioned data under a hierarchy of prefixes.
type KV struct {
	r      *root
	prefix string
}

// NewKV creates a versioned key/value store backed by the given Backend.
func NewKV(data Backend) *KV {
	return &KV{r: &root{data: data}}
}

// Get loads the object stored at the key for the given version. Make sure to
// inspect the error with Exists to tell a missing key from a broken one.
func (v *KV) Get(key string, version uint64) (*Object, error) {
	key = v.makeKey(key, version)
	jww.TRACE.Printf("get %p with key %v", v.r.data, key)

	result := Object{}
	if err := v.r.data.Get(key, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetBytes returns only the payload of the object stored at the key.
func (v *KV) GetBytes(key string, version uint64) ([]byte, error) {
	obj, err := v.Get(key, version)
	if err != nil {
		return nil, err
	}
	if obj.Version != version {
		return nil, errors.Errorf("object at %s has version %d, expected %d",
			v.makeKey(key, version), obj.Version, version)
	}
	return obj.Data, nil
}

// Set upserts the object. The version of the object is part of the key.
func (v *KV) Set(key string, object *Object) error {
	key = v.makeKey(key, object.Version)
	jww.TRACE.Printf("set %p with key %v", v.r.data, key)
	return v.r.data.Set(key, object)
}

// SetBytes wraps the data in an Object stamped with the current time and
// stores it.
func (v *KV) SetBytes(key string, version uint64, data []byte) error {
	return v.Set(key, &Object{
		Version:   version,
		Timestamp: netTime.Now(),
		Data:      data,
	})
}

// Delete removes a given key from the data store.
func (v *KV) Delete(key string, version uint64) error {
	key = v.makeKey(key, version)
	jww.TRACE.Printf("delete %p with key %v", v.r.data, key)
	return v.r.data.Delete(key)
}

// GetPrefix returns the prefix of the KV.
func (v *KV) GetPrefix() string {
	return v.prefix
}

// Prefix returns a new KV sharing the same backend with the prefix appended.
func (v *KV) Prefix(prefix string) *KV {
	return &KV{
		r:      v.r,
		prefix: v.prefix + prefix + PrefixSeparator,
	}
}

// GetFullKey returns the key with all prefixes and the version appended.
func (v *KV) GetFullKey(key string, version uint64) string {
	return v.makeKey(key, version)
}

func (v *KV) makeKey(key string, version uint64) string {
	return fmt.Sprintf("%s%s_%d", v.prefix, key, version)
}

// Exists returns false if the error indicates the element doesn't exist. A nil
// error exists.
func Exists(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return ekv.Exists(err)
}
