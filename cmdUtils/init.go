///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"gitlab.com/elixxir/ekv"
	"gitlab.com/stride/client/storage/relationship"
	"gitlab.com/stride/client/storage/sqlkv"
	"gitlab.com/stride/client/storage/versioned"
)

// sqliteFileName is the database file created inside the session directory.
const sqliteFileName = "stride.db"

// InitKV opens the local store selected by the session, password and backend
// flags. The returned function releases the store.
func InitKV() (*versioned.KV, func(), error) {
	storeDir := viper.GetString(SessionFlag)
	backend := viper.GetString(BackendFlag)
	jww.DEBUG.Printf("sessionDir: %v, backend: %v", storeDir, backend)

	switch backend {
	case BackendSqlite:
		dbPath := ""
		if storeDir != "" {
			if err := os.MkdirAll(storeDir, 0700); err != nil {
				return nil, nil, errors.Wrapf(err,
					"failed to create session directory %s", storeDir)
			}
			dbPath = filepath.Join(storeDir, sqliteFileName)
		}
		db, err := sqlkv.Open(dbPath)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := db.Close(); err != nil {
				jww.ERROR.Printf("Failed to close database: %+v", err)
			}
		}
		return versioned.NewKV(db), closer, nil

	case BackendEkv, "":
		if storeDir == "" {
			jww.WARN.Printf("No session directory specified! " +
				"Using temporary in-memory store")
			return versioned.NewKV(ekv.MakeMemstore()), func() {}, nil
		}

		password, err := ParsePassword(viper.GetString(PasswordFlag))
		if err != nil {
			return nil, nil, err
		}
		fs, err := ekv.NewFilestore(storeDir, string(password))
		if err != nil {
			return nil, nil, errors.WithMessagef(err,
				"failed to open session %s", storeDir)
		}
		return versioned.NewKV(fs), func() {}, nil

	default:
		return nil, nil, errors.Errorf("unknown storage backend %q", backend)
	}
}

// InitRelationships opens the local store and returns the relationship store
// on top of it.
func InitRelationships() (*relationship.Store, func(), error) {
	kv, closer, err := InitKV()
	if err != nil {
		return nil, nil, err
	}
	return relationship.NewStore(kv), closer, nil
}
