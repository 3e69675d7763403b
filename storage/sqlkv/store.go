////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

// Package sqlkv is a key/value backend stored in a single SQLite table, for
// devices where a database file is preferred over the ekv filestore.
package sqlkv

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/elixxir/ekv"
	"gitlab.com/xx_network/primitives/netTime"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Can be provided to SQLite to create a temporary, in-memory DB.
const temporaryDbPath = "file:%s?mode=memory&cache=shared"

// Entry is the database representation of a single key.
type Entry struct {
	Key       string    `gorm:"column:kv_key;primaryKey;not null"`
	Value     []byte    `gorm:"column:kv_value;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the table name used by Entry.
func (Entry) TableName() string {
	return "kv_entries"
}

// Store implements versioned.Backend on top of SQLite.
// NOTE: writes are serialized by SQLite; a read-modify-write performed by a
// caller is not atomic unless the caller locks around it.
type Store struct {
	db *gorm.DB
}

// Open opens (and migrates) the database at dbFilePath. An empty path opens a
// temporary in-memory database unique to the name "stride".
func Open(dbFilePath string) (*Store, error) {
	if len(dbFilePath) == 0 {
		dbFilePath = fmt.Sprintf(temporaryDbPath, "stride")
		jww.WARN.Printf("[SQLKV] No database file path specified! " +
			"Using temporary in-memory database")
	}

	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{
		Logger: logger.New(jww.TRACE, logger.Config{
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Errorf(
			"Unable to initialize database backend: %+v", err)
	}

	// Enable Write Ahead Logging to enable multiple DB connections
	if err = db.Exec("PRAGMA journal_mode = WAL;").Error; err != nil {
		return nil, errors.WithMessage(err, "failed to enable WAL")
	}

	if err = db.AutoMigrate(&Entry{}); err != nil {
		return nil, errors.WithMessage(err, "failed to migrate kv schema")
	}

	jww.INFO.Println("[SQLKV] Database backend initialized successfully!")
	return &Store{db: db}, nil
}

// Set stores the marshalled object, replacing any previous value.
func (s *Store) Set(key string, objectToStore ekv.Marshaler) error {
	entry := &Entry{
		Key:       key,
		Value:     objectToStore.Marshal(),
		UpdatedAt: netTime.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// Get loads the value at key into loadIntoThis. A missing key returns an
// error wrapping os.ErrNotExist.
func (s *Store) Get(key string, loadIntoThis ekv.Unmarshaler) error {
	var entry Entry
	err := s.db.Where("kv_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Wrapf(os.ErrNotExist, "no value for %s", key)
	} else if err != nil {
		return errors.Wrapf(err, "failed to get %s", key)
	}
	return loadIntoThis.Unmarshal(entry.Value)
}

// Delete removes the key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	err := s.db.Where("kv_key = ?", key).Delete(&Entry{}).Error
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}
	return nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDb, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDb.Close()
}
