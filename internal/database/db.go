package database

import (
	"errors"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store is the app's persistent key-value store: three JSON blobs
// ("products", "cart", "bills") in a local SQLite file. Every write fully
// overwrites the blob for its key, there is no merge.
type Store struct {
	db *gorm.DB
}

// KVBlob is the single table backing the store.
type KVBlob struct {
	Key   string `gorm:"primaryKey;size:32"`
	Value []byte
}

// Store keys. These are the only three collections the app persists.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyBills    = "bills"
)

// Connect opens (or creates) the SQLite file and syncs the schema.
func Connect(path string) (*Store, error) {
	var db *gorm.DB
	var err error

	// Wait for the file to become available (another process may hold the lock)
	for i := 0; i < 5; i++ {
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			break
		}
		log.Printf("Failed to open local store. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&KVBlob{}); err != nil {
		return nil, err
	}

	log.Println("✅ Local store ready:", path)
	return &Store{db: db}, nil
}

// Get returns the raw JSON blob for a key, or nil if the key was never written.
func (s *Store) Get(key string) ([]byte, error) {
	var blob KVBlob
	err := s.db.First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return blob.Value, nil
}

// Set fully overwrites the blob for a key.
func (s *Store) Set(key string, value []byte) error {
	return setBlob(s.db, key, value)
}
