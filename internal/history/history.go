// Package history keeps the reports of earlier benchmark runs in a local bolt database.
package history

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/adamluzsi/linearkit/internal/bench"
	"github.com/boltdb/bolt"
	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrNotFound errorkit.Error = "report not found"

var bucketName = []byte("runs")

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

type Store struct {
	DB *bolt.DB
}

// Close the database and release the file lock.
func (s *Store) Close() error {
	return s.DB.Close()
}

// Write makes the Store usable as a bench.Sink.
func (s *Store) Write(ctx context.Context, r bench.Report) error {
	return s.Save(ctx, r)
}

func (s *Store) Save(ctx context.Context, r bench.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return s.DB.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		return bucket.Put(uintToBytes(seq), value)
	})
}

// List returns every saved report in the order they were saved.
func (s *Store) List(ctx context.Context) ([]bench.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var reports []bench.Report
	err := s.DB.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(_, value []byte) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var r bench.Report
			if err := json.Unmarshal(value, &r); err != nil {
				return err
			}
			reports = append(reports, r)
			return nil
		})
	})
	return reports, err
}

// FindByID looks up a saved report by its run ID.
func (s *Store) FindByID(ctx context.Context, id string) (bench.Report, error) {
	reports, err := s.List(ctx)
	if err != nil {
		return bench.Report{}, err
	}
	for _, r := range reports {
		if r.ID == id {
			return r, nil
		}
	}
	return bench.Report{}, ErrNotFound.F("id: %s", id)
}

// uintToBytes returns an 8-byte big endian representation of v.
func uintToBytes(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
