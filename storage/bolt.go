package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/pigmint/ingestion-service/dto"
)

const (
	transactionBucket = "transactions"
	ruleBucket        = "rules"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store persists canonical transactions and savings rules.
type Store interface {
	SaveTransaction(t *dto.Transaction) error
	GetTransaction(id string) (*dto.Transaction, error)
	ListTransactions(limit, offset int) ([]*dto.Transaction, error)
	DeleteTransaction(id string) error

	SaveRule(r *dto.Rule) error
	GetRule(id string) (*dto.Rule, error)
	ListRules() ([]*dto.Rule, error)
	DeleteRule(id string) error

	Close() error
}

// BoltStore implements Store on a bbolt file database.
type BoltStore struct {
	db *bbolt.DB
}

// NewBoltStore opens (or creates) the database file and its buckets.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{transactionBucket, ruleBucket} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// SaveTransaction inserts or updates a transaction, assigning an ID and
// creation timestamp on first save.
func (s *BoltStore) SaveTransaction(t *dto.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	return s.put(transactionBucket, t.ID, t)
}

// GetTransaction retrieves a transaction by ID.
func (s *BoltStore) GetTransaction(id string) (*dto.Transaction, error) {
	var t dto.Transaction
	if err := s.get(transactionBucket, id, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTransactions returns stored transactions ordered by date descending,
// then creation time descending, with limit/offset paging. A limit of 0
// means no limit.
func (s *BoltStore) ListTransactions(limit, offset int) ([]*dto.Transaction, error) {
	all := make([]*dto.Transaction, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(transactionBucket)).ForEach(func(_, v []byte) error {
			var t dto.Transaction
			if err := json.Unmarshal(v, &t); err != nil {
				return fmt.Errorf("unmarshaling transaction: %w", err)
			}
			all = append(all, &t)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date > all[j].Date
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*dto.Transaction{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// DeleteTransaction removes a transaction by ID.
func (s *BoltStore) DeleteTransaction(id string) error {
	return s.delete(transactionBucket, id)
}

// SaveRule inserts or updates a rule, assigning an ID and creation
// timestamp on first save.
func (s *BoltStore) SaveRule(r *dto.Rule) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return s.put(ruleBucket, r.ID, r)
}

// GetRule retrieves a rule by ID.
func (s *BoltStore) GetRule(id string) (*dto.Rule, error) {
	var r dto.Rule
	if err := s.get(ruleBucket, id, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListRules returns all rules, newest first.
func (s *BoltStore) ListRules() ([]*dto.Rule, error) {
	rules := make([]*dto.Rule, 0)
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(ruleBucket)).ForEach(func(_, v []byte) error {
			var r dto.Rule
			if err := json.Unmarshal(v, &r); err != nil {
				return fmt.Errorf("unmarshaling rule: %w", err)
			}
			rules = append(rules, &r)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].CreatedAt.After(rules[j].CreatedAt)
	})
	return rules, nil
}

// DeleteRule removes a rule by ID.
func (s *BoltStore) DeleteRule(id string) error {
	return s.delete(ruleBucket, id)
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func (s *BoltStore) put(bucket, id string, v any) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling record: %w", err)
		}
		return tx.Bucket([]byte(bucket)).Put([]byte(id), data)
	})
}

func (s *BoltStore) get(bucket, id string, v any) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucket)).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}
		return json.Unmarshal(data, v)
	})
}

func (s *BoltStore) delete(bucket, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b.Get([]byte(id)) == nil {
			return ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}
