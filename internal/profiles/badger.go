// MatchBox - Compatibility Matching and Match Circles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/matchbox

package profiles

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/matchbox/internal/matching"
)

// Key layout:
//
//	profile:<id>    -> badgerRecord (JSON)
//	email:<email>   -> id
//	seq:<uint64 BE> -> id
//	meta:seq        -> last issued sequence (uint64 BE)
const (
	badgerProfilePrefix = "profile:"
	badgerEmailPrefix   = "email:"
	badgerSeqPrefix     = "seq:"
	badgerSeqCounterKey = "meta:seq"
)

type badgerRecord struct {
	Seq     uint64               `json:"seq"`
	Profile matching.UserProfile `json:"profile"`
}

// BadgerStore persists profiles in an embedded BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool

	// Serializes writers so read-modify-write of the sequence counter
	// never hits badger.ErrConflict.
	writeMu sync.Mutex
}

// OpenBadgerStore opens (or creates) a BadgerDB at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger profile store at %s: %w", path, err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// NewBadgerStore wraps an already open database. Close does not close db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

func profileKey(id string) []byte  { return []byte(badgerProfilePrefix + id) }
func emailKey(email string) []byte { return []byte(badgerEmailPrefix + email) }

func seqKey(seq uint64) []byte {
	key := make([]byte, len(badgerSeqPrefix)+8)
	copy(key, badgerSeqPrefix)
	binary.BigEndian.PutUint64(key[len(badgerSeqPrefix):], seq)
	return key
}

func readRecord(txn *badger.Txn, id string) (badgerRecord, error) {
	var rec badgerRecord
	item, err := txn.Get(profileKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &rec)
	})
	return rec, err
}

// Get returns the profile with the given ID.
func (s *BadgerStore) Get(_ context.Context, id string) (matching.UserProfile, error) {
	var rec badgerRecord
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		rec, err = readRecord(txn, id)
		return err
	})
	if err != nil {
		return matching.UserProfile{}, err
	}
	return rec.Profile, nil
}

// GetByEmail returns the profile registered with email.
func (s *BadgerStore) GetByEmail(_ context.Context, email string) (matching.UserProfile, error) {
	if email == "" {
		return matching.UserProfile{}, ErrNotFound
	}

	var rec badgerRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		rec, err = readRecord(txn, string(id))
		return err
	})
	if err != nil {
		return matching.UserProfile{}, err
	}
	return rec.Profile, nil
}

// List returns all profiles in insertion order.
func (s *BadgerStore) List(_ context.Context) ([]matching.UserProfile, error) {
	var out []matching.UserProfile
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerSeqPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			rec, err := readRecord(txn, string(id))
			if err != nil {
				return fmt.Errorf("sequence index points at %q: %w", id, err)
			}
			out = append(out, rec.Profile)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []matching.UserProfile{}
	}
	return out, nil
}

// Put inserts or replaces a profile.
func (s *BadgerStore) Put(_ context.Context, profile matching.UserProfile) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		if profile.Email != "" {
			item, err := txn.Get(emailKey(profile.Email))
			switch {
			case err == nil:
				owner, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				if string(owner) != profile.ID {
					return ErrDuplicateEmail
				}
			case !errors.Is(err, badger.ErrKeyNotFound):
				return err
			}
		}

		existing, err := readRecord(txn, profile.ID)
		switch {
		case errors.Is(err, ErrNotFound):
			seq, err := nextSeq(txn)
			if err != nil {
				return err
			}
			existing = badgerRecord{Seq: seq}
			if err := txn.Set(seqKey(seq), []byte(profile.ID)); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if old := existing.Profile.Email; old != "" && old != profile.Email {
				if err := txn.Delete(emailKey(old)); err != nil {
					return err
				}
			}
		}

		existing.Profile = profile
		data, err := json.Marshal(&existing)
		if err != nil {
			return fmt.Errorf("marshal profile %s: %w", profile.ID, err)
		}
		if err := txn.Set(profileKey(profile.ID), data); err != nil {
			return err
		}
		if profile.Email != "" {
			return txn.Set(emailKey(profile.Email), []byte(profile.ID))
		}
		return nil
	})
}

func nextSeq(txn *badger.Txn) (uint64, error) {
	var last uint64
	item, err := txn.Get([]byte(badgerSeqCounterKey))
	switch {
	case err == nil:
		if err := item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt sequence counter (%d bytes)", len(val))
			}
			last = binary.BigEndian.Uint64(val)
			return nil
		}); err != nil {
			return 0, err
		}
	case !errors.Is(err, badger.ErrKeyNotFound):
		return 0, err
	}

	next := last + 1
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, next)
	if err := txn.Set([]byte(badgerSeqCounterKey), buf); err != nil {
		return 0, err
	}
	return next, nil
}

// Ping reports whether the database is open.
func (s *BadgerStore) Ping(context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger profile store is closed")
	}
	return nil
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}
