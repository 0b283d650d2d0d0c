package store

import (
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/internal/snapshot"
	"github.com/eigerco/weights/pkg/db"
	"github.com/eigerco/weights/pkg/db/pebble"
	"github.com/eigerco/weights/pkg/log"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrStoreClosed      = errors.New("weights store is closed")
)

// Weights keeps recorded weight snapshots, one per profile, in a key-value store.
type Weights struct {
	db     db.KVStore
	closed atomic.Bool
}

// NewWeights creates a new weights store using KVStore
func NewWeights(db db.KVStore) *Weights {
	return &Weights{db: db}
}

// PutSnapshot replaces the snapshot recorded for s.Profile atomically
func (w *Weights) PutSnapshot(s snapshot.Snapshot) error {
	if w.closed.Load() {
		return ErrStoreClosed
	}
	if err := snapshot.ValidateProfile(s.Profile); err != nil {
		return err
	}

	stale, err := w.entryKeys(s.Profile)
	if err != nil {
		return err
	}

	batch := w.db.NewBatch()
	defer batch.Close()

	for _, key := range stale {
		if err := batch.Delete(key); err != nil {
			return fmt.Errorf("delete stale entry: %w", err)
		}
	}
	if err := batch.Put(makeKey(prefixParams, []byte(s.Profile)), snapshot.EncodeParams(s.Params)); err != nil {
		return fmt.Errorf("store params: %w", err)
	}
	for _, e := range s.Entries {
		key := makeKey(prefixSnapshot, []byte(s.Profile), []byte(e.Kind))
		if err := batch.Put(key, snapshot.EncodeInfo(e.Info)); err != nil {
			return fmt.Errorf("store entry %s: %w", e.Kind, err)
		}
	}

	if err := batch.Commit(); err != nil {
		return fmt.Errorf(ErrFailedBatchCommit, err)
	}

	log.Store.Debug().
		Str("profile", s.Profile).
		Int("entries", len(s.Entries)).
		Int("replaced", len(stale)).
		Msg("snapshot recorded")
	return nil
}

// GetSnapshot returns the snapshot recorded for profile. Entries of known call
// kinds come first in table order, followed by unknown kinds sorted by name.
func (w *Weights) GetSnapshot(profile string) (snapshot.Snapshot, error) {
	if w.closed.Load() {
		return snapshot.Snapshot{}, ErrStoreClosed
	}
	if err := snapshot.ValidateProfile(profile); err != nil {
		return snapshot.Snapshot{}, err
	}

	paramsBytes, err := w.db.Get(makeKey(prefixParams, []byte(profile)))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return snapshot.Snapshot{}, ErrSnapshotNotFound
		}
		return snapshot.Snapshot{}, fmt.Errorf("get params: %w", err)
	}
	params, err := snapshot.DecodeParams(paramsBytes)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("decode params: %w", err)
	}

	start, end := entryRange(profile)
	iter, err := w.db.NewIterator(start, end)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close()

	s := snapshot.Snapshot{Profile: profile, Params: params}
	for iter.Next() {
		value, err := iter.Value()
		if err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("read entry: %w", err)
		}
		kind := dispatch.CallKind(iter.Key()[len(start):])
		info, err := snapshot.DecodeInfo(value)
		if err != nil {
			return snapshot.Snapshot{}, fmt.Errorf("decode entry %s: %w", kind, err)
		}
		s.Entries = append(s.Entries, snapshot.Entry{Kind: kind, Info: info})
	}

	sortEntries(s.Entries)
	return s, nil
}

// DeleteSnapshot removes the snapshot recorded for profile, if any
func (w *Weights) DeleteSnapshot(profile string) error {
	if w.closed.Load() {
		return ErrStoreClosed
	}
	if err := snapshot.ValidateProfile(profile); err != nil {
		return err
	}

	keys, err := w.entryKeys(profile)
	if err != nil {
		return err
	}

	batch := w.db.NewBatch()
	defer batch.Close()

	keys = append(keys, makeKey(prefixParams, []byte(profile)))
	for _, key := range keys {
		if err := batch.Delete(key); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf(ErrFailedBatchCommit, err)
	}
	return nil
}

// Profiles lists the profiles that have a recorded snapshot, in byte order
func (w *Weights) Profiles() ([]string, error) {
	if w.closed.Load() {
		return nil, ErrStoreClosed
	}

	iter, err := w.db.NewIterator([]byte{prefixParams}, []byte{prefixParams + 1})
	if err != nil {
		return nil, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close()

	var profiles []string
	for iter.Next() {
		profiles = append(profiles, string(iter.Key()[1:]))
	}
	return profiles, nil
}

// Close closes the weights store
func (w *Weights) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}
	return w.db.Close()
}

func (w *Weights) entryKeys(profile string) ([][]byte, error) {
	start, end := entryRange(profile)
	iter, err := w.db.NewIterator(start, end)
	if err != nil {
		return nil, fmt.Errorf("create iterator: %w", err)
	}
	defer iter.Close()

	var keys [][]byte
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	return keys, nil
}

// entryRange bounds the entry keys of a profile, the NUL separator is followed by the call kind.
func entryRange(profile string) ([]byte, []byte) {
	start := append(makeKey(prefixSnapshot, []byte(profile)), 0)
	end := append(makeKey(prefixSnapshot, []byte(profile)), 1)
	return start, end
}

func sortEntries(entries []snapshot.Entry) {
	order := make(map[dispatch.CallKind]int)
	for i, kind := range dispatch.AllCallKinds() {
		order[kind] = i
	}
	rank := func(kind dispatch.CallKind) int {
		if i, ok := order[kind]; ok {
			return i
		}
		return len(order)
	}
	slices.SortStableFunc(entries, func(a, b snapshot.Entry) int {
		if ra, rb := rank(a.Kind), rank(b.Kind); ra != rb {
			return ra - rb
		}
		if a.Kind < b.Kind {
			return -1
		}
		if a.Kind > b.Kind {
			return 1
		}
		return 0
	})
}
