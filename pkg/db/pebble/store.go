package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/eigerco/weights/pkg/db"
)

var _ db.KVStore = (*KVStore)(nil)

type KVStore struct {
	db     *pebble.DB
	closed bool
	mu     sync.RWMutex
}

// NewKVStore opens a store backed by an in-memory filesystem.
func NewKVStore() (*KVStore, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()})
}

// Open opens, or creates, a store in the given directory.
func Open(path string) (*KVStore, error) {
	return open(path, &pebble.Options{
		Cache:        pebble.NewCache(8 * 1024 * 1024), // 8MB
		MemTableSize: 4 * 1024 * 1024,                  // 4MB
	})
}

func open(path string, opts *pebble.Options) (*KVStore, error) {
	if opts.Cache != nil {
		defer opts.Cache.Unref()
	}
	pdb, err := pebble.Open(path, opts)
	if err != nil {
		return nil, err
	}
	return &KVStore{db: pdb}, nil
}

func (p *KVStore) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return nil, ErrClosed
	}

	value, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	result := make([]byte, len(value))
	copy(result, value)
	return result, nil
}

func (p *KVStore) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Set(key, value, pebble.Sync)
}

func (p *KVStore) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}

	return p.db.Delete(key, pebble.Sync)
}

func (p *KVStore) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.db.Close()
}
