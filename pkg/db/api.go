package db

// KVStore is the ordered key-value storage the snapshot store is built on.
// Keys are compared bytewise, which the prefix layout of callers relies on.
type KVStore interface {
	Reader
	Writer
	Delete(key []byte) error
	NewBatch() Batch
	Close() error
}

type Reader interface {
	Get(key []byte) ([]byte, error)
	// NewIterator iterates keys in [start, end). A nil bound is unbounded.
	NewIterator(start, end []byte) (Iterator, error)
}

type Writer interface {
	Put(key []byte, value []byte) error
}

// Batch groups writes and deletes that are applied atomically on Commit.
// A batch is single use, Close after Commit does nothing.
type Batch interface {
	Writer
	Delete(key []byte) error
	Commit() error
	Close() error
}

// Iterator walks a key range in ascending order. The first call to Next
// positions it on the first key. Iterators must be closed after use.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Close() error
}
