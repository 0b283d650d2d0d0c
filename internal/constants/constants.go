package constants

// Constants that are the same for all chain configurations

const (
	// Storage backend costs, in microseconds of execution time per access.
	RocksDbReadMicros   = 25  // Read: 25 µs
	RocksDbWriteMicros  = 100 // Write: 100 µs
	ParityDbReadMicros  = 8   // Read: 8 µs
	ParityDbWriteMicros = 50  // Write: 50 µs
)
