package parameter

import "time"

// Smash Journal
const (
	// JournalBatchSize is the number of records accumulated before a write
	JournalBatchSize = 32

	// JournalBatchTimeout flushes a partial batch
	JournalBatchTimeout = 2 * time.Second

	// JournalChannelBuffer is the async record queue length
	JournalChannelBuffer = 256
)
