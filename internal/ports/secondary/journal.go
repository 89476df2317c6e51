package secondary

import "context"

// JournalEntry records one submitted transaction in the local journal.
// The journal is an audit aid for reconciling partial multi-call flows;
// it never holds authoritative ledger state.
type JournalEntry struct {
	ID        string
	Operation string
	EntityID  string
	TxHash    string
	Height    int64
	CreatedAt string
}

// JournalFilters contains filter options for listing journal entries.
type JournalFilters struct {
	Operation string
	Limit     int
}

// JournalRepository defines the secondary port for the transaction journal.
type JournalRepository interface {
	// Record persists a journal entry.
	Record(ctx context.Context, entry *JournalEntry) error

	// List retrieves entries matching the given filters, newest first.
	List(ctx context.Context, filters JournalFilters) ([]*JournalEntry, error)
}
