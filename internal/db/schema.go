package db

// SchemaSQL is the complete schema for the local journal database.
//
// This is the single source of truth: tests build their in-memory
// databases from GetSchemaSQL(), so repository code referencing a column
// missing here fails immediately with "no such column" instead of
// drifting.
const SchemaSQL = `
-- Journal of submitted contract transactions. An audit aid for
-- reconciling partial multi-call flows; holds no ledger state.
CREATE TABLE IF NOT EXISTS journal (
	id TEXT PRIMARY KEY,
	operation TEXT NOT NULL,
	entity_id TEXT NOT NULL DEFAULT '',
	tx_hash TEXT NOT NULL,
	height INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_journal_operation ON journal(operation);
CREATE INDEX IF NOT EXISTS idx_journal_created_at ON journal(created_at);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
