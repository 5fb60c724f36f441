package history

import "database/sql"

const createSnapshotsTable = `
CREATE TABLE IF NOT EXISTS snapshots (
  run_id           TEXT PRIMARY KEY,
  schema_version   INTEGER NOT NULL,
  ts_utc           TEXT NOT NULL,
  root             TEXT NOT NULL,
  file_count       INTEGER NOT NULL,
  edge_count       INTEGER NOT NULL,
  component_count  INTEGER NOT NULL,
  cycle_count      INTEGER NOT NULL,
  unresolved_count INTEGER NOT NULL,
  ambiguous_count  INTEGER NOT NULL,
  unreadable_count INTEGER NOT NULL,
  max_fan_in       INTEGER NOT NULL,
  max_impact       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_root_ts ON snapshots(root, ts_utc);
`

func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(createSnapshotsTable)
	return err
}
