// Package journal persists an insert-only record of every prediction made
// and every resolution reached, per chat. The engine never reads it back;
// it exists for the /stats command and offline inspection.
package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS decisions (
	id             TEXT PRIMARY KEY,
	chat_id        INTEGER NOT NULL,
	source_game    INTEGER NOT NULL,
	target_game    INTEGER NOT NULL,
	combination    TEXT NOT NULL,
	rendered_text  TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS resolutions (
	id                  INTEGER PRIMARY KEY AUTOINCREMENT,
	chat_id             INTEGER NOT NULL,
	target_game         INTEGER NOT NULL,
	status              TEXT NOT NULL,
	verification_offset INTEGER NOT NULL,
	final_text          TEXT NOT NULL,
	created_at          TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_chat ON decisions(chat_id);
CREATE INDEX IF NOT EXISTS idx_resolutions_chat ON resolutions(chat_id);
`

// #endregion schema

// #region journal-struct
// Journal manages the outcome ledger in SQLite.
type Journal struct {
	db *sql.DB
}

// #endregion journal-struct

// #region constructor
// Open opens the SQLite database and runs migrations.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// #endregion constructor

// #region record-decision
// RecordDecision appends one prediction decision. A zero ID or CreatedAt is
// filled in.
func (j *Journal) RecordDecision(entry DecisionEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := j.db.Exec(
		`INSERT INTO decisions (id, chat_id, source_game, target_game, combination, rendered_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.ChatID, entry.SourceGame, entry.TargetGame,
		entry.Combination, entry.RenderedText, entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record decision: %w", err)
	}
	return nil
}

// #endregion record-decision

// #region record-resolution
// RecordResolution appends one verification outcome.
func (j *Journal) RecordResolution(entry ResolutionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := j.db.Exec(
		`INSERT INTO resolutions (chat_id, target_game, status, verification_offset, final_text, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ChatID, entry.TargetGame, entry.Status,
		entry.VerificationOffset, entry.FinalText, entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record resolution: %w", err)
	}
	return nil
}

// #endregion record-resolution

// #region stats
// Stats aggregates prediction outcomes. chatID 0 aggregates over all chats.
func (j *Journal) Stats(chatID int64) (Stats, error) {
	var s Stats

	filter := ""
	args := []any{}
	if chatID != 0 {
		filter = " WHERE chat_id = ?"
		args = append(args, chatID)
	}

	if err := j.db.QueryRow("SELECT COUNT(*) FROM decisions"+filter, args...).Scan(&s.Total); err != nil {
		return Stats{}, fmt.Errorf("count decisions: %w", err)
	}

	query := "SELECT status, COUNT(*) FROM resolutions" + filter + " GROUP BY status"
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return Stats{}, fmt.Errorf("count resolutions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return Stats{}, fmt.Errorf("scan row: %w", err)
		}
		switch status {
		case "correct":
			s.Correct = n
		case "failed":
			s.Failed = n
		case "incorrect":
			s.Incorrect = n
		}
	}
	if err := rows.Err(); err != nil {
		return Stats{}, fmt.Errorf("iterate rows: %w", err)
	}

	s.Pending = s.Total - s.Correct - s.Failed - s.Incorrect
	if s.Total > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Total) * 100
	}
	return s, nil
}

// #endregion stats
