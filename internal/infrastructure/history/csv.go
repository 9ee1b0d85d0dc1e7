// Package history persists registered sessions to an append-only CSV file.
package history

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"mysterybot/internal/domain/entities"
	"mysterybot/internal/ports/output"
)

var header = []string{"scenario", "timestamp", "participant-ids", "spectator-ids", "attended-ids"}

var _ output.HistoryLog = (*CSVLog)(nil)

// CSVLog appends one row per registered session. The header row is written
// when the file is created; existing files are only appended to.
type CSVLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVLog(path string) *CSVLog {
	return &CSVLog{path: path}
}

func (l *CSVLog) Append(_ context.Context, rec entities.HistoryRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open history log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat history log: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("write history header: %w", err)
		}
	}
	row := []string{
		rec.Scenario,
		rec.RegisteredAt.Format(time.RFC3339),
		entities.JoinIDs(rec.Participants),
		entities.JoinIDs(rec.Spectators),
		entities.JoinIDs(rec.Attended),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("write history row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush history log: %w", err)
	}
	return nil
}
