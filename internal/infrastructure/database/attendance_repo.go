package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mysterybot/internal/ports/output"
)

var _ output.AttendanceStore = (*AttendanceRepository)(nil)

// AttendanceRepository is the durable attendance store. Toggle serializes on
// the (guild_id, user_id) unique key: every transition it makes is a single
// statement whose affected-row count reports whether this call made it.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Toggle marks the user when no row exists and unmarks them otherwise. The
// insert claims the row atomically for absent users; when it conflicts the
// row existed and the delete removes it. A delete that finds no row means a
// concurrent toggle changed the state in between, so the attempt retries
// against the new state.
func (r *AttendanceRepository) Toggle(ctx context.Context, guildID, userID string) (bool, error) {
	const insert = `
INSERT INTO attendance (guild_id, user_id)
VALUES ($1, $2)
ON CONFLICT (guild_id, user_id) DO NOTHING`
	const remove = `DELETE FROM attendance WHERE guild_id = $1 AND user_id = $2`

	for {
		if err := ctx.Err(); err != nil {
			return false, fmt.Errorf("toggle attendance: %w", err)
		}
		tag, err := r.pool.Exec(ctx, insert, guildID, userID)
		if err != nil {
			return false, fmt.Errorf("toggle attendance: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return true, nil
		}
		tag, err = r.pool.Exec(ctx, remove, guildID, userID)
		if err != nil {
			return false, fmt.Errorf("toggle attendance: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return false, nil
		}
	}
}

func (r *AttendanceRepository) List(ctx context.Context, guildID string) ([]string, error) {
	const query = `SELECT user_id FROM attendance WHERE guild_id = $1 ORDER BY user_id`
	rows, err := r.pool.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	return collectUserIDs(rows)
}

// Drain snapshots and clears the guild's set in a single statement, so a
// concurrent toggle can never land between the copy and the clear.
func (r *AttendanceRepository) Drain(ctx context.Context, guildID string) ([]string, error) {
	const query = `DELETE FROM attendance WHERE guild_id = $1 RETURNING user_id`
	rows, err := r.pool.Query(ctx, query, guildID)
	if err != nil {
		return nil, fmt.Errorf("drain attendance: %w", err)
	}
	defer rows.Close()
	return collectUserIDs(rows)
}

func collectUserIDs(rows pgx.Rows) ([]string, error) {
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read user ids: %w", err)
	}
	return ids, nil
}
