package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// BoardRepo implements ports.BoardRepository on the shared store.
type BoardRepo struct{ store *Store }

// NewBoardRepo creates a SQLite-backed board repository.
func NewBoardRepo(store *Store) ports.BoardRepository { return &BoardRepo{store: store} }

func (r *BoardRepo) Create(ctx context.Context, b *board.Board) error {
	q := r.store.q(ctx)
	const insertBoard = `INSERT INTO boards (id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := q.ExecContext(ctx, insertBoard, b.ID, b.Name, b.Description, b.CreatedAt, b.UpdatedAt); err != nil {
		return fmt.Errorf("sqlite: create board: %w", err)
	}
	const insertColumn = `INSERT INTO columns (id, board_id, name, position, done) VALUES (?, ?, ?, ?, ?)`
	for i := range b.Columns {
		c := &b.Columns[i]
		if _, err := q.ExecContext(ctx, insertColumn, c.ID, c.BoardID, c.Name, c.Position, c.Done); err != nil {
			return fmt.Errorf("sqlite: create column: %w", err)
		}
	}
	return nil
}

func (r *BoardRepo) Get(ctx context.Context, id string) (*board.Board, error) {
	q := r.store.q(ctx)
	const selectBoard = `SELECT id, name, description, created_at, updated_at FROM boards WHERE id = ?`
	var b board.Board
	err := q.QueryRowContext(ctx, selectBoard, id).Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("sqlite: get board: %w", err)
	}

	cols, err := r.columnsFor(ctx, q, id)
	if err != nil {
		return nil, err
	}
	b.Columns = cols
	return &b, nil
}

func (r *BoardRepo) List(ctx context.Context) ([]board.Board, error) {
	q := r.store.q(ctx)
	const selectBoards = `SELECT id, name, description, created_at, updated_at FROM boards ORDER BY created_at`
	rows, err := q.QueryContext(ctx, selectBoards)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list boards: %w", err)
	}
	defer rows.Close()

	var boards []board.Board
	for rows.Next() {
		var b board.Board
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan board: %w", err)
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate boards: %w", err)
	}

	for i := range boards {
		cols, err := r.columnsFor(ctx, q, boards[i].ID)
		if err != nil {
			return nil, err
		}
		boards[i].Columns = cols
	}
	return boards, nil
}

func (r *BoardRepo) Delete(ctx context.Context, id string) error {
	const deleteBoard = `DELETE FROM boards WHERE id = ?`
	res, err := r.store.q(ctx).ExecContext(ctx, deleteBoard, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete board: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: delete board rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("board %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *BoardRepo) columnsFor(ctx context.Context, q querier, boardID string) ([]board.Column, error) {
	const selectColumns = `SELECT id, board_id, name, position, done FROM columns WHERE board_id = ? ORDER BY position`
	rows, err := q.QueryContext(ctx, selectColumns, boardID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list columns: %w", err)
	}
	defer rows.Close()

	var cols []board.Column
	for rows.Next() {
		var c board.Column
		if err := rows.Scan(&c.ID, &c.BoardID, &c.Name, &c.Position, &c.Done); err != nil {
			return nil, fmt.Errorf("sqlite: scan column: %w", err)
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate columns: %w", err)
	}
	return cols, nil
}
