package relational

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const classColumns = `id, trainer_id, name, description, scheduled_at, duration_minutes, capacity, created_at`

type ClassRepository struct {
	db *DB
}

func NewClassRepository(db *DB) ports.ClassRepository {
	return &ClassRepository{db: db}
}

func (r *ClassRepository) Insert(ctx context.Context, c *domain.WorkoutClass) (int64, error) {
	conn, err := r.db.conn(ctx, "insert class")
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if c.CreatedAt.IsZero() {
		c.CreatedAt = nowUTC()
	}

	var id int64
	err = conn.QueryRowContext(ctx, r.db.rebind(`
INSERT INTO workout_classes (trainer_id, name, description, scheduled_at, duration_minutes, capacity, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
RETURNING id`),
		c.TrainerID,
		c.Name,
		c.Description,
		c.ScheduledAt.UTC(),
		c.DurationMinutes,
		c.Capacity,
		c.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("insert class", err)
	}
	c.ID = id
	return id, nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*domain.WorkoutClass, error) {
	conn, err := r.db.conn(ctx, "find class")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	c, err := scanClass(conn.QueryRowContext(ctx, r.db.rebind(`SELECT `+classColumns+` FROM workout_classes WHERE id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrClassNotFound
	}
	if err != nil {
		return nil, storageErr("find class", err)
	}
	return c, nil
}

func (r *ClassRepository) ListByTrainer(ctx context.Context, trainerID int64) ([]*domain.WorkoutClass, error) {
	return r.list(ctx, "list trainer classes",
		`SELECT `+classColumns+` FROM workout_classes WHERE trainer_id = ? ORDER BY scheduled_at, id`, trainerID)
}

// ListScheduledAfter returns classes starting at or after from, soonest first.
func (r *ClassRepository) ListScheduledAfter(ctx context.Context, from time.Time) ([]*domain.WorkoutClass, error) {
	return r.list(ctx, "list upcoming classes",
		`SELECT `+classColumns+` FROM workout_classes WHERE scheduled_at >= ? ORDER BY scheduled_at, id`, from.UTC())
}

func (r *ClassRepository) Update(ctx context.Context, c *domain.WorkoutClass) error {
	conn, err := r.db.conn(ctx, "update class")
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, r.db.rebind(`
UPDATE workout_classes
SET name = ?, description = ?, scheduled_at = ?, duration_minutes = ?, capacity = ?
WHERE id = ?`),
		c.Name,
		c.Description,
		c.ScheduledAt.UTC(),
		c.DurationMinutes,
		c.Capacity,
		c.ID,
	)
	if err != nil {
		return storageErr("update class", err)
	}
	return expectOne(res, "update class", domain.ErrClassNotFound)
}

func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.conn(ctx, "delete class")
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, r.db.rebind(`DELETE FROM workout_classes WHERE id = ?`), id)
	if err != nil {
		return storageErr("delete class", err)
	}
	return expectOne(res, "delete class", domain.ErrClassNotFound)
}

func (r *ClassRepository) list(ctx context.Context, op, query string, arg any) ([]*domain.WorkoutClass, error) {
	conn, err := r.db.conn(ctx, op)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, r.db.rebind(query), arg)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	classes := []*domain.WorkoutClass{}
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, storageErr(op, err)
		}
		classes = append(classes, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return classes, nil
}

func scanClass(row scanner) (*domain.WorkoutClass, error) {
	var c domain.WorkoutClass
	if err := row.Scan(
		&c.ID,
		&c.TrainerID,
		&c.Name,
		&c.Description,
		&c.ScheduledAt,
		&c.DurationMinutes,
		&c.Capacity,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	c.ScheduledAt = c.ScheduledAt.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

func nowUTC() time.Time {
	// Postgres keeps microseconds; truncating keeps round trips equal.
	return time.Now().UTC().Truncate(time.Microsecond)
}
