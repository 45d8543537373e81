package relational

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pulsegym/gym-system/internal/core/domain"
	"github.com/pulsegym/gym-system/internal/core/ports"
)

const userColumns = `id, username, email, password_hash, phone, address, role, created_at, updated_at`

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) ports.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.UserAccount, error) {
	return r.findOne(ctx, "find user by username", `WHERE username = ?`, username)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.UserAccount, error) {
	return r.findOne(ctx, "find user by email", `WHERE email = ?`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.UserAccount, error) {
	return r.findOne(ctx, "find user by id", `WHERE id = ?`, id)
}

// Insert stores user and sets its ID. Timestamps left zero are filled in.
func (r *UserRepository) Insert(ctx context.Context, user *domain.UserAccount) (int64, error) {
	conn, err := r.db.conn(ctx, "insert user")
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	fillTimestamps(user)

	var id int64
	err = conn.QueryRowContext(ctx, r.db.rebind(`
INSERT INTO users (username, email, password_hash, phone, address, role, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`),
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Address,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return 0, taken
		}
		return 0, storageErr("insert user", err)
	}

	user.ID = id
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.UserAccount) error {
	conn, err := r.db.conn(ctx, "update user")
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, r.db.rebind(`
UPDATE users
SET username = ?, email = ?, password_hash = ?, phone = ?, address = ?, role = ?, updated_at = ?
WHERE id = ?`),
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Address,
		string(user.Role),
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if taken := uniqueViolation(err); taken != nil {
			return taken
		}
		return storageErr("update user", err)
	}
	return expectOne(res, "update user", domain.ErrUserNotFound)
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	conn, err := r.db.conn(ctx, "delete user")
	if err != nil {
		return err
	}
	defer conn.Close()

	res, err := conn.ExecContext(ctx, r.db.rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return storageErr("delete user", err)
	}
	return expectOne(res, "delete user", domain.ErrUserNotFound)
}

// ListByRole returns accounts with role ordered by id.
func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]*domain.UserAccount, error) {
	conn, err := r.db.conn(ctx, "list users")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, r.db.rebind(`SELECT `+userColumns+` FROM users WHERE role = ? ORDER BY id`), string(role))
	if err != nil {
		return nil, storageErr("list users", err)
	}
	defer rows.Close()

	users := []*domain.UserAccount{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageErr("list users", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list users", err)
	}
	return users, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "check username", `SELECT 1 FROM users WHERE username = ?`, username)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "check email", `SELECT 1 FROM users WHERE email = ?`, email)
}

func (r *UserRepository) findOne(ctx context.Context, op, where string, arg any) (*domain.UserAccount, error) {
	conn, err := r.db.conn(ctx, op)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	row := conn.QueryRowContext(ctx, r.db.rebind(`SELECT `+userColumns+` FROM users `+where), arg)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, storageErr(op, err)
	}
	return u, nil
}

func (r *UserRepository) exists(ctx context.Context, op, query string, arg any) (bool, error) {
	conn, err := r.db.conn(ctx, op)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	var one int
	err = conn.QueryRowContext(ctx, r.db.rebind(query+` LIMIT 1`), arg).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storageErr(op, err)
	}
	return true, nil
}

func scanUser(row scanner) (*domain.UserAccount, error) {
	var (
		u    domain.UserAccount
		role string
	)
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.Address,
		&role,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// Role is kept verbatim; the dispatcher rejects values it does not know.
	u.Role = domain.Role(role)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func fillTimestamps(u *domain.UserAccount) {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = nowUTC()
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = u.CreatedAt
	}
}

func expectOne(res sql.Result, op string, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, notFound)
	}
	return nil
}
