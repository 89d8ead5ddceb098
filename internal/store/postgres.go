package store

import (
	"context"
	_ "embed"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shiftwise/timeclock/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// seedEmployees is inserted on first initialization, only while the
// employees table is empty.
var seedEmployees = []struct {
	name string
	rate float64
}{
	{"John Doe", 15.00},
	{"Jane Smith", 18.50},
	{"Mike Johnson", 20.00},
}

// PostgresStore is the durable persistence layer for employees and
// attendance events. Connection lifecycle is owned by the pool; callers
// never see individual connections.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql and seeds the example employees when the
// table is empty. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schemaSQL); err != nil {
		return err
	}

	var count int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, e := range seedEmployees {
		if _, err := p.pool.Exec(ctx,
			`INSERT INTO employees(name, hourly_rate) VALUES ($1, $2)`,
			e.name, e.rate,
		); err != nil {
			return err
		}
	}
	return nil
}

// Ping is used by the readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// ListEmployees returns all employees ordered by id. The roster is small by
// design, so there is no pagination.
func (p *PostgresStore) ListEmployees(ctx context.Context) ([]models.EmployeeSummary, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name
		FROM employees
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.EmployeeSummary{}
	for rows.Next() {
		var e models.EmployeeSummary
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetEmployee returns one employee or ErrNotFound.
func (p *PostgresStore) GetEmployee(ctx context.Context, id int64) (models.Employee, error) {
	var e models.Employee
	err := p.pool.QueryRow(ctx, `
		SELECT id, name, hourly_rate
		FROM employees
		WHERE id = $1
	`, id).Scan(&e.ID, &e.Name, &e.HourlyRate)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.Employee{}, ErrNotFound
	}
	if err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

// InsertEvent appends one attendance event and returns its assigned id.
// Action strings are validated by the caller; the store persists what it is
// given.
func (p *PostgresStore) InsertEvent(ctx context.Context, employeeID int64, action string, ts time.Time) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO attendance(employee_id, action, ts)
		VALUES ($1, $2, $3)
		RETURNING id
	`, employeeID, action, ts).Scan(&id)
	return id, err
}

// ListEventsInRange returns the employee's events with from <= ts < to,
// ordered by timestamp ascending. The id tiebreak keeps same-second events
// in insertion order.
func (p *PostgresStore) ListEventsInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]models.AttendanceEvent, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, employee_id, action, ts
		FROM attendance
		WHERE employee_id = $1
		  AND ts >= $2
		  AND ts <  $3
		ORDER BY ts, id
	`, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AttendanceEvent
	for rows.Next() {
		var ev models.AttendanceEvent
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Action, &ev.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
