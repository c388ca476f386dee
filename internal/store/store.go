package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"gitlab.com/cielprofs/website-backend/internal/model"
)

// InsertOutcome tells the caller of InsertSubscriber whether a row was
// created or the email address was already registered. A duplicate sign-up
// is a normal outcome, not an error.
type InsertOutcome int

const (
	Inserted InsertOutcome = iota + 1
	AlreadyExists
)

// createTableStatements is applied on every start; both statements are
// idempotent so there is no separate migration step.
var createTableStatements = []string{
	`CREATE TABLE IF NOT EXISTS newsletter (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT,
		email      TEXT NOT NULL UNIQUE,
		interest   TEXT,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT,
		topic      TEXT,
		message    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

// Store is the persistence layer for newsletter subscribers and contact
// messages. Each statement checks a connection out of the database/sql pool
// and returns it when done, so no connection is held across requests.
type Store struct {
	db               *sqlx.DB
	insertSubscriber *sqlx.NamedStmt
	insertContact    *sqlx.NamedStmt
}

// Open opens the SQLite database file at the given path. The file is created
// on first use.
func Open(path string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	return sqlDB, nil
}

// New initializes the sqlx database wrapper with the specified sql database,
// creates the tables if they do not exist yet, and prepares the insert
// statements. The database argument can be a real database for production
// use or a mock database within unit tests.
func New(sqlDB *sql.DB) (*Store, error) {
	s := &Store{db: sqlx.NewDb(sqlDB, "sqlite3")}
	if err := s.EnsureSchema(context.Background()); err != nil {
		return nil, err
	}

	// Prepared statements offer a significant speed increase if executed
	// many times.
	var err error
	s.insertSubscriber, err = s.db.PrepareNamed(`
		INSERT INTO newsletter (name, email, interest, created_at)
		VALUES (:name, :email, :interest, :created_at)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare subscriber insert: %w", err)
	}
	s.insertContact, err = s.db.PrepareNamed(`
		INSERT INTO contact_messages (name, email, phone, topic, message, created_at)
		VALUES (:name, :email, :phone, :topic, :message, :created_at)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare contact insert: %w", err)
	}
	return s, nil
}

// EnsureSchema creates both tables if absent. Safe to call on every process
// start.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range createTableStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Close releases the prepared statements and the underlying database handle.
func (s *Store) Close() error {
	if s.insertSubscriber != nil {
		s.insertSubscriber.Close()
	}
	if s.insertContact != nil {
		s.insertContact.Close()
	}
	return s.db.Close()
}

// InsertSubscriber inserts a newsletter sign-up row and fills in the new id.
// If the email address is already registered it returns AlreadyExists and no
// error; callers treat that as a success towards the end user.
func (s *Store) InsertSubscriber(ctx context.Context, sub *model.Subscriber) (InsertOutcome, error) {
	result, err := s.insertSubscriber.ExecContext(ctx, sub)
	if err != nil {
		if isUniqueViolation(err) {
			return AlreadyExists, nil
		}
		return 0, fmt.Errorf("insert subscriber: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert subscriber: %w", err)
	}
	sub.Id = id
	return Inserted, nil
}

// InsertContactMessage inserts a contact-form row and fills in the new id.
// There is no uniqueness constraint, so every call creates a row.
func (s *Store) InsertContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	result, err := s.insertContact.ExecContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	msg.Id = id
	return nil
}

// isUniqueViolation reports whether err is SQLite's unique-constraint error,
// raised when the newsletter email already exists.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
