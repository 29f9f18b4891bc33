package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/nemopss/budget-tracker/models"
)

// Storage is the Postgres-backed Store.
type Storage struct {
	DB *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	hashed_password TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS expenses (
	id SERIAL PRIMARY KEY,
	amount DOUBLE PRECISION NOT NULL,
	category TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date DATE NOT NULL,
	type TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id)
);`

func NewStorage(connStr string) (*Storage, error) {
	database, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := database.Exec(schema); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Storage{DB: database}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateUser(email, hashedPassword string) (*models.User, error) {
	user := models.User{Email: email, HashedPassword: hashedPassword}
	err := s.DB.QueryRow(
		"INSERT INTO users (email, hashed_password) VALUES ($1, $2) RETURNING id",
		email, hashedPassword,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRow(
		"SELECT id, email, hashed_password FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Email, &user.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByID(id int) (*models.User, error) {
	var user models.User
	err := s.DB.QueryRow(
		"SELECT id, email, hashed_password FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Email, &user.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) CreateExpense(e *models.Expense) error {
	return s.DB.QueryRow(
		`INSERT INTO expenses (amount, category, description, date, type, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		e.Amount, e.Category, e.Description, e.Date.Time, e.Type, e.UserID,
	).Scan(&e.ID)
}

func (s *Storage) ListExpenses(userID int, r *MonthRange) ([]models.Expense, error) {
	query := "SELECT id, amount, category, description, date, type, user_id FROM expenses WHERE user_id = $1"
	args := []interface{}{userID}
	if r != nil {
		query += " AND date >= $2 AND date < $3"
		args = append(args, r.Start, r.End)
	}
	query += " ORDER BY date, id"

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Description, &e.Date, &e.Type, &e.UserID); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *Storage) DeleteExpense(id, userID int) (bool, error) {
	// Ownership check and delete happen in one statement so a concurrent
	// request cannot race between lookup and removal.
	res, err := s.DB.Exec("DELETE FROM expenses WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
