package db

import (
	"errors"

	"github.com/nemopss/budget-tracker/models"
)

// ErrEmailTaken is returned by CreateUser when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// Store is the persistence surface the API handlers depend on.
type Store interface {
	CreateUser(email, hashedPassword string) (*models.User, error)
	// GetUserByEmail returns (nil, nil) when no such user exists.
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)

	CreateExpense(e *models.Expense) error
	// ListExpenses returns the user's expenses ordered ascending by date
	// (id as tiebreaker), optionally restricted to a half-open
	// [Start, End) date range.
	ListExpenses(userID int, r *MonthRange) ([]models.Expense, error)
	// DeleteExpense removes the expense only if it belongs to userID and
	// reports whether a row was deleted.
	DeleteExpense(id, userID int) (bool, error)

	Close() error
}

var (
	_ Store = (*Storage)(nil)
	_ Store = (*Memory)(nil)
)
