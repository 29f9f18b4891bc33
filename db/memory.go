package db

import (
	"sort"
	"sync"

	"github.com/nemopss/budget-tracker/models"
)

// Memory is an in-memory Store used by tests and when the server runs
// without a configured Postgres.
type Memory struct {
	mu         sync.Mutex
	users      []models.User
	expenses   []models.Expense
	nextUserID int
	nextExpID  int
}

func NewMemory() *Memory {
	return &Memory{nextUserID: 1, nextExpID: 1}
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) CreateUser(email, hashedPassword string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}
	user := models.User{ID: m.nextUserID, Email: email, HashedPassword: hashedPassword}
	m.nextUserID++
	m.users = append(m.users, user)
	return &user, nil
}

func (m *Memory) GetUserByEmail(email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *Memory) GetUserByID(id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (m *Memory) CreateExpense(e *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = m.nextExpID
	m.nextExpID++
	m.expenses = append(m.expenses, *e)
	return nil
}

func (m *Memory) ListExpenses(userID int, r *MonthRange) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []models.Expense{}
	for _, e := range m.expenses {
		if e.UserID != userID {
			continue
		}
		if r != nil && !r.Contains(e.Date.Time) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date.Time) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date.Time)
	})
	return out, nil
}

func (m *Memory) DeleteExpense(id, userID int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.expenses {
		if e.ID == id && e.UserID == userID {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
