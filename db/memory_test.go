package db

import (
	"testing"
	"time"

	"github.com/nemopss/budget-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUsers(t *testing.T) {
	store := NewMemory()

	user, err := store.CreateUser("anna@example.com", "hash1")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	_, err = store.CreateUser("anna@example.com", "hash2")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Email match is exact and case-sensitive, so this is a different user.
	other, err := store.CreateUser("Anna@example.com", "hash3")
	require.NoError(t, err)
	assert.Equal(t, 2, other.ID)

	fetched, err := store.GetUserByEmail("anna@example.com")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, user.ID, fetched.ID)

	missing, err := store.GetUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	byID, err := store.GetUserByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "anna@example.com", byID.Email)

	byID, err = store.GetUserByID(999)
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestMemoryListExpenses(t *testing.T) {
	store := NewMemory()
	user, err := store.CreateUser("anna@example.com", "hash")
	require.NoError(t, err)

	add := func(date string, amount float64) {
		d, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		e := models.Expense{
			Amount:   amount,
			Category: "food",
			Date:     models.Date{Time: d},
			Type:     models.TypeExpense,
			UserID:   user.ID,
		}
		require.NoError(t, store.CreateExpense(&e))
		assert.NotZero(t, e.ID)
	}

	// Inserted out of order on purpose.
	add("2024-03-01", 3)
	add("2024-02-29", 2)
	add("2024-02-01", 1)

	all, err := store.ListExpenses(user.ID, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{all[0].Amount, all[1].Amount, all[2].Amount},
		"expenses come back date ascending")

	r, err := ParseMonth("2024-02")
	require.NoError(t, err)
	february, err := store.ListExpenses(user.ID, &r)
	require.NoError(t, err)
	require.Len(t, february, 2, "2024-02-29 is in, 2024-03-01 is out")
	assert.Equal(t, "2024-02-01", february[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", february[1].Date.Format("2006-01-02"))

	// Another user sees nothing.
	none, err := store.ListExpenses(999, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryDeleteExpense(t *testing.T) {
	store := NewMemory()
	owner, err := store.CreateUser("owner@example.com", "hash")
	require.NoError(t, err)
	stranger, err := store.CreateUser("stranger@example.com", "hash")
	require.NoError(t, err)

	e := models.Expense{
		Amount:   10,
		Category: "food",
		Date:     models.NewDate(2024, time.May, 3),
		Type:     models.TypeExpense,
		UserID:   owner.ID,
	}
	require.NoError(t, store.CreateExpense(&e))

	deleted, err := store.DeleteExpense(e.ID, stranger.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "non-owner must not be able to delete")

	remaining, err := store.ListExpenses(owner.ID, nil)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	deleted, err = store.DeleteExpense(e.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteExpense(e.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete finds nothing")
}
