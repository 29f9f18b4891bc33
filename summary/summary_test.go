package summary

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nemopss/budget-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(date string, amount float64, category, typ string) models.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Expense{
		Amount:   amount,
		Category: category,
		Date:     models.Date{Time: d},
		Type:     typ,
	}
}

func TestCompute(t *testing.T) {
	got := Compute([]models.Expense{
		expense("2024-01-01", 100, "salary", models.TypeIncome),
		expense("2024-01-10", 50, "salary", models.TypeIncome),
		expense("2024-01-15", 30, "food", models.TypeExpense),
	})
	assert.Equal(t, Totals{TotalIncome: 150, TotalExpense: 30, Balance: 120}, got)
}

func TestComputeEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, Compute(nil))
	assert.Equal(t, Totals{}, Compute([]models.Expense{}))
}

func TestByCategory(t *testing.T) {
	g := ByCategory([]models.Expense{
		expense("2024-01-01", 20, "food", models.TypeExpense),
		expense("2024-01-02", 500, "food", models.TypeIncome), // income never counts
		expense("2024-01-03", 15, "transport", models.TypeExpense),
		expense("2024-01-04", 10, "food", models.TypeExpense),
	})

	assert.Equal(t, []string{"food", "transport"}, g.Keys(), "first-seen order")

	food, ok := g.Get("food")
	require.True(t, ok)
	assert.Equal(t, 30.0, food)

	transport, ok := g.Get("transport")
	require.True(t, ok)
	assert.Equal(t, 15.0, transport)

	// A category with only income records never shows up, even zero-filled.
	_, ok = g.Get("salary")
	assert.False(t, ok)
}

func TestByCategoryOnlyIncome(t *testing.T) {
	g := ByCategory([]models.Expense{
		expense("2024-01-01", 100, "salary", models.TypeIncome),
	})
	assert.Zero(t, g.Len())

	body, err := json.Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(body))
}

func TestByMonth(t *testing.T) {
	g := ByMonth([]models.Expense{
		expense("2023-12-31", 5, "food", models.TypeExpense),
		expense("2024-01-01", 7, "food", models.TypeExpense),
		expense("2024-01-20", 3, "transport", models.TypeExpense),
		expense("2024-02-10", 100, "salary", models.TypeIncome),
	})

	assert.Equal(t, []string{"2023-12", "2024-01"}, g.Keys())

	december, ok := g.Get("2023-12")
	require.True(t, ok)
	assert.Equal(t, 5.0, december)

	january, ok := g.Get("2024-01")
	require.True(t, ok)
	assert.Equal(t, 10.0, january)
}

func TestGroupedMarshalOrder(t *testing.T) {
	g := NewGrouped()
	g.Add("zzz", 1)
	g.Add("aaa", 2)
	g.Add("zzz", 3)

	body, err := json.Marshal(g)
	require.NoError(t, err)
	// Insertion order survives marshaling; a plain map would sort keys.
	assert.Equal(t, `{"zzz":4,"aaa":2}`, string(body))
}
