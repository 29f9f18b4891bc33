// Package summary computes aggregate views over a user's expense records.
// The records are expected in date-ascending order, which makes the
// first-seen key order of the grouped views chronological.
package summary

import (
	"bytes"
	"encoding/json"

	"github.com/nemopss/budget-tracker/models"
)

// Totals is the income/expense/balance rollup for a set of records.
type Totals struct {
	TotalIncome  float64 `json:"total_income" example:"150"`
	TotalExpense float64 `json:"total_expense" example:"30"`
	Balance      float64 `json:"balance" example:"120"`
}

// Compute sums incomes and expenses in a single pass. An empty slice yields
// all zeros.
func Compute(expenses []models.Expense) Totals {
	var t Totals
	for _, e := range expenses {
		switch e.Type {
		case models.TypeIncome:
			t.TotalIncome += e.Amount
		case models.TypeExpense:
			t.TotalExpense += e.Amount
		}
	}
	t.Balance = t.TotalIncome - t.TotalExpense
	return t
}

// Grouped maps group keys to summed amounts while remembering the order in
// which keys were first seen, which a plain map would lose when marshaled.
type Grouped struct {
	keys []string
	sums map[string]float64
}

func NewGrouped() *Grouped {
	return &Grouped{sums: map[string]float64{}}
}

// Add accumulates amount under key, registering the key on first use.
func (g *Grouped) Add(key string, amount float64) {
	if _, ok := g.sums[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.sums[key] += amount
}

// Keys returns the group keys in first-seen order.
func (g *Grouped) Keys() []string {
	return g.keys
}

// Get returns the summed amount for key and whether the key is present.
func (g *Grouped) Get(key string) (float64, bool) {
	v, ok := g.sums[key]
	return v, ok
}

// Len returns the number of groups.
func (g *Grouped) Len() int {
	return len(g.keys)
}

// MarshalJSON emits a JSON object with keys in first-seen order.
func (g *Grouped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(g.sums[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ByCategory sums expense-type records per category. Categories with no
// matching records are absent rather than zero-filled, and income records
// are never counted.
func ByCategory(expenses []models.Expense) *Grouped {
	g := NewGrouped()
	for _, e := range expenses {
		if e.Type != models.TypeExpense {
			continue
		}
		g.Add(e.Category, e.Amount)
	}
	return g
}

// ByMonth sums expense-type records keyed by each record's own calendar
// month in "YYYY-MM" form.
func ByMonth(expenses []models.Expense) *Grouped {
	g := NewGrouped()
	for _, e := range expenses {
		if e.Type != models.TypeExpense {
			continue
		}
		g.Add(e.Date.Format("2006-01"), e.Amount)
	}
	return g
}
