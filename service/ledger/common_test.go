package ledger

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newNullTime(s string) sql.NullTime {
	return sql.NullTime{Valid: true, Time: newTime(s)}
}

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fakeClock struct {
	mut sync.Mutex
	now time.Time
}

var _ Clock = &fakeClock{}

func newFakeClock(s string) *fakeClock {
	return &fakeClock{now: newTime(s)}
}

func (c *fakeClock) Now() time.Time {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mut.Lock()
	defer c.mut.Unlock()
	c.now = c.now.Add(d)
}
