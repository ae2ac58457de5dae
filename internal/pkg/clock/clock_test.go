//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"logipark/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_UTCMicroseconds(t *testing.T) {
	now := clock.NewRealClock().Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
}

func TestMockClock(t *testing.T) {
	sp := time.FixedZone("BRT", -3*60*60)
	start := time.Date(2025, 3, 10, 9, 0, 0, 1500, sp)
	clk := clock.NewMockClock(start)

	assert.Equal(t, time.Date(2025, 3, 10, 12, 0, 0, 1000, time.UTC), clk.Now())

	clk.Add(90 * time.Minute)
	assert.Equal(t, time.Date(2025, 3, 10, 13, 30, 0, 1000, time.UTC), clk.Now())

	clk.Set(time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), clk.Now())
}

func TestMockClock_ConcurrentUse(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				clk.Add(time.Second)
				_ = clk.Now()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2025, 1, 1, 0, 13, 20, 0, time.UTC), clk.Now())
}
