package models

import (
	"sync"
	"testing"
)

func TestOrderCounterIncrementsByOne(t *testing.T) {
	c := NewOrderCounter()

	for want := 1; want <= 10; want++ {
		if got := c.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestOrderCounterConcurrentUniqueness(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 200

	c := NewOrderCounter()
	results := make(chan int, goroutines*perGoroutine)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				results <- c.Next()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, goroutines*perGoroutine)
	for n := range results {
		if seen[n] {
			t.Fatalf("Next() returned %d twice", n)
		}
		seen[n] = true
	}
	if len(seen) != goroutines*perGoroutine {
		t.Errorf("got %d unique numbers, want %d", len(seen), goroutines*perGoroutine)
	}
	if got := c.Next(); got != goroutines*perGoroutine+1 {
		t.Errorf("Next() after the burst = %d, want %d", got, goroutines*perGoroutine+1)
	}
}
