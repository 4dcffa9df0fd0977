package models

import "sync"

// OrderCounter hands out sequential order numbers. Next is safe to
// call from concurrent request handlers; two calls never return the
// same number.
type OrderCounter struct {
	mu   sync.Mutex
	next int
}

// NewOrderCounter creates a counter starting at zero
func NewOrderCounter() *OrderCounter {
	return &OrderCounter{}
}

// Next increments the counter and returns the new value
func (c *OrderCounter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.next++
	return c.next
}

// defaultCounter numbers every order built with NewOrder. One counter
// per process, so order numbers are unique restaurant-wide.
var defaultCounter = NewOrderCounter()
