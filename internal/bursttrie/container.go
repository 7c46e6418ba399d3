package bursttrie

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultCapacity is the number of suffixes a container holds before it bursts.
const DefaultCapacity = 5

// Container is a small sorted set of suffixes attached to a node. It
// defers the allocation of child nodes until enough strings share a prefix.
type Container struct {
	suffixes []string
	capacity int
	compare  func(a, b string) int
}

// NewContainer creates an empty container ordered by byte-wise comparison.
func NewContainer(capacity int) (*Container, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return newContainer(capacity, strings.Compare), nil
}

func newContainer(capacity int, compare func(a, b string) int) *Container {
	return &Container{
		capacity: capacity,
		compare:  compare,
	}
}

// Insert adds suffix if it is not already present and reports whether it was added.
func (c *Container) Insert(suffix string) bool {
	i, found := slices.BinarySearchFunc(c.suffixes, suffix, c.compare)
	if found {
		return false
	}
	c.suffixes = slices.Insert(c.suffixes, i, suffix)
	return true
}

// IsFull reports whether the container has reached its capacity.
func (c *Container) IsFull() bool {
	return len(c.suffixes) >= c.capacity
}

// Burst empties the container and returns what it held.
func (c *Container) Burst() []string {
	suffixes := c.suffixes
	c.suffixes = nil
	return suffixes
}

// Search reports whether word is held by the container.
func (c *Container) Search(word string) bool {
	_, found := slices.BinarySearchFunc(c.suffixes, word, c.compare)
	return found
}

// Remove deletes word if present. It returns true if the container is
// empty afterwards.
func (c *Container) Remove(word string) bool {
	if i, found := slices.BinarySearchFunc(c.suffixes, word, c.compare); found {
		c.suffixes = slices.Delete(c.suffixes, i, i+1)
	}
	return len(c.suffixes) == 0
}

// Suffixes returns the contents in sorted order. The slice must not be modified.
func (c *Container) Suffixes() []string {
	return c.suffixes
}

// Len returns the number of suffixes held.
func (c *Container) Len() int {
	return len(c.suffixes)
}

// Capacity returns the size at which the container bursts.
func (c *Container) Capacity() int {
	return c.capacity
}

func (c *Container) String() string {
	return fmt.Sprintf("%q", c.suffixes)
}
