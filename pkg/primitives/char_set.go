package primitives

import (
	"fmt"
	"math/bits"
)

const (
	minChar = 'a'
	maxChar = 'z'
)

// CharSet efficiently represents a set of lowercase ASCII letters as a
// bitmask. The zero value is the empty set.
type CharSet struct {
	mask uint32
}

func NewCharSet() *CharSet {
	return &CharSet{}
}

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.mask |= 1 << (r - minChar)
	return nil
}

// Contains checks if a character is in the set. Characters outside a-z are
// never in the set.
func (c *CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	return c.mask&(1<<(r-minChar)) != 0
}

// IsFull checks if the set holds every letter.
func (c *CharSet) IsFull() bool {
	return c.Count() == c.Capacity()
}

// Capacity returns the number of characters the set can hold.
func (c *CharSet) Capacity() int {
	return maxChar - minChar + 1
}

// Count returns the number of characters in the set.
func (c *CharSet) Count() int {
	return bits.OnesCount32(c.mask)
}
