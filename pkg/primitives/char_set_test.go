package primitives

import (
	"testing"
)

func TestCharSet_Add(t *testing.T) {
	cs := NewCharSet()

	tests := []struct {
		name      string
		char      rune
		wantErr   bool
		wantCount int
	}{
		{"add 'a'", 'a', false, 1},
		{"add 'b'", 'b', false, 2},
		{"add 'z'", 'z', false, 3},
		{"add 'a' again", 'a', false, 3}, // should not increase count
		{"add out of range low", 'A', true, 3},
		{"add out of range high", '~', true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cs.Add(tt.char)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
			if cs.Count() != tt.wantCount {
				t.Errorf("count = %d, want %d", cs.Count(), tt.wantCount)
			}
		})
	}
}

func TestCharSet_Contains(t *testing.T) {
	cs := NewCharSet()
	cs.Add('a')
	cs.Add('c')

	tests := []struct {
		name string
		char rune
		want bool
	}{
		{"contains 'a'", 'a', true},
		{"contains 'b'", 'b', false},
		{"contains 'c'", 'c', true},
		{"out of range is never contained", '`', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cs.Contains(tt.char); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCharSet_IsFull(t *testing.T) {
	cs := NewCharSet()

	if cs.IsFull() {
		t.Error("IsFull() = true, want false for empty set")
	}

	cs.Add('a')
	cs.Add('b')
	if cs.IsFull() {
		t.Error("IsFull() = true, want false for partially filled set")
	}

	for i := 'a'; i <= 'z'; i++ {
		cs.Add(i)
	}

	if !cs.IsFull() {
		t.Error("IsFull() = false, want true for full set")
	}
}

func TestCharSet_Capacity(t *testing.T) {
	cs := NewCharSet()
	if cs.Capacity() != 26 {
		t.Errorf("Capacity() = %d, want 26", cs.Capacity())
	}
}

func TestCharSet_Count(t *testing.T) {
	cs := NewCharSet()
	if cs.Count() != 0 {
		t.Errorf("Count() = %d, want 0", cs.Count())
	}

	cs.Add('a')
	if cs.Count() != 1 {
		t.Errorf("Count() = %d, want 1", cs.Count())
	}

	cs.Add('b')
	if cs.Count() != 2 {
		t.Errorf("Count() = %d, want 2", cs.Count())
	}
}
