package main

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestExecute_SolvesRequestWords(t *testing.T) {
	is := is.New(t)

	resp, err := execute(context.Background(), SolveGridRequest{
		Structure: []string{"___"},
		Words:     []string{"cat", "dog"},
	})
	is.NoErr(err)
	is.True(resp.Success)
	is.True(resp.Grid == "cat" || resp.Grid == "dog")
	is.Equal(len(resp.Words), 1)
}

func TestExecute_MaxLengthFiltersWords(t *testing.T) {
	is := is.New(t)

	// The only word fitting the 4-slot is over the cap, so filtering must
	// leave the puzzle unsolvable rather than ignore the cap.
	resp, err := execute(context.Background(), SolveGridRequest{
		Structure: []string{"____"},
		Words:     []string{"beef", "cat"},
		MaxLength: 3,
	})
	is.NoErr(err)
	is.True(!resp.Success)
	is.True(resp.Error != "")
}

func TestExecute_MaxLengthFiltersAllWords(t *testing.T) {
	_, err := execute(context.Background(), SolveGridRequest{
		Structure: []string{"___"},
		Words:     []string{"beef"},
		MaxLength: 3,
	})
	if err == nil {
		t.Error("expected error when the cap filters out every word")
	}
}

func TestExecute_RejectsNonAlphabeticWords(t *testing.T) {
	_, err := execute(context.Background(), SolveGridRequest{
		Structure: []string{"___"},
		Words:     []string{"t-e", "cat"},
	})
	if err == nil {
		t.Error("expected error for non-alphabetic request word")
	}
}

func TestExecute_EmptyStructure(t *testing.T) {
	_, err := execute(context.Background(), SolveGridRequest{
		Words: []string{"cat"},
	})
	if err == nil {
		t.Error("expected error for empty structure")
	}
}
