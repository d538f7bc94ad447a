package commands

import (
	"context"
	"sort"
	"strings"

	"warp/internal/application"
	"warp/internal/domain"
	"warp/internal/ports"
)

// SearchResult wraps a store record with a relevance score
type SearchResult struct {
	domain.Record
	Score int
}

// SearchCommand searches the store with fuzzy matching. The sqlite index is
// rebuilt from the store first, then queried for candidates, which are
// scored and sorted client-side.
type SearchCommand struct {
	store ports.BookmarkStore
	index ports.BookmarkIndex

	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store ports.BookmarkStore, index ports.BookmarkIndex, query string) *SearchCommand {
	return &SearchCommand{store: store, index: index, Query: query}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if len(c.Query) < 2 {
		return nil, nil
	}

	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	records, _ := application.Records(data)

	if err := c.index.Sync(records); err != nil {
		return nil, err
	}

	candidates, err := c.index.Search(c.Query)
	if err != nil {
		return nil, err
	}

	return FuzzySort(candidates, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match first (highest priority)
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == '/' || target[i-1] == '.' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort sorts records by relevance to the query, dropping non-matches
func FuzzySort(records []domain.Record, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(records))

	for _, r := range records {
		best := FuzzyScore(r.Path, query)
		if s := FuzzyScore(domain.LastSegment(r.Path), query); s > best {
			best = s
		}
		for _, short := range r.Shortcuts {
			if s := FuzzyScore(short, query); s > best {
				best = s
			}
		}

		if best > 0 {
			scored = append(scored, SearchResult{Record: r, Score: best})
		}
	}

	// Equal scores fall back to usage priority.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Priority > scored[j].Priority
	})

	return scored
}

// TopCommand returns the n most-used records via the sqlite index.
type TopCommand struct {
	store ports.BookmarkStore
	index ports.BookmarkIndex

	N int
}

// NewTopCommand creates a new TopCommand
func NewTopCommand(store ports.BookmarkStore, index ports.BookmarkIndex, n int) *TopCommand {
	return &TopCommand{store: store, index: index, N: n}
}

// Execute runs the top command
func (c *TopCommand) Execute(ctx context.Context) ([]domain.Record, error) {
	data, err := c.store.Load()
	if err != nil {
		return nil, err
	}
	records, _ := application.Records(data)

	if err := c.index.Sync(records); err != nil {
		return nil, err
	}

	return c.index.Top(c.N)
}
