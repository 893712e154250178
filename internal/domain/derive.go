package domain

import (
	"sort"
	"strings"
)

// SearchEbooks filters the full fetched collection locally: case-insensitive
// substring match over title, author and owning store name. It never triggers
// a refetch.
func SearchEbooks(ebooks []Ebook, query string) []Ebook {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ebooks
	}

	matched := make([]Ebook, 0, len(ebooks))
	for _, book := range ebooks {
		title := strings.ToLower(book.Title)
		author := strings.ToLower(book.Author)
		store := strings.ToLower(book.Store().StoreName)
		if strings.Contains(title, q) || strings.Contains(author, q) || strings.Contains(store, q) {
			matched = append(matched, book)
		}
	}
	return matched
}

// RecentEbooks returns the n most recently created ebooks, newest first.
// Records without a createdAt sort last.
func RecentEbooks(ebooks []Ebook, n int) []Ebook {
	sorted := make([]Ebook, len(ebooks))
	copy(sorted, ebooks)
	sort.SliceStable(sorted, func(i, j int) bool {
		var ti, tj int64
		if sorted[i].CreatedAt != nil {
			ti = sorted[i].CreatedAt.UnixMilli()
		}
		if sorted[j].CreatedAt != nil {
			tj = sorted[j].CreatedAt.UnixMilli()
		}
		return ti > tj
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Summary is the dashboard's high-level view of the platform.
type Summary struct {
	TotalEbooks    int
	TotalOwners    int
	PendingOwners  int
	ApprovedOwners int
}

// Summarize derives the dashboard counts from full owner and ebook listings.
func Summarize(owners []Owner, ebooks []Ebook) Summary {
	s := Summary{
		TotalEbooks: len(ebooks),
		TotalOwners: len(owners),
	}
	for _, o := range owners {
		switch o.Status {
		case StatusPending:
			s.PendingOwners++
		case StatusApproved:
			s.ApprovedOwners++
		}
	}
	return s
}
