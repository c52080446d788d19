// Package query implements client-side filtering and sorting over an
// already-fetched article collection. It never calls the store.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/article-writer-api/internal/models"
)

// SortField selects the sort key
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByTitle     SortField = "title"
	SortBySize      SortField = "size"
)

// FilterTypeAll matches every article type
const FilterTypeAll = "all"

// Params describes one filter/sort request. Zero values match everything
// and sort by creation time descending.
type Params struct {
	Search     string
	FilterType string
	SortBy     SortField
	Descending bool
}

// sizeRank orders article sizes by severity, not lexicographically
var sizeRank = map[models.ArticleSize]int{
	models.SizeXSmall: 1,
	models.SizeSmall:  2,
	models.SizeMedium: 3,
	models.SizeLarge:  4,
}

// Apply filters and sorts the collection. The input slice is not modified;
// a new slice is returned.
func Apply(articles []*models.Article, p Params) []*models.Article {
	out := Filter(articles, p.Search, p.FilterType)
	Sort(out, p.SortBy, p.Descending)
	return out
}

// Filter keeps articles whose title or keywords contain the search term
// (case-insensitive) and whose type matches the filter. Empty search and an
// empty or "all" filter match everything.
func Filter(articles []*models.Article, search, filterType string) []*models.Article {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]*models.Article, 0, len(articles))

	for _, a := range articles {
		if term != "" &&
			!strings.Contains(strings.ToLower(a.Title), term) &&
			!strings.Contains(strings.ToLower(a.Keywords), term) {
			continue
		}
		if filterType != "" && filterType != FilterTypeAll &&
			string(a.Settings.ArticleType) != filterType {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Sort orders the slice by the given field. Sizes sort by severity
// (X-Small < Small < Medium < Large), titles by locale-aware comparison,
// dates by timestamp value.
func Sort(articles []*models.Article, field SortField, descending bool) {
	var less func(a, b *models.Article) bool

	switch field {
	case SortByTitle:
		// A Collator is not safe for concurrent use; build one per sort
		col := collate.New(language.English, collate.Loose)
		less = func(a, b *models.Article) bool {
			return col.CompareString(a.Title, b.Title) < 0
		}
	case SortBySize:
		less = func(a, b *models.Article) bool {
			return sizeRank[a.Settings.ArticleSize] < sizeRank[b.Settings.ArticleSize]
		}
	default:
		less = func(a, b *models.Article) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(articles, func(i, j int) bool {
		if descending {
			return less(articles[j], articles[i])
		}
		return less(articles[i], articles[j])
	})
}
