package properties

import (
	"github.com/yarigadev/yariga-backend/pkg/db/models"
)

// ListFilters describe the supported filter knobs for the browse endpoint.
type ListFilters struct {
	// PropertyType is matched exactly, case sensitive.
	PropertyType string
	// TitleLike is a case-insensitive substring match on title.
	TitleLike string
}

// SortInput names a whitelisted column and a direction (asc/desc).
type SortInput struct {
	Field string
	Order string
}

// RangeInput carries the _start/_end offsets of the frontend's pagination
// convention: skip Start rows, return End-Start rows.
type RangeInput struct {
	Start int
	End   int
}

// ListInput captures the inputs needed to filter/sort/paginate listings.
type ListInput struct {
	Filters ListFilters
	Sort    SortInput
	Range   RangeInput
}

// ListResult is one page of listings plus the grand total the pagination
// header reports.
type ListResult struct {
	Properties []models.Property
	Total      int64
}
