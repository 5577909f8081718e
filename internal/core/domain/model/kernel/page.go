package kernel

import "eats/internal/pkg/errs"

const (
	// DefaultPageSize is the number of restaurants returned per page of a listing.
	DefaultPageSize = 25

	// MaxPageNumber bounds page numbers so Offset cannot overflow.
	MaxPageNumber = 100000

	// MaxPageSize caps the rows per page.
	MaxPageSize = 500
)

// Page is a 1-based page number.
type Page struct {
	number int
	size   int
}

// NewPage validates a page number and binds it to a page size.
// A size of zero or less selects DefaultPageSize; larger sizes are capped at
// MaxPageSize.
func NewPage(number, size int) (Page, error) {
	if number < 1 || number > MaxPageNumber {
		return Page{}, errs.NewValueIsOutOfRangeError("page", number, 1, MaxPageNumber)
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)
	return Page{number: number, size: size}, nil
}

// Number returns the 1-based page number.
func (p Page) Number() int {
	return p.number
}

// Size returns the number of rows per page.
func (p Page) Size() int {
	return p.size
}

// Offset returns the number of rows preceding this page.
func (p Page) Offset() int {
	return (p.number - 1) * p.size
}

// TotalPages returns how many pages are needed for total rows.
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.size <= 0 {
		return 0
	}
	return int((total + int64(p.size) - 1) / int64(p.size))
}
