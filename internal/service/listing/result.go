package listing

import "github.com/heartmarshall/localbiz-backend/internal/domain"

// ListResult is one page of listings.
type ListResult struct {
	Listings []domain.Listing
	Total    int
	Limit    int
	Offset   int
}

// DeleteResult reports the outcome of a delete. ImageErr is set when the
// row was removed but its stored image could not be.
type DeleteResult struct {
	Deleted  bool
	ImageErr error
}
