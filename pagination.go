package blogicum

import "strconv"

// PostsPerPage is the fixed page size for every paginated listing.
const PostsPerPage = 10

// Page describes one slice of an ordered listing.
type Page struct {
	Number   int `json:"number"`
	NumPages int `json:"num_pages"`
	PerPage  int `json:"per_page"`
	Count    int `json:"count"`

	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Offset returns the listing offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// parsePageToken interprets the raw page query parameter.
// Anything that is not a positive integer means page 1.
func parsePageToken(token string) int {
	page, err := strconv.Atoi(token)
	if err != nil || page <= 0 {
		return 1
	}
	return page
}

// Paginate slices an ordered set of count items into pages of perPage items
// and resolves the requested page token. Out-of-range pages clamp to the
// last page, so the returned page is never empty unless count is 0.
func Paginate(count int, perPage int, token string) Page {
	if perPage <= 0 {
		perPage = PostsPerPage
	}
	if count < 0 {
		count = 0
	}

	numPages := (count + perPage - 1) / perPage
	if numPages == 0 {
		numPages = 1
	}

	number := min(parsePageToken(token), numPages)

	return Page{
		Number:   number,
		NumPages: numPages,
		PerPage:  perPage,
		Count:    count,

		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}
}
