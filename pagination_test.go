package blogicum

import "testing"

type paginationTest struct {
	Count int
	Token string

	Number  int
	Items   int
	HasNext bool
	HasPrev bool
}

var paginationExamples = map[string]paginationTest{
	"first":       {Count: 25, Token: "1", Number: 1, Items: 10, HasNext: true, HasPrev: false},
	"middle":      {Count: 25, Token: "2", Number: 2, Items: 10, HasNext: true, HasPrev: true},
	"last":        {Count: 25, Token: "3", Number: 3, Items: 5, HasNext: false, HasPrev: true},
	"overflow":    {Count: 25, Token: "99", Number: 3, Items: 5, HasNext: false, HasPrev: true},
	"missing":     {Count: 25, Token: "", Number: 1, Items: 10, HasNext: true},
	"garbage":     {Count: 25, Token: "squid", Number: 1, Items: 10, HasNext: true},
	"zero":        {Count: 25, Token: "0", Number: 1, Items: 10, HasNext: true},
	"negative":    {Count: 25, Token: "-3", Number: 1, Items: 10, HasNext: true},
	"empty":       {Count: 0, Token: "5", Number: 1, Items: 0},
	"exact_fit":   {Count: 20, Token: "2", Number: 2, Items: 10, HasPrev: true},
	"single_item": {Count: 1, Token: "1", Number: 1, Items: 1},
}

func TestPaginate(t *testing.T) {
	for k, v := range paginationExamples {
		v := v
		t.Run(k, func(t *testing.T) {
			t.Parallel()
			page := Paginate(v.Count, PostsPerPage, v.Token)
			if page.Number != v.Number {
				t.Fatalf("Expected page %d, got %d", v.Number, page.Number)
			}
			items := v.Count - page.Offset()
			if items > page.PerPage {
				items = page.PerPage
			}
			if items < 0 {
				items = 0
			}
			if items != v.Items {
				t.Fatalf("Expected %d items on page, got %d", v.Items, items)
			}
			if page.HasNext != v.HasNext {
				t.Fatalf("Expected HasNext=%v, got %v", v.HasNext, page.HasNext)
			}
			if page.HasPrevious != v.HasPrev {
				t.Fatalf("Expected HasPrevious=%v, got %v", v.HasPrev, page.HasPrevious)
			}
		})
	}
}

func TestPaginateNeverEmpty(t *testing.T) {
	for _, count := range []int{1, 9, 10, 11, 99, 100} {
		for _, token := range []string{"", "0", "1", "50", "abc", "-1"} {
			page := Paginate(count, PostsPerPage, token)
			if page.Offset() >= count {
				t.Fatalf("Page %d (token %q) starts past the end of %d items", page.Number, token, count)
			}
		}
	}
}
