package blogicum

import (
	"testing"
	"time"
)

func boolPtr(v bool) *bool { return &v }

func TestPostVisibleTo(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	author := &UserBrief{ID: 1, Username: "alice"}
	other := &UserBrief{ID: 2, Username: "bob"}

	tests := map[string]struct {
		post    Post
		user    *UserBrief
		visible bool
	}{
		"published": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: past, CategoryPublished: boolPtr(true)},
			user:    other,
			visible: true,
		},
		"anonymous": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: past, CategoryPublished: boolPtr(true)},
			user:    nil,
			visible: true,
		},
		"unpublished": {
			post:    Post{AuthorID: 1, IsPublished: false, PubDate: past},
			user:    other,
			visible: false,
		},
		"unpublished_owner": {
			post:    Post{AuthorID: 1, IsPublished: false, PubDate: future},
			user:    author,
			visible: true,
		},
		"future": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: future},
			user:    other,
			visible: false,
		},
		"future_owner": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: future},
			user:    author,
			visible: true,
		},
		"hidden_category": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: past, CategoryPublished: boolPtr(false)},
			user:    other,
			visible: false,
		},
		// A post whose category was deleted keeps no category reference
		// and stays visible if otherwise published.
		"no_category": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: past},
			user:    other,
			visible: true,
		},
		"exactly_now": {
			post:    Post{AuthorID: 1, IsPublished: true, PubDate: now},
			user:    other,
			visible: true,
		},
	}

	for k, v := range tests {
		t.Run(k, func(t *testing.T) {
			if got := v.post.VisibleTo(v.user, now); got != v.visible {
				t.Fatalf("Expected VisibleTo=%v, got %v", v.visible, got)
			}
		})
	}

	t.Run("nil_post", func(t *testing.T) {
		var p *Post
		if p.VisibleTo(author, now) {
			t.Fatal("nil post should never be visible")
		}
	})
}
