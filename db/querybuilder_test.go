package db

import (
	"errors"
	"testing"

	"github.com/blogicum/blogicum"
)

func TestFilterBuilder(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		fb := newFilterBuilder()
		if got := fb.Where(); got != "1 = 1" {
			t.Fatalf("Where() = %q, wanted %q", got, "1 = 1")
		}
		if got := len(fb.Args()); got != 0 {
			t.Fatalf("Args() has %d elements, wanted none", got)
		}
	})

	t.Run("positional numbering", func(t *testing.T) {
		t.Parallel()
		fb := newFilterBuilder()
		fb.AddConstraint("author_id = %s", 4)
		fb.AddConstraint("pub_date <= NOW()")
		fb.AddConstraint("title = %s OR text = %s", "a", "b")

		want := "author_id = $1 AND pub_date <= NOW() AND title = $2 OR text = $3"
		if got := fb.Where(); got != want {
			t.Fatalf("Where() = %q, wanted %q", got, want)
		}
		if got := len(fb.Args()); got != 3 {
			t.Fatalf("Args() has %d elements, wanted 3", got)
		}
	})
}

func TestUpdateBuilder(t *testing.T) {
	t.Parallel()

	t.Run("no updates", func(t *testing.T) {
		t.Parallel()
		ub := newUpdateBuilder()
		if err := ub.CheckUpdates(); !errors.Is(err, blogicum.ErrNoUpdates) {
			t.Fatalf("CheckUpdates() = %v, wanted ErrNoUpdates", err)
		}
	})

	t.Run("filter continues numbering", func(t *testing.T) {
		t.Parallel()
		ub := newUpdateBuilder()
		ub.AddUpdate("title = %s", "new title")
		ub.AddUpdate("is_published = %s", false)
		if err := ub.CheckUpdates(); err != nil {
			t.Fatalf("CheckUpdates() = %v, wanted nil", err)
		}

		fb := ub.MakeFilter()
		fb.AddConstraint("id = %s", 10)

		want := "title = $1, is_published = $2 WHERE id = $3"
		if got := fb.WithUpdate(); got != want {
			t.Fatalf("WithUpdate() = %q, wanted %q", got, want)
		}
		if got := len(fb.Args()); got != 3 {
			t.Fatalf("Args() has %d elements, wanted 3", got)
		}
	})
}
