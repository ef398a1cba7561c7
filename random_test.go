package blogicum

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	var sizes = []int{5, 7, 8, 16, 32}

	for _, size := range sizes {
		str := RandomString(size)
		if len(str) != size {
			t.Fatalf("Wanted string of size %d, got %d", size, len(str))
		}
		for _, chr := range str {
			if !strings.ContainsRune(randomCharacters, chr) {
				t.Fatal("String contains characters other than the specified ones")
			}
		}
	}
}

func TestMakeSlug(t *testing.T) {
	tests := map[string]string{
		"Hello World":    "hello-world",
		"already-a-slug": "already-a-slug",
		"Some_Title 42":  "some_title-42",
	}
	for in, want := range tests {
		if got := MakeSlug(in); got != want {
			t.Fatalf("MakeSlug(%q) = %q, wanted %q", in, got, want)
		}
	}
}
