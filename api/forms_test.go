package api

import (
	"testing"
	"time"
)

func TestSignupFormValidate(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		form    signupForm
		wantErr bool
	}{
		"valid":          {signupForm{Username: "alice", Email: "alice@example.com", Password: "hunter22"}, false},
		"short username": {signupForm{Username: "al", Email: "alice@example.com", Password: "hunter22"}, true},
		"bad email":      {signupForm{Username: "alice", Email: "not-an-email", Password: "hunter22"}, true},
		"short password": {signupForm{Username: "alice", Email: "alice@example.com", Password: "abc"}, true},
		"empty":          {signupForm{}, true},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := test.form.Validate()
			if (err != nil) != test.wantErr {
				t.Fatalf("Validate() = %v, wantErr = %v", err, test.wantErr)
			}
		})
	}
}

func TestPostFormValidate(t *testing.T) {
	t.Parallel()
	now := time.Now().Format(time.RFC3339)
	tests := map[string]struct {
		form    postForm
		wantErr bool
	}{
		"valid":        {postForm{Title: "A day out", Text: "we walked", PubDate: now}, false},
		"no title":     {postForm{Text: "we walked", PubDate: now}, true},
		"no text":      {postForm{Title: "A day out", PubDate: now}, true},
		"bad pub date": {postForm{Title: "A day out", Text: "we walked", PubDate: "yesterday"}, true},
		"no pub date":  {postForm{Title: "A day out", Text: "we walked"}, true},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := test.form.Validate()
			if (err != nil) != test.wantErr {
				t.Fatalf("Validate() = %v, wantErr = %v", err, test.wantErr)
			}
		})
	}
}

func TestUserUpdateFormValidate(t *testing.T) {
	t.Parallel()
	strPtr := func(s string) *string { return &s }
	tests := map[string]struct {
		form    userUpdateForm
		wantErr bool
	}{
		"empty is fine":  {userUpdateForm{}, false},
		"valid rename":   {userUpdateForm{Username: strPtr("bob_2"), FirstName: strPtr("Bob")}, false},
		"short username": {userUpdateForm{Username: strPtr("x")}, true},
		"bad email":      {userUpdateForm{Email: strPtr("nope")}, true},
	}
	for name, test := range tests {
		test := test
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := test.form.Validate()
			if (err != nil) != test.wantErr {
				t.Fatalf("Validate() = %v, wantErr = %v", err, test.wantErr)
			}
		})
	}
}
