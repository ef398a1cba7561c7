package blogicum

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Admin     bool      `json:"admin"`
}

// Brief returns the public view of the user, without email or password hash.
func (user *User) Brief() *UserBrief {
	if user == nil {
		return nil
	}
	return &UserBrief{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
	}
}

type UserBrief struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Admin     bool   `json:"admin"`
}

func (user *UserBrief) IsAuthed() bool {
	return user != nil && user.ID > 0
}

func (user *UserBrief) IsAdmin() bool {
	return user.IsAuthed() && user.Admin
}

// UserFilter is the struct with all filterable fields on the user
// It also provides a Limit and Offset field, for pagination
type UserFilter struct {
	ID *int `json:"id"`

	// Username is case insensitive
	Username *string `json:"username"`
	Email    *string `json:"email"`

	SessionID *string `json:"-"`

	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// UserUpdate is the struct with all updatable fields on the user
type UserUpdate struct {
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`

	PwdHash *string `json:"-"`
	Admin   *bool   `json:"-"`
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), err
}
