package users

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type User struct {
	UID          string    `json:"uid"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Age          int       `json:"age"`
	Height       float64   `json:"height"`
	Weight       float64   `json:"weight"`
	FitnessLevel string    `json:"fitnessLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FirstName returns the first whitespace separated token of the
// user's name, or the empty string.
func (u *User) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
