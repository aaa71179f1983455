package user

import (
	"errors"
	"strconv"
)

var ErrUserNotFound = errors.New("user not found")

type User struct {
	Id   int
	Name string
}

// FromId builds the user record for an id found in presence data. Presence
// files carry no names, so users are labelled by id.
func FromId(id int) User {
	return User{Id: id, Name: "User " + strconv.Itoa(id)}
}
