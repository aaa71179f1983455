package user

import (
	"context"
	"fmt"
	"slices"
)

type Service interface {
	GetAllUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int) (User, error)
}

// IdProvider lists the user ids known to the presence data.
type IdProvider interface {
	Users(ctx context.Context) ([]int, error)
}

type UserServiceImpl struct {
	ids IdProvider
}

func NewUserService(ids IdProvider) *UserServiceImpl {
	return &UserServiceImpl{ids: ids}
}

func (u *UserServiceImpl) GetAllUsers(ctx context.Context) ([]User, error) {
	ids, err := u.ids.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	users := make([]User, 0, len(ids))
	for _, id := range ids {
		users = append(users, FromId(id))
	}
	return users, nil
}

func (u *UserServiceImpl) GetUser(ctx context.Context, id int) (User, error) {
	ids, err := u.ids.Users(ctx)
	if err != nil {
		return User{}, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	if !slices.Contains(ids, id) {
		return User{}, ErrUserNotFound
	}
	return FromId(id), nil
}
