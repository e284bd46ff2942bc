package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, actor User, id string) error
}
