package domain

import (
	"context"
	"strings"
)

//go:generate mockgen -destination mocks/mock_admin_service.go -package mocks github.com/sagestone/sagestone/internal/domain AdminService

// CreateUserRequest is used by administrators to add accounts
type CreateUserRequest struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	signup := SignupInput{Email: r.Email, Password: r.Password, FirstName: r.FirstName, LastName: r.LastName}
	if err := signup.Validate(); err != nil {
		return err
	}
	if r.Role != "" && !r.Role.IsValid() {
		return NewValidationError("Role must be user or admin")
	}
	return nil
}

type ListUsersResponse struct {
	Users      []*AdminUser `json:"users"`
	Pagination Pagination   `json:"pagination"`
}

type AdminService interface {
	ListUsers(ctx context.Context, params ListUsersParams) (*ListUsersResponse, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*AdminUser, error)
	DeleteUser(ctx context.Context, id string) error
}

// DefaultWorkspaceName names the workspace created with a new account
func DefaultWorkspaceName(firstName string) string {
	return strings.TrimSpace(firstName) + "'s Workspace"
}
