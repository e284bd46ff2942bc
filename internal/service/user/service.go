package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo     user.UserRepository
	branchRepo   branch.BranchRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewUserService(userRepo user.UserRepository, branchRepo branch.BranchRepository, employeeRepo employee.EmployeeRepository) user.UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		branchRepo:   branchRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkScope makes sure every referenced branch and employee exists.
func (s *UserServiceImpl) checkScope(ctx context.Context, u user.User) error {
	switch u.Role {
	case user.RoleBranchManager:
		if len(u.AssignedBranchIDs) == 0 {
			return user.ErrBranchAssignmentMissing
		}
		for _, id := range u.AssignedBranchIDs {
			if _, err := s.branchRepo.GetByID(ctx, id); err != nil {
				if errors.Is(err, branch.ErrBranchNotFound) {
					return fmt.Errorf("%w: %s", branch.ErrBranchNotFound, id)
				}
				return fmt.Errorf("failed to get branch: %w", err)
			}
		}
	case user.RoleEmployee:
		if u.EmployeeID == nil {
			return user.ErrEmployeeLinkMissing
		}
		if _, err := s.employeeRepo.GetByID(ctx, *u.EmployeeID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}
	case user.RoleSuperAdmin:
	default:
		return user.ErrInvalidRole
	}
	return nil
}

// normalizeScope drops scope fields that do not belong to the role.
func normalizeScope(u *user.User) {
	switch u.Role {
	case user.RoleSuperAdmin:
		u.AssignedBranchIDs = nil
		u.EmployeeID = nil
	case user.RoleBranchManager:
		u.EmployeeID = nil
	case user.RoleEmployee:
		u.AssignedBranchIDs = nil
	}
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsByEmail(ctx, email, nil)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	now := s.now()
	newUser := user.User{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(req.Name),
		Email:             email,
		Role:              user.Role(req.Role),
		AvatarURL:         req.AvatarURL,
		AssignedBranchIDs: req.AssignedBranchIDs,
		EmployeeID:        req.EmployeeID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	normalizeScope(&newUser)

	if err := s.checkScope(ctx, newUser); err != nil {
		return user.UserResponse{}, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	newUser.PasswordHash = &hashed

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "user_id", created.ID, "role", created.Role)
	return user.ToResponse(created), nil
}

func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		exists, err := s.userRepo.ExistsByEmail(ctx, email, &existing.ID)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrUserEmailExists
		}
		existing.Email = email
	}
	if req.AvatarURL != nil {
		existing.AvatarURL = req.AvatarURL
	}
	if req.Role != nil {
		existing.Role = user.Role(*req.Role)
	}
	if req.AssignedBranchIDs != nil {
		existing.AssignedBranchIDs = req.AssignedBranchIDs
	}
	if req.EmployeeID != nil {
		existing.EmployeeID = req.EmployeeID
	}
	normalizeScope(&existing)

	if err := s.checkScope(ctx, existing); err != nil {
		return user.UserResponse{}, err
	}

	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		existing.PasswordHash = &hashed
	}

	existing.UpdatedAt = s.now()
	if err := s.userRepo.Update(ctx, existing); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	slog.Info("user updated", "user_id", existing.ID, "role", existing.Role)
	return user.ToResponse(existing), nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, actor user.User, id string) error {
	if actor.ID == id {
		return user.ErrCannotDeleteSelf
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	slog.Info("user deleted", "user_id", id, "deleted_by", actor.ID)
	return nil
}
