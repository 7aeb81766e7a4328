package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/user-registry/internal/dto"
	"github.com/octobees/user-registry/internal/entity"
	"github.com/octobees/user-registry/internal/repository"
)

// UserService encapsulates user record operations: input validation,
// password hashing and repository orchestration.
type UserService struct {
	repo repository.UsersRepository
}

// NewUserService builds a new UserService instance.
func NewUserService(repo repository.UsersRepository) *UserService {
	return &UserService{repo: repo}
}

// ListUsers returns all stored users as DTOs, in store-native order.
func (s *UserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toResponse(&users[i]))
	}
	return responses, nil
}

// CreateUser validates the payload, hashes the password if present and
// persists a new user under a freshly generated identifier.
func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	if req.FirstName == "" || req.LastName == "" {
		return nil, invalidInput("first_name and last_name are required")
	}

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			req.Email = nil
		} else {
			if err := ValidateEmail(trimmed); err != nil {
				return nil, err
			}
			req.Email = &trimmed
		}
	}

	if req.PhoneNumber != nil && !phonePlausible(*req.PhoneNumber) {
		log.Printf("phone_number %q does not parse as a valid number, storing verbatim", *req.PhoneNumber)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		ProjectID:    req.ProjectID,
		PhoneNumber:  req.PhoneNumber,
		CompanyName:  req.CompanyName,
		Hashtag:      req.Hashtag,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	resp := toResponse(created)
	return &resp, nil
}

// UpdateUser merges the supplied fields into an existing user, re-hashing
// the password when it is among them. Absent fields keep their stored
// values.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidInput("user id is required")
	}

	patch := repository.UserPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		ProjectID:   req.ProjectID,
		PhoneNumber: req.PhoneNumber,
		CompanyName: req.CompanyName,
		Hashtag:     req.Hashtag,
	}

	if req.Email != nil {
		trimmed := strings.TrimSpace(*req.Email)
		if trimmed == "" {
			return nil, invalidInput("email cannot be empty")
		}
		if err := ValidateEmail(trimmed); err != nil {
			return nil, err
		}
		patch.Email = &trimmed
	}

	if req.Password != nil {
		hash, err := hashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = hash
	}

	if req.PhoneNumber != nil && !phonePlausible(*req.PhoneNumber) {
		log.Printf("phone_number %q does not parse as a valid number, storing verbatim", *req.PhoneNumber)
	}

	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	resp := toResponse(user)
	return &resp, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return invalidInput("user id is required")
	}
	return s.repo.Delete(ctx, id)
}

// hashPassword one-way transforms a plaintext password. An absent
// password stays absent; plaintext never reaches the repository.
func hashPassword(password *string) (*string, error) {
	if password == nil {
		return nil, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	h := string(hashed)
	return &h, nil
}

func toResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		ProjectID:   u.ProjectID,
		PhoneNumber: u.PhoneNumber,
		CompanyName: u.CompanyName,
		Hashtag:     u.Hashtag,
	}
}
