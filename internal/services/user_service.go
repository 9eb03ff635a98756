package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mizuki-dev/kanban-api/internal/constants"
	"github.com/mizuki-dev/kanban-api/internal/models"
	"github.com/mizuki-dev/kanban-api/internal/repository"
	"github.com/mizuki-dev/kanban-api/internal/taskqueue"
	"github.com/mizuki-dev/kanban-api/internal/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("that email is already taken")
	ErrUsernameTaken        = errors.New("that username is already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidUsername      = errors.New("username must be 3-100 characters of letters, digits, '_' or '-'")
	ErrInvalidPassword      = errors.New("password must be 7-100 characters")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// UserService handles registration, authentication and profile updates.
type UserService struct {
	userRepo repository.UserRepository
	queue    taskqueue.TaskQueue
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, queue taskqueue.TaskQueue) *UserService {
	return &UserService{
		userRepo: userRepo,
		queue:    queue,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Username string
	Password string
}

// Register creates a new user. Email and username are checked for duplicates
// independently, email first; the unique indexes on both columns remain the
// authoritative guard under concurrent registration.
func (s *UserService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	salt, hash, err := saltAndHashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        input.Email,
		Username:     username,
		PasswordHash: hash,
		Salt:         salt,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Fire-and-forget; registration never fails on a broker hiccup.
	if err := s.queue.Enqueue(taskqueue.JobSendEmail, map[string]string{"email": user.Email}); err != nil {
		log.Warn().Err(err).Str("email", user.Email).Msg("failed to enqueue welcome email")
	}

	return user, nil
}

// Authenticate verifies credentials by username. It returns
// ErrInvalidCredentials for an unknown username, an inactive user and a wrong
// password alike; callers cannot tell the cases apart.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password+user.Salt)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfileInput carries the optional profile fields; nil means "leave
// unchanged".
type UpdateProfileInput struct {
	Email    *string
	Username *string
}

// UpdateProfile applies the provided fields. A new email or username is
// rejected when a different user already holds it.
func (s *UserService) UpdateProfile(user *models.User, input UpdateProfileInput) (*models.User, error) {
	fields := map[string]interface{}{}

	if input.Email != nil && *input.Email != user.Email {
		existing, err := s.userRepo.FindByEmail(*input.Email)
		if err == nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		fields["email"] = *input.Email
	}

	if input.Username != nil && *input.Username != user.Username {
		username := strings.TrimSpace(*input.Username)
		if err := validateUsername(username); err != nil {
			return nil, err
		}
		existing, err := s.userRepo.FindByUsername(username)
		if err == nil && existing.ID != user.ID {
			return nil, ErrUsernameTaken
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		fields["username"] = username
	}

	if len(fields) == 0 {
		return user, nil
	}

	if err := s.userRepo.Update(user.ID, fields); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.userRepo.FindByID(user.ID)
}

// UpdatePassword regenerates the salt and hash and persists both.
func (s *UserService) UpdatePassword(user *models.User, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	salt, hash, err := saltAndHashPassword(newPassword)
	if err != nil {
		return err
	}

	err = s.userRepo.Update(user.ID, map[string]interface{}{
		"salt":          salt,
		"password_hash": hash,
	})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

// QueueAvatarUpload dispatches avatar thumbnailing to the background workers.
func (s *UserService) QueueAvatarUpload(username, file string) {
	err := s.queue.Enqueue(taskqueue.JobUploadImage, map[string]string{
		"username": username,
		"file":     file,
	})
	if err != nil {
		log.Warn().Err(err).Str("username", username).Msg("failed to enqueue avatar upload")
	}
}

// saltAndHashPassword derives a fresh salt and the bcrypt hash of the salted
// password.
func saltAndHashPassword(password string) (salt, hash string, err error) {
	salt, err = utils.GenerateSalt()
	if err != nil {
		return "", "", ErrFailedToHashPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password+salt), bcrypt.DefaultCost)
	if err != nil {
		return "", "", ErrFailedToHashPassword
	}

	return salt, string(hashed), nil
}

func validateUsername(username string) error {
	if len(username) < constants.MinUsernameLength || len(username) > constants.MaxUsernameLength {
		return ErrInvalidUsername
	}
	if !usernamePattern.MatchString(username) {
		return ErrInvalidUsername
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < constants.MinPasswordLength || len(password) > constants.MaxPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}
