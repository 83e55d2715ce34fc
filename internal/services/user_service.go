package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"ayudamosBack/internal/models"
	"ayudamosBack/internal/repositories"
	"ayudamosBack/utils"
)

const minPasswordLength = 6

type UserService struct {
	UserRepo *repositories.UserRepository
	Tokens   *utils.Manager
}

// SignUp registers a new account and returns it together with a fresh access
// token. Email and phone must be unique across all users; the role defaults
// to BOTH when the client does not pick one.
func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, string, error) {
	user.Email = strings.TrimSpace(strings.ToLower(user.Email))
	if user.Email == "" || user.Password == "" || user.FirstName == "" ||
		user.LastName == "" || user.Phone == "" {
		return models.User{}, "", models.ErrMissingFields
	}
	if user.UserType == "" {
		user.UserType = models.UserTypeBoth
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, "", err
	}
	if existing.ID != 0 {
		return models.User{}, "", models.ErrDuplicateEmail
	}

	inUse, err := s.UserRepo.PhoneInUse(ctx, user.Phone, 0)
	if err != nil {
		return models.User{}, "", err
	}
	if inUse {
		return models.User{}, "", models.ErrDuplicatePhone
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), 12)
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = string(hashed)

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.Tokens.NewJWT(created.ID)
	if err != nil {
		return models.User{}, "", err
	}
	created.Password = ""
	return created, token, nil
}

// SignIn verifies the credentials and mints an access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	user, err := s.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if user.ID == 0 {
		return models.User{}, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.User{}, "", models.ErrInvalidCredentials
	}

	token, err := s.Tokens.NewJWT(user.ID)
	if err != nil {
		return models.User{}, "", err
	}
	user.Password = ""
	return user, token, nil
}

func (s *UserService) GetProfile(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile applies a partial profile update. A phone change is checked
// against every other account before it lands.
func (s *UserService) UpdateProfile(ctx context.Context, id int, req models.UpdateProfileRequest) (models.User, error) {
	if req.Phone != nil {
		inUse, err := s.UserRepo.PhoneInUse(ctx, *req.Phone, id)
		if err != nil {
			return models.User{}, err
		}
		if inUse {
			return models.User{}, models.ErrDuplicatePhone
		}
	}
	user, err := s.UserRepo.UpdateProfile(ctx, id, req)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// ChangePassword swaps the stored hash after verifying the current password.
func (s *UserService) ChangePassword(ctx context.Context, id int, req models.UpdatePasswordRequest) error {
	if len(req.NewPassword) < minPasswordLength {
		return models.ErrPasswordTooShort
	}
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return models.ErrInvalidPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), 12)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(ctx, id, string(hashed))
}
