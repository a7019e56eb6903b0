package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/apperror"
)

// Same shape the registration form always enforced: local@domain.tld,
// no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authUsecase struct {
	users   domain.UserRepository
	session domain.SessionRepository
}

func NewAuthUsecase(users domain.UserRepository, session domain.SessionRepository) domain.AuthUsecase {
	return &authUsecase{users: users, session: session}
}

// Login validates credentials and establishes the session. The failure
// message never says whether the email exists, to avoid user enumeration.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := u.users.ValidateCredentials(ctx, email, password)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.session.Set(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

// Register applies validations in a fixed order, stopping at the first
// failure, then creates the account and logs it in.
func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Company = strings.TrimSpace(input.Company)

	if input.Type != domain.UserTypeEmployer && input.Type != domain.UserTypeApplicant {
		return nil, apperror.BadRequest("Account type must be employer or applicant")
	}
	if len(input.Name) < 3 {
		return nil, apperror.BadRequest("Name must be at least 3 characters")
	}
	if input.Type == domain.UserTypeEmployer && len(input.Company) < 3 {
		return nil, apperror.BadRequest("Company name must be at least 3 characters")
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, apperror.BadRequest("Enter a valid email address")
	}
	if len(input.Password) < 6 {
		return nil, apperror.BadRequest("Password must be at least 6 characters")
	}

	_, err := u.users.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, apperror.Conflict("This email is already registered")
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	company := input.Company
	if input.Type != domain.UserTypeEmployer {
		company = ""
	}

	user := &domain.User{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Type:     input.Type,
		Company:  company,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}

	// Auto-login after registration
	if err := u.session.Set(ctx, user); err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) Logout(ctx context.Context) error {
	if err := u.session.Clear(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context) (*domain.User, error) {
	user, err := u.session.Current(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return user, nil
}
