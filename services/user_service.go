package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bishanprabhashwara/NYXAEBackend/models"
	"github.com/Bishanprabhashwara/NYXAEBackend/pkg/apperrors"
)

type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type ITokenService interface {
	Generate(userID string) (string, error)
	Validate(tokenStr string) (string, error)
}

// AuthResult is the outcome of registration or login.
type AuthResult struct {
	User  *models.User
	Token string
}

type UserService struct {
	repo   IUserRepository
	tokens ITokenService
}

func NewUserService(repo IUserRepository, tokens ITokenService) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates an account and issues a token. Email comparison is
// case-insensitive; the password is stored only as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Storage("hashing password", err)
	}

	user, err := s.repo.Create(ctx, &models.User{Email: email, Password: string(hashed)})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, apperrors.Storage("generating token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same message so accounts cannot be enumerated.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		return nil, apperrors.Storage("generating token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// VerifyToken resolves a bearer token to its user. Signature, expiry and
// user-existence failures all collapse into the same unauthorized error.
func (s *UserService) VerifyToken(ctx context.Context, tokenStr string) (*models.User, error) {
	userID, err := s.tokens.Validate(tokenStr)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}
	return user, nil
}
