package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/metrics"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const (
	msgUsernameTaken      = "A user with that username already exists."
	msgInvalidCredentials = "Unable to log in with provided credentials."
	msgAnswerMismatch     = "The given answer does not match the answer provided at registration."
)

type SecurityQuestionInput struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type RegisterInput struct {
	Username         string                 `json:"username" validate:"required,max=150,username"`
	Password         string                 `json:"password" validate:"required"`
	SecurityQuestion *SecurityQuestionInput `json:"security_question" validate:"required"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordInput struct {
	Answer   string `json:"answer" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthService interface {
	Register(ctx context.Context, input *RegisterInput) (*models.User, error)
	Login(ctx context.Context, input *LoginInput) (string, error)
	GetSecurityQuestion(ctx context.Context, username string) (*models.SecurityQuestion, error)
	ResetPassword(ctx context.Context, username string, input *ResetPasswordInput) error
}

type authService struct {
	users      repository.UserRepository
	policy     *PasswordPolicy
	tokens     *TokenManager
	bcryptCost int
	logger     *logrus.Logger
}

func NewAuthService(users repository.UserRepository, policy *PasswordPolicy, tokens *TokenManager, bcryptCost int, logger *logrus.Logger) AuthService {
	return &authService{
		users:      users,
		policy:     policy,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *authService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	if q := input.SecurityQuestion; q != nil {
		q.Question = strings.TrimSpace(q.Question)
		q.Answer = strings.TrimSpace(q.Answer)
	}

	errs := validation.ValidateStruct(input)
	if errs == nil {
		errs = validation.FieldErrors{}
	}
	if input.Password != "" {
		for _, problem := range s.policy.Check(input.Password, input.Username) {
			errs.Add("password", problem)
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: hash,
	}
	question := &models.SecurityQuestion{
		Question: input.SecurityQuestion.Question,
		Answer:   input.SecurityQuestion.Answer,
	}

	if err := s.users.CreateWithSecurityQuestion(ctx, user, question); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newValidationError("username", msgUsernameTaken)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.RegistrationsTotal.Inc()
	s.logger.WithField("username", user.Username).Info("User registered")

	return user, nil
}

func (s *authService) Login(ctx context.Context, input *LoginInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.LoginFailuresTotal.Inc()
			return "", newValidationError(validation.NonFieldErrors, msgInvalidCredentials)
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		metrics.LoginFailuresTotal.Inc()
		return "", newValidationError(validation.NonFieldErrors, msgInvalidCredentials)
	}

	return s.tokens.Issue(user)
}

func (s *authService) GetSecurityQuestion(ctx context.Context, username string) (*models.SecurityQuestion, error) {
	_, question, err := s.findQuestion(ctx, username)
	return question, err
}

func (s *authService) ResetPassword(ctx context.Context, username string, input *ResetPasswordInput) error {
	user, question, err := s.findQuestion(ctx, username)
	if err != nil {
		return err
	}

	// Whitespace-only answers are blank, not a match for a blank stored answer.
	input.Answer = strings.TrimSpace(input.Answer)

	errs := validation.ValidateStruct(input)
	if errs == nil {
		errs = validation.FieldErrors{}
	}
	if input.Answer != "" && strings.TrimSpace(question.Answer) != input.Answer {
		errs.Add("answer", msgAnswerMismatch)
	}
	if input.Password != "" {
		for _, problem := range s.policy.Check(input.Password, user.Username) {
			errs.Add("password", problem)
		}
	}
	if len(errs) > 0 {
		outcome := "invalid"
		if _, ok := errs["answer"]; ok {
			outcome = "wrong_answer"
		}
		metrics.PasswordResetsTotal.WithLabelValues(outcome).Inc()
		return &ValidationError{Fields: errs}
	}

	hash, err := s.hashPassword(input.Password)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	metrics.PasswordResetsTotal.WithLabelValues("success").Inc()
	s.logger.WithField("username", user.Username).Info("Password reset via security question")

	return nil
}

// findQuestion loads the user and its security question; either missing is ErrNotFound.
func (s *authService) findQuestion(ctx context.Context, username string) (*models.User, *models.SecurityQuestion, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	question, err := s.users.FindSecurityQuestion(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to find security question: %w", err)
	}

	return user, question, nil
}

func (s *authService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
