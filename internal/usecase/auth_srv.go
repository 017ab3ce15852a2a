package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/pkg/mailer"
	"cinema-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	Signin(ctx context.Context, req *request.SigninRequest) (*response.SigninResponse, error)
	RegisterEmployee(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error)
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & otpRepo
	config *utils.Config
	mail   mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Signup registers a public account. New accounts always start as USER.
func (s *authService) Signup(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	return s.register(ctx, req, entity.RoleUser)
}

// RegisterEmployee creates an account with no working role yet; a super
// admin assigns one later. Uniqueness is checked on email only.
func (s *authService) RegisterEmployee(ctx context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	return s.register(ctx, req, entity.RoleUnassigned)
}

func (s *authService) register(ctx context.Context, req *request.SignupRequest, role entity.UserRole) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Check email is free
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("account with this email %w", ErrConflict)
	}

	// 3. Check username is free (public signup only; employee intake
	// keys uniqueness on email alone)
	if role == entity.RoleUser {
		existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
			return nil, fmt.Errorf("check username: %w", err)
		}
		if existingUser != nil {
			return nil, fmt.Errorf("account with this username %w", ErrConflict)
		}
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		Role:          role,
		EmailVerified: false,
	}

	// 6. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			// Concurrent signup with the same email or username lost
			// the race at the unique index
			return nil, fmt.Errorf("account %w", ErrConflict)
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	// 7. Send verification mail (async)
	go s.sendVerificationOTP(user)

	// 8. Issue identity token
	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	resp := response.AuthToResponse(user, token)
	return &resp, nil
}

func (s *authService) Signin(ctx context.Context, req *request.SigninRequest) (*response.SigninResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signin validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Same failure for missing account and wrong password, to avoid
	// leaking which emails exist
	if user == nil {
		s.log.Warn("User not found for signin", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 4. Issue identity token
	token, err := utils.GenerateToken(s.config.JWT, user.ID, string(user.Role))
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User signed in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.SigninResponse{
		UserID: user.ID.String(),
		Token:  token,
	}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find valid OTP
	otp, err := s.repo.OTP.FindValidOTP(ctx, req.Email, req.OTP)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("verify OTP: %w", err)
	}
	if otp == nil {
		return fmt.Errorf("%w: invalid or expired OTP", ErrValidation)
	}

	// 3. Mark OTP as used
	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Warn("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		// Continue anyway
	}

	// 4. Flip verification flag
	if err := s.repo.User.SetVerified(ctx, otp.UserID); err != nil {
		s.log.Error("Failed to update user verification", zap.Error(err), zap.String("user_id", otp.UserID.String()))
		return fmt.Errorf("verify email: %w", err)
	}

	s.log.Info("Email verified",
		zap.String("email", req.Email),
		zap.String("user_id", otp.UserID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) sendVerificationOTP(user *entity.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	otpCode := utils.GenerateOTP(s.config.OTP.Length)
	expiresAt := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Email:     user.Email,
		OTPCode:   otpCode,
		ExpiresAt: expiresAt,
		IsUsed:    false,
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", user.Email))
		return
	}

	if err := s.mail.SendVerificationCode(user.Email, otpCode); err != nil {
		s.log.Error("Failed to send verification mail", zap.Error(err), zap.String("email", user.Email))
	}
}

func isDuplicate(err error) bool {
	return errors.Is(err, repository.ErrDuplicateName)
}
