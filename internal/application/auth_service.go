package application

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	bookingDomain "github.com/turfbook/service-booking/internal/domain/booking"
	"github.com/turfbook/service-booking/pkg/auth"
	"github.com/turfbook/service-booking/pkg/config"
	"github.com/turfbook/service-booking/pkg/domain"
)

const minPasswordLength = 6

// SignInRequest holds administrator credentials.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse carries the issued access token.
type SignInResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService gates entry to the administrative endpoints. It produces no
// domain state beyond the issued token.
type AuthService struct {
	admin      config.AdminConfig
	adminID    uuid.UUID
	jwtManager *auth.JWTManager
	accessTTL  time.Duration
	logger     *zap.Logger
}

// NewAuthService creates an AuthService for the configured administrator.
func NewAuthService(admin config.AdminConfig, jwtManager *auth.JWTManager, accessTTL time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		admin:      admin,
		adminID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(admin.Email)),
		jwtManager: jwtManager,
		accessTTL:  accessTTL,
		logger:     logger,
	}
}

// SignIn validates the credentials and issues an admin access token.
// Field validation runs before the credential check, and a failed check is
// always the same error regardless of which part mismatched.
func (s *AuthService) SignIn(ctx context.Context, req SignInRequest) (*SignInResponse, error) {
	if err := bookingDomain.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if len(req.Password) < minPasswordLength {
		return nil, domain.NewFieldValidationError(domain.CodeInvalidInput, "password", "password must be at least 6 characters")
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.Email)) == 1
	passwordErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !emailMatch || passwordErr != nil {
		s.logger.Warn("failed sign-in attempt", zap.String("email", req.Email))
		return nil, domain.NewUnauthorizedError("invalid email or password")
	}

	token, err := s.jwtManager.GenerateAccessToken(s.adminID, s.admin.Email, auth.RoleAdmin)
	if err != nil {
		return nil, domain.NewUnauthorizedError("failed to issue token")
	}

	return &SignInResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().UTC().Add(s.accessTTL),
	}, nil
}
