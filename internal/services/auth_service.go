package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"karttem-admin/internal/auth"
	apperrors "karttem-admin/internal/errors"
	"karttem-admin/internal/models"
	"karttem-admin/internal/repositories"
	"karttem-admin/internal/utils"
	"karttem-admin/internal/validators"
	"karttem-admin/pkg/inmobiliaria"
	"karttem-admin/pkg/logger"

	"github.com/google/uuid"
)

// Reasons a session ends, used as the metric label.
const (
	RevokeLogout       = "logout"
	RevokeExpired      = "expired"
	RevokeUnauthorized = "unauthorized"
)

type AuthService struct {
	backend   AuthBackend
	sessions  repositories.SessionRepository
	validator validators.UserValidator
	activity  *ActivityRecorder
	secret    string
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(
	backend AuthBackend,
	sessions repositories.SessionRepository,
	validator validators.UserValidator,
	activity *ActivityRecorder,
	secret string,
	ttl time.Duration,
) *AuthService {
	return &AuthService{
		backend:   backend,
		sessions:  sessions,
		validator: validator,
		activity:  activity,
		secret:    secret,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Login checks the credentials against the backend and opens a panel session.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.ValidateLogin(req.Email, req.Password); err != nil {
		return nil, err
	}

	result, err := s.backend.Login(ctx, req.Email, req.Password)
	if err != nil {
		logger.GlobalLogger.Warnf("login failed for %s: %v", req.Email, err)
		return nil, loginError(err)
	}

	now := s.now()
	ttl := s.ttl
	// never outlive the backend token
	if exp, ok := auth.BackendTokenExpiry(result.JWT); ok && exp.Sub(now) < ttl {
		ttl = exp.Sub(now)
	}
	if ttl <= 0 {
		return nil, apperrors.NewSessionExpiredError(fmt.Errorf("backend issued an expired token"))
	}

	user := models.SessionUser{
		ID:        result.User.ID.String(),
		Email:     result.User.Email,
		Firstname: result.User.Firstname,
		Lastname:  result.User.Lastname,
	}
	if user.Email == "" {
		user.Email = req.Email
	}

	session := &models.Session{
		ID:        uuid.NewString(),
		User:      user,
		Token:     inmobiliaria.BearerToken(result.JWT),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := s.sessions.Save(ctx, session, ttl); err != nil {
		return nil, utils.WrapError(err, "saving session %s", session.ID)
	}

	token, err := auth.GenerateJWT(session.ID, user.ID, user.Email, user.FullName(), s.secret, ttl)
	if err != nil {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, err
	}

	s.activity.Record(WithActor(ctx, user), models.ActionLogin, models.EntitySession, "", "Inicio de sesión")
	logger.GlobalLogger.Printf("user %s signed in", user.Email)

	return &models.LoginResponse{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		User:      user,
	}, nil
}

func loginError(err error) error {
	var apiErr *inmobiliaria.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		msg := apiErr.Message
		if msg == "" || msg == http.StatusText(apiErr.StatusCode) {
			msg = apperrors.MsgLoginFailed
		}
		return apperrors.NewAppError("backend rejected login", msg, apperrors.ErrCodeUnauthenticated, http.StatusUnauthorized, err)
	}
	return apperrors.WithFallback(err, apperrors.MsgLoginFailed)
}

// Authenticate resolves the session behind a signed session token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.Session, error) {
	claims, err := auth.ValidateJWT(token, s.secret)
	if err != nil {
		return nil, apperrors.NewUnauthenticatedError(err.Error())
	}

	session, err := s.sessions.FindByID(ctx, claims.SessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, apperrors.NewUnauthenticatedError("session not found")
	}
	if err != nil {
		return nil, err
	}

	if auth.BackendTokenExpired(session.Token, s.now()) {
		s.Revoke(ctx, session.ID, RevokeExpired)
		return nil, apperrors.NewSessionExpiredError(fmt.Errorf("backend token expired"))
	}
	return session, nil
}

// Logout ends the session.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	if session == nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	utils.RecordSessionRevoked(RevokeLogout)
	s.activity.Record(WithActor(ctx, session.User), models.ActionLogout, models.EntitySession, "", "Cierre de sesión")
	return nil
}

// Revoke drops a session the backend no longer accepts.
func (s *AuthService) Revoke(ctx context.Context, sessionID, reason string) {
	if sessionID == "" {
		return
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		logger.GlobalLogger.Errorf("failed to revoke session %s: %v", sessionID, err)
		return
	}
	utils.RecordSessionRevoked(reason)
	logger.GlobalLogger.Printf("session %s revoked (%s)", sessionID, reason)
}
