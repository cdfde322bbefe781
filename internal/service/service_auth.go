package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ashabalin/themeboard/internal/logger"
	"github.com/ashabalin/themeboard/internal/store"
	"github.com/ashabalin/themeboard/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// lifecycle using a UserRepository for accounts, a SessionRepository for
// tokens, and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository issues, resolves, and revokes bearer sessions.
	sessionRepository store.SessionRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

// Register creates a new user account and opens a session for it.
//
// The password is hashed with bcrypt before persistence; the plaintext never
// leaves this method. Returns the fresh session or:
//   - a wrapped store.ErrUserAlreadyExists on a username/email collision;
//   - any other wrapped storage error.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Session{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.Session{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	session, err := a.sessionRepository.Create(ctx, registeredUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("session creation after register failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}

// Login authenticates an existing user and opens a session.
//
// Both an unknown username and a wrong password yield ErrWrongCredentials so
// that responses do not reveal which part failed.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", req.Username).Msg("login attempt for unknown user")
			return models.Session{}, ErrWrongCredentials
		}

		log.Err(err).Str("username", req.Username).Msg("user search by username failed")
		return models.Session{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.Session{}, ErrWrongCredentials
	}

	session, err := a.sessionRepository.Create(ctx, foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("session creation after login failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	return session, nil
}

// Logout revokes the session behind token. A token that resolves to no
// active session is normalised to ErrSessionIsExpiredOrInvalid.
func (a *authService) Logout(ctx context.Context, token string) error {
	if err := a.sessionRepository.Delete(ctx, token); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrSessionIsExpiredOrInvalid
		}
		return fmt.Errorf("session revocation failed: %w", err)
	}

	return nil
}

// VerifySession resolves a bearer token to the user ID it is bound to.
//
// Any resolution failure — unknown, revoked, or expired token, or a session
// store outage — is normalised to ErrSessionIsExpiredOrInvalid so that
// callers cannot distinguish the cases.
func (a *authService) VerifySession(ctx context.Context, token string) (int64, error) {
	session, err := a.sessionRepository.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrSessionNotFound) {
			logger.FromContext(ctx).Err(err).Msg("session lookup failed")
		}
		return 0, ErrSessionIsExpiredOrInvalid
	}

	return session.UserID, nil
}
