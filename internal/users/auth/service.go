// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements login and bearer-token authentication.

Architecture:

  - Authenticator: verifies a username and password against the identity store.
  - Service: the login use case (throttle, verify, issue a token).
  - Guard: resolves "Authorization: Bearer <token>" into the calling identity
    on every protected request.
  - RedisAttemptLimiter: optional failed-login throttle.

Tokens are stateless HS256 JWTs carrying only sub (the username), iat and
exp. There is no server-side revocation.
*/
package auth

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// # Service Layer

// Service implements the login use case.
type Service struct {
	authenticator *Authenticator
	tokens        TokenIssuer
	limiter       AttemptLimiter
	logger        *slog.Logger
}

// NewService constructs a new [Service]. A nil limiter disables throttling.
func NewService(authenticator *Authenticator, tokens TokenIssuer, limiter AttemptLimiter, logger *slog.Logger) *Service {
	if limiter == nil {
		limiter = NoopAttemptLimiter{}
	}
	return &Service{
		authenticator: authenticator,
		tokens:        tokens,
		limiter:       limiter,
		logger:        logger,
	}
}

// LoginInput carries the submitted credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	User      *identity.Identity `json:"user"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
}

/*
Login verifies the credentials and issues an access token.

Flow:
 1. Reject with RATE_LIMITED (429) if the username is throttled.
 2. Verify the credentials; a credential failure is counted.
 3. Clear the failure counter and sign a token for the username.

The throttle fails open: when Redis is unreachable the error is logged and
the login proceeds.
*/
func (service *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	allowed, retryAfter, err := service.limiter.Allow(ctx, input.Username)
	if err != nil {
		service.logger.WarnContext(ctx, "login_throttle_unavailable", slog.Any("error", err))
	} else if !allowed {
		service.logger.WarnContext(ctx, "login_throttled",
			slog.String("username", input.Username),
			slog.Duration("retry_after", retryAfter),
		)
		return nil, apperr.RateLimited(int(math.Ceil(retryAfter.Seconds())))
	}

	user, err := service.authenticator.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			service.logger.InfoContext(ctx, "login_failed", slog.String("username", input.Username))
			if recordErr := service.limiter.RecordFailure(ctx, input.Username); recordErr != nil {
				service.logger.WarnContext(ctx, "login_throttle_unavailable", slog.Any("error", recordErr))
			}
		}
		return nil, err
	}

	if err := service.limiter.Reset(ctx, user.Username); err != nil {
		service.logger.WarnContext(ctx, "login_throttle_unavailable", slog.Any("error", err))
	}

	token, expiresAt, err := service.tokens.Issue(user.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.logger.InfoContext(ctx, "login_succeeded", slog.String("username", user.Username))

	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
