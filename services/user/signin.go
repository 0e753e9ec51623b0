package user

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"marketplace/models"
	"marketplace/utils"
)

// Login verifies credentials and appends a fresh session token to the user's
// token set. The append is atomic and never invalidates existing tokens:
// each device keeps its own session.
func (s *DefaultUserService) Login(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, err
	}
	if userRec == nil {
		return nil, utils.AuthError{Message: "invalid credentials"}
	}
	if !utils.VerifyPassword(password, userRec.Credential.Salt, userRec.Credential.Hash) {
		return nil, utils.AuthError{Message: "invalid credentials"}
	}

	token, err := utils.NewToken()
	if err != nil {
		utils.GetLogger().Error("Login: failed to generate token", zap.Error(err))
		return nil, err
	}
	record := models.SessionToken{Hash: utils.HashToken(token), IssuedAt: time.Now()}
	if err := s.Repo.AppendToken(userRec.ID, record); err != nil {
		return nil, err
	}
	userRec.Tokens = append(userRec.Tokens, record)

	return &AuthResponse{User: userRec, Token: token}, nil
}

// Authenticate resolves a bearer token to its user. The token-hash lookup is
// cached; a miss falls back to the store. Revoked tokens never authenticate.
func (s *DefaultUserService) Authenticate(token string) (*models.User, error) {
	if token == "" {
		return nil, utils.AuthError{Message: "invalid or expired token"}
	}
	hash := utils.HashToken(token)

	if s.AuthCache != nil {
		ctx := context.Background()
		cacheKey := utils.AuthCachePrefix + hash
		if userID, err := s.AuthCache.Get(ctx, cacheKey).Result(); err == nil {
			// A cache hit is a hint, not proof: the token must still be
			// unrevoked on the user record itself, or a failed eviction
			// would keep a logged-out session alive.
			userRec, err := s.Repo.GetByID(userID)
			if err == nil && userRec != nil && userRec.HasActiveToken(hash) {
				_ = s.AuthCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
				return userRec, nil
			}
			// Stale cache entry; fall through to the token lookup.
			_ = s.AuthCache.Del(ctx, cacheKey).Err()
		}
	}

	userRec, err := s.Repo.GetByTokenHash(hash)
	if err != nil {
		utils.GetLogger().Error("Authenticate: token lookup failed", zap.Error(err))
		return nil, err
	}
	if userRec == nil {
		return nil, utils.AuthError{Message: "invalid or expired token"}
	}

	if s.AuthCache != nil {
		ctx := context.Background()
		_ = s.AuthCache.Set(ctx, utils.AuthCachePrefix+hash, userRec.ID.Hex(), utils.AuthCacheTTL).Err()
	}
	return userRec, nil
}

// Logout revokes the presented session token and drops its cache entry.
// Other sessions of the same user stay valid.
func (s *DefaultUserService) Logout(actor *models.User, token string) error {
	hash := utils.HashToken(token)
	if err := s.Repo.RevokeToken(actor.ID, hash, time.Now()); err != nil {
		return err
	}
	if s.AuthCache != nil {
		if err := s.AuthCache.Del(context.Background(), utils.AuthCachePrefix+hash).Err(); err != nil {
			utils.GetLogger().Warn("Logout: failed to evict cached token", zap.Error(err))
		}
	}
	return nil
}
