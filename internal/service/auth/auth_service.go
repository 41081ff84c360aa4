// Package auth implements registration, login and token rotation.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	myredis "github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/redis"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dto/respond"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/constants"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/errorx"
	myjwt "github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/util/jwt"

	"go.uber.org/zap"
)

// Service handles accounts and sessions. One refresh token id per user is
// kept in redis, so a new login or refresh revokes the previous session.
type Service struct {
	repos *repository.Repositories
}

// NewService creates the auth service.
func NewService(repos *repository.Repositories) *Service {
	return &Service{repos: repos}
}

func refreshTokenKey(userID uint) string {
	return fmt.Sprintf("refresh_token:%d", userID)
}

// Register creates a new business plus its first (admin) user, atomically.
func (s *Service) Register(ctx context.Context, nomeEmpresa, nome, email, password string) (*respond.LoginRespond, error) {
	if _, err := s.repos.User.FindByEmail(email); err == nil {
		return nil, errorx.New(errorx.CodeInvalidParam, "email já cadastrado")
	} else if !errorx.IsNotFound(err) {
		return nil, err
	}

	var user *model.User
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		tenant := &model.Tenant{Nome: nomeEmpresa, Ativo: true}
		if err := tx.Tenant.Create(tenant); err != nil {
			return err
		}
		user = &model.User{
			TenantID:    tenant.ID,
			Nome:        nome,
			Email:       email,
			RawPassword: password,
			Role:        "admin",
		}
		return tx.User.Create(user)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("empresa registrada",
		zap.Uint("tenantId", user.TenantID), zap.String("email", email))
	return s.issueTokens(ctx, user)
}

// Login verifies the password and issues a fresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (*respond.LoginRespond, error) {
	user, err := s.repos.User.FindByEmail(email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "email ou senha incorretos")
		}
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "email ou senha incorretos")
	}

	if err := s.repos.User.TouchLastSignedIn(user.ID); err != nil {
		zap.L().Warn("falha ao registrar último login", zap.Error(err))
	}
	return s.issueTokens(ctx, user)
}

// Refresh validates the refresh token against redis and rotates the pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*respond.LoginRespond, error) {
	claims, err := myjwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "refresh token inválido")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "refresh token inválido")
	}

	storedID, err := myredis.GetKey(ctx, refreshTokenKey(claims.UserID))
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "sessão expirada, faça login novamente")
		}
		return nil, err
	}
	if storedID != claims.TokenID {
		// A newer login revoked this token.
		return nil, errorx.New(errorx.CodeUnauthorized, "sessão revogada, faça login novamente")
	}

	user, err := s.repos.User.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, user)
}

// Logout drops the stored refresh token id, invalidating the session.
func (s *Service) Logout(ctx context.Context, userID uint) error {
	return myredis.DelKey(ctx, refreshTokenKey(userID))
}

func (s *Service) issueTokens(ctx context.Context, user *model.User) (*respond.LoginRespond, error) {
	accessToken, err := myjwt.GenerateAccessToken(user.ID, user.TenantID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "falha ao gerar access token")
	}
	refreshToken, tokenID, err := myjwt.GenerateRefreshToken(user.ID, user.TenantID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "falha ao gerar refresh token")
	}

	ttl := time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS) * time.Hour
	if err := myredis.SetKeyEx(ctx, refreshTokenKey(user.ID), tokenID, ttl); err != nil {
		return nil, err
	}

	return &respond.LoginRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
		TenantID:     user.TenantID,
		Nome:         user.Nome,
		Email:        user.Email,
		Role:         user.Role,
	}, nil
}
