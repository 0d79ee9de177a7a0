package service

import (
	"context"
	"errors"
	"fmt"

	"gestionpos/internal/dto"
	"gestionpos/internal/model"
	"gestionpos/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// BcryptCost is the work factor for new password hashes.
var BcryptCost = 12

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Me(ctx context.Context, caller Caller) (*dto.MeResponse, error)
	CuentaActiva(ctx context.Context, userID uuid.UUID) error
	ListarRoles(ctx context.Context) ([]dto.RolResponse, error)
}

type authService struct {
	repo   repository.UsuarioRepository
	roles  repository.RolRepository
	tokens *TokenManager
}

func NewAuthService(repo repository.UsuarioRepository, roles repository.RolRepository, tokens *TokenManager) AuthService {
	return &authService{repo: repo, roles: roles, tokens: tokens}
}

// HashPassword returns the bcrypt hash stored for a password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login never tells an unknown user apart from a wrong password. Inactive
// accounts are treated as unknown.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("login: error consultando usuario")
		}
		return nil, ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrUnauthorized
	}
	return s.issuePair(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, TokenRefresh)
	if err != nil {
		return nil, err
	}
	caller, err := claims.Caller()
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.repo.FindByID(ctx, caller.UserID)
	if err != nil || !user.Activo {
		return nil, ErrUnauthorized
	}
	return s.issuePair(user)
}

// Me reads the caller back from the store so roles reflect the current state.
func (s *authService) Me(ctx context.Context, caller Caller) (*dto.MeResponse, error) {
	user, err := s.repo.FindByID(ctx, caller.UserID)
	if err != nil || !user.Activo {
		return nil, ErrUnauthorized
	}
	return &dto.MeResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Roles:    user.RolNames(),
	}, nil
}

// CuentaActiva returns ErrUnauthorized when the account was removed or
// deactivated after the token was issued.
func (s *authService) CuentaActiva(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrUnauthorized
	}
	if err != nil {
		return err
	}
	if !user.Activo {
		return ErrUnauthorized
	}
	return nil
}

func (s *authService) ListarRoles(ctx context.Context) ([]dto.RolResponse, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapRoles(roles), nil
}

func (s *authService) issuePair(user *model.Usuario) (*dto.LoginResponse, error) {
	access, err := s.tokens.Issue(user, TokenAccess)
	if err != nil {
		return nil, fmt.Errorf("firmando access token: %w", err)
	}
	refresh, err := s.tokens.Issue(user, TokenRefresh)
	if err != nil {
		return nil, fmt.Errorf("firmando refresh token: %w", err)
	}
	return &dto.LoginResponse{
		Access:   access,
		Refresh:  refresh,
		Username: user.Username,
		Roles:    user.RolNames(),
	}, nil
}

func mapRoles(roles []model.Rol) []dto.RolResponse {
	out := make([]dto.RolResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RolResponse{ID: r.ID.String(), Nombre: r.Nombre})
	}
	return out
}

// rolPorID resolves a group_id payload value.
func rolPorID(ctx context.Context, roles repository.RolRepository, groupID string) (*model.Rol, error) {
	id, err := uuid.Parse(groupID)
	if err != nil {
		return nil, Invalid("group_id", "El grupo especificado no existe.")
	}
	rol, err := roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Invalid("group_id", "El grupo especificado no existe.")
		}
		return nil, err
	}
	return rol, nil
}
