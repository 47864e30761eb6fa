package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/influencer-stats-api/infrastructure/repository"
	"github.com/vfg2006/influencer-stats-api/internal/config"
	"github.com/vfg2006/influencer-stats-api/internal/domain"
	"github.com/vfg2006/influencer-stats-api/pkg/apiErrors"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

const defaultTokenTTL = 30 * 24 * time.Hour

type Authenticator interface {
	LoginAdmin(email, password string) (*domain.TokenResponse, error)
	IssueReferrerToken(ctx context.Context, referrerID string) (*domain.TokenResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	referrerRepo repository.ReferrerRepository
	cfg          *config.Config
	now          func() time.Time
}

func NewService(referrerRepo repository.ReferrerRepository, cfg *config.Config) Authenticator {
	return &Service{
		referrerRepo: referrerRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

// LoginAdmin compara as credenciais com o admin configurado e emite um token de admin
func (s *Service) LoginAdmin(email, password string) (*domain.TokenResponse, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	adminEmail := handleEmail(s.cfg.Auth.AdminEmail)
	if adminEmail == "" || s.cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("login: admin credentials not configured")
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if handleEmail(email) != adminEmail {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Auth.AdminPasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	return s.issue(domain.Claims{
		Email: adminEmail,
		Role:  domain.RoleAdmin,
	})
}

// IssueReferrerToken emite o token que o painel do influenciador usa para consultar as estatísticas
func (s *Service) IssueReferrerToken(ctx context.Context, referrerID string) (*domain.TokenResponse, error) {
	if referrerID == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID do influenciador é obrigatório")
	}

	referrer, err := s.referrerRepo.GetByID(ctx, referrerID)
	if err != nil {
		return nil, NewReferrerAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, referrerID, "Erro ao consultar influenciador no banco de dados")
	}

	if referrer == nil {
		return nil, NewReferrerAuthError(ErrReferrerNotFound, apiErrors.ErrReferrerNotFound, referrerID, "Influenciador não encontrado")
	}

	return s.issue(domain.Claims{
		ReferrerID: referrer.ID,
		Role:       domain.RoleReferrer,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: referrer.ID,
		},
	})
}

func (s *Service) issue(claims domain.Claims) (*domain.TokenResponse, error) {
	ttl := s.cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := s.now()
	expiresAt := now.Add(ttl)

	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Auth.SecretKey))
	if err != nil {
		return nil, NewAuthError(ErrTokenGeneration, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      claims.Role,
	}, nil
}

// ValidateToken resolve o principal autenticado ou rejeita o token
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.SecretKey), nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "Token expirado")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token inválido")
	}

	switch claims.Role {
	case domain.RoleAdmin:
	case domain.RoleReferrer:
		if claims.ReferrerID == "" {
			return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Token de influenciador sem identificador")
		}
	default:
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "Papel desconhecido no token")
	}

	return claims, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
