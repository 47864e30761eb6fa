package middleware

import (
	"context"

	"github.com/vfg2006/influencer-stats-api/internal/domain"
)

// WithClaims guarda o principal autenticado no contexto
func WithClaims(ctx context.Context, claims *domain.Claims) context.Context {
	return context.WithValue(ctx, ContextKeyUser, claims)
}
