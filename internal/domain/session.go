package domain

import "context"

type contextKey string

const claimsContextKey contextKey = "user"

// WithClaims anexa o usuário autenticado ao contexto da requisição
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext devolve nil quando não há usuário autenticado
func ClaimsFromContext(ctx context.Context) *Claims {
	if ctx == nil {
		return nil
	}
	claims, _ := ctx.Value(claimsContextKey).(*Claims)
	return claims
}
