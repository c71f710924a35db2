package storage

import "context"

// TokenStorage defines interface for storing the bearer token on client.
// Хранится единственный токен на клиент: сохранение перезаписывает
// предыдущее значение, страница "перезагружается" — токен восстанавливается.
type TokenStorage interface {
	// SaveToken stores the raw bearer token, overwriting any previous one
	SaveToken(ctx context.Context, token string) error

	// GetToken retrieves the stored bearer token
	// Returns ErrTokenNotFound if no token is stored
	GetToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored bearer token (logout)
	// Deleting an absent token is not an error
	DeleteToken(ctx context.Context) error
}
