package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mahhmanee/Sup/internal/models"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateOrUpdate upserts the user and refreshes last_seen, so every
// contact with the bot leaves a current directory record.
func (r *UserRepository) CreateOrUpdate(ctx context.Context, telegramUser models.TelegramUser) (*models.User, error) {
	user := &models.User{}

	query := `
		INSERT INTO users (id, username, first_name, last_name, is_bot, language_code, last_seen)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			is_bot = EXCLUDED.is_bot,
			language_code = EXCLUDED.language_code,
			updated_at = CURRENT_TIMESTAMP,
			last_seen = CURRENT_TIMESTAMP
		RETURNING id, username, first_name, last_name, is_bot, language_code, created_at, updated_at, last_seen`

	err := r.db.QueryRow(ctx, query,
		telegramUser.ID,
		telegramUser.Username,
		telegramUser.FirstName,
		telegramUser.LastName,
		telegramUser.IsBot,
		telegramUser.LanguageCode,
	).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.IsBot,
		&user.LanguageCode,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.LastSeen,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create or update user: %w", err)
	}

	return user, nil
}
