package repositories

import (
	"context"
	"funding_approval_system/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type userRepository struct {
	repository
}

type UserRepository interface {
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
	GetOneByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
}

func NewUserRepository(db *pg.DB) UserRepository {
	return &userRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *userRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	_, err := r.db.ModelContext(ctx, user).
		OnConflict("(telegram_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("telegram_nickname = EXCLUDED.telegram_nickname").
		Set("temp_request = EXCLUDED.temp_request").
		Set("telegram_state = EXCLUDED.telegram_state").
		Set("updated_at = now()").
		Returning("*").
		Insert()
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) GetOneByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user := &models.User{}

	err := r.db.ModelContext(ctx, user).
		Where("telegram_id = ?", telegramID).
		Select()

	return user, err
}
