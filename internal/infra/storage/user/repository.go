package user

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с профилями пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertProfile сохраняет профиль пользователя из верифицированного initData
// Телефон не перезаписывается: его пользователь сообщает боту отдельно
func (r *Repository) UpsertProfile(ctx context.Context, u *domain.User) error {
	query, args, err := psqlbuilder.Insert("users").
		Columns(
			"tg_id",
			"first_name",
			"last_name",
			"username",
		).
		Values(
			u.TgID,
			u.FirstName,
			u.LastName,
			u.Username,
		).
		Suffix(`ON CONFLICT (tg_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			username = EXCLUDED.username,
			updated_at = now()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertProfile - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertProfile - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
