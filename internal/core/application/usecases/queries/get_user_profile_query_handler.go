package queries

import (
	"context"

	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

// Handle never exposes the password hash.
func (h GetUserProfileQueryHandler) Handle(ctx context.Context, query GetUserProfileQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, email, role, verified
		FROM users
		WHERE id = ?
	`, query.UserID().Uint()).Rows()
	if err != nil {
		return UserView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return UserView{}, err
		}
		return UserView{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	var profile UserView
	if err = rows.Scan(&profile.ID, &profile.Email, &profile.Role, &profile.Verified); err != nil {
		return UserView{}, err
	}

	return profile, nil
}
