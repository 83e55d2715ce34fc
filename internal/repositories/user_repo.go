package repositories

import (
	"context"
	"database/sql"
	"strings"

	"ayudamosBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

const userColumns = `id, email, password, first_name, last_name, phone, user_type, is_verified,
       rating, total_reviews, location, description, profile_image, created_at, updated_at`

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName, &u.Phone, &u.UserType,
		&u.IsVerified, &u.Rating, &u.TotalReviews, &u.Location, &u.Description,
		&u.ProfileImage, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users
			(email, password, first_name, last_name, phone, user_type, is_verified, total_reviews, location, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, 0, ?, ?, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		user.Email, user.Password, user.FirstName, user.LastName, user.Phone,
		user.UserType, user.Location, user.Description,
	)
	if err != nil {
		return models.User{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return r.GetUserByID(ctx, int(id))
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetUserByEmail returns the zero User (ID == 0) when no row matches, so
// callers can use it both for login and for duplicate checks.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return models.User{}, nil
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// PhoneInUse reports whether any user other than excludeID holds the phone.
func (r *UserRepository) PhoneInUse(ctx context.Context, phone string, excludeID int) (bool, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE phone = ? AND id <> ?`,
		phone, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateProfile applies only the supplied fields; nil fields are left as
// stored.
func (r *UserRepository) UpdateProfile(ctx context.Context, id int, req models.UpdateProfileRequest) (models.User, error) {
	var (
		sets   []string
		params []interface{}
	)
	if req.FirstName != nil {
		sets = append(sets, "first_name = ?")
		params = append(params, *req.FirstName)
	}
	if req.LastName != nil {
		sets = append(sets, "last_name = ?")
		params = append(params, *req.LastName)
	}
	if req.Phone != nil {
		sets = append(sets, "phone = ?")
		params = append(params, *req.Phone)
	}
	if req.Location != nil {
		sets = append(sets, "location = ?")
		params = append(params, *req.Location)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		params = append(params, *req.Description)
	}
	if req.ProfileImage != nil {
		sets = append(sets, "profile_image = ?")
		params = append(params, *req.ProfileImage)
	}

	if len(sets) > 0 {
		sets = append(sets, "updated_at = NOW()")
		params = append(params, id)
		query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
		result, err := r.DB.ExecContext(ctx, query, params...)
		if err != nil {
			return models.User{}, err
		}
		if _, err := result.RowsAffected(); err != nil {
			return models.User{}, err
		}
	}
	return r.GetUserByID(ctx, id)
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int, hashedPassword string) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password = ?, updated_at = NOW() WHERE id = ?`,
		hashedPassword, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
