package repositories

import (
	"context"
	"database/sql"
	"strings"

	"ayudamosBack/internal/models"
)

type PortfolioRepository struct {
	DB *sql.DB
}

func scanPortfolio(scan func(dest ...interface{}) error) (models.Portfolio, error) {
	var (
		p      models.Portfolio
		images []byte
	)
	err := scan(&p.ID, &p.ServiceID, &p.Title, &p.Description, &images,
		&p.Link, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Portfolio{}, err
	}
	p.Images = decodeStringList(images)
	return p, nil
}

func (r *PortfolioRepository) CreatePortfolio(ctx context.Context, p models.Portfolio) (models.Portfolio, error) {
	images, err := encodeJSON(p.Images)
	if err != nil {
		return models.Portfolio{}, err
	}
	result, err := r.DB.ExecContext(ctx, `
		INSERT INTO portfolios (service_id, title, description, images, link, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.ServiceID, p.Title, p.Description, images, p.Link, p.CompletedAt)
	if err != nil {
		return models.Portfolio{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Portfolio{}, err
	}
	return r.GetPortfolioByID(ctx, int(id))
}

func (r *PortfolioRepository) GetPortfolioByID(ctx context.Context, id int) (models.Portfolio, error) {
	p, err := scanPortfolio(r.DB.QueryRowContext(ctx, `
		SELECT id, service_id, title, description, images, link, completed_at, created_at, updated_at
		FROM portfolios
		WHERE id = ?`, id).Scan)
	if err == sql.ErrNoRows {
		return models.Portfolio{}, models.ErrPortfolioNotFound
	}
	if err != nil {
		return models.Portfolio{}, err
	}
	return p, nil
}

func (r *PortfolioRepository) ListByServiceID(ctx context.Context, serviceID int) ([]models.Portfolio, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, service_id, title, description, images, link, completed_at, created_at, updated_at
		FROM portfolios
		WHERE service_id = ?
		ORDER BY created_at DESC, id DESC`, serviceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	portfolios := []models.Portfolio{}
	for rows.Next() {
		p, err := scanPortfolio(rows.Scan)
		if err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

// UpdatePortfolio applies only the supplied fields.
func (r *PortfolioRepository) UpdatePortfolio(ctx context.Context, id int, req models.UpdatePortfolioRequest) error {
	var (
		sets   []string
		params []interface{}
	)
	if req.Title != nil {
		sets = append(sets, "title = ?")
		params = append(params, *req.Title)
	}
	if req.Description != nil {
		sets = append(sets, "description = ?")
		params = append(params, *req.Description)
	}
	if req.Images != nil {
		images, err := encodeJSON(*req.Images)
		if err != nil {
			return err
		}
		sets = append(sets, "images = ?")
		params = append(params, images)
	}
	if req.Link != nil {
		sets = append(sets, "link = ?")
		params = append(params, *req.Link)
	}
	if req.CompletedAt != nil {
		sets = append(sets, "completed_at = ?")
		params = append(params, *req.CompletedAt)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")
	params = append(params, id)

	_, err := r.DB.ExecContext(ctx,
		`UPDATE portfolios SET `+strings.Join(sets, ", ")+` WHERE id = ?`, params...)
	return err
}

func (r *PortfolioRepository) DeletePortfolio(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM portfolios WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrPortfolioNotFound
	}
	return nil
}
