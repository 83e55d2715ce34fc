package repositories

import (
	"context"
	"database/sql"
	"strings"

	"ayudamosBack/internal/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

// buildServiceFilters turns the parsed listing query into WHERE conditions
// and their parameters. Free-text search matches title, description and the
// provider's first/last name case-insensitively; the location filter matches
// the location text by substring but the service-areas array by exact
// membership (the two intentionally differ).
func buildServiceFilters(f models.ServiceFilter) ([]string, []interface{}) {
	var (
		conditions []string
		params     []interface{}
	)

	if f.CategoryID > 0 {
		conditions = append(conditions, "s.category_id = ?")
		params = append(params, f.CategoryID)
	}
	if f.Search != "" {
		conditions = append(conditions,
			"(LOWER(s.title) LIKE ? OR LOWER(s.description) LIKE ? OR LOWER(u.first_name) LIKE ? OR LOWER(u.last_name) LIKE ?)")
		like := "%" + strings.ToLower(f.Search) + "%"
		params = append(params, like, like, like, like)
	}
	if f.Location != "" {
		conditions = append(conditions,
			"(LOWER(s.location) LIKE ? OR JSON_CONTAINS(s.service_areas, JSON_QUOTE(?)))")
		params = append(params, "%"+strings.ToLower(f.Location)+"%", f.Location)
	}
	if f.MinPrice != nil {
		conditions = append(conditions, "s.min_price >= ?")
		params = append(params, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		conditions = append(conditions, "s.max_price <= ?")
		params = append(params, *f.MaxPrice)
	}
	if f.VerifiedOnly {
		conditions = append(conditions, "u.is_verified = 1")
	}
	return conditions, params
}

// serviceOrderClause maps a sort key to a deterministic ORDER BY. "rating"
// ranks verified providers first, then provider rating, then views; "price"
// sorts by min_price ascending with NULL prices last.
func serviceOrderClause(sortBy string) string {
	switch sortBy {
	case "views":
		return "s.views DESC, s.id DESC"
	case "recent":
		return "s.created_at DESC, s.id DESC"
	case "price":
		return "s.min_price IS NULL, s.min_price ASC, s.id DESC"
	default: // rating
		return "u.is_verified DESC, u.rating DESC, s.views DESC, s.id DESC"
	}
}

const serviceSelectColumns = `
	s.id, s.provider_id, s.category_id, s.title, s.description, s.location,
	s.min_price, s.max_price, s.images, s.service_areas, s.available_hours,
	s.is_active, s.views, s.created_at, s.updated_at,
	u.id, u.first_name, u.last_name, u.phone, u.email, u.profile_image,
	u.rating, u.total_reviews, u.is_verified,
	c.id, c.name, c.icon, c.color`

func scanServiceWithJoins(scan func(dest ...interface{}) error) (models.Service, error) {
	var (
		s      models.Service
		images []byte
		areas  []byte
		hours  []byte
	)
	err := scan(
		&s.ID, &s.ProviderID, &s.CategoryID, &s.Title, &s.Description, &s.Location,
		&s.MinPrice, &s.MaxPrice, &images, &areas, &hours,
		&s.IsActive, &s.Views, &s.CreatedAt, &s.UpdatedAt,
		&s.Provider.ID, &s.Provider.FirstName, &s.Provider.LastName, &s.Provider.Phone,
		&s.Provider.Email, &s.Provider.ProfileImage, &s.Provider.Rating,
		&s.Provider.TotalReviews, &s.Provider.IsVerified,
		&s.Category.ID, &s.Category.Name, &s.Category.Icon, &s.Category.Color,
	)
	if err != nil {
		return models.Service{}, err
	}
	s.Images = decodeStringList(images)
	s.ServiceAreas = decodeStringList(areas)
	s.AvailableHours = decodeHours(hours)
	return s, nil
}

// ListServices returns one page of active services matching the filter, with
// the total match count for pagination. Every row carries provider/category
// summaries plus up to 3 newest reviews and 5 newest portfolio entries.
func (r *ServiceRepository) ListServices(ctx context.Context, f models.ServiceFilter) ([]models.Service, int, error) {
	conditions, params := buildServiceFilters(f)
	conditions = append([]string{"s.is_active = 1"}, conditions...)
	where := " WHERE " + strings.Join(conditions, " AND ")

	joins := `
		FROM services s
		JOIN users u ON s.provider_id = u.id
		JOIN categories c ON s.category_id = c.id
	`

	var total int
	countQuery := `SELECT COUNT(*)` + joins + where
	if err := r.DB.QueryRowContext(ctx, countQuery, params...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + serviceSelectColumns + joins + where +
		` ORDER BY ` + serviceOrderClause(f.SortBy) + ` LIMIT ? OFFSET ?`
	offset := (f.Page - 1) * f.Limit
	params = append(params, f.Limit, offset)

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		s, err := scanServiceWithJoins(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range services {
		reviews, err := r.reviewsForService(ctx, services[i].ID, 3)
		if err != nil {
			return nil, 0, err
		}
		services[i].Reviews = reviews

		portfolios, err := r.portfoliosForService(ctx, services[i].ID, 5)
		if err != nil {
			return nil, 0, err
		}
		services[i].Portfolios = portfolios
	}
	return services, total, nil
}

// GetServiceByID loads the public detail view of an active service: all
// reviews, all portfolio entries and the provider's full profile fields.
// Inactive and missing ids both surface as ErrServiceNotFound.
func (r *ServiceRepository) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	return r.getService(ctx, id, true)
}

// GetServiceAnyStatus is the same detail view without the active filter, for
// the owner looking at (or just having edited) a deactivated listing.
func (r *ServiceRepository) GetServiceAnyStatus(ctx context.Context, id int) (models.Service, error) {
	return r.getService(ctx, id, false)
}

func (r *ServiceRepository) getService(ctx context.Context, id int, activeOnly bool) (models.Service, error) {
	query := `SELECT ` + serviceSelectColumns + `, u.location, u.description, u.created_at
		FROM services s
		JOIN users u ON s.provider_id = u.id
		JOIN categories c ON s.category_id = c.id
		WHERE s.id = ?`
	if activeOnly {
		query += ` AND s.is_active = 1`
	}

	var (
		s      models.Service
		images []byte
		areas  []byte
		hours  []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.ProviderID, &s.CategoryID, &s.Title, &s.Description, &s.Location,
		&s.MinPrice, &s.MaxPrice, &images, &areas, &hours,
		&s.IsActive, &s.Views, &s.CreatedAt, &s.UpdatedAt,
		&s.Provider.ID, &s.Provider.FirstName, &s.Provider.LastName, &s.Provider.Phone,
		&s.Provider.Email, &s.Provider.ProfileImage, &s.Provider.Rating,
		&s.Provider.TotalReviews, &s.Provider.IsVerified,
		&s.Category.ID, &s.Category.Name, &s.Category.Icon, &s.Category.Color,
		&s.Provider.Location, &s.Provider.Description, &s.Provider.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Service{}, models.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}
	s.Images = decodeStringList(images)
	s.ServiceAreas = decodeStringList(areas)
	s.AvailableHours = decodeHours(hours)

	if s.Reviews, err = r.reviewsForService(ctx, s.ID, 0); err != nil {
		return models.Service{}, err
	}
	if s.Portfolios, err = r.portfoliosForService(ctx, s.ID, 0); err != nil {
		return models.Service{}, err
	}
	return s, nil
}

// GetServiceRow fetches the bare service row regardless of the active flag.
// Ownership checks and the review engine go through here.
func (r *ServiceRepository) GetServiceRow(ctx context.Context, id int) (models.Service, error) {
	query := `
		SELECT id, provider_id, category_id, title, description, location,
		       min_price, max_price, images, service_areas, available_hours,
		       is_active, views, created_at, updated_at
		FROM services
		WHERE id = ?
	`
	var (
		s      models.Service
		images []byte
		areas  []byte
		hours  []byte
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.ProviderID, &s.CategoryID, &s.Title, &s.Description, &s.Location,
		&s.MinPrice, &s.MaxPrice, &images, &areas, &hours,
		&s.IsActive, &s.Views, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.Service{}, models.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}
	s.Images = decodeStringList(images)
	s.ServiceAreas = decodeStringList(areas)
	s.AvailableHours = decodeHours(hours)
	return s, nil
}

func (r *ServiceRepository) CreateService(ctx context.Context, s models.Service) (models.Service, error) {
	images, err := encodeJSON(s.Images)
	if err != nil {
		return models.Service{}, err
	}
	areas, err := encodeJSON(s.ServiceAreas)
	if err != nil {
		return models.Service{}, err
	}
	hours, err := encodeJSON(s.AvailableHours)
	if err != nil {
		return models.Service{}, err
	}

	query := `
		INSERT INTO services
			(provider_id, category_id, title, description, location, min_price, max_price,
			 images, service_areas, available_hours, is_active, views, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, 0, NOW(), NOW())
	`
	result, err := r.DB.ExecContext(ctx, query,
		s.ProviderID, s.CategoryID, s.Title, s.Description, s.Location,
		s.MinPrice, s.MaxPrice, images, areas, hours,
	)
	if err != nil {
		return models.Service{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.Service{}, err
	}
	return r.GetServiceByID(ctx, int(id))
}

// UpdateService applies only the supplied fields of the partial update.
func (r *ServiceRepository) UpdateService(ctx context.Context, id int, req models.UpdateServiceRequest) error {
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
	if req.Location != nil {
		sets = append(sets, "location = ?")
		params = append(params, *req.Location)
	}
	if req.MinPrice.Set {
		sets = append(sets, "min_price = ?")
		params = append(params, req.MinPrice.Value)
	}
	if req.MaxPrice.Set {
		sets = append(sets, "max_price = ?")
		params = append(params, req.MaxPrice.Value)
	}
	if req.Images != nil {
		images, err := encodeJSON(*req.Images)
		if err != nil {
			return err
		}
		sets = append(sets, "images = ?")
		params = append(params, images)
	}
	if req.ServiceAreas != nil {
		areas, err := encodeJSON(*req.ServiceAreas)
		if err != nil {
			return err
		}
		sets = append(sets, "service_areas = ?")
		params = append(params, areas)
	}
	if req.AvailableHours != nil {
		hours, err := encodeJSON(*req.AvailableHours)
		if err != nil {
			return err
		}
		sets = append(sets, "available_hours = ?")
		params = append(params, hours)
	}
	if req.IsActive != nil {
		sets = append(sets, "is_active = ?")
		params = append(params, *req.IsActive)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")
	params = append(params, id)

	query := `UPDATE services SET ` + strings.Join(sets, ", ") + ` WHERE id = ?`
	result, err := r.DB.ExecContext(ctx, query, params...)
	if err != nil {
		return err
	}
	if _, err := result.RowsAffected(); err != nil {
		return err
	}
	return nil
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrServiceNotFound
	}
	return nil
}

// IncrementViews bumps the counter by exactly one; the row-level UPDATE is
// what serializes concurrent visits.
func (r *ServiceRepository) IncrementViews(ctx context.Context, id int) error {
	_, err := r.DB.ExecContext(ctx, `UPDATE services SET views = views + 1 WHERE id = ?`, id)
	return err
}

// GetServicesByProviderID returns all of a provider's services, active or
// not, each with recent reviews, the full portfolio and the latest contact
// logs.
func (r *ServiceRepository) GetServicesByProviderID(ctx context.Context, providerID int) ([]models.Service, error) {
	query := `SELECT ` + serviceSelectColumns + `
		FROM services s
		JOIN users u ON s.provider_id = u.id
		JOIN categories c ON s.category_id = c.id
		WHERE s.provider_id = ?
		ORDER BY s.created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		s, err := scanServiceWithJoins(rows.Scan)
		if err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range services {
		if services[i].Reviews, err = r.reviewsForService(ctx, services[i].ID, 5); err != nil {
			return nil, err
		}
		if services[i].Portfolios, err = r.portfoliosForService(ctx, services[i].ID, 0); err != nil {
			return nil, err
		}
		if services[i].ContactLogs, err = r.contactLogsForService(ctx, services[i].ID, 10); err != nil {
			return nil, err
		}
	}
	return services, nil
}

// reviewsForService loads a service's reviews newest first; limit 0 means all.
func (r *ServiceRepository) reviewsForService(ctx context.Context, serviceID, limit int) ([]models.Review, error) {
	query := `
		SELECT r.id, r.reviewer_id, r.service_id, r.rating, r.comment, r.images,
		       u.first_name, u.last_name, u.profile_image,
		       r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		WHERE r.service_id = ?
		ORDER BY r.created_at DESC, r.id DESC
	`
	params := []interface{}{serviceID}
	if limit > 0 {
		query += ` LIMIT ?`
		params = append(params, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var (
			rev    models.Review
			images []byte
		)
		if err := rows.Scan(&rev.ID, &rev.ReviewerID, &rev.ServiceID, &rev.Rating,
			&rev.Comment, &images,
			&rev.Reviewer.FirstName, &rev.Reviewer.LastName, &rev.Reviewer.ProfileImage,
			&rev.CreatedAt, &rev.UpdatedAt); err != nil {
			return nil, err
		}
		rev.Images = decodeStringList(images)
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ServiceRepository) portfoliosForService(ctx context.Context, serviceID, limit int) ([]models.Portfolio, error) {
	query := `
		SELECT id, service_id, title, description, images, link, completed_at, created_at, updated_at
		FROM portfolios
		WHERE service_id = ?
		ORDER BY created_at DESC, id DESC
	`
	params := []interface{}{serviceID}
	if limit > 0 {
		query += ` LIMIT ?`
		params = append(params, limit)
	}

	rows, err := r.DB.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	portfolios := []models.Portfolio{}
	for rows.Next() {
		var (
			p      models.Portfolio
			images []byte
		)
		if err := rows.Scan(&p.ID, &p.ServiceID, &p.Title, &p.Description, &images,
			&p.Link, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Images = decodeStringList(images)
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

func (r *ServiceRepository) contactLogsForService(ctx context.Context, serviceID, limit int) ([]models.ContactLog, error) {
	query := `
		SELECT cl.id, cl.client_id, cl.service_id, cl.contact_method,
		       CONCAT(u.first_name, ' ', u.last_name), cl.created_at
		FROM contact_logs cl
		JOIN users u ON cl.client_id = u.id
		WHERE cl.service_id = ?
		ORDER BY cl.created_at DESC, cl.id DESC
		LIMIT ?
	`
	rows, err := r.DB.QueryContext(ctx, query, serviceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []models.ContactLog{}
	for rows.Next() {
		var cl models.ContactLog
		if err := rows.Scan(&cl.ID, &cl.ClientID, &cl.ServiceID, &cl.ContactMethod,
			&cl.ClientName, &cl.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, cl)
	}
	return logs, rows.Err()
}
