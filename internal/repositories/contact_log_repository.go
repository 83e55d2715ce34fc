package repositories

import (
	"context"
	"database/sql"

	"ayudamosBack/internal/models"
)

type ContactLogRepository struct {
	DB *sql.DB
}

// RecordContact logs that a client reached out about a service and bumps the
// service view counter in the same transaction. A missing service surfaces
// as ErrServiceNotFound.
func (r *ContactLogRepository) RecordContact(ctx context.Context, cl models.ContactLog) (models.ContactLog, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.ContactLog{}, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE services SET views = views + 1 WHERE id = ?`, cl.ServiceID)
	if err != nil {
		return models.ContactLog{}, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return models.ContactLog{}, err
	}
	if rows == 0 {
		return models.ContactLog{}, models.ErrServiceNotFound
	}

	result, err = tx.ExecContext(ctx, `
		INSERT INTO contact_logs (client_id, service_id, contact_method, created_at)
		VALUES (?, ?, ?, NOW())`,
		cl.ClientID, cl.ServiceID, cl.ContactMethod)
	if err != nil {
		return models.ContactLog{}, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return models.ContactLog{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.ContactLog{}, err
	}
	return r.GetContactLogByID(ctx, int(id))
}

func (r *ContactLogRepository) GetContactLogByID(ctx context.Context, id int) (models.ContactLog, error) {
	var cl models.ContactLog
	err := r.DB.QueryRowContext(ctx, `
		SELECT cl.id, cl.client_id, cl.service_id, cl.contact_method,
		       CONCAT(u.first_name, ' ', u.last_name), cl.created_at
		FROM contact_logs cl
		JOIN users u ON cl.client_id = u.id
		WHERE cl.id = ?`, id).Scan(
		&cl.ID, &cl.ClientID, &cl.ServiceID, &cl.ContactMethod, &cl.ClientName, &cl.CreatedAt)
	if err == sql.ErrNoRows {
		return models.ContactLog{}, models.ErrNoRecord
	}
	if err != nil {
		return models.ContactLog{}, err
	}
	return cl, nil
}

// ListByServiceID returns a service's contact history newest first, with the
// contacting client's display name.
func (r *ContactLogRepository) ListByServiceID(ctx context.Context, serviceID int) ([]models.ContactLog, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT cl.id, cl.client_id, cl.service_id, cl.contact_method,
		       CONCAT(u.first_name, ' ', u.last_name), cl.created_at
		FROM contact_logs cl
		JOIN users u ON cl.client_id = u.id
		WHERE cl.service_id = ?
		ORDER BY cl.created_at DESC, cl.id DESC`, serviceID)
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
