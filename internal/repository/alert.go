package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
)

type CreateAlertParams struct {
	ProductID int64
	AlertType model.AlertType
	Message   string
}

type AlertRepository interface {
	WithDB(db db.DB) AlertRepository
	// DeleteUnreadAlerts removes every unread alert of the product. Read
	// alerts are kept as history.
	DeleteUnreadAlerts(ctx context.Context, productID int64) error
	CreateAlert(ctx context.Context, params CreateAlertParams) (model.Alert, error)
	ListUnreadAlerts(ctx context.Context) ([]model.Alert, error)
	CountUnreadAlerts(ctx context.Context) (int, error)
	MarkAlertRead(ctx context.Context, id int64) error
}

type alertRepository struct {
	db db.DB
}

func NewAlertRepository(db db.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r alertRepository) WithDB(db db.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r alertRepository) DeleteUnreadAlerts(ctx context.Context, productID int64) error {
	if _, err := r.db.Exec(ctx, `
		DELETE FROM alerts
		WHERE product_id = @product_id AND NOT is_read
	`, pgx.NamedArgs{"product_id": productID}); err != nil {
		return fmt.Errorf("delete unread alerts: %w", err)
	}

	return nil
}

func (r alertRepository) CreateAlert(ctx context.Context, params CreateAlertParams) (model.Alert, error) {
	alert := model.Alert{
		ProductID: params.ProductID,
		AlertType: params.AlertType,
		Message:   params.Message,
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO alerts (product_id, alert_type, message)
		VALUES (@product_id, @alert_type, @message)
		RETURNING id, is_read, created_at
	`, pgx.NamedArgs{
		"product_id": params.ProductID,
		"alert_type": string(params.AlertType),
		"message":    params.Message,
	}).Scan(&alert.ID, &alert.IsRead, &alert.CreatedAt)
	if err != nil {
		return model.Alert{}, fmt.Errorf("insert alert: %w", err)
	}

	return alert, nil
}

func (r alertRepository) ListUnreadAlerts(ctx context.Context) ([]model.Alert, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.product_id, p.name, p.sku, a.alert_type, a.message, a.is_read, a.created_at
		FROM alerts AS a
		JOIN products AS p ON p.id = a.product_id
		WHERE NOT a.is_read
		ORDER BY a.created_at DESC, a.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query unread alerts: %w", err)
	}

	alerts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Alert, error) {
		var (
			a         model.Alert
			alertType string
		)
		if err := row.Scan(
			&a.ID,
			&a.ProductID,
			&a.ProductName,
			&a.ProductSKU,
			&alertType,
			&a.Message,
			&a.IsRead,
			&a.CreatedAt,
		); err != nil {
			return model.Alert{}, err
		}
		a.AlertType = model.AlertType(alertType)
		return a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("collect unread alerts: %w", err)
	}

	return alerts, nil
}

func (r alertRepository) CountUnreadAlerts(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM alerts WHERE NOT is_read`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread alerts: %w", err)
	}

	return count, nil
}

func (r alertRepository) MarkAlertRead(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE alerts SET is_read = TRUE WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("mark alert read: %w", db.ErrNotFound)
	}

	return nil
}
