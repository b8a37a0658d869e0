package http

import (
	"context"
	"fmt"

	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/internal/model"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
)

func toAlertResponse(a model.Alert) gen.Alert {
	return gen.Alert{
		Id:          a.ID,
		ProductId:   a.ProductID,
		ProductName: a.ProductName,
		ProductSku:  a.ProductSKU,
		AlertType:   gen.AlertType(a.AlertType),
		Message:     a.Message,
		IsRead:      a.IsRead,
		CreatedAt:   a.CreatedAt,
	}
}

type alertHandler struct {
	alertSvc service.AlertService
}

func newAlertHandler(alertSvc service.AlertService) *alertHandler {
	return &alertHandler{
		alertSvc: alertSvc,
	}
}

func (h *alertHandler) ListUnreadAlerts(ctx context.Context, request gen.ListUnreadAlertsRequestObject) (gen.ListUnreadAlertsResponseObject, error) {
	alerts, err := h.alertSvc.ListUnreadAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("alert service list unread alerts: %w", err)
	}

	items := make([]gen.Alert, 0, len(alerts))
	for _, a := range alerts {
		items = append(items, toAlertResponse(a))
	}

	return gen.ListUnreadAlerts200JSONResponse(items), nil
}

func (h *alertHandler) CountUnreadAlerts(ctx context.Context, request gen.CountUnreadAlertsRequestObject) (gen.CountUnreadAlertsResponseObject, error) {
	count, err := h.alertSvc.CountUnreadAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("alert service count unread alerts: %w", err)
	}

	return gen.CountUnreadAlerts200JSONResponse{Count: count}, nil
}

func (h *alertHandler) MarkAlertRead(ctx context.Context, request gen.MarkAlertReadRequestObject) (gen.MarkAlertReadResponseObject, error) {
	if err := h.alertSvc.MarkAlertRead(ctx, request.AlertId); err != nil {
		return nil, fmt.Errorf("alert service mark alert read: %w", err)
	}

	return gen.MarkAlertRead204Response{}, nil
}
