package model

import "fmt"

// MovementType is the reason code of a stock movement.
type MovementType string

const (
	MovementTypeIn         MovementType = "IN"
	MovementTypeOut        MovementType = "OUT"
	MovementTypeAdjustment MovementType = "ADJUSTMENT"
	MovementTypeReturn     MovementType = "RETURN"
)

func (t MovementType) Validate() error {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment, MovementTypeReturn:
		return nil
	default:
		return fmt.Errorf("unknown movement type: %q", string(t))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler] and rejects unknown values.
func (t *MovementType) UnmarshalText(text []byte) error {
	v := MovementType(text)
	if err := v.Validate(); err != nil {
		return err
	}
	*t = v
	return nil
}

// AlertType classifies a stock alert.
type AlertType string

const (
	AlertTypeOutOfStock AlertType = "OUT_OF_STOCK"
	AlertTypeLowStock   AlertType = "LOW_STOCK"
	AlertTypeOverstock  AlertType = "OVERSTOCK"
)

func (t AlertType) Validate() error {
	switch t {
	case AlertTypeOutOfStock, AlertTypeLowStock, AlertTypeOverstock:
		return nil
	default:
		return fmt.Errorf("unknown alert type: %q", string(t))
	}
}

func (t *AlertType) UnmarshalText(text []byte) error {
	v := AlertType(text)
	if err := v.Validate(); err != nil {
		return err
	}
	*t = v
	return nil
}

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodOther    PaymentMethod = "OTHER"
)

func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodOther:
		return nil
	default:
		return fmt.Errorf("unknown payment method: %q", string(m))
	}
}

func (m *PaymentMethod) UnmarshalText(text []byte) error {
	v := PaymentMethod(text)
	if err := v.Validate(); err != nil {
		return err
	}
	*m = v
	return nil
}

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

func (s PurchaseOrderStatus) Validate() error {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return nil
	default:
		return fmt.Errorf("unknown purchase order status: %q", string(s))
	}
}
