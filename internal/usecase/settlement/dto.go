package settlement

import (
	"time"

	domainSettlement "moveboss/internal/domain/settlement"

	"github.com/google/uuid"
)

type LineItemResponse struct {
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	LoadID      *uuid.UUID `json:"load_id,omitempty"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
}

type ReceivableResponse struct {
	CompanyID   uuid.UUID `json:"company_id"`
	CompanyName string    `json:"company_name"`
	Amount      float64   `json:"amount"`
}

type PayableResponse struct {
	DriverID uuid.UUID `json:"driver_id"`
	Amount   float64   `json:"amount"`
}

type SettlementResponse struct {
	ID       uuid.UUID `json:"id"`
	TripID   uuid.UUID `json:"trip_id"`
	DriverID uuid.UUID `json:"driver_id"`
	Status   string    `json:"status"`

	TotalRevenue   float64 `json:"total_revenue"`
	TotalDriverPay float64 `json:"total_driver_pay"`
	TotalExpenses  float64 `json:"total_expenses"`
	TotalProfit    float64 `json:"total_profit"`

	LineItems   []LineItemResponse   `json:"line_items"`
	Receivables []ReceivableResponse `json:"receivables"`
	Payable     *PayableResponse     `json:"payable,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func ToSettlementResponse(s *domainSettlement.Settlement) *SettlementResponse {
	resp := &SettlementResponse{
		ID:             s.ID,
		TripID:         s.TripID,
		DriverID:       s.DriverID,
		Status:         string(s.Status),
		TotalRevenue:   s.TotalRevenue,
		TotalDriverPay: s.TotalDriverPay,
		TotalExpenses:  s.TotalExpenses,
		TotalProfit:    s.TotalProfit,
		LineItems:      make([]LineItemResponse, 0, len(s.LineItems)),
		Receivables:    make([]ReceivableResponse, 0, len(s.Receivables)),
		CreatedAt:      s.CreatedAt,
	}

	for _, item := range s.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			Category:    string(item.Category),
			Description: item.Description,
			Amount:      item.Amount,
			LoadID:      item.LoadID,
			CompanyID:   item.CompanyID,
		})
	}
	for _, r := range s.Receivables {
		resp.Receivables = append(resp.Receivables, ReceivableResponse{
			CompanyID:   r.CompanyID,
			CompanyName: r.CompanyName,
			Amount:      r.Amount,
		})
	}
	if s.Payable != nil {
		resp.Payable = &PayableResponse{
			DriverID: s.Payable.DriverID,
			Amount:   s.Payable.Amount,
		}
	}

	return resp
}
