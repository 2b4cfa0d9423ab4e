package capital

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultTimeInForce is applied when a working order does not set one.
const DefaultTimeInForce = "GOOD_TILL_CANCELLED"

// WorkingOrderRequest describes a pending limit or stop order.
type WorkingOrderRequest struct {
	Epic        string
	Direction   string // BUY or SELL
	OrderType   string // LIMIT or STOP
	Size        float64
	Level       float64
	TimeInForce string // defaults to GOOD_TILL_CANCELLED
	StopLevel   *float64
	ProfitLevel *float64
}

type workingOrderPayload struct {
	Epic        string      `json:"epic"`
	Direction   string      `json:"direction"`
	OrderType   string      `json:"orderType"`
	Size        json.Number `json:"size"`
	Level       json.Number `json:"level"`
	TimeInForce string      `json:"timeInForce"`
	StopLevel   json.Number `json:"stopLevel,omitempty"`
	ProfitLevel json.Number `json:"profitLevel,omitempty"`
}

// CreateWorkingOrder places a pending order and returns its deal reference.
// The success and failure contract matches CreatePosition.
func (c *Client) CreateWorkingOrder(ctx context.Context, req WorkingOrderRequest) (string, error) {
	tif := req.TimeInForce
	if tif == "" {
		tif = DefaultTimeInForce
	}

	log := c.opLog("create_working_order").WithFields(logrus.Fields{
		"epic":      req.Epic,
		"direction": req.Direction,
		"orderType": req.OrderType,
		"level":     req.Level,
	})

	resp, err := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(workingOrderPayload{
			Epic:        req.Epic,
			Direction:   req.Direction,
			OrderType:   req.OrderType,
			Size:        number(req.Size),
			Level:       number(req.Level),
			TimeInForce: tif,
			StopLevel:   optNumber(req.StopLevel),
			ProfitLevel: optNumber(req.ProfitLevel),
		}).
		Post(EndpointWorkingOrders)
	if err != nil {
		return "", errors.Wrap(err, "create working order")
	}
	return dealReference(resp, log)
}

// DeleteWorkingOrder cancels a pending order by deal id.
func (c *Client) DeleteWorkingOrder(ctx context.Context, dealID string) (Document, error) {
	return c.deleteDocument(ctx, "delete_working_order", EndpointWorkingOrders+"/"+dealID)
}
