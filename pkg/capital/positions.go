package capital

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// PositionRequest describes a position to open. Stop and profit levels are
// optional; nil or false fields are left out of the request body entirely.
type PositionRequest struct {
	Epic           string
	Direction      string // BUY or SELL
	Size           float64
	StopLevel      *float64
	ProfitLevel    *float64
	GuaranteedStop bool
	TrailingStop   bool
}

// positionPayload uses the exact field names the remote API expects.
type positionPayload struct {
	Epic           string      `json:"epic"`
	Direction      string      `json:"direction"`
	Size           json.Number `json:"size"`
	StopLevel      json.Number `json:"stopLevel,omitempty"`
	ProfitLevel    json.Number `json:"profitLevel,omitempty"`
	GuaranteedStop bool        `json:"guaranteedStop,omitempty"`
	TrailingStop   bool        `json:"trailingStop,omitempty"`
}

// number renders f as a plain JSON number without binary float artifacts
// ("250.1", never "250.10000000000002").
func number(f float64) json.Number {
	return json.Number(decimal.NewFromFloat(f).String())
}

// optNumber is number for optional fields; "" is dropped by omitempty.
func optNumber(f *float64) json.Number {
	if f == nil {
		return ""
	}
	return number(*f)
}

// CreatePosition opens a position and returns its deal reference. A status
// of 300 or above, or a success body without a dealReference, yields an
// *OrderError carrying the decoded body.
func (c *Client) CreatePosition(ctx context.Context, req PositionRequest) (string, error) {
	log := c.opLog("create_position").WithFields(logrus.Fields{
		"epic":      req.Epic,
		"direction": req.Direction,
		"size":      req.Size,
	})

	resp, err := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(positionPayload{
			Epic:           req.Epic,
			Direction:      req.Direction,
			Size:           number(req.Size),
			StopLevel:      optNumber(req.StopLevel),
			ProfitLevel:    optNumber(req.ProfitLevel),
			GuaranteedStop: req.GuaranteedStop,
			TrailingStop:   req.TrailingStop,
		}).
		Post(EndpointPositions)
	if err != nil {
		return "", errors.Wrap(err, "create position")
	}
	return dealReference(resp, log)
}

// Confirm fetches the confirmation record for a previously submitted deal.
func (c *Client) Confirm(ctx context.Context, dealReference string) (Document, error) {
	return c.getDocument(ctx, "confirm", EndpointConfirms+dealReference)
}

// ListPositions fetches all open positions.
func (c *Client) ListPositions(ctx context.Context) (Document, error) {
	return c.getDocument(ctx, "list_positions", EndpointPositions)
}

// ClosePosition closes an open position by deal id. Closing is a DELETE by
// id; the OTC route some instruments document is not used here.
func (c *Client) ClosePosition(ctx context.Context, dealID string) (Document, error) {
	return c.deleteDocument(ctx, "close_position", EndpointPositions+"/"+dealID)
}
