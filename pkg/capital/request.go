package capital

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// getDocument performs a raising GET: any non-2xx status becomes an
// *APIError, a 2xx body is decoded with the raw-text fallback.
func (c *Client) getDocument(ctx context.Context, op, endpoint string) (Document, error) {
	log := c.opLog(op)
	resp, err := c.newRequest(ctx).Get(endpoint)
	if err != nil {
		return Document{}, errors.Wrap(err, op)
	}
	if resp.IsError() {
		return Document{}, &APIError{StatusCode: resp.StatusCode(), Body: decodeDocument(resp.Body())}
	}
	log.WithField("status", resp.StatusCode()).Debug("request done")
	return decodeDocument(resp.Body()), nil
}

// deleteDocument is getDocument for DELETE calls.
func (c *Client) deleteDocument(ctx context.Context, op, endpoint string) (Document, error) {
	log := c.opLog(op)
	resp, err := c.newRequest(ctx).Delete(endpoint)
	if err != nil {
		return Document{}, errors.Wrap(err, op)
	}
	if resp.IsError() {
		return Document{}, &APIError{StatusCode: resp.StatusCode(), Body: decodeDocument(resp.Body())}
	}
	log.WithField("status", resp.StatusCode()).Debug("request done")
	return decodeDocument(resp.Body()), nil
}

// dealReference extracts the dealReference from a creation response. The
// remote treats anything from 300 up as a rejection for these routes.
func dealReference(resp *resty.Response, log *logrus.Entry) (string, error) {
	doc := decodeDocument(resp.Body())
	if resp.StatusCode() >= 300 {
		log.WithField("status", resp.StatusCode()).Warn("deal rejected")
		return "", &OrderError{StatusCode: resp.StatusCode(), Reason: "rejected", Body: doc}
	}
	ref := doc.Str("dealReference")
	if ref == "" {
		return "", &OrderError{Reason: "no dealReference in response", Body: doc}
	}
	log.WithField("dealReference", ref).Info("deal submitted")
	return ref, nil
}
