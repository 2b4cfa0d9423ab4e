package capital

import (
	"context"

	"github.com/pkg/errors"
)

type sessionPayload struct {
	Identifier        string `json:"identifier"`
	Password          string `json:"password"`
	EncryptedPassword bool   `json:"encryptedPassword"`
}

// Login opens a session and stores the CST and X-SECURITY-TOKEN response
// headers for all later calls. A successful HTTP exchange that lacks either
// token still fails with an *AuthError. Tokens are held for the lifetime of
// the client; there is no refresh.
func (c *Client) Login(ctx context.Context) error {
	log := c.opLog("login").WithField("identifier", c.cfg.Identifier)

	resp, err := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sessionPayload{
			Identifier: c.cfg.Identifier,
			Password:   c.cfg.APIPassword,
		}).
		Post(EndpointSession)
	if err != nil {
		return &AuthError{Reason: "session request failed", Err: errors.Wrap(err, "post session")}
	}
	if resp.IsError() {
		return &AuthError{
			Reason: "session rejected",
			Err:    &APIError{StatusCode: resp.StatusCode(), Body: decodeDocument(resp.Body())},
		}
	}

	cst := resp.Header().Get(headerCST)
	token := resp.Header().Get(headerSecurityToken)
	if cst == "" || token == "" {
		return &AuthError{
			Reason: "session response missing CST or X-SECURITY-TOKEN header",
			Body:   decodeDocument(resp.Body()),
		}
	}

	c.cst = cst
	c.securityToken = token
	log.Info("session established")
	return nil
}
