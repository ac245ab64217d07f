package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client talks to the external identity toolkit API. All password and
// credential handling lives at the provider; this client only exchanges
// credentials for a stable uid and tokens.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Identity is the provider's view of one account.
type Identity struct {
	UID     string
	Email   string
	IDToken string
}

// APIError carries the provider's error message verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("identity provider error [%d]: %s", e.StatusCode, e.Message)
}

type apiResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	Users   []struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	} `json:"users"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, endpoint string, payload any) (*apiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode identity request: %w", err)
	}

	url := fmt.Sprintf("%s/accounts:%s?key=%s", c.apiURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request: %w", err)
	}
	defer resp.Body.Close()

	var out apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}

	if out.Error != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: out.Error.Message}
	}
	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	return &out, nil
}

// SignInWithPassword authenticates and returns the stable uid plus an
// id token.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (Identity, error) {
	resp, err := c.post(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return Identity{}, err
	}
	return Identity{UID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}, nil
}

// SignUp creates a new provider account.
func (c *Client) SignUp(ctx context.Context, email, password string) (Identity, error) {
	resp, err := c.post(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return Identity{}, err
	}
	return Identity{UID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}, nil
}

// UpdatePassword changes the account password; the provider returns a
// fresh id token.
func (c *Client) UpdatePassword(ctx context.Context, idToken, newPassword string) (Identity, error) {
	resp, err := c.post(ctx, "update", map[string]any{
		"idToken":           idToken,
		"password":          newPassword,
		"returnSecureToken": true,
	})
	if err != nil {
		return Identity{}, err
	}
	return Identity{UID: resp.LocalID, Email: resp.Email, IDToken: resp.IDToken}, nil
}

// Lookup resolves an id token back to the account it belongs to.
func (c *Client) Lookup(ctx context.Context, idToken string) (Identity, error) {
	resp, err := c.post(ctx, "lookup", map[string]any{
		"idToken": idToken,
	})
	if err != nil {
		return Identity{}, err
	}
	if len(resp.Users) == 0 {
		return Identity{}, &APIError{StatusCode: http.StatusNotFound, Message: "USER_NOT_FOUND"}
	}
	return Identity{UID: resp.Users[0].LocalID, Email: resp.Users[0].Email, IDToken: idToken}, nil
}

// DeleteUser removes a provider account by uid. Callers treat failures
// as best-effort; a dangling provider account is preferred over an
// undeletable local record.
func (c *Client) DeleteUser(ctx context.Context, uid string) error {
	_, err := c.post(ctx, "delete", map[string]any{
		"localId": uid,
	})
	return err
}
