package introspection

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Auth describes how to authenticate against a live GraphQL endpoint.
type Auth struct {
	Type     string // "bearer", "basic" or "api-key"
	Token    string
	Username string
	Password string
	Header   string
	Value    string
}

type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// FetchIntrospection POSTs the standard introspection query to url and
// returns the raw response body.
func (f *Fetcher) FetchIntrospection(ctx context.Context, url string, auth *Auth) ([]byte, error) {
	payload := map[string]string{"query": Query}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("build introspection payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build introspection request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	applyAuth(req, auth)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch introspection: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch introspection: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read introspection: %w", err)
	}
	return data, nil
}

func applyAuth(req *http.Request, auth *Auth) {
	if auth == nil {
		return
	}
	switch auth.Type {
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+auth.Token)
	case "basic":
		cred := base64.StdEncoding.EncodeToString([]byte(auth.Username + ":" + auth.Password))
		req.Header.Set("Authorization", "Basic "+cred)
	case "api-key":
		req.Header.Set(auth.Header, auth.Value)
	}
}
