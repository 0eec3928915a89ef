package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vango-dev/toastkit/internal/errors"
)

const defaultServerURL = "http://localhost:3100"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// call sends a JSON request to the toastkit server and decodes the response
// into out when out is non-nil. Error bodies are decoded into *errors.Error.
func call(ctx context.Context, method, base, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.New("E300").Wrap(err)
		}
		body = bytes.NewReader(data)
	}

	url := strings.TrimRight(base, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return errors.New("E300").Wrap(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return errors.New("E300").Wrap(err).
			WithSuggestion("Is the server running? Start it with 'toastkit serve'")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var remote errors.Error
		if err := json.NewDecoder(resp.Body).Decode(&remote); err == nil && remote.Code != "" {
			return &remote
		}
		return errors.New("E300").WithDetail(fmt.Sprintf("%s %s: %s", method, url, resp.Status))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.New("E300").Wrap(err)
		}
	}
	return nil
}
