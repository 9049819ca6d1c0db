package glacier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

func (c *BasicClient) ListCollectibles(
	ctx context.Context,
	req *ListCollectiblesRequest,
) (*ListCollectiblesResponse, error) {
	address := req.Address
	if address == "" {
		address = c.cfg.Address
	}

	endpoint := fmt.Sprintf("%s/addresses/%s/balances:listCollectibles",
		strings.TrimRight(c.cfg.BaseURL, "/"),
		url.PathEscape(address),
	)

	params := url.Values{}
	if req.PageSize > 0 {
		params.Set("pageSize", strconv.Itoa(req.PageSize))
	}
	if req.PageToken != "" {
		params.Set("pageToken", req.PageToken)
	}
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating new request for ListCollectibles: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("x-glacier-api-key", c.cfg.APIKey)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error doing request for ListCollectibles: %w", err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body for ListCollectibles",
				slog.Any("error", err),
			)
		}
	}()

	if res.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(res.Body)

		var apiErr APIError
		if err = json.Unmarshal(body, &apiErr); err != nil {
			return nil, fmt.Errorf("unexpected status %d and cannot parse error body: %s",
				res.StatusCode,
				string(body),
			)
		}

		apiErr.StatusCode = int64(res.StatusCode)
		return nil, &apiErr
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body for ListCollectibles: %w", err)
	}

	var resp ListCollectiblesResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("error unmarshalling response body for ListCollectibles: %w", err)
	}

	if resp.Skipped > 0 {
		c.logger.WarnContext(ctx, "skipped malformed collectibles in ListCollectibles",
			slog.Int("skipped", resp.Skipped),
		)
	}

	return &resp, nil
}
