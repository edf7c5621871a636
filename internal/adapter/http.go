// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-cms-cli/internal/config"
	"github.com/MKhiriev/go-cms-cli/internal/logger"
	"github.com/MKhiriev/go-cms-cli/internal/utils"
	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/go-resty/resty/v2"
)

type httpAuthTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPAuthTransport constructs an [AuthTransport] posting JSON with resty.
func NewHTTPAuthTransport(cfg config.API, logger *logger.Logger) AuthTransport {
	return &httpAuthTransport{
		client: utils.NewHTTPClient(cfg.RequestTimeout),
		logger: logger,
	}
}

// Post implements [AuthTransport].
func (h *httpAuthTransport) Post(ctx context.Context, url string, body any) (models.Response, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(url)
	if err != nil {
		return models.Response{}, fmt.Errorf("auth request: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("url", url).
		Int("status", resp.StatusCode()).
		Msg("auth request done")

	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return toResponse(resp), nil
}

type httpCMSClient struct {
	client *utils.HTTPClient
	token  string
}

// NewCMSClientFactory returns a [CMSClientFactory] whose clients share one
// resty client configured with the normalised base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or is not an absolute URL.
func NewCMSClientFactory(cfg config.API, logger *logger.Logger) (CMSClientFactory, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	logger.Debug().Str("base_url", baseURL).Msg("cms client factory ready")

	return func(oauthToken string) CMSClient {
		return &httpCMSClient{client: client, token: strings.TrimSpace(oauthToken)}
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [CMSClient].
func (c *httpCMSClient) Get(ctx context.Context, path string, params map[string]string) (models.Response, error) {
	return c.send(c.request(ctx).SetQueryParams(params), MethodGet, path)
}

// Post implements [CMSClient].
func (c *httpCMSClient) Post(ctx context.Context, path string, body any) (models.Response, error) {
	return c.send(c.request(ctx).SetBody(jsonBody(body)), MethodPost, path)
}

// Put implements [CMSClient].
func (c *httpCMSClient) Put(ctx context.Context, path string, body any) (models.Response, error) {
	return c.send(c.request(ctx).SetBody(jsonBody(body)), MethodPut, path)
}

// Delete implements [CMSClient].
func (c *httpCMSClient) Delete(ctx context.Context, path string, body any) (models.Response, error) {
	req := c.request(ctx)
	if body != nil {
		req.SetBody(body)
	}
	return c.send(req, MethodDelete, path)
}

// request starts a request authorised with the client's token. OAuth tokens
// are sent verbatim, without a "Bearer" scheme.
func (c *httpCMSClient) request(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)
	if c.token != "" {
		req.SetHeader("Authorization", c.token)
	}
	return req
}

func (c *httpCMSClient) send(req *resty.Request, method Method, path string) (models.Response, error) {
	resp, err := req.Execute(method.String(), path)
	if err != nil {
		return models.Response{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	logger.FromContext(req.Context()).Debug().
		Str("method", method.String()).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("cms request done")

	if err = mapHTTPError(resp); err != nil {
		return models.Response{}, err
	}

	return toResponse(resp), nil
}

// jsonBody substitutes an empty object for a nil body so that POST and PUT
// always carry valid JSON.
func jsonBody(body any) any {
	if body == nil {
		return map[string]any{}
	}
	return body
}
