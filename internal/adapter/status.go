// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds HTTP client adapters over outbound collaborators.
// Its only client today is the settings editor's server status probe.
package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dircast/dircast/internal/logger"
)

const defaultProbeTimeout = 3 * time.Second

// Status is the outcome of one reachability probe.
type Status struct {
	// Reachable reports whether the server answered at all.
	Reachable bool

	// Code is the HTTP status code of the answer; zero when unreachable.
	Code int

	// Latency is the round-trip time of the probe; zero when unreachable.
	Latency time.Duration
}

// StatusClient probes a dircast server for reachability. It is used by the
// settings editor to tell the operator whether the configured port currently
// answers.
type StatusClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewStatusClient constructs a StatusClient for the given address
// (host:port or a full URL). A non-positive timeout falls back to a short
// default; probes are meant to answer an interactive keypress, not to wait.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewStatusClient(address string, timeout time.Duration, logger *logger.Logger) (*StatusClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &StatusClient{client: cli, logger: logger}, nil
}

// Status performs one GET / probe. A transport failure maps to an
// unreachable Status, never to an error; the probe is advisory.
func (c *StatusClient) Status(ctx context.Context) Status {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/")
	if err != nil {
		c.logger.Debug().Err(err).Msg("status probe failed")
		return Status{}
	}

	return Status{
		Reachable: true,
		Code:      resp.StatusCode(),
		Latency:   resp.Time(),
	}
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
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
