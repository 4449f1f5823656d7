package miner

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client fetches chip reports from a miner's web UI. Each Fetch performs the
// luci form login and then scrapes the btminer status page; the cookie jar
// keeps the session for the second request.
//
// Miner UIs ship self-signed certificates, so certificate verification is
// disabled for these requests. The client talks only to operator-configured
// hosts on the mining LAN.
type Client struct {
	http    *http.Client
	scheme  string
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-fetch timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithScheme overrides the URL scheme (tests use plain http).
func WithScheme(scheme string) Option {
	return func(c *Client) { c.scheme = scheme }
}

// NewClient builds a miner client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		scheme:  "https",
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	jar, _ := cookiejar.New(nil)
	c.http = &http.Client{
		Jar:     jar,
		Timeout: c.timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	return c
}

// Fetch logs in to the miner at host and returns the parsed chip report.
func (c *Client) Fetch(ctx context.Context, host, user, pass string) (Data, error) {
	if err := c.login(ctx, host, user, pass); err != nil {
		return Data{}, err
	}

	html, err := c.get(ctx, host, "/cgi-bin/luci/admin/status/btminerapi")
	if err != nil {
		return Data{}, fmt.Errorf("fetch chip report from %s: %w", host, err)
	}

	data, err := ParseStatusPage(html)
	if err != nil {
		return Data{}, fmt.Errorf("parse chip report from %s: %w", host, err)
	}
	return data, nil
}

// FetchSystemInfo scrapes the model and firmware identifiers from the
// overview page. Best effort: a zero SystemInfo with an error is returned
// when the page cannot be read, and callers fall back to geometry inference.
func (c *Client) FetchSystemInfo(ctx context.Context, host string) (SystemInfo, error) {
	html, err := c.get(ctx, host, "/cgi-bin/luci/admin/status/overview")
	if err != nil {
		return SystemInfo{}, fmt.Errorf("fetch overview from %s: %w", host, err)
	}
	return parseSystemInfo(html), nil
}

func (c *Client) login(ctx context.Context, host, user, pass string) error {
	form := url.Values{
		"luci_username": {user},
		"luci_password": {pass},
	}
	loginURL := fmt.Sprintf("%s://%s/cgi-bin/luci", c.scheme, host)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build login request for %s: %w", host, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login to %s: %w", host, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return fmt.Errorf("login to %s failed: status %d", host, resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, host, path string) (string, error) {
	u := fmt.Sprintf("%s://%s%s", c.scheme, host, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// parseSystemInfo pulls labelled values out of the overview page. The page
// renders rows like <td>Model</td><td>WhatsMiner M50S_VH50</td>.
func parseSystemInfo(html string) SystemInfo {
	return SystemInfo{
		Model:           scrapeLabelled(html, "Model"),
		HardwareInfo:    scrapeLabelled(html, "Hardware Version"),
		FirmwareVersion: scrapeLabelled(html, "Firmware Version"),
	}
}

func scrapeLabelled(html, label string) string {
	idx := strings.Index(html, ">"+label+"<")
	if idx < 0 {
		return ""
	}
	rest := html[idx:]
	// Skip to the following cell and take its text content.
	open := strings.Index(rest, "<td")
	if open < 0 {
		return ""
	}
	rest = rest[open:]
	start := strings.Index(rest, ">")
	if start < 0 {
		return ""
	}
	end := strings.Index(rest[start+1:], "<")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[start+1 : start+1+end])
}
