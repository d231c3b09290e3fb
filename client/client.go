// Package client talks to the PDF generation service: it fetches templates
// by name, generates and fills documents and manages custom fonts.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"tpledit/fonts"
)

var ErrUnauthorized = errors.New("not authorized")

// TransportError is any failure to get expected answer from the service.
type TransportError struct {
	Op     string
	Status int // 0 when request never got a response
	Msg    string
	Err    error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Status != 0 {
		fmt.Fprintf(&b, ": HTTP %d", e.Status)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client is safe for concurrent use.
type Client struct {
	base  string
	token string
	hc    *http.Client
	log   *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces default http client, timeout passed to New is
// ignored in that case.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
	}
}

// WithToken sets bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(base string, timeout time.Duration, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		log:  log.Named("client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

const (
	pathTemplate = "/api/v1/template-data"
	pathGenerate = "/api/v1/generate/template-pdf"
	pathFonts    = "/api/v1/fonts"
	pathFill     = "/api/v1/fill"
)

// Template returns raw template by name.
func (c *Client) Template(ctx context.Context, name string) ([]byte, error) {
	q := url.Values{"file": {name}}
	return c.do(ctx, "get template", http.MethodGet, pathTemplate+"?"+q.Encode(), "", nil)
}

// Generate sends template and returns PDF bytes.
func (c *Client) Generate(ctx context.Context, template []byte) ([]byte, error) {
	return c.do(ctx, "generate pdf", http.MethodPost, pathGenerate, "application/json", bytes.NewReader(template))
}

// Fill sends PDF with XFDF field values and returns filled PDF.
func (c *Client) Fill(ctx context.Context, pdf, xfdf []byte) ([]byte, error) {
	body, ctype, err := multipartBody(
		part{field: "pdf", file: "document.pdf", data: pdf},
		part{field: "xfdf", file: "fields.xfdf", data: xfdf},
	)
	if err != nil {
		return nil, &TransportError{Op: "fill pdf", Err: err}
	}
	return c.do(ctx, "fill pdf", http.MethodPost, pathFill, ctype, body)
}

// Fonts returns fonts known to the service.
func (c *Client) Fonts(ctx context.Context) ([]fonts.Font, error) {
	data, err := c.do(ctx, "get fonts", http.MethodGet, pathFonts, "", nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Fonts []fonts.Font `json:"fonts"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, &TransportError{Op: "get fonts", Msg: "malformed response", Err: err}
	}
	return resp.Fonts, nil
}

// UploadFont registers font file with the service.
func (c *Client) UploadFont(ctx context.Context, filename string, data []byte) (fonts.Font, error) {
	body, ctype, err := multipartBody(part{field: "font", file: filepath.Base(filename), data: data})
	if err != nil {
		return fonts.Font{}, &TransportError{Op: "upload font", Err: err}
	}
	out, err := c.do(ctx, "upload font", http.MethodPost, pathFonts, ctype, body)
	if err != nil {
		return fonts.Font{}, err
	}

	var resp struct {
		fonts.Font
		Message string `json:"message"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return fonts.Font{}, &TransportError{Op: "upload font", Msg: "malformed response", Err: err}
	}
	f := resp.Font
	if f.Name == "" {
		f.Name = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	if f.ID == "" {
		f.ID = f.Name
	}
	if f.DisplayName == "" {
		f.DisplayName = f.Name
	}
	return f, nil
}

func (c *Client) do(ctx context.Context, op, method, path, ctype string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if ctype != "" {
		req.Header.Set("Content-Type", ctype)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	c.log.Debug("Service request",
		zap.String("op", op), zap.String("method", method), zap.String("path", path),
		zap.Int("status", resp.StatusCode), zap.Int("size", len(data)), zap.Duration("elapsed", time.Since(start)))
	if err != nil {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Msg: errorMessage(data)}
	}
	return data, nil
}

// errorMessage extracts {"error": "..."} from failure response, falling back
// to the start of the body.
func errorMessage(data []byte) string {
	var resp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &resp) == nil && resp.Error != "" {
		return resp.Error
	}
	msg := strings.TrimSpace(string(data[:min(len(data), 256)]))
	return msg
}

type part struct {
	field string
	file  string
	data  []byte
}

func multipartBody(parts ...part) (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.file)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(p.data); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
