package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 15 * time.Second
	httpTimeoutEnvKey  = "VINK_HTTP_TIMEOUT"

	vanishPath = "/api/vanish"
)

// Client is a simple HTTP client for the vanish API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: httpTimeoutFromEnv()},
	}
}

// CreateVanish posts a multipart submission and returns the server-issued
// locator. A 413 maps to ErrPayloadTooLarge, any other non-2xx to *APIError,
// and a transport failure to *NetworkError.
func (c *Client) CreateVanish(ctx context.Context, req CreateRequest) (string, error) {
	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+vanishPath, body)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return "", ErrPayloadTooLarge
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var created CreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("decode create response: %w", err)
	}
	if created.URL == "" {
		return "", fmt.Errorf("create response carried no locator")
	}
	return created.URL, nil
}

// GetVanish retrieves a vanish by its opaque identifier. A 404 maps to
// ErrNotFound, any other non-2xx to *APIError, and transport failures to
// *NetworkError.
func (c *Client) GetVanish(ctx context.Context, id string) (Vanish, error) {
	var vanish Vanish

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+vanishPath+"/"+url.PathEscape(id), nil)
	if err != nil {
		return vanish, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return vanish, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return vanish, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return vanish, decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(&vanish); err != nil {
		return vanish, fmt.Errorf("decode vanish: %w", err)
	}
	return vanish, nil
}

// Download streams a stored file (the absolute URL from a Vanish or FileRef)
// to a writer.
func (c *Client) Download(ctx context.Context, fileURL string, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	_, err = io.Copy(w, resp.Body)
	return err
}

// encodeMultipart renders the creation form body. Either the file parts or
// the content field are written, never both.
func encodeMultipart(req CreateRequest) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	if err := writer.WriteField("title", req.Title); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("expiryTime", req.ExpiryTime); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField("isOneTime", strconv.FormatBool(req.OneTime)); err != nil {
		return nil, "", err
	}

	if len(req.Files) > 0 {
		for _, part := range req.Files {
			if err := writeFilePart(writer, part); err != nil {
				return nil, "", err
			}
		}
	} else {
		if err := writer.WriteField("content", req.Content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return buf, writer.FormDataContentType(), nil
}

func writeFilePart(writer *multipart.Writer, part FilePart) error {
	dst, err := writer.CreateFormFile("file", part.Name)
	if err != nil {
		return err
	}
	src, err := part.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", part.Name, err)
	}
	defer src.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("read %s: %w", part.Name, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else {
			apiErr.Message = body.Error
		}
	}
	return apiErr
}

func httpTimeoutFromEnv() time.Duration {
	value := strings.TrimSpace(os.Getenv(httpTimeoutEnvKey))
	if value == "" {
		return defaultHTTPTimeout
	}

	if duration, err := time.ParseDuration(value); err == nil && duration > 0 {
		return duration
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	return defaultHTTPTimeout
}
