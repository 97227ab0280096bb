package api

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ContentType classifies what a vanish carries.
type ContentType string

const (
	ContentText  ContentType = "TEXT"
	ContentImage ContentType = "IMAGE"
	ContentFile  ContentType = "FILE"
)

// ParseContentType maps the wire value to the closed content-type set.
// Records created before the backend stored a content type carry an empty
// value and are treated as text.
func ParseContentType(raw string) (ContentType, error) {
	value := ContentType(strings.ToUpper(strings.TrimSpace(raw)))
	if value == "" {
		return ContentText, nil
	}
	switch value {
	case ContentText, ContentImage, ContentFile:
		return value, nil
	}
	return "", fmt.Errorf("unknown content type: %s", raw)
}

// FileRef is one stored file belonging to a FILE or IMAGE vanish.
type FileRef struct {
	OriginalFileName string `json:"originalFileName"`
	FileSize         int64  `json:"fileSize"`
	FileURL          string `json:"fileUrl"`
}

// Vanish is the server-owned record returned by GET /api/vanish/{id}.
// The client never constructs or mutates one; it only renders it.
type Vanish struct {
	ID          string     `json:"id"`
	Title       string     `json:"title,omitempty"`
	ContentType string     `json:"contentType,omitempty"`
	Content     string     `json:"content,omitempty"`
	FileURL     string     `json:"fileUrl,omitempty"`
	Files       []FileRef  `json:"files,omitempty"`
	CreatedAt   StampTime  `json:"createdAt"`
	ExpiresAt   *StampTime `json:"expiresAt,omitempty"`
}

// CreateResponse is the body of a successful POST /api/vanish.
// The url field holds the opaque locator, not a full URL.
type CreateResponse struct {
	URL string `json:"url"`
}

// FilePart is one file entry of a multipart submission. Open is called once
// while the request body is being written.
type FilePart struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// CreateRequest is the client-side payload for POST /api/vanish. Content and
// Files are mutually exclusive; the draft layer guarantees that before a
// request is built.
type CreateRequest struct {
	Title      string
	ExpiryTime string
	OneTime    bool
	Content    string
	Files      []FilePart
}

// StampTime tolerates both RFC 3339 timestamps and the zoneless form the
// backend's LocalDateTime serializes to.
type StampTime struct {
	time.Time
}

const zonelessStampLayout = "2006-01-02T15:04:05"

func (t *StampTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		t.Time = parsed
		return nil
	}
	// LocalDateTime may carry fractional seconds.
	layout := zonelessStampLayout
	if strings.Contains(raw, ".") {
		layout += ".999999999"
	}
	parsed, err := time.ParseInLocation(layout, raw, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", raw)
	}
	t.Time = parsed
	return nil
}

func (t StampTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
