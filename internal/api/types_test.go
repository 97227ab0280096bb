package api

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseContentType(t *testing.T) {
	tests := []struct {
		raw     string
		want    ContentType
		wantErr bool
	}{
		{raw: "TEXT", want: ContentText},
		{raw: "IMAGE", want: ContentImage},
		{raw: "FILE", want: ContentFile},
		{raw: "file", want: ContentFile},
		{raw: " text ", want: ContentText},
		{raw: "", want: ContentText}, // records predating typed content
		{raw: "VIDEO", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseContentType(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseContentType(%q) = %v, want error", tc.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseContentType(%q): %v", tc.raw, err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStampTimeUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{
			name: "rfc3339",
			raw:  `"2026-08-30T12:00:00Z"`,
			want: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "zoneless",
			raw:  `"2026-08-30T12:00:00"`,
			want: time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local),
		},
		{
			name: "zoneless fractional",
			raw:  `"2026-08-30T12:00:00.123456"`,
			want: time.Date(2026, 8, 30, 12, 0, 0, 123456000, time.Local),
		},
		{
			name: "null",
			raw:  `null`,
			want: time.Time{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var st StampTime
			if err := json.Unmarshal([]byte(tc.raw), &st); err != nil {
				t.Fatalf("Unmarshal(%s): %v", tc.raw, err)
			}
			if !st.Time.Equal(tc.want) {
				t.Errorf("got %v, want %v", st.Time, tc.want)
			}
		})
	}

	var st StampTime
	if err := json.Unmarshal([]byte(`"tomorrow"`), &st); err == nil {
		t.Fatal("Unmarshal(tomorrow) succeeded, want error")
	}
}

func TestVanishDecode(t *testing.T) {
	raw := `{
		"id": "k3j2h1",
		"contentType": "FILE",
		"files": [
			{"originalFileName": "report.pdf", "fileSize": 2048, "fileUrl": "http://x/files/report.pdf"}
		],
		"createdAt": "2026-08-30T10:30:00"
	}`
	var v Vanish
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(v.Files) != 1 || v.Files[0].OriginalFileName != "report.pdf" || v.Files[0].FileSize != 2048 {
		t.Errorf("files = %+v", v.Files)
	}
	if v.ExpiresAt != nil {
		t.Errorf("ExpiresAt = %v, want nil for a never-expiring record", v.ExpiresAt)
	}
}
