package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"vink/internal/api"
	"vink/internal/models"
)

type fakeCreator struct {
	locator string
	err     error
	got     []api.CreateRequest

	// onCreate runs inside the creation call, so a test can re-enter Submit
	// while one is outstanding.
	onCreate func()
}

func (c *fakeCreator) CreateVanish(ctx context.Context, req api.CreateRequest) (string, error) {
	c.got = append(c.got, req)
	if c.onCreate != nil {
		c.onCreate()
	}
	if c.err != nil {
		return "", c.err
	}
	return c.locator, nil
}

func contentDraft(t *testing.T, content string) *models.Draft {
	t.Helper()
	d := models.NewDraft()
	if err := d.SetContent(content); err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSubmitSuccess(t *testing.T) {
	creator := &fakeCreator{locator: "abc123"}
	s := New(creator, "https://vanish.example.com/")

	draft := contentDraft(t, "hello")
	draft.SetOneTime(true)
	draft.SetExpiry(models.ExpireOneDay)

	result, err := s.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Locator != "abc123" {
		t.Errorf("Locator = %q", result.Locator)
	}
	if result.ShareURL != "https://vanish.example.com/abc123" {
		t.Errorf("ShareURL = %q", result.ShareURL)
	}

	if len(creator.got) != 1 {
		t.Fatalf("creator called %d times", len(creator.got))
	}
	req := creator.got[0]
	if req.Content != "hello" || req.ExpiryTime != "1d" || !req.OneTime {
		t.Errorf("request = %+v", req)
	}

	// Success resets the draft, one-time flag included.
	if draft.Content() != "" || draft.OneTime() || draft.Expiry() != models.ExpireOneHour {
		t.Errorf("draft not reset: content=%q oneTime=%v expiry=%v",
			draft.Content(), draft.OneTime(), draft.Expiry())
	}
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	creator := &fakeCreator{err: api.ErrPayloadTooLarge}
	s := New(creator, "https://vanish.example.com")

	draft := contentDraft(t, "keep me")
	draft.SetOneTime(true)

	if _, err := s.Submit(context.Background(), draft); !errors.Is(err, api.ErrPayloadTooLarge) {
		t.Fatalf("err = %v, want ErrPayloadTooLarge", err)
	}
	if draft.Content() != "keep me" || !draft.OneTime() {
		t.Errorf("draft changed on failure: content=%q oneTime=%v", draft.Content(), draft.OneTime())
	}

	// The guard releases after a failure; a retry goes through.
	creator.err = nil
	creator.locator = "retry1"
	result, err := s.Submit(context.Background(), draft)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if result.Locator != "retry1" {
		t.Errorf("retry locator = %q", result.Locator)
	}
}

func TestSubmitValidationAbortsBeforeNetwork(t *testing.T) {
	creator := &fakeCreator{locator: "never"}
	s := New(creator, "https://vanish.example.com")

	draft := contentDraft(t, "x")
	draft.SetExpiry(models.CustomDuration{Value: 60, Unit: models.UnitWeeks})

	_, err := s.Submit(context.Background(), draft)
	if err == nil {
		t.Fatal("Submit succeeded with an invalid expiry")
	}
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %T, want *models.ValidationError", err)
	}
	if len(creator.got) != 0 {
		t.Errorf("creator called despite validation failure: %v", creator.got)
	}
	if draft.Content() != "x" {
		t.Errorf("draft changed on validation failure")
	}
}

func TestSubmitBusyGuard(t *testing.T) {
	creator := &fakeCreator{locator: "abc123"}
	s := New(creator, "https://vanish.example.com")

	draft := contentDraft(t, "outer")
	var reentrantErr error
	creator.onCreate = func() {
		creator.onCreate = nil
		_, reentrantErr = s.Submit(context.Background(), contentDraft(t, "inner"))
	}

	if _, err := s.Submit(context.Background(), draft); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !errors.Is(reentrantErr, ErrBusy) {
		t.Fatalf("re-entrant submit = %v, want ErrBusy", reentrantErr)
	}
	if len(creator.got) != 1 {
		t.Errorf("creator called %d times, want 1", len(creator.got))
	}

	if s.InFlight() {
		t.Error("InFlight still set after submit returned")
	}
}

// TestSubmitThenFetchRoundTrip drives a submission and the follow-up fetch
// against one backend fixture, so the locator the server issued is the id
// the fetch resolves.
func TestSubmitThenFetchRoundTrip(t *testing.T) {
	var storedContent, storedExpiry string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/vanish":
			storedContent = r.FormValue("content")
			storedExpiry = r.FormValue("expiryTime")
			io.WriteString(w, `{"url": "rt123"}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/vanish/rt123":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"id": "rt123", "contentType": "TEXT", "content": %q, "createdAt": "2026-08-30T12:00:00"}`, storedContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL)
	s := New(client, srv.URL)
	ctx := context.Background()

	result, err := s.Submit(ctx, contentDraft(t, "hello"))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if result.Locator != "rt123" {
		t.Fatalf("Locator = %q, want rt123", result.Locator)
	}
	if result.ShareURL != srv.URL+"/rt123" {
		t.Errorf("ShareURL = %q", result.ShareURL)
	}
	if storedExpiry != "1h" {
		t.Errorf("expiryTime = %q, want the 1h default", storedExpiry)
	}

	vanish, err := client.GetVanish(ctx, result.Locator)
	if err != nil {
		t.Fatalf("GetVanish(%s): %v", result.Locator, err)
	}
	if got, err := api.ParseContentType(vanish.ContentType); err != nil || got != api.ContentText {
		t.Errorf("content type = %q (%v), want TEXT", vanish.ContentType, err)
	}
	if vanish.Content != "hello" {
		t.Errorf("content = %q, want hello", vanish.Content)
	}
}
