package models

import (
	"vink/internal/api"
)

// Draft accumulates user input for one vanish. All mutation goes through
// whole-state transitions so the content/files exclusivity and the reset
// policy live in one place instead of being scattered across callers.
type Draft struct {
	title   string
	content string
	files   []FileHandle
	expiry  ExpirySelection
	oneTime bool
}

// NewDraft returns a draft with the default expiry preset and the one-time
// flag off.
func NewDraft() *Draft {
	return &Draft{expiry: ExpireOneHour}
}

func (d *Draft) Title() string           { return d.title }
func (d *Draft) Content() string         { return d.content }
func (d *Draft) Files() []FileHandle     { return d.files }
func (d *Draft) Expiry() ExpirySelection { return d.expiry }
func (d *Draft) OneTime() bool           { return d.oneTime }

func (d *Draft) SetTitle(title string) { d.title = title }

// SetContent stores text content. It is rejected while a file set is
// selected; text and files are mutually exclusive in both directions.
func (d *Draft) SetContent(content string) error {
	if len(d.files) > 0 {
		return &ValidationError{Message: "remove the selected files before entering text content"}
	}
	d.content = content
	return nil
}

// SelectFiles validates a candidate batch and appends it to the file set.
// The batch is atomic: one oversized file rejects all of it and the draft is
// left untouched. Accepting any file clears pending text content. Previously
// accepted files are not re-validated.
func (d *Draft) SelectFiles(batch []FileHandle) error {
	if len(batch) == 0 {
		return nil
	}
	if err := ValidateFileBatch(batch); err != nil {
		return err
	}
	d.files = append(d.files, batch...)
	d.content = ""
	return nil
}

// RemoveFile drops one file from the set by position.
func (d *Draft) RemoveFile(index int) {
	if index < 0 || index >= len(d.files) {
		return
	}
	d.files = append(d.files[:index], d.files[index+1:]...)
}

// ClearFiles drops the whole file set.
func (d *Draft) ClearFiles() { d.files = nil }

func (d *Draft) SetExpiry(sel ExpirySelection) {
	if sel == nil {
		return
	}
	d.expiry = sel
}

func (d *Draft) SetOneTime(v bool) { d.oneTime = v }

func (d *Draft) ToggleOneTime() { d.oneTime = !d.oneTime }

// Reset returns the draft to empty defaults after a successful submission.
// The one-time flag resets too, so a later unrelated share is not burned by
// a sticky flag.
func (d *Draft) Reset() {
	*d = *NewDraft()
}

// BuildRequest produces the creation payload: the file set is re-validated,
// the expiry selection is resolved to its canonical token, and exactly one of
// files or content is carried. The draft itself is not consumed; callers
// reset it only after the submission succeeds.
func (d *Draft) BuildRequest() (api.CreateRequest, error) {
	if len(d.files) > 0 {
		if err := ValidateFileBatch(d.files); err != nil {
			return api.CreateRequest{}, err
		}
	}

	token, err := ResolveExpiry(d.expiry)
	if err != nil {
		return api.CreateRequest{}, err
	}

	req := api.CreateRequest{
		Title:      d.title,
		ExpiryTime: token,
		OneTime:    d.oneTime,
	}
	if len(d.files) > 0 {
		req.Files = make([]api.FilePart, 0, len(d.files))
		for _, file := range d.files {
			req.Files = append(req.Files, api.FilePart{Name: file.Name, Open: file.Open})
		}
	} else {
		req.Content = d.content
	}
	return req, nil
}
