// Package render decides how a retrieved vanish is presented and carries the
// terminal presentation paths.
package render

import (
	"vink/internal/api"
)

// Path selects one of the mutually exclusive render paths.
type Path int

const (
	// PathText renders content as highlighted text with a copy affordance.
	PathText Path = iota
	// PathImage shows an inline preview of the stored image plus a download
	// action; file rows follow when the record also carries them.
	PathImage
	// PathFiles renders one downloadable row per stored file.
	PathFiles
)

// FileRow is one downloadable entry in the files path.
type FileRow struct {
	Name string
	Size int64
	URL  string
}

// Plan is everything a view needs to present one vanish.
type Plan struct {
	Path     Path
	Title    string
	Content  string    // PathText
	ImageURL string    // PathImage preview + download
	Rows     []FileRow // PathFiles, and PathImage when files are present
}

// PlanFor dispatches a vanish to its render path by declared content type.
// Records without a type predate the field and render as text. An IMAGE
// record that also carries files shows the preview first and the file rows
// after it, so the preview is never lost. A FILE record without a files list
// predates multi-file support and degrades to one row built from its
// top-level URL and title.
func PlanFor(v api.Vanish) (Plan, error) {
	contentType, err := api.ParseContentType(v.ContentType)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{Title: v.Title}
	switch contentType {
	case api.ContentText:
		plan.Path = PathText
		plan.Content = v.Content
	case api.ContentImage:
		plan.Path = PathImage
		plan.ImageURL = v.FileURL
		plan.Rows = rowsFor(v.Files)
	case api.ContentFile:
		plan.Path = PathFiles
		if len(v.Files) > 0 {
			plan.Rows = rowsFor(v.Files)
		} else {
			name := v.Title
			if name == "" {
				name = "Download File"
			}
			plan.Rows = []FileRow{{Name: name, URL: v.FileURL}}
		}
	}
	return plan, nil
}

func rowsFor(refs []api.FileRef) []FileRow {
	if len(refs) == 0 {
		return nil
	}
	rows := make([]FileRow, 0, len(refs))
	for _, ref := range refs {
		rows = append(rows, FileRow{
			Name: ref.OriginalFileName,
			Size: ref.FileSize,
			URL:  ref.FileURL,
		})
	}
	return rows
}
