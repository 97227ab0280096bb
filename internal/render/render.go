package render

import (
	"fmt"
	"io"
	"time"

	"vink/internal/api"
)

// Copier is the slice of the clipboard chain the text path needs.
type Copier interface {
	Copy(text string) error
}

// Renderer presents a vanish on a terminal. Copying is delegated so the
// render paths stay testable without a real clipboard.
type Renderer struct {
	Out io.Writer
	// Err receives copy-failure notices. Falls back to Out when nil.
	Err   io.Writer
	Theme string
}

// Render presents the vanish along the path its plan selected. When copier
// is non-nil and the plan is the text path, the content is also placed on
// the clipboard; a copy failure is reported but does not fail the render.
func (r *Renderer) Render(v api.Vanish, copier Copier) error {
	plan, err := PlanFor(v)
	if err != nil {
		return err
	}

	r.header(v, plan)

	switch plan.Path {
	case PathText:
		if err := Highlight(r.Out, plan.Content, r.theme()); err != nil {
			return err
		}
		fmt.Fprintln(r.Out)
		if copier != nil {
			if err := copier.Copy(plan.Content); err != nil {
				fmt.Fprintln(r.errOut(), err)
			} else {
				fmt.Fprintln(r.Out, "Copied!")
			}
		}
	case PathImage:
		fmt.Fprintf(r.Out, "image: %s\n", plan.ImageURL)
		fmt.Fprintf(r.Out, "download: %s\n", plan.ImageURL)
		r.rows(plan.Rows)
	case PathFiles:
		r.rows(plan.Rows)
	}
	return nil
}

func (r *Renderer) header(v api.Vanish, plan Plan) {
	title := plan.Title
	if title == "" {
		title = "Untitled Vanish"
	}
	fmt.Fprintf(r.Out, "%s\n", title)
	if !v.CreatedAt.IsZero() {
		fmt.Fprintf(r.Out, "created: %s\n", v.CreatedAt.Format(time.RFC3339))
	}
	if v.ExpiresAt != nil && !v.ExpiresAt.IsZero() {
		fmt.Fprintf(r.Out, "expires: %s\n", v.ExpiresAt.Format(time.RFC3339))
	}
	fmt.Fprintln(r.Out)
}

func (r *Renderer) rows(rows []FileRow) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(r.Out, "files (%d):\n", len(rows))
	for _, row := range rows {
		if row.Size > 0 {
			fmt.Fprintf(r.Out, "  %s (%.2f KB)  %s\n", row.Name, float64(row.Size)/1024, row.URL)
		} else {
			fmt.Fprintf(r.Out, "  %s  %s\n", row.Name, row.URL)
		}
	}
}

func (r *Renderer) errOut() io.Writer {
	if r.Err != nil {
		return r.Err
	}
	return r.Out
}

func (r *Renderer) theme() string {
	if r.Theme == "" {
		return DefaultTheme
	}
	return r.Theme
}
