package render

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultTheme is the highlight style used when the config names none.
const DefaultTheme = "monokai"

// Highlight writes source with terminal syntax highlighting, guessing the
// language from the content. On any tokenizer failure the source is written
// plain; a share must stay readable even when highlighting cannot run.
func Highlight(w io.Writer, source, theme string) error {
	lexer := lexers.Analyse(source)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		_, writeErr := io.WriteString(w, source)
		return writeErr
	}
	if err := formatter.Format(w, style, iterator); err != nil {
		_, writeErr := io.WriteString(w, source)
		return writeErr
	}
	return nil
}
