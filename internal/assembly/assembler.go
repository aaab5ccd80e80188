package assembly

import (
	"context"

	"github.com/magnhaug/rp/internal/logging"
	"github.com/magnhaug/rp/internal/source"
)

// Options carries one invocation's resolved inputs. All configuration
// is explicit; nothing in the pipeline reads ambient global state.
type Options struct {
	// TemplateFiles are paths to template files, in flag order.
	TemplateFiles []string
	// InlinePrompts are literal templates from positional arguments.
	// They follow the file templates in the document.
	InlinePrompts []string
	// Files are direct file path arguments, in flag order.
	Files []string
	// ListFile is an optional path to a newline-separated list of
	// additional file paths.
	ListFile string
	// Workers bounds the file read pool; <= 0 means NumCPU.
	Workers int
}

// Assembler runs the one-shot pipeline: references in, document out.
type Assembler struct {
	reader *source.Reader
	logger logging.Logger
}

// New creates an assembler. A nil logger disables diagnostics.
func New(logger logging.Logger) *Assembler {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Assembler{
		reader: source.NewReader(),
		logger: logger,
	}
}

// Assemble resolves all inputs into a document. Templates keep flag
// order (file templates, then inline prompts); files keep direct-flag
// order followed by list-file order, de-duplicated by canonical path.
// When no templates are given the built-in default template is used,
// so an invocation with no inputs at all still succeeds with a valid,
// nearly empty document. Any failed read aborts the whole assembly;
// a partially built document is never returned.
func (a *Assembler) Assemble(ctx context.Context, opts Options) (*Document, error) {
	templateRefs := make([]source.Ref, 0, len(opts.TemplateFiles)+len(opts.InlinePrompts))
	for _, path := range opts.TemplateFiles {
		templateRefs = append(templateRefs, source.File(path))
	}
	for _, text := range opts.InlinePrompts {
		templateRefs = append(templateRefs, source.Inline(text))
	}

	templates, err := CollectTemplates(a.reader, templateRefs)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		a.logger.Debug("no templates given, using default template")
		templates = []TemplateEntry{{Name: DefaultTemplateName, Content: DefaultTemplateText}}
	}

	fileRefs := make([]source.Ref, 0, len(opts.Files))
	for _, path := range opts.Files {
		fileRefs = append(fileRefs, source.File(path))
	}
	if opts.ListFile != "" {
		listRefs, err := a.reader.ReadList(opts.ListFile)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("resolved list file", "path", opts.ListFile, "entries", len(listRefs))
		fileRefs = append(fileRefs, listRefs...)
	}

	files, err := CollectFiles(ctx, a.reader, fileRefs, opts.Workers)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if f.EncodingIssue {
			a.logger.Warn("file content is not valid text, included with encoding flag", "path", f.Path)
		}
	}

	a.logger.Debug("assembled document", "templates", len(templates), "files", len(files))

	return &Document{Templates: templates, Files: files}, nil
}
