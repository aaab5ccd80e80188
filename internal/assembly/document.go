// Package assembly builds the in-memory prompt document from resolved
// inputs. It owns the document model, the template and file collectors,
// and the one-shot Assembler that ties collection, serialization, and
// token estimation together.
package assembly

// Default template used when an invocation supplies no templates at
// all. Matches the advertised behavior of the CLI: a bare `rp -f x`
// still produces a usable prompt.
const (
	DefaultTemplateName = "default"
	DefaultTemplateText = "Please analyze the provided files and summarize their purpose and functionality."
)

// TemplateEntry is one resolved prompt template. Name identifies the
// template in the output document: the basename of the source file,
// inline_prompt_N for inline text, or "default".
type TemplateEntry struct {
	Name    string
	Content string
}

// FileEntry is one resolved file. Path is the path as supplied by the
// user, not resolved to absolute. EncodingIssue marks content that was
// read but is not valid UTF-8.
type FileEntry struct {
	Path          string
	Content       string
	EncodingIssue bool
}

// Document is the complete in-memory model handed to the serializer.
// It is constructed once per invocation and never mutated afterwards:
// entries keep their resolution order and their verbatim content.
type Document struct {
	Templates []TemplateEntry
	Files     []FileEntry
}
