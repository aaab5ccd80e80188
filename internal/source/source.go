// Package source resolves heterogeneous input references into text.
//
// A reference is either literal inline text, a filesystem path, or a
// path line taken from a list file. The distinction is carried as an
// explicit tagged variant (Ref) and dispatched exactly once in
// Reader.Resolve; everything downstream works with resolved units and
// never re-inspects the reference kind.
package source

import (
	"os"
	"unicode/utf8"

	rperrors "github.com/magnhaug/rp/internal/errors"
)

// Kind tags the origin of a reference.
type Kind int

const (
	// InlineText is literal text supplied directly on the command line.
	InlineText Kind = iota
	// FilePath is a filesystem path given as an argument.
	FilePath
	// ListFileEntry is a filesystem path taken from a line of a list file.
	ListFileEntry
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case InlineText:
		return "inline"
	case FilePath:
		return "file"
	case ListFileEntry:
		return "list-entry"
	default:
		return "unknown"
	}
}

// Ref is a single unresolved input reference.
type Ref struct {
	Kind  Kind
	Value string
}

// Inline builds a reference to literal text.
func Inline(text string) Ref {
	return Ref{Kind: InlineText, Value: text}
}

// File builds a reference to a filesystem path.
func File(path string) Ref {
	return Ref{Kind: FilePath, Value: path}
}

// ListEntry builds a reference to a path that came from a list file.
func ListEntry(path string) Ref {
	return Ref{Kind: ListFileEntry, Value: path}
}

// Unit is one resolved unit of text. EncodingIssue is set when the
// content was read but is not valid UTF-8; the content is still kept
// verbatim so downstream consumers can decide how to treat it.
type Unit struct {
	Ref           Ref
	Content       string
	EncodingIssue bool
}

// Reader resolves references into units. It is stateless and safe for
// concurrent use.
type Reader struct{}

// NewReader creates a source reader.
func NewReader() *Reader {
	return &Reader{}
}

// Resolve produces the text content for a reference. Inline text is
// returned verbatim; paths are read in full. A missing or irregular
// path yields a read error, an unreadable one a permission error.
// Content that is not valid UTF-8 is kept with EncodingIssue set,
// never dropped.
func (r *Reader) Resolve(ref Ref) (Unit, error) {
	if ref.Kind == InlineText {
		return Unit{Ref: ref, Content: ref.Value}, nil
	}

	content, encodingIssue, err := r.readFile(ref.Value)
	if err != nil {
		return Unit{}, err
	}

	return Unit{Ref: ref, Content: content, EncodingIssue: encodingIssue}, nil
}

// readFile reads the full content of a regular file. The regular-file
// check keeps directories and devices out of the document.
func (r *Reader) readFile(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false, rperrors.FromOpenError(path, err)
	}
	if !info.Mode().IsRegular() {
		return "", false, rperrors.NewReadError(path, nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, rperrors.FromOpenError(path, err)
	}

	return string(data), !utf8.Valid(data), nil
}
