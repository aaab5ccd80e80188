package source

import (
	"strings"

	rperrors "github.com/magnhaug/rp/internal/errors"
)

// commentPrefix marks a list-file line as a comment.
const commentPrefix = "#"

// ReadList reads a list file and returns one ListFileEntry reference
// per path line, in file order. Blank lines and lines starting with
// the comment marker are skipped. A list file that cannot be read is
// fatal, as is one whose content is not valid text: there is nothing
// to recover partially from.
func (r *Reader) ReadList(path string) ([]Ref, error) {
	content, encodingIssue, err := r.readFile(path)
	if err != nil {
		return nil, err
	}
	if encodingIssue {
		return nil, rperrors.NewListFileError(path, "list file is not valid text", nil)
	}

	var refs []Ref
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		refs = append(refs, ListEntry(line))
	}

	return refs, nil
}
