package assembly

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/magnhaug/rp/internal/source"
)

// CollectTemplates resolves an ordered list of template references into
// template entries, preserving input order. There is no de-duplication:
// a repeated template is assumed to be intentional.
func CollectTemplates(reader *source.Reader, refs []source.Ref) ([]TemplateEntry, error) {
	entries := make([]TemplateEntry, 0, len(refs))

	inlineCount := 0
	for _, ref := range refs {
		unit, err := reader.Resolve(ref)
		if err != nil {
			return nil, err
		}

		var name string
		if ref.Kind == source.InlineText {
			inlineCount++
			name = fmt.Sprintf("inline_prompt_%d", inlineCount)
		} else {
			name = filepath.Base(ref.Value)
		}

		entries = append(entries, TemplateEntry{Name: name, Content: unit.Content})
	}

	return entries, nil
}

// CollectFiles resolves file references into file entries. References
// are de-duplicated by canonical path before any read happens, with the
// first occurrence keeping its position; reads then run on a bounded
// worker pool and land in a slice indexed by input position, so the
// output order is the deterministic input order regardless of read
// completion order. The first failed read aborts the whole collection.
func CollectFiles(ctx context.Context, reader *source.Reader, refs []source.Ref, workers int) ([]FileEntry, error) {
	refs = dedupe(refs)
	if len(refs) == 0 {
		return nil, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	entries := make([]FileEntry, len(refs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			unit, err := reader.Resolve(ref)
			if err != nil {
				return err
			}
			entries[i] = FileEntry{
				Path:          ref.Value,
				Content:       unit.Content,
				EncodingIssue: unit.EncodingIssue,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// dedupe drops references whose canonical path was already seen,
// keeping first occurrences in order. The emitted path stays as
// supplied; filepath.Clean is only the de-duplication key.
func dedupe(refs []source.Ref) []source.Ref {
	seen := make(map[string]struct{}, len(refs))
	unique := refs[:0:0]
	for _, ref := range refs {
		key := filepath.Clean(ref.Value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, ref)
	}
	return unique
}
