// Package serializer renders an assembled document to its XML wire
// form. The output shape is the one downstream parsers depend on:
//
//	<prompt>
//	  <templates><template name="...">...</template></templates>
//	  <files><file path="...">...</file></files>
//	</prompt>
//
// emitted without indentation, with empty containers self-closing.
// Everything user-supplied goes through encoding/xml escaping, so raw
// content can never break the document structure and no CDATA sections
// are needed. Rendering is a pure function of the document: identical
// input produces byte-identical output.
package serializer

import (
	"encoding/xml"
	"strings"

	"github.com/magnhaug/rp/internal/assembly"
)

// Render serializes a document. Escaping happens only here; the
// document itself is left untouched.
func Render(doc *assembly.Document) string {
	var b strings.Builder

	b.WriteString("<prompt>")

	if len(doc.Templates) == 0 {
		b.WriteString("<templates />")
	} else {
		b.WriteString("<templates>")
		for _, t := range doc.Templates {
			b.WriteString(`<template name="`)
			writeEscaped(&b, t.Name)
			b.WriteString(`">`)
			writeEscaped(&b, t.Content)
			b.WriteString("</template>")
		}
		b.WriteString("</templates>")
	}

	if len(doc.Files) == 0 {
		b.WriteString("<files />")
	} else {
		b.WriteString("<files>")
		for _, f := range doc.Files {
			b.WriteString(`<file path="`)
			writeEscaped(&b, f.Path)
			b.WriteString(`"`)
			if f.EncodingIssue {
				b.WriteString(` encoding="invalid"`)
			}
			b.WriteString(">")
			writeEscaped(&b, f.Content)
			b.WriteString("</file>")
		}
		b.WriteString("</files>")
	}

	b.WriteString("</prompt>")

	return b.String()
}

// writeEscaped escapes markup-significant characters for both text
// nodes and attribute values: & < > " ' plus tab, newline, and carriage
// return. xml.EscapeText never returns an error for a strings.Builder.
// Bytes that are not valid UTF-8 come out as U+FFFD; the entry carrying
// them is already flagged with encoding="invalid".
func writeEscaped(b *strings.Builder, s string) {
	_ = xml.EscapeText(b, []byte(s))
}
