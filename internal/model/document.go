package model

import "strings"

// AttachmentField is the reserved field name for a document's attachment
// paths. It is a control field: stores populate it, the resolver consumes
// it, and it must never appear in a displayed column projection.
const AttachmentField = "attachment path"

// Document is one bibliographic record: an ordered field-name-to-value
// mapping plus the attachment path set. Immutable once built; rebinding a
// row to fresher data means handing it a new Document.
type Document struct {
	fields      []string
	values      map[string]string
	attachments []string
}

// NewDocument builds a Document from parallel field/value slices. The field
// order is preserved as the document's natural order. A field named
// AttachmentField is routed to the attachment set instead of the displayable
// fields; its value is split on newlines (one path per line).
func NewDocument(fields, values []string) Document {
	d := Document{values: make(map[string]string, len(fields))}
	for i, f := range fields {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		if f == AttachmentField {
			for _, p := range strings.Split(v, "\n") {
				if p = strings.TrimSpace(p); p != "" {
					d.attachments = append(d.attachments, p)
				}
			}
			continue
		}
		if _, dup := d.values[f]; dup {
			continue
		}
		d.fields = append(d.fields, f)
		d.values[f] = v
	}
	return d
}

// WithAttachments returns a copy of d with the given attachment paths,
// preserving their order.
func (d Document) WithAttachments(paths []string) Document {
	d.attachments = append([]string(nil), paths...)
	return d
}

// Fields returns the displayable field names in natural order. The reserved
// attachment field is never included.
func (d Document) Fields() []string {
	return append([]string(nil), d.fields...)
}

// Value returns the display value for a field. Unknown fields (including
// AttachmentField) report ok=false.
func (d Document) Value(field string) (string, bool) {
	v, ok := d.values[field]
	return v, ok
}

// Attachments returns the ordered attachment paths. Absent attachments yield
// an empty slice.
func (d Document) Attachments() []string {
	return append([]string(nil), d.attachments...)
}
