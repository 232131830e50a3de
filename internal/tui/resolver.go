package tui

// attachmentOutcome classifies the shape of a record's attachment set.
type attachmentOutcome int

const (
	// attachNone: no attachments; Enter is a no-op.
	attachNone attachmentOutcome = iota
	// attachSingle: exactly one path; open it directly.
	attachSingle
	// attachMany: two or more paths; hand the choice to a chooser overlay.
	attachMany
)

// resolveAttachments is pure shape inspection: it never fails and never
// reorders. The paths keep their input order, which is also the chooser's
// display order.
func resolveAttachments(paths []string) attachmentOutcome {
	switch len(paths) {
	case 0:
		return attachNone
	case 1:
		return attachSingle
	default:
		return attachMany
	}
}
