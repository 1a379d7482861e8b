// Package regions performs idempotent, marker-delimited substitution of
// generated fragments inside otherwise human-authored documents.
//
// A document carries two independent region pairs, a header and a footer,
// each delimited by comment tokens invisible in rendered output. Only the
// text strictly between a pair's markers is ever replaced; everything else
// in the document belongs to the author and is left untouched.
package regions

import (
	"os"
	"regexp"
	"strings"

	corpuserrors "github.com/quizforge/quizforge/internal/errors"
)

// Generated-region marker tokens. These are part of the external document
// format and must be preserved verbatim.
const (
	HeaderStart = "<!--info-header-start-->"
	HeaderEnd   = "<!--info-header-end-->"
	FooterStart = "<!--info-footer-start-->"
	FooterEnd   = "<!--info-footer-end-->"
)

var (
	headerRegion = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(HeaderStart) + `.*?` + regexp.QuoteMeta(HeaderEnd))
	footerRegion = regexp.MustCompile(`(?s)` + regexp.QuoteMeta(FooterStart) + `.*?` + regexp.QuoteMeta(FooterEnd))
)

// Apply substitutes the generated header and footer fragments into doc.
//
// When a marker pair is missing it is inserted first: the header pair
// immediately before existing content, the footer pair appended after it.
// Apply is idempotent; applying it twice with the same fragments yields a
// byte-identical result.
func Apply(doc, header, footer string) string {
	if !headerRegion.MatchString(doc) {
		doc = HeaderStart + HeaderEnd + "\n\n" + doc
	}
	if !footerRegion.MatchString(doc) {
		doc = strings.TrimRight(doc, "\n") + "\n\n" + FooterStart + FooterEnd + "\n"
	}

	doc = headerRegion.ReplaceAllLiteralString(doc, HeaderStart+"\n"+header+"\n"+HeaderEnd)
	doc = footerRegion.ReplaceAllLiteralString(doc, FooterStart+"\n"+footer+"\n"+FooterEnd)

	return doc
}

// ApplyFile applies the region substitution to the document at path,
// replacing the whole file. A missing document reports a per-item
// missing-target error so one bad path never aborts a batch.
func ApplyFile(path, header, footer string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return corpuserrors.ErrMissingTarget(path)
		}
		return corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "reading document", err).WithPath(path)
	}

	updated := Apply(string(data), header, footer)
	if updated == string(data) {
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return corpuserrors.NewIOError(corpuserrors.ErrCodeWriteFailed, "writing document", err).WithPath(path)
	}
	return nil
}

// Strip removes both generated regions, markers included, leaving only the
// authored body. The corpus loader stores README bodies in this form.
func Strip(doc string) string {
	doc = headerRegion.ReplaceAllLiteralString(doc, "")
	doc = footerRegion.ReplaceAllLiteralString(doc, "")
	return strings.TrimSpace(doc)
}
