//go:build property
// +build property

package regions

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestRegionProperties checks substitution invariants over arbitrary
// documents and fragments.
func TestRegionProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Fragments under our control never contain marker tokens.
	fragment := gen.RegexMatch(`^[A-Za-z0-9 \n]{0,40}$`)
	document := gen.RegexMatch(`^[A-Za-z0-9 .\n#]{0,80}$`)

	properties.Property("apply is idempotent", prop.ForAll(
		func(doc, header, footer string) bool {
			once := Apply(doc, header, footer)
			return Apply(once, header, footer) == once
		},
		document, fragment, fragment,
	))

	properties.Property("fresh documents end up with exactly one pair of each region", prop.ForAll(
		func(doc, header, footer string) bool {
			got := Apply(doc, header, footer)
			return strings.Count(got, HeaderStart) == 1 &&
				strings.Count(got, HeaderEnd) == 1 &&
				strings.Count(got, FooterStart) == 1 &&
				strings.Count(got, FooterEnd) == 1
		},
		document, fragment, fragment,
	))

	properties.Property("strip removes everything apply injected", prop.ForAll(
		func(header, footer string) bool {
			body := "authored body"
			got := Strip(Apply(body, header, footer))
			return got == body
		},
		fragment, fragment,
	))

	properties.TestingRun(t)
}
