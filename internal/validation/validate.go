// Package validation implements the cross-cutting rules that gate export
// and feed per-section error lists back to the editors.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/resumecraft/go-services/internal/resume"
)

// Error messages are stable strings: the frontend surfaces them verbatim.
const (
	MsgNameRequired     = "Full name is required"
	MsgEmailRequired    = "Email is required"
	MsgEmailInvalid     = "Enter a valid email address"
	MsgPhoneInvalid     = "Enter a valid phone number"
	MsgWebsiteInvalid   = "Enter a valid website URL"
	MsgLinkedInInvalid  = "Enter a valid LinkedIn URL"
	MsgGitHubInvalid    = "Enter a valid GitHub URL"
	MsgInstitutionReq   = "Institution is required"
	MsgDegreeRequired   = "Degree is required"
	MsgCompanyRequired  = "Company is required"
	MsgPositionRequired = "Position is required"
)

var (
	// RFC-loose: one @, something either side, a dot in the domain.
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Loose phone: optional +, digits with common separators, 7..20 chars.
	phoneRe = regexp.MustCompile(`^\+?[0-9()\-\s.]{7,20}$`)
)

// sectionOrder fixes the iteration order callers use to surface the first
// failing section.
var sectionOrder = []string{
	resume.SectionPersonal,
	resume.SectionEducation,
	resume.SectionExperience,
}

// Validate checks the document and returns ordered error messages keyed by
// section name. With no scope every section is validated; with a scope only
// that slice is (per-tab gating). Sections without errors are absent from
// the result.
func Validate(doc *resume.Document, scope ...string) map[string][]string {
	checks := map[string]func(*resume.Document) []string{
		resume.SectionPersonal:   validatePersonal,
		resume.SectionEducation:  validateEducation,
		resume.SectionExperience: validateExperience,
	}

	out := map[string][]string{}
	run := func(section string) {
		check, ok := checks[section]
		if !ok {
			return
		}
		if errs := check(doc); len(errs) > 0 {
			out[section] = errs
		}
	}

	if len(scope) > 0 {
		for _, s := range scope {
			run(s)
		}
		return out
	}
	for _, s := range sectionOrder {
		run(s)
	}
	return out
}

// FirstFailing returns the first section (in canonical order) that has
// errors, or "" when the result is clean.
func FirstFailing(errs map[string][]string) string {
	for _, s := range sectionOrder {
		if len(errs[s]) > 0 {
			return s
		}
	}
	return ""
}

func validatePersonal(doc *resume.Document) []string {
	p := doc.Personal
	var errs []string
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, MsgNameRequired)
	}
	switch {
	case strings.TrimSpace(p.Email) == "":
		errs = append(errs, MsgEmailRequired)
	case !emailRe.MatchString(p.Email):
		errs = append(errs, MsgEmailInvalid)
	}
	if p.Phone != "" && !phoneRe.MatchString(p.Phone) {
		errs = append(errs, MsgPhoneInvalid)
	}
	if p.Website != "" && !validURL(p.Website) {
		errs = append(errs, MsgWebsiteInvalid)
	}
	if p.LinkedIn != "" && !validURL(p.LinkedIn) {
		errs = append(errs, MsgLinkedInInvalid)
	}
	if p.GitHub != "" && !validURL(p.GitHub) {
		errs = append(errs, MsgGitHubInvalid)
	}
	return errs
}

// Education and experience inspect only the first entry, and only when the
// user has started filling it in. Later entries are treated as optional.
// This mirrors the original editor behavior; see DESIGN.md for the
// open-question decision.

func validateEducation(doc *resume.Document) []string {
	if len(doc.Education) == 0 {
		return nil
	}
	e := doc.Education[0]
	if e.Institution == "" && e.Degree == "" && e.Field == "" && e.Description == "" {
		return nil
	}
	var errs []string
	if e.Institution == "" {
		errs = append(errs, MsgInstitutionReq)
	}
	if e.Degree == "" {
		errs = append(errs, MsgDegreeRequired)
	}
	return errs
}

func validateExperience(doc *resume.Document) []string {
	if len(doc.Experience) == 0 {
		return nil
	}
	e := doc.Experience[0]
	if e.Company == "" && e.Position == "" && e.Description == "" {
		return nil
	}
	var errs []string
	if e.Company == "" {
		errs = append(errs, MsgCompanyRequired)
	}
	if e.Position == "" {
		errs = append(errs, MsgPositionRequired)
	}
	return errs
}

// validURL accepts anything url.Parse can make sense of as an absolute URL
// with a dotted host; a missing scheme is tolerated by prepending https://.
func validURL(raw string) bool {
	s := raw
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Host != "" && strings.Contains(u.Host, ".")
}
