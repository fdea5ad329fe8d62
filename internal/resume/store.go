package resume

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

// Store owns the current document snapshot for one editing session. It is
// injected explicitly into consumers (handlers, tests) rather than living
// as a package-level singleton.
//
// Every updater replaces exactly one top-level slice of the document and
// short-circuits on deep equality: editors write through on every
// keystroke, so an update that round-trips to an equal value must not
// produce a new snapshot (and must not notify subscribers), otherwise the
// live preview re-renders for nothing.
type Store struct {
	mu   sync.RWMutex
	doc  *Document
	subs []func(*Document)
}

// NewStore creates a store seeded with doc, or with DefaultDocument when
// doc is nil.
func NewStore(doc *Document) *Store {
	if doc == nil {
		doc = DefaultDocument()
	}
	d := doc.Clone()
	d.Normalize()
	return &Store{doc: d}
}

// Document returns the current snapshot. Snapshots are immutable by
// convention: the store never mutates a snapshot it has handed out, and
// callers must not either.
func (s *Store) Document() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Subscribe registers fn to be called synchronously with each new snapshot.
// Equality-gated updates that change nothing do not notify.
func (s *Store) Subscribe(fn func(*Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// commit installs next as the current snapshot and notifies subscribers.
// Callers hold no lock; commit takes it.
func (s *Store) commit(next *Document) {
	s.mu.Lock()
	s.doc = next
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(next)
	}
}

// update applies mutate to a clone of the current document, normalizes it,
// and commits only when the result differs from the current snapshot.
// Reports whether a new snapshot was produced.
func (s *Store) update(mutate func(*Document)) bool {
	s.mu.RLock()
	cur := s.doc
	s.mu.RUnlock()

	next := cur.Clone()
	mutate(next)
	next.Normalize()
	if reflect.DeepEqual(cur, next) {
		return false
	}
	s.commit(next)
	return true
}

func (s *Store) UpdatePersonal(p Personal) bool {
	return s.update(func(d *Document) { d.Personal = p })
}

func (s *Store) UpdateEducation(entries []Education) bool {
	return s.update(func(d *Document) { d.Education = append([]Education(nil), entries...) })
}

func (s *Store) UpdateExperience(entries []Experience) bool {
	return s.update(func(d *Document) { d.Experience = append([]Experience(nil), entries...) })
}

func (s *Store) UpdateSkills(sk Skills) bool {
	return s.update(func(d *Document) {
		d.Skills = Skills{
			Technical: append([]string(nil), sk.Technical...),
			Soft:      append([]string(nil), sk.Soft...),
			Languages: append([]string(nil), sk.Languages...),
		}
	})
}

func (s *Store) UpdateProjects(entries []Project) bool {
	return s.update(func(d *Document) { d.Projects = append([]Project(nil), entries...) })
}

func (s *Store) UpdateCertifications(entries []Certification) bool {
	return s.update(func(d *Document) { d.Certifications = append([]Certification(nil), entries...) })
}

func (s *Store) UpdateTheme(t Theme) bool {
	return s.update(func(d *Document) { d.Theme = t })
}

func (s *Store) SetTemplate(id string) bool {
	return s.update(func(d *Document) { d.SelectedTemplate = id })
}

func (s *Store) SetSectionOrder(order []string) bool {
	return s.update(func(d *Document) {
		if order == nil {
			d.SectionOrder = nil
			return
		}
		d.SectionOrder = append([]string(nil), order...)
	})
}

// Replace swaps in a whole new document (template switch, load from
// storage). Equality gating applies here too.
func (s *Store) Replace(doc *Document) bool {
	if doc == nil {
		doc = DefaultDocument()
	}
	return s.update(func(d *Document) { *d = *doc.Clone() })
}

// ApplySection routes a raw JSON payload to the typed updater for the named
// section. Used by the section-scoped PATCH endpoint. Reports whether a new
// snapshot was produced.
func (s *Store) ApplySection(section string, data []byte) (bool, error) {
	switch section {
	case SectionPersonal:
		var p Personal
		if err := json.Unmarshal(data, &p); err != nil {
			return false, fmt.Errorf("decode personal: %w", err)
		}
		return s.UpdatePersonal(p), nil
	case SectionEducation:
		var entries []Education
		if err := json.Unmarshal(data, &entries); err != nil {
			return false, fmt.Errorf("decode education: %w", err)
		}
		return s.UpdateEducation(entries), nil
	case SectionExperience:
		var entries []Experience
		if err := json.Unmarshal(data, &entries); err != nil {
			return false, fmt.Errorf("decode experience: %w", err)
		}
		return s.UpdateExperience(entries), nil
	case SectionSkills:
		var sk Skills
		if err := json.Unmarshal(data, &sk); err != nil {
			return false, fmt.Errorf("decode skills: %w", err)
		}
		return s.UpdateSkills(sk), nil
	case SectionProjects:
		var entries []Project
		if err := json.Unmarshal(data, &entries); err != nil {
			return false, fmt.Errorf("decode projects: %w", err)
		}
		return s.UpdateProjects(entries), nil
	case SectionCertifications:
		var entries []Certification
		if err := json.Unmarshal(data, &entries); err != nil {
			return false, fmt.Errorf("decode certifications: %w", err)
		}
		return s.UpdateCertifications(entries), nil
	case "theme":
		var t Theme
		if err := json.Unmarshal(data, &t); err != nil {
			return false, fmt.Errorf("decode theme: %w", err)
		}
		return s.UpdateTheme(t), nil
	case "template", "selectedTemplate":
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return false, fmt.Errorf("decode template: %w", err)
		}
		if id != TemplateModern && id != TemplateMinimal && id != TemplateProfessional {
			return false, fmt.Errorf("unknown template %q", id)
		}
		return s.SetTemplate(id), nil
	case "sectionOrder":
		var order []string
		if err := json.Unmarshal(data, &order); err != nil {
			return false, fmt.Errorf("decode sectionOrder: %w", err)
		}
		return s.SetSectionOrder(order), nil
	}
	return false, fmt.Errorf("unknown section %q", section)
}
