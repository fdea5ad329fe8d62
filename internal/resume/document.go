package resume

// Template identifiers. The set is closed: rendering dispatches over these
// three via internal/render, not over a string-keyed table.
const (
	TemplateModern       = "modern"
	TemplateMinimal      = "minimal"
	TemplateProfessional = "professional"
)

// Section identifiers used by sectionOrder and by the validation engine.
const (
	SectionPersonal       = "personal"
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// CanonicalSectionOrder is the render order used when a document carries no
// explicit sectionOrder.
var CanonicalSectionOrder = []string{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// Theme enumerations. Colors name one of eight fixed palettes; fonts one of
// three families. Spacing and contrast are small integer scales (1..3).
const (
	FontSans  = "sans"
	FontSerif = "serif"
	FontMono  = "mono"
)

var PaletteNames = []string{"blue", "emerald", "violet", "rose", "amber", "teal", "slate", "crimson"}

// Personal holds the contact block. Only name and email are required for
// export; everything else is optional.
type Personal struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Website  string `json:"website,omitempty" bson:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" bson:"github,omitempty"`
	Summary  string `json:"summary,omitempty" bson:"summary,omitempty"`
}

// Dates throughout the model are "YYYY-MM" strings (or empty), never
// time.Time, so documents stay trivially serializable.

type Education struct {
	Institution string `json:"institution" bson:"institution"`
	Degree      string `json:"degree" bson:"degree"`
	Field       string `json:"field,omitempty" bson:"field,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Experience struct {
	Company     string `json:"company" bson:"company"`
	Position    string `json:"position" bson:"position"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty" bson:"current,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Project struct {
	Name        string `json:"name" bson:"name"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	Stack       string `json:"stack,omitempty" bson:"stack,omitempty"`
	StartDate   string `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

type Certification struct {
	Name        string `json:"name" bson:"name"`
	Issuer      string `json:"issuer,omitempty" bson:"issuer,omitempty"`
	URL         string `json:"url,omitempty" bson:"url,omitempty"`
	StartDate   string `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty" bson:"endDate,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Skills keeps three independent groups. Each group is deduplicated on
// insert (case-sensitive) with insertion order preserved.
type Skills struct {
	Technical []string `json:"technical" bson:"technical"`
	Soft      []string `json:"soft" bson:"soft"`
	Languages []string `json:"languages" bson:"languages"`
}

type Theme struct {
	Color    string `json:"color" bson:"color"`
	Font     string `json:"font" bson:"font"`
	Spacing  int    `json:"spacing" bson:"spacing"`
	Contrast int    `json:"contrast" bson:"contrast"`
}

// Document is the root aggregate owned by an editing session.
type Document struct {
	Personal         Personal        `json:"personal" bson:"personal"`
	Education        []Education     `json:"education" bson:"education"`
	Experience       []Experience    `json:"experience" bson:"experience"`
	Projects         []Project       `json:"projects" bson:"projects"`
	Certifications   []Certification `json:"certifications" bson:"certifications"`
	Skills           Skills          `json:"skills" bson:"skills"`
	SelectedTemplate string          `json:"selectedTemplate" bson:"selectedTemplate"`
	Theme            Theme           `json:"theme" bson:"theme"`
	SectionOrder     []string        `json:"sectionOrder,omitempty" bson:"sectionOrder,omitempty"`
}

// DefaultDocument returns the all-empty document a fresh session starts
// with. Every repeated section is seeded with one blank entry so editors
// always have a row to render.
func DefaultDocument() *Document {
	return &Document{
		Education:      []Education{{}},
		Experience:     []Experience{{}},
		Projects:       []Project{{}},
		Certifications: []Certification{{}},
		Skills: Skills{
			Technical: []string{},
			Soft:      []string{},
			Languages: []string{},
		},
		SelectedTemplate: TemplateModern,
		Theme:            Theme{Color: "blue", Font: FontSans, Spacing: 2, Contrast: 2},
	}
}

// Present reports whether an entry counts for rendering. An entry is
// present only when its identifying field is non-empty.
func (e Education) Present() bool     { return e.Institution != "" }
func (e Experience) Present() bool    { return e.Company != "" }
func (p Project) Present() bool       { return p.Name != "" }
func (c Certification) Present() bool { return c.Name != "" }

// Empty reports whether the skills container has no entries in any group.
func (s Skills) Empty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0 && len(s.Languages) == 0
}

// Clone returns a deep copy. Snapshots handed out by the Store must never
// alias the slices of a document a caller can still mutate.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Education = append([]Education(nil), d.Education...)
	out.Experience = append([]Experience(nil), d.Experience...)
	out.Projects = append([]Project(nil), d.Projects...)
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Skills = Skills{
		Technical: append([]string(nil), d.Skills.Technical...),
		Soft:      append([]string(nil), d.Skills.Soft...),
		Languages: append([]string(nil), d.Skills.Languages...),
	}
	if d.SectionOrder != nil {
		out.SectionOrder = append([]string(nil), d.SectionOrder...)
	}
	return &out
}

// dedupe removes duplicate strings (case-sensitive exact match) while
// preserving first-seen order.
func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Normalize enforces the model invariants: skills groups deduplicated and
// a current experience entry carries no end date.
func (d *Document) Normalize() {
	d.Skills.Technical = dedupe(d.Skills.Technical)
	d.Skills.Soft = dedupe(d.Skills.Soft)
	d.Skills.Languages = dedupe(d.Skills.Languages)
	for i := range d.Experience {
		if d.Experience[i].Current {
			d.Experience[i].EndDate = ""
		}
	}
}
