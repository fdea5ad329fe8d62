package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateEqualInputIsNoOp(t *testing.T) {
	s := NewStore(nil)
	before := s.Document()

	// same value as the current (default) document
	changed := s.UpdatePersonal(Personal{})
	assert.False(t, changed)
	assert.Same(t, before, s.Document(), "no-op update must keep the same snapshot")

	changed = s.UpdatePersonal(Personal{Name: "Jane Doe"})
	require.True(t, changed)
	after := s.Document()
	assert.NotSame(t, before, after)
	assert.Equal(t, "Jane Doe", after.Personal.Name)

	// writing the identical value again must not produce a new snapshot
	changed = s.UpdatePersonal(Personal{Name: "Jane Doe"})
	assert.False(t, changed)
	assert.Same(t, after, s.Document())
}

func TestSubscribeNotifiesOnlyOnChange(t *testing.T) {
	s := NewStore(nil)
	var notified int
	s.Subscribe(func(*Document) { notified++ })

	s.UpdatePersonal(Personal{}) // equal, no notification
	assert.Equal(t, 0, notified)

	s.UpdatePersonal(Personal{Name: "Jane"})
	assert.Equal(t, 1, notified)

	s.UpdatePersonal(Personal{Name: "Jane"}) // equal again
	assert.Equal(t, 1, notified)

	s.SetTemplate(TemplateMinimal)
	assert.Equal(t, 2, notified)
}

func TestUpdateSkillsDeduplicates(t *testing.T) {
	s := NewStore(nil)
	changed := s.UpdateSkills(Skills{
		Technical: []string{"Go", "Go", "Python", "go"},
		Soft:      []string{},
		Languages: []string{},
	})
	require.True(t, changed)
	// case-sensitive: "go" is distinct from "Go"
	assert.Equal(t, []string{"Go", "Python", "go"}, s.Document().Skills.Technical)
}

func TestCurrentExperienceClearsEndDate(t *testing.T) {
	s := NewStore(nil)
	changed := s.UpdateExperience([]Experience{
		{Company: "Acme", Position: "Engineer", StartDate: "2020-01", EndDate: "2023-06", Current: true},
	})
	require.True(t, changed)
	assert.Empty(t, s.Document().Experience[0].EndDate)
	assert.True(t, s.Document().Experience[0].Current)
}

func TestSnapshotsDoNotAliasCallerSlices(t *testing.T) {
	entries := []Education{{Institution: "MIT", Degree: "BSc"}}
	s := NewStore(nil)
	require.True(t, s.UpdateEducation(entries))

	entries[0].Institution = "mutated"
	assert.Equal(t, "MIT", s.Document().Education[0].Institution)
}

func TestReplace(t *testing.T) {
	s := NewStore(nil)
	doc := DefaultDocument()
	doc.Personal.Name = "Jane Doe"
	doc.SelectedTemplate = TemplateProfessional

	require.True(t, s.Replace(doc))
	assert.Equal(t, "Jane Doe", s.Document().Personal.Name)
	assert.Equal(t, TemplateProfessional, s.Document().SelectedTemplate)

	// replacing with an equal document is gated too
	assert.False(t, s.Replace(doc))

	// nil resets to the default document
	require.True(t, s.Replace(nil))
	assert.Equal(t, DefaultDocument(), s.Document())
}

func TestApplySection(t *testing.T) {
	s := NewStore(nil)

	changed, err := s.ApplySection(SectionPersonal, []byte(`{"name":"Jane Doe","email":"jane@example.com"}`))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Jane Doe", s.Document().Personal.Name)

	changed, err = s.ApplySection(SectionExperience, []byte(`[{"company":"Acme","position":"Engineer","current":true,"endDate":"2024-01"}]`))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, s.Document().Experience[0].EndDate)

	changed, err = s.ApplySection("template", []byte(`"minimal"`))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, TemplateMinimal, s.Document().SelectedTemplate)

	_, err = s.ApplySection("template", []byte(`"fancy"`))
	assert.Error(t, err)

	changed, err = s.ApplySection("sectionOrder", []byte(`["education","experience","summary","skills","projects","certifications"]`))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "education", s.Document().SectionOrder[0])

	_, err = s.ApplySection("nope", []byte(`{}`))
	assert.Error(t, err)

	_, err = s.ApplySection(SectionPersonal, []byte(`[1,2]`))
	assert.Error(t, err)
}
