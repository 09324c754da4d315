package form

import (
	"testing"

	"github.com/khrees2412/autodoc/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddThenRemoveRestoresCollection(t *testing.T) {
	for _, section := range []Section{SectionProjects, SectionExperience, SectionCertifications, SectionExtracurriculars} {
		t.Run(section.String(), func(t *testing.T) {
			rec := models.NewResumeRecord()
			rec.Projects[0].Title = "first"
			rec.Experience[0].Role = "dev"
			rec.Certifications[0] = "CKA"
			rec.Extracurriculars[0] = "chess"
			before := *rec
			before.Projects = append([]models.Project(nil), rec.Projects...)
			before.Experience = append([]models.Experience(nil), rec.Experience...)
			before.Certifications = append([]string(nil), rec.Certifications...)
			before.Extracurriculars = append([]string(nil), rec.Extracurriculars...)

			e := NewListEditor(rec, nil)
			n := e.Len(section)
			require.NoError(t, e.AddItem(section))
			require.Equal(t, n+1, e.Len(section))
			require.NoError(t, e.RemoveItem(section, n))

			assert.Equal(t, before, *rec)
		})
	}
}

func TestEditItemStructuredAndText(t *testing.T) {
	rec := models.NewResumeRecord()
	e := NewListEditor(rec, nil)

	require.NoError(t, e.EditItem(SectionProjects, 0, ItemTech, "Go"))
	require.NoError(t, e.EditItem(SectionExperience, 0, ItemDuration, "2y"))
	// field is ignored for text sections
	require.NoError(t, e.EditItem(SectionCertifications, 0, ItemRole, "CKA"))
	require.NoError(t, e.EditItem(SectionExtracurriculars, 0, ItemText, "chess"))

	assert.Equal(t, "Go", rec.Projects[0].Tech)
	assert.Equal(t, "2y", rec.Experience[0].Duration)
	assert.Equal(t, []string{"CKA"}, rec.Certifications)
	assert.Equal(t, []string{"chess"}, rec.Extracurriculars)

	got, err := e.Item(SectionExperience, 0, ItemDuration)
	require.NoError(t, err)
	assert.Equal(t, "2y", got)
}

func TestEditItemErrors(t *testing.T) {
	e := NewListEditor(models.NewResumeRecord(), nil)

	assert.ErrorIs(t, e.EditItem(SectionProjects, 1, ItemTitle, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.EditItem(SectionProjects, -1, ItemTitle, "x"), ErrIndexOutOfRange)
	assert.ErrorIs(t, e.EditItem(SectionProjects, 0, ItemRole, "x"), ErrInvalidField)
	assert.ErrorIs(t, e.EditItem(SectionExperience, 0, ItemTech, "x"), ErrInvalidField)
}

func TestRemovePolicies(t *testing.T) {
	rec := models.NewResumeRecord()
	e := NewListEditor(rec, nil)

	assert.False(t, e.CanRemove(SectionProjects))
	assert.ErrorIs(t, e.RemoveItem(SectionProjects, 0), ErrMinimumItems)
	assert.Len(t, rec.Projects, 1)

	for _, section := range []Section{SectionExperience, SectionCertifications, SectionExtracurriculars} {
		assert.True(t, e.CanRemove(section))
		require.NoError(t, e.RemoveItem(section, 0))
		assert.Equal(t, 0, e.Len(section))
		assert.ErrorIs(t, e.RemoveItem(section, 0), ErrIndexOutOfRange)
	}
}

func TestCustomPolicy(t *testing.T) {
	rec := models.NewResumeRecord()
	e := NewListEditor(rec, map[Section]SectionPolicy{SectionCertifications: {MinItems: 1}})

	assert.ErrorIs(t, e.RemoveItem(SectionCertifications, 0), ErrMinimumItems)
	require.NoError(t, e.RemoveItem(SectionProjects, 0))
	assert.Empty(t, rec.Projects)
}

func TestRemoveMiddleKeepsOrder(t *testing.T) {
	rec := models.NewResumeRecord()
	rec.Certifications = []string{"a", "b", "c"}
	shared := rec.Certifications
	e := NewListEditor(rec, nil)

	require.NoError(t, e.RemoveItem(SectionCertifications, 1))
	assert.Equal(t, []string{"a", "c"}, rec.Certifications)
	assert.Equal(t, []string{"a", "b", "c"}, shared, "previous slice is not shifted in place")
}

func TestSectionForStep(t *testing.T) {
	sec, ok := SectionForStep(StepCertifications)
	require.True(t, ok)
	assert.Equal(t, SectionCertifications, sec)

	_, ok = SectionForStep(StepSkills)
	assert.False(t, ok)
}

func TestNormalizeFillsNullAndShortSections(t *testing.T) {
	rec := &models.ResumeRecord{Certifications: []string{"CKA"}}

	NewListEditor(rec, nil).Normalize()

	assert.Equal(t, []models.Project{{}}, rec.Projects)
	assert.Equal(t, []models.Experience{}, rec.Experience)
	assert.Equal(t, []string{"CKA"}, rec.Certifications)
	assert.Equal(t, []string{}, rec.Extracurriculars)
}

func TestSectionNoun(t *testing.T) {
	assert.Equal(t, "1 project", SectionProjects.Noun(1))
	assert.Equal(t, "2 projects", SectionProjects.Noun(2))
	assert.Equal(t, "1 experience entry", SectionExperience.Noun(1))
	assert.Equal(t, "0 activities", SectionExtracurriculars.Noun(0))
}
