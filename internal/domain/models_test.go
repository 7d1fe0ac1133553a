package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() AdminData {
	return AdminData{
		Users: []User{
			{ID: "u1", Username: "anna", Role: "Admin"},
			{ID: "u2", Username: "bartek", Role: "User"},
		},
		Projects: []Project{{ID: "p1", Name: "churn"}},
		Datasets: []Dataset{{ID: "d1", Name: "iris"}, {ID: "d2", Name: ""}},
	}
}

func TestParseResource(t *testing.T) {
	for in, want := range map[string]Resource{
		"users":      ResourceUsers,
		"User":       ResourceUsers,
		" projects ": ResourceProjects,
		"DATASET":    ResourceDatasets,
	} {
		got, err := ParseResource(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseResource("widgets")
	assert.Error(t, err)
}

func TestSingular(t *testing.T) {
	assert.Equal(t, "user", ResourceUsers.Singular())
	assert.Equal(t, "dataset", ResourceDatasets.Singular())
}

func TestRecordsAndCount(t *testing.T) {
	d := sampleData()
	assert.Len(t, d.Records(ResourceUsers), 2)
	assert.Equal(t, 1, d.Count(ResourceProjects))
	assert.Equal(t, 2, d.Count(ResourceDatasets))
	assert.Empty(t, d.Records(Resource("widgets")))
	assert.Equal(t, 0, d.Count(Resource("widgets")))
}

func TestSetUserBlockedLeavesSnapshotsAlone(t *testing.T) {
	d := sampleData()
	before := d

	assert.True(t, d.SetUserBlocked("u2", true))
	assert.True(t, d.Users[1].IsBlocked)
	assert.False(t, before.Users[1].IsBlocked)

	assert.False(t, d.SetUserBlocked("nope", true))
}

func TestRemove(t *testing.T) {
	d := sampleData()
	before := d

	assert.True(t, d.Remove(ResourceUsers, "u1"))
	assert.Equal(t, []User{{ID: "u2", Username: "bartek", Role: "User"}}, d.Users)
	assert.Len(t, before.Users, 2)
	assert.Equal(t, "u1", before.Users[0].ID)

	assert.True(t, d.Remove(ResourceDatasets, "d2"))
	assert.False(t, d.Remove(ResourceProjects, "p9"))
	assert.Equal(t, 1, d.Count(ResourceProjects))
}

func TestLabel(t *testing.T) {
	d := sampleData()
	assert.Equal(t, "anna", Label(d.Users[0]))
	assert.Equal(t, "iris", Label(d.Datasets[0]))
	assert.Equal(t, "d2", Label(d.Datasets[1]))
}

func TestUserFields(t *testing.T) {
	u := User{ID: "u3", Username: "celina", Role: "admin", IsBlocked: true}
	assert.True(t, u.IsAdmin())
	assert.Equal(t, "true", FieldValue(u, "blocked"))
	assert.Equal(t, "", FieldValue(u, "name"))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, LanguagePolish, LanguageEnglish.Toggle())
	assert.Equal(t, LanguageEnglish, LanguagePolish.Toggle())
}
