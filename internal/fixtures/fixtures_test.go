package fixtures

import (
	"moodle/internal/catalog"
	"moodle/internal/mdlerrors"
	"moodle/internal/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "site"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"core_course_get_courses",
		"core_course_get_courses_by_field",
		"mod_forum_get_forums_by_courses",
		"mod_resource_get_resources_by_courses",
	}, s.Functions())
}

func TestGetYAMLFixtureAsJSON(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "site"))
	require.NoError(t, err)

	body, err := s.Get("mod_forum_get_forums_by_courses")
	require.NoError(t, err)

	res, err := catalog.Decode("mod_forum_get_forums_by_courses", body)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Announcements", res.Items[0].(models.Forum).Name)
}

func TestGetRecordedException(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "site"))
	require.NoError(t, err)

	body, err := s.Get("core_course_get_courses")
	require.NoError(t, err)

	_, err = catalog.Decode("core_course_get_courses", body)
	var e *mdlerrors.Exception
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "nopermissions", e.ErrorCode)
}

func TestGetMissing(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "site"))
	require.NoError(t, err)

	_, err = s.Get("core_message_create_contact_request")
	assert.ErrorIs(t, err, mdlerrors.FixtureNotFoundError)
}

func TestLoadRejectsUnknownFunction(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local_plugin_do_things.json"), []byte(`{}`), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, mdlerrors.UnknownFunctionError)
	assert.Contains(t, err.Error(), "local_plugin_do_things.json")
}

func TestLoadRejectsInvalidPayload(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core_course_search_courses.json"), []byte(`{"total": 1, "courses": [{"id": 1}]}`), 0o644))

	_, err := Load(dir)
	assert.ErrorIs(t, err, mdlerrors.MissingFieldError)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReload(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.Functions())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "core_course_update_courses.yml"), []byte("warnings: []\n"), 0o644))
	require.NoError(t, s.Reload())
	assert.Equal(t, []string{"core_course_update_courses"}, s.Functions())

	body, err := s.Get("core_course_update_courses")
	require.NoError(t, err)
	assert.JSONEq(t, `{"warnings": []}`, string(body))

	// a broken file keeps the previous set
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core_course_get_courses.json"), []byte(`[`), 0o644))
	assert.ErrorIs(t, s.Reload(), mdlerrors.MalformedPayloadError)
	assert.Equal(t, []string{"core_course_update_courses"}, s.Functions())
}
