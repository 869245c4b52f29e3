package catalog

import (
	"errors"
	"moodle/internal/mdlerrors"
	"moodle/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisteredFunctions(t *testing.T) {
	fs := Functions()
	require.Len(t, fs, 8)
	for i := 1; i < len(fs); i++ {
		assert.Less(t, fs[i-1].Name, fs[i].Name)
	}

	f, ok := Lookup("mod_forum_get_forums_by_courses")
	require.True(t, ok)
	assert.Equal(t, Mod, f.Component)
	assert.Equal(t, "forum", f.Area)
	assert.True(t, f.IsList)

	f, ok = Lookup("core_course_update_courses")
	require.True(t, ok)
	assert.False(t, f.IsList)

	_, ok = Lookup("core_webservice_get_site_info")
	assert.False(t, ok)
}

func TestByComponent(t *testing.T) {
	assert.Len(t, ByComponent(Core), 6)
	assert.Len(t, ByComponent(Mod), 2)
	assert.Empty(t, ByComponent(GradeReport))
}

func TestDecodeListResult(t *testing.T) {
	body := []byte(`{"total": 3, "courses": [
		{"id": 5, "shortname": "CS101", "categoryid": 1, "fullname": "CS", "displayname": "CS", "summary": "",
		 "summaryformat": 1, "format": "topics", "startdate": 0, "enddate": 0},
		{"id": 6, "shortname": "CS102", "categoryid": 1, "fullname": "CS 2", "displayname": "CS 2", "summary": "",
		 "summaryformat": 1, "format": "topics", "startdate": 0, "enddate": 0}
	], "warnings": [{"warningcode": "w", "message": "m"}]}`)

	res, err := Decode("core_course_search_courses", body)
	require.NoError(t, err)
	assert.Equal(t, "core_course_search_courses", res.Function.Name)
	assert.True(t, res.IsList)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 5, res.Items[0].(models.Course).ID)
	assert.Equal(t, 6, res.Items[1].(models.Course).ID)
	require.Len(t, res.Warnings, 1)

	sr, ok := res.Value.(models.SearchResult)
	require.True(t, ok)
	assert.Equal(t, 3, sr.TotalCount())
}

func TestDecodeEmptyList(t *testing.T) {
	res, err := Decode("mod_forum_get_forums_by_courses", []byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestDecodeSingleResult(t *testing.T) {
	res, err := Decode("core_message_create_contact_request", []byte(`{"request": {"id": 1, "userid": 2, "requesteduserid": 3, "timecreated": 1700000000}, "warnings": []}`))
	require.NoError(t, err)
	assert.False(t, res.IsList)
	assert.Nil(t, res.Items)

	cr := res.Value.(models.ContactRequest)
	req, ok := cr.Request.Get()
	require.True(t, ok)
	assert.Equal(t, 3, req.RequestedUserID)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode("local_unknown_function", []byte(`{}`))
	assert.ErrorIs(t, err, mdlerrors.UnknownFunctionError)

	_, err = Decode("core_course_get_courses", []byte(`{"exception": "moodle_exception", "errorcode": "invalidtoken", "message": "Invalid token"}`))
	assert.True(t, errors.Is(err, mdlerrors.InvalidTokenError))
	assert.Contains(t, err.Error(), "core_course_get_courses")
}

func TestDecodeYAML(t *testing.T) {
	f, ok := Lookup("core_course_update_courses")
	require.True(t, ok)

	res, err := f.DecodeYAML([]byte("warnings:\n  - warningcode: shortnametaken\n    message: Short name is already used\n    itemid: 4\n"))
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 4, res.Warnings[0].ItemID.OrElse(0))
}
