package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	var absent Optional[int]
	_, ok := absent.Get()
	assert.False(t, ok)
	assert.Equal(t, 3, absent.OrElse(3))
	assert.Equal(t, "<absent>", absent.String())

	zero := Some(0)
	v, ok := zero.Get()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, 0, zero.OrElse(3))
	assert.Equal(t, "0", zero.String())
}

func TestOptionalJSON(t *testing.T) {
	var rec struct {
		A Optional[string] `json:"a"`
		B Optional[string] `json:"b"`
		C Optional[string] `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "x", "b": null}`), &rec))
	assert.Equal(t, Some("x"), rec.A)
	assert.False(t, rec.B.IsSet())
	assert.False(t, rec.C.IsSet())

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "x", "b": null, "c": null}`, string(out))
}

func TestTimestamp(t *testing.T) {
	assert.True(t, NewTimestamp(0).IsZero())
	assert.Equal(t, int64(0), NewTimestamp(0).Unix())

	ts := NewTimestamp(1700000000)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), ts.Time)

	var decoded Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1700000000`), &decoded))
	assert.Equal(t, ts, decoded)
	require.NoError(t, json.Unmarshal([]byte(`1700000000.0`), &decoded))
	assert.Equal(t, ts, decoded)
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`"1700000000"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`1700000000.5`), &decoded))
	assert.Equal(t, ts, decoded)

	out, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", string(out))
}

func TestFormatValue(t *testing.T) {
	var v FormatValue
	require.NoError(t, json.Unmarshal([]byte(`"single"`), &v))
	assert.Equal(t, "single", v.String())
	_, isNum := v.Int()
	assert.False(t, isNum)

	require.NoError(t, json.Unmarshal([]byte(`4`), &v))
	n, isNum := v.Int()
	assert.True(t, isNum)
	assert.Equal(t, 4, n)
	assert.Equal(t, "4", v.String())

	assert.Error(t, json.Unmarshal([]byte(`[1]`), &v))

	out, err := json.Marshal([]FormatValue{IntValue(1), StringValue("a")})
	require.NoError(t, err)
	assert.Equal(t, `[1,"a"]`, string(out))
}
