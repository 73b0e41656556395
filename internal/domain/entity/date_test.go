package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1995-06-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 1995, Month: time.June, Day: 15}, d)
	assert.Equal(t, "1995-06-15", d.String())

	_, err = ParseDate("15/06/1995")
	require.Error(t, err)

	_, err = ParseDate("2023-02-30")
	require.Error(t, err)
}

func TestDateCompare(t *testing.T) {
	a := MustParseDate("1990-01-01")
	b := MustParseDate("1990-01-02")
	c := MustParseDate("1991-01-01")

	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.False(t, a.After(a))
	assert.False(t, a.Before(a))
	assert.Equal(t, 0, a.Compare(MustParseDate("1990-01-01")))
}

func TestDateYearsUntil(t *testing.T) {
	birth := MustParseDate("2000-01-01")

	assert.Equal(t, 18, birth.YearsUntil(MustParseDate("2018-01-01")))
	assert.Equal(t, 17, birth.YearsUntil(MustParseDate("2017-12-31")))
	assert.Equal(t, 0, birth.YearsUntil(birth))
	assert.Equal(t, -1, birth.YearsUntil(MustParseDate("1999-06-01")))

	leap := MustParseDate("2000-02-29")
	assert.Equal(t, 17, leap.YearsUntil(MustParseDate("2018-02-28")))
	assert.Equal(t, 18, leap.YearsUntil(MustParseDate("2018-03-01")))
}

func TestDateJSON(t *testing.T) {
	var payload struct {
		Born Date `json:"born"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"born":"2000-12-31"}`), &payload))
	assert.Equal(t, MustParseDate("2000-12-31"), payload.Born)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"born":"2000-12-31"}`, string(out))

	require.NoError(t, json.Unmarshal([]byte(`{"born":null}`), &payload))
	assert.True(t, payload.Born.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"born":20001231}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"born":"2000-13-01"}`), &payload))
}

func TestUserClone(t *testing.T) {
	addr := "1 Main St"
	u := &User{ID: 3, Email: "a@b.co", Address: &addr}

	c := u.Clone()
	*c.Address = "changed"

	assert.Equal(t, "1 Main St", *u.Address)
	assert.Nil(t, c.PhoneNumber)
	assert.Nil(t, (*User)(nil).Clone())
}
