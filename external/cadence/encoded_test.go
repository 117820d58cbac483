package cadence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type refreshResult struct {
	UID     string `json:"uid"`
	Percent int    `json:"percent"`
	Changed bool   `json:"changed"`
}

func TestMsgPackDataConverterMultipleValues(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("user-a", refreshResult{UID: "user-a", Percent: 42, Changed: true})
	assert.NoError(t, err)

	var uid string
	var result refreshResult
	assert.NoError(t, c.FromData(data, &uid, &result))
	assert.Equal(t, "user-a", uid)
	assert.Equal(t, refreshResult{UID: "user-a", Percent: 42, Changed: true}, result)
}

func TestMsgPackDataConverterShortInput(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("only-one")
	assert.NoError(t, err)

	var a, b string
	assert.Error(t, c.FromData(data, &a, &b))
	assert.Equal(t, "only-one", a)
}
