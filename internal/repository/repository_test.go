package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullString(t *testing.T) {
	assert.False(t, nullString("").Valid)

	ns := nullString("boom")
	assert.True(t, ns.Valid)
	assert.Equal(t, "boom", ns.String)
}

func TestValueString(t *testing.T) {
	assert.False(t, valueString(nil).Valid)
	assert.False(t, valueString("").Valid)
	assert.Equal(t, "Bad_Slug", valueString("Bad_Slug").String)
	assert.Equal(t, "9", valueString(9).String)
}
