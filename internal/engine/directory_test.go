package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func names(d *engine.Directory) []string {
	var out []string
	for name := range d.All() {
		out = append(out, string(name))
	}
	return out
}

func TestDirectory_AddFindDelete(t *testing.T) {
	d := engine.NewDirectory()
	d.AddRecord(newRecord(t, "John", "1111111111"))

	r, ok := d.Find("John")
	require.True(t, ok)
	assert.Equal(t, engine.Name("John"), r.Name)

	assert.True(t, d.Delete("John"))
	_, ok = d.Find("John")
	assert.False(t, ok)
	assert.Zero(t, d.Len())
}

func TestDirectory_FindMissing(t *testing.T) {
	d := engine.NewDirectory()
	r, ok := d.Find("Nobody")
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestDirectory_DeleteMissingIsNoOp(t *testing.T) {
	d := engine.NewDirectory()
	d.AddRecord(newRecord(t, "John"))

	assert.False(t, d.Delete("Nobody"))
	assert.Equal(t, 1, d.Len())
}

func TestDirectory_AddOverwritesAndKeepsSlot(t *testing.T) {
	d := engine.NewDirectory()
	d.AddRecord(newRecord(t, "John", "1111111111"))
	d.AddRecord(newRecord(t, "Jane", "2222222222"))
	d.AddRecord(newRecord(t, "John", "3333333333"))

	assert.Equal(t, []string{"John", "Jane"}, names(d))

	r, ok := d.Find("John")
	require.True(t, ok)
	assert.Equal(t, []engine.Phone{"3333333333"}, r.Phones, "Duplicate add fully replaces the record")
}

func TestDirectory_AllOrderAfterDelete(t *testing.T) {
	d := engine.NewDirectory()
	for _, n := range []string{"A", "B", "C"} {
		d.AddRecord(newRecord(t, n))
	}
	d.Delete("B")
	d.AddRecord(newRecord(t, "B"))

	assert.Equal(t, []string{"A", "C", "B"}, names(d))
}

func TestDirectory_AllStopsEarly(t *testing.T) {
	d := engine.NewDirectory()
	for _, n := range []string{"A", "B", "C"} {
		d.AddRecord(newRecord(t, n))
	}

	var seen []engine.Name
	for name := range d.All() {
		seen = append(seen, name)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []engine.Name{"A", "B"}, seen)
}
