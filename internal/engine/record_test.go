package engine_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func mustPhone(t *testing.T, v string) engine.Phone {
	t.Helper()
	p, err := engine.NewPhone(v)
	require.NoError(t, err)
	return p
}

func mustBirthday(t *testing.T, v string) engine.Birthday {
	t.Helper()
	b, err := engine.ParseBirthday(v)
	require.NoError(t, err)
	return b
}

func newRecord(t *testing.T, name string, phones ...string) *engine.Record {
	t.Helper()
	n, err := engine.NewName(name)
	require.NoError(t, err)
	r := engine.NewRecord(n)
	for _, p := range phones {
		r.AddPhone(mustPhone(t, p))
	}
	return r
}

func TestRecord_New(t *testing.T) {
	r := newRecord(t, "John")
	assert.Equal(t, engine.Name("John"), r.Name)
	assert.Empty(t, r.Phones)
	assert.Nil(t, r.Birthday)
}

func TestRecord_AddPhoneKeepsOrderAndDuplicates(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222", "1111111111")
	assert.Equal(t, []engine.Phone{"1111111111", "2222222222", "1111111111"}, r.Phones)
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222", "1111111111")

	r.RemovePhone("1111111111")
	assert.Equal(t, []engine.Phone{"2222222222"}, r.Phones, "All matching entries are removed")

	r.RemovePhone("9999999999")
	assert.Equal(t, []engine.Phone{"2222222222"}, r.Phones, "Unknown phone is a no-op")
}

func TestRecord_EditPhone(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222")

	r.EditPhone("1111111111", mustPhone(t, "3333333333"))

	p, ok := r.FindPhone("3333333333")
	assert.True(t, ok)
	assert.Equal(t, engine.Phone("3333333333"), p)

	_, ok = r.FindPhone("1111111111")
	assert.False(t, ok)
	assert.Equal(t, []engine.Phone{"2222222222", "3333333333"}, r.Phones)
}

func TestRecord_EditPhone_MissingOldAppends(t *testing.T) {
	r := newRecord(t, "John", "1111111111")

	r.EditPhone("0000000000", mustPhone(t, "3333333333"))

	assert.Equal(t, []engine.Phone{"1111111111", "3333333333"}, r.Phones)
}

func TestRecord_FindPhoneDoesNotMutate(t *testing.T) {
	r := newRecord(t, "John", "1111111111")
	before := slices.Clone(r.Phones)

	_, ok := r.FindPhone("2222222222")
	assert.False(t, ok)
	assert.Equal(t, before, r.Phones)
}

func TestRecord_AddBirthdayReplaces(t *testing.T) {
	r := newRecord(t, "John")
	r.AddBirthday(mustBirthday(t, "01.01.1990"))
	r.AddBirthday(mustBirthday(t, "02.02.1992"))

	require.NotNil(t, r.Birthday)
	assert.Equal(t, "02.02.1992", r.Birthday.String())
}

func TestRecord_String(t *testing.T) {
	r := newRecord(t, "John", "1111111111", "2222222222")
	assert.Equal(t, "Contact name: John, phones: 1111111111; 2222222222, birthday: Not Set", r.String())

	r.AddBirthday(mustBirthday(t, "05.03.1990"))
	assert.Equal(t, "Contact name: John, phones: 1111111111; 2222222222, birthday: 05.03.1990", r.String())

	empty := newRecord(t, "Jane")
	assert.Equal(t, "Contact name: Jane, phones: , birthday: Not Set", empty.String())
}
