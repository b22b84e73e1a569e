package dcm_test

import (
	"testing"

	_ "github.com/codeninja55/dcmcore/dictionary"

	"github.com/codeninja55/dcmcore/dcm"
	"github.com/codeninja55/dcmcore/dcmerr"
	"github.com/codeninja55/dcmcore/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssignedElement(t *testing.T, group, element uint16, s string) *dcm.Element {
	t.Helper()
	e, err := dcm.NewElement(tag.New(group, element), 0)
	require.NoError(t, err)
	require.NoError(t, e.SetString(s))
	return e
}

func TestDataSet_InsertAndGet(t *testing.T) {
	ds := dcm.NewDataSet()
	e := newAssignedElement(t, 0x0010, 0x0010, "Doe^John")

	require.NoError(t, ds.Insert(e))
	assert.Equal(t, 1, ds.Count())

	got, err := ds.Get(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.Same(t, e, got)
}

func TestDataSet_DuplicateInsert_Fails(t *testing.T) {
	ds := dcm.NewDataSet()
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))

	err := ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Other^One"))
	require.Error(t, err)
	assert.True(t, dcmerr.IsCode(err, dcmerr.Invalid))
}

// Locked-DataSet insert-fails scenario: Lock then Insert always fails, even
// for a fresh, never-before-seen tag.
func TestDataSet_InsertAfterLock_Fails(t *testing.T) {
	ds := dcm.NewDataSet()
	ds.Lock()
	assert.True(t, ds.IsLocked())

	err := ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John"))
	require.Error(t, err)
	assert.True(t, dcmerr.IsCode(err, dcmerr.Invalid))
}

func TestDataSet_RemoveAfterLock_Fails(t *testing.T) {
	ds := dcm.NewDataSet()
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))
	ds.Lock()

	err := ds.Remove(tag.New(0x0010, 0x0010))
	require.Error(t, err)
}

func TestDataSet_Contains(t *testing.T) {
	ds := dcm.NewDataSet()
	_, ok := ds.Contains(tag.New(0x0010, 0x0010))
	assert.False(t, ok)

	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))
	_, ok = ds.Contains(tag.New(0x0010, 0x0010))
	assert.True(t, ok)
}

func TestDataSet_GetClone_Independence(t *testing.T) {
	ds := dcm.NewDataSet()
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))

	clone, err := ds.GetClone(tag.New(0x0010, 0x0010))
	require.NoError(t, err)

	original, err := ds.Get(tag.New(0x0010, 0x0010))
	require.NoError(t, err)
	assert.NotSame(t, original, clone)

	v, err := clone.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "Doe^John", v)
}

// Foreach walks elements in insertion order and does not lock them — there
// is no lock concept on Element at all.
func TestDataSet_Foreach_InsertionOrder(t *testing.T) {
	ds := dcm.NewDataSet()
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0020, "12345"))) // PatientID
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))

	var seen []tag.Tag
	err := ds.Foreach(func(e *dcm.Element) error {
		seen = append(seen, e.Tag())
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Equal(t, tag.New(0x0010, 0x0020), seen[0])
	assert.Equal(t, tag.New(0x0010, 0x0010), seen[1])
}

func TestDataSet_CopyTags_SortedAscending(t *testing.T) {
	ds := dcm.NewDataSet()
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0020, "12345")))
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))

	tags := ds.CopyTags()
	require.Len(t, tags, 2)
	assert.Equal(t, tag.New(0x0010, 0x0010), tags[0])
	assert.Equal(t, tag.New(0x0010, 0x0020), tags[1])
}

func TestDataSet_String_SortedView(t *testing.T) {
	ds := dcm.NewDataSet()
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0020, "12345")))
	require.NoError(t, ds.Insert(newAssignedElement(t, 0x0010, 0x0010, "Doe^John")))

	s := ds.String()
	nameIdx := indexOf(s, "PatientName")
	idIdx := indexOf(s, "PatientID")
	require.GreaterOrEqual(t, nameIdx, 0)
	require.GreaterOrEqual(t, idIdx, 0)
	assert.Less(t, nameIdx, idIdx, "PatientName (0010,0010) sorts before PatientID (0010,0020)")
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
