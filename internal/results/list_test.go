package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philologus/philologus-desktop/internal/model"
)

func fixture() model.ResultSet {
	return model.ResultSet{
		{ID: 3, Text: "γάμος"},
		{ID: 1, Text: "ἀγαθός"},
		{ID: 2, Text: "βίος"},
	}
}

func TestClear_Empty(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Replace(fixture()))
	require.Equal(t, 3, list.Len())

	require.NoError(t, list.Clear())

	assert.Equal(t, 0, list.Len())
	assert.Empty(t, list.Items())
	assert.Equal(t, 0, list.Binding().Length())
}

func TestAppend_KeepsInsertionOrder(t *testing.T) {
	list := NewList()
	for _, r := range fixture() {
		require.NoError(t, list.Append(r))
	}

	assert.Equal(t, fixture(), list.Items())
	assert.Equal(t, 3, list.Binding().Length())

	first, ok := list.At(0)
	require.True(t, ok)
	assert.Equal(t, model.SearchResult{ID: 3, Text: "γάμος"}, first)
}

func TestReplace_DiscardsOldEntries(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Replace(fixture()))
	require.NoError(t, list.Replace(model.ResultSet{{ID: 9, Text: "λόγος"}}))

	assert.Equal(t, model.ResultSet{{ID: 9, Text: "λόγος"}}, list.Items())
	assert.Equal(t, 1, list.Binding().Length())
}

func TestReplace_CopiesInput(t *testing.T) {
	list := NewList()
	rs := fixture()
	require.NoError(t, list.Replace(rs))

	rs[0].Text = "changed"

	assert.Equal(t, "γάμος", list.Items()[0].Text)
}

func TestSortByText_OnlyChangesView(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Replace(fixture()))
	require.NoError(t, list.SetSortByText(true))

	assert.True(t, list.SortByText())
	assert.Equal(t, fixture(), list.Items())
	assert.Equal(t, []string{"ἀγαθός", "βίος", "γάμος"}, list.ViewItems().Texts())

	first, ok := list.At(0)
	require.True(t, ok)
	assert.Equal(t, 1, first.ID)

	require.NoError(t, list.SetSortByText(false))
	assert.Equal(t, fixture().Texts(), list.ViewItems().Texts())
}

func TestAt_OutOfRange(t *testing.T) {
	list := NewList()

	_, ok := list.At(0)
	assert.False(t, ok)

	_, ok = list.At(-1)
	assert.False(t, ok)
}

func TestBinding_FollowsViewOrder(t *testing.T) {
	list := NewList()
	require.NoError(t, list.Replace(fixture()))
	require.NoError(t, list.SetSortByText(true))

	values, err := list.Binding().Get()
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, model.SearchResult{ID: 1, Text: "ἀγαθός"}, values[0])

	require.NoError(t, list.Replace(model.ResultSet{{ID: 9, Text: "λόγος"}}))
	values, err = list.Binding().Get()
	require.NoError(t, err)
	assert.Equal(t, []any{model.SearchResult{ID: 9, Text: "λόγος"}}, values)
}
