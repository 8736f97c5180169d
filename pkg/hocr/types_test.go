package hocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeEqual(t *testing.T) {
	const markup = `<html><body>
<div class="ocr_page" id="page_1"><div class="ocr_carea" id="block_1"></div></div>
<div class="ocr_page"></div>
</body></html>`

	first, err := Parse([]byte(markup))
	require.NoError(t, err)
	second, err := Parse([]byte(markup))
	require.NoError(t, err)

	t.Run("same id across parses", func(t *testing.T) {
		a := FindByID(first, "page_1")
		b := FindByID(second, "page_1")
		require.NotNil(t, a)
		require.NotNil(t, b)
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))
	})

	t.Run("different ids", func(t *testing.T) {
		a := FindByID(first, "page_1")
		b := FindByID(first, "block_1")
		assert.False(t, a.Equal(b))
	})

	t.Run("absent ids never equal", func(t *testing.T) {
		a := first.Pages()[1]
		b := second.Pages()[1]
		require.False(t, a.HasID())
		assert.False(t, a.Equal(b))
		assert.False(t, a.Equal(a))
	})

	t.Run("document roots have no id", func(t *testing.T) {
		assert.False(t, first.Equal(second))
		assert.False(t, first.Equal(first))
	})

	t.Run("nil comparisons", func(t *testing.T) {
		var none *Node
		assert.False(t, first.Equal(nil))
		assert.False(t, none.Equal(first))
	})
}

func TestNodeHash(t *testing.T) {
	const markup = `<html><body>
<div class="ocr_page" id="page_1"><div class="ocr_carea" id="block_1"></div></div>
<div class="ocr_page"></div>
</body></html>`

	first, err := Parse([]byte(markup))
	require.NoError(t, err)
	second, err := Parse([]byte(markup))
	require.NoError(t, err)

	a := FindByID(first, "page_1")
	b := FindByID(second, "page_1")
	assert.Equal(t, a.Hash(), b.Hash())

	c := FindByID(first, "block_1")
	assert.NotEqual(t, a.Hash(), c.Hash())

	// Nodes without an id all land in one stable bucket.
	assert.Equal(t, first.Hash(), second.Hash())
	assert.Equal(t, first.Hash(), first.Pages()[1].Hash())
}

func TestRoleTable(t *testing.T) {
	tests := []struct {
		role      Role
		name      string
		tag       string
		class     string
		child     Role
		hasChild  bool
		separator string
	}{
		{RoleDocument, "document", "body", "", RolePage, true, "\n\n"},
		{RolePage, "page", "div", "ocr_page", RoleArea, true, "\n\n"},
		{RoleArea, "area", "div", "ocr_carea", RoleParagraph, true, "\n"},
		{RoleParagraph, "paragraph", "p", "ocr_par", RoleLine, true, "\n"},
		{RoleLine, "line", "span", "ocr_line", RoleWord, true, " "},
		{RoleWord, "word", "span", "ocrx_word", 0, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.role.String())
			assert.Equal(t, tc.tag, tc.role.Tag())
			assert.Equal(t, tc.class, tc.role.Class())
			assert.Equal(t, tc.separator, tc.role.Separator())

			child, ok := tc.role.ChildRole()
			assert.Equal(t, tc.hasChild, ok)
			if tc.hasChild {
				assert.Equal(t, tc.child, child)
			}
		})
	}
}

func TestRoleUnknown(t *testing.T) {
	bogus := Role(42)
	assert.Equal(t, "unknown", bogus.String())
	assert.Equal(t, "", bogus.Tag())
	_, ok := bogus.ChildRole()
	assert.False(t, ok)
}

func TestBBox(t *testing.T) {
	box := BBox{X0: 10, Y0: 20, X1: 110, Y1: 50}
	assert.Equal(t, 100, box.Width())
	assert.Equal(t, 30, box.Height())
	assert.False(t, box.IsZero())
	assert.True(t, BBox{}.IsZero())
}
