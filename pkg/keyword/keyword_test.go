package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Normalize(t *testing.T) {
	assert.Equal(t, "mz세대", Normalize("MZ 세대"))
	assert.Equal(t, "mz세대", Normalize("mz세대"))
	assert.Equal(t, "mz세대", Normalize(" MZ세대 "))
	assert.Equal(t, "", Normalize("   \t\n"))
}

func Test_ResolveDirectKey(t *testing.T) {
	table := MustLoad("")

	variants := []string{"MZ 세대", "mz세대", "MZ세대"}
	var first Result
	for i, q := range variants {
		res := table.Resolve(q)
		assert.True(t, res.Matched, "query %q should match", q)
		if i == 0 {
			first = res
			continue
		}
		assert.Equal(t, first.Resources, res.Resources, "query %q should resolve identically", q)
		assert.Equal(t, first.RelatedCategories, res.RelatedCategories)
	}
	assert.NotEmpty(t, first.Resources)
}

func Test_ResolveSubCategory(t *testing.T) {
	table := MustLoad("")

	res := table.Resolve("반도체")
	assert.True(t, res.Matched)
	assert.Contains(t, res.RelatedCategories, "공과대학")

	defaults := table.Resolve("존재하지않는검색어")
	assert.Equal(t, defaults.Resources, res.Resources, "sub-category match falls back to default resources")
}

func Test_ResolveDefault(t *testing.T) {
	table := MustLoad("")

	for _, q := range []string{"", "   ", "존재하지않는검색어"} {
		res := table.Resolve(q)
		assert.False(t, res.Matched, "query %q should not match", q)
		assert.NotEmpty(t, res.Resources)
		assert.NotEmpty(t, res.RelatedKeywords)
		assert.NotEmpty(t, res.RelatedCategories)
	}
}

func Test_Categories(t *testing.T) {
	table := MustLoad("")

	all := table.Categories()
	assert.Len(t, all, 4)

	c, ok := table.Category("경영/경제")
	assert.True(t, ok)
	assert.Len(t, c.Resources, 3)

	_, ok = table.Category("없는 분류")
	assert.False(t, ok)
}
