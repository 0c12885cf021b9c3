package publisher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepoName_PrefixSlugSuffix(t *testing.T) {
	name := repoName("site", "A Todo List App")
	require.True(t, strings.HasPrefix(name, "site-a-todo-list-app-"), "got %q", name)

	parts := strings.Split(name, "-")
	suffix := parts[len(parts)-1]
	require.Len(t, suffix, 8, "suffix should be the first uuid segment")
}

func TestRepoName_NoPrefix(t *testing.T) {
	name := repoName("", "weather dashboard")
	require.True(t, strings.HasPrefix(name, "weather-dashboard-"), "got %q", name)
}

func TestRepoName_EmptyBriefStillUnique(t *testing.T) {
	a := repoName("site", "")
	b := repoName("site", "")
	require.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "site-"))
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "build-a-todo-app", slugify("Build a TODO app with dark mode"))
	require.Equal(t, "hello-world", slugify("  Hello,   World!  "))
	require.Equal(t, "", slugify("!!! ???"))
}

func TestSlugify_TruncatesLongWords(t *testing.T) {
	slug := slugify(strings.Repeat("verylongword", 10))
	require.LessOrEqual(t, len(slug), 40)
	require.False(t, strings.HasSuffix(slug, "-"))
}
