package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSelectPosts_AnonymousOmitsViewerColumn verifies that the feed builder
// only carries the liked_by_me aggregate when a viewer is known.
func TestSelectPosts_AnonymousOmitsViewerColumn(t *testing.T) {
	query, args, err := selectPosts(nil).ToSql()

	require.NoError(t, err)
	assert.NotContains(t, query, "liked_by_me")
	assert.Empty(t, args)
}

func TestSelectPosts_ViewerAddsLikedByMe(t *testing.T) {
	viewer := int64(42)

	query, args, err := selectPosts(&viewer).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "BOOL_OR(pl.user_id = $1) AS liked_by_me")
	assert.Equal(t, []interface{}{int64(42)}, args)
}

// TestSelectPosts_ViewerPlaceholderPrecedesWhere verifies placeholder
// numbering when the SELECT list and the WHERE clause both carry arguments.
func TestSelectPosts_ViewerPlaceholderPrecedesWhere(t *testing.T) {
	viewer := int64(42)

	query, args, err := selectPosts(&viewer).Where("p.post_id = ?", int64(7)).ToSql()

	require.NoError(t, err)
	assert.Contains(t, query, "liked_by_me")
	assert.Contains(t, query, "p.post_id = $2")
	require.Len(t, args, 2)
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, int64(7), args[1])
}

func TestSelectComments_Shape(t *testing.T) {
	viewer := int64(42)

	anon, _, err := selectComments(nil).ToSql()
	require.NoError(t, err)

	personalized, args, err := selectComments(&viewer).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, anon, "liked_by_me")
	assert.Contains(t, personalized, "BOOL_OR(cl.user_id = $1) AS liked_by_me")
	assert.Contains(t, personalized, "LEFT JOIN comment_likes cl")
	assert.Equal(t, []interface{}{int64(42)}, args)
}
