// Copyright (c) 2026 Herodex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/herodex/internal/social/comment"
)

/*
TestThreadPageQuery_Ordering verifies the thread contract at the SQL level:
pages come back newest comment first, with the time-ordered id as the
tie-break, so a comment posted after another always lists before it.
*/
func TestThreadPageQuery_Ordering(t *testing.T) {
	query := comment.ThreadPageQuery()

	assert.Contains(t, query, `ORDER BY c.createdat DESC, c.id DESC`)
	assert.Contains(t, query, `LIMIT $2 OFFSET $3`)
}

/*
TestThreadPageQuery_PopulatesHero verifies that the page query joins the hero
table, so every listed comment carries its full hero record.
*/
func TestThreadPageQuery_PopulatesHero(t *testing.T) {
	query := comment.ThreadPageQuery()

	assert.Contains(t, query, `JOIN core.hero h ON h.id = c.heroid`)
	assert.Contains(t, query, `WHERE c.heroid = $1`)
}
