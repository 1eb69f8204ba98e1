package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBuilder(t *testing.T) {
	tests := []struct {
		name     string
		builder  *SelectBuilder
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "all columns",
			builder:  Select().From("authors"),
			wantSQL:  `SELECT * FROM "authors"`,
			wantArgs: nil,
		},
		{
			name:     "by id",
			builder:  Select("id", "name").From("authors").Where("id", int64(7)),
			wantSQL:  `SELECT "id", "name" FROM "authors" WHERE "id" = $1`,
			wantArgs: []any{int64(7)},
		},
		{
			name:     "paginated window",
			builder:  Select("id").From("books").OrderBy("id", Asc).Limit(10).Offset(20),
			wantSQL:  `SELECT "id" FROM "books" ORDER BY "id" ASC LIMIT $1 OFFSET $2`,
			wantArgs: []any{10, 20},
		},
		{
			name:     "like with order",
			builder:  Select("id").From("books").WhereOp("title", OpLike, "%go%").OrderBy("id", Desc),
			wantSQL:  `SELECT "id" FROM "books" WHERE "title" LIKE $1 ORDER BY "id" DESC`,
			wantArgs: []any{"%go%"},
		},
		{
			name:     "count",
			builder:  Count("books").Where("author_id", int64(3)),
			wantSQL:  `SELECT COUNT(*) FROM "books" WHERE "author_id" = $1`,
			wantArgs: []any{int64(3)},
		},
		{
			name:     "row lock",
			builder:  Select("id").From("authors").Where("id", int64(1)).ForShare(),
			wantSQL:  `SELECT "id" FROM "authors" WHERE "id" = $1 FOR SHARE`,
			wantArgs: []any{int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.builder.ToSQL()
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestInsertBuilder(t *testing.T) {
	sql, args := Insert("authors").
		Set("name", "A. Author").
		Set("bio", nil).
		Returning("id", "name").
		ToSQL()

	assert.Equal(t, `INSERT INTO "authors" ("name", "bio") VALUES ($1, $2) RETURNING "id", "name"`, sql)
	assert.Equal(t, []any{"A. Author", nil}, args)
}

func TestUpdateBuilder(t *testing.T) {
	sql, args := Update("books").
		Set("title", "New").
		Set("author_id", int64(2)).
		Where("id", int64(9)).
		Returning("id").
		ToSQL()

	assert.Equal(t, `UPDATE "books" SET "title" = $1, "author_id" = $2 WHERE "id" = $3 RETURNING "id"`, sql)
	assert.Equal(t, []any{"New", int64(2), int64(9)}, args)
}

func TestDeleteBuilder(t *testing.T) {
	sql, args := Delete("authors").Where("id", int64(4)).ToSQL()

	assert.Equal(t, `DELETE FROM "authors" WHERE "id" = $1`, sql)
	assert.Equal(t, []any{int64(4)}, args)
}

func TestContains(t *testing.T) {
	assert.Equal(t, "%tolkien%", Contains("tolkien"))
	assert.Equal(t, `%100\%\_off\\%`, Contains(`100%_off\`))
}
