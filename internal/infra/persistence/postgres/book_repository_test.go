package postgres

import (
	"context"
	"testing"

	"bookshop/internal/domain/entity"
	"bookshop/internal/domain/repository"
	"bookshop/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookRepository_Update_PartialColumns(t *testing.T) {
	tests := []struct {
		name       string
		update     entity.BookUpdate
		wantSet    []string
		absentCols []string
		wantVarLen int
	}{
		{
			name:       "title and price",
			update:     entity.BookUpdate{Title: ptrTo("Dune"), Price: int64Ptr(1500)},
			wantSet:    []string{`"price"=$1`, `"title"=$2`, `"updated_at"=$3`},
			absentCols: []string{`"description"`, `"category_id"`, `"author_id"`, `"thumbnail"`},
			wantVarLen: 4,
		},
		{
			name:       "tags only still bumps updated_at",
			update:     entity.BookUpdate{TagIDs: []int64{1}},
			wantSet:    []string{`"updated_at"=$1`},
			absentCols: []string{`"title"`, `"price"`, `"thumbnail"`},
			wantVarLen: 2,
		},
		{
			name:       "thumbnail and references",
			update:     entity.BookUpdate{CategoryID: int64Ptr(2), AuthorID: int64Ptr(4), Thumbnail: ptrTo("/uploads/x.png")},
			wantSet:    []string{`"author_id"=$1`, `"category_id"=$2`, `"thumbnail"=$3`, `"updated_at"=$4`},
			absentCols: []string{`"title"`, `"price"`},
			wantVarLen: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newDryRunDB(t)
			captured := captureWrites(t, db)

			err := NewBookRepository(db).Update(context.Background(), 9, tt.update)

			assert.True(t, errors.Is(err, repository.ErrBookNotFound))
			require.Len(t, *captured, 1)
			stmt := (*captured)[0]
			assert.Contains(t, stmt.SQL, `UPDATE "books" SET`)
			for _, part := range tt.wantSet {
				assert.Contains(t, stmt.SQL, part)
			}
			for _, col := range tt.absentCols {
				assert.NotContains(t, stmt.SQL, col)
			}
			require.Len(t, stmt.Vars, tt.wantVarLen)
			assert.Equal(t, int64(9), stmt.Vars[tt.wantVarLen-1])
		})
	}
}

func TestBookRepository_ReplaceTags(t *testing.T) {
	t.Run("clears then inserts distinct ids", func(t *testing.T) {
		db := newDryRunDB(t)
		captured := captureWrites(t, db)

		require.NoError(t, NewBookRepository(db).ReplaceTags(context.Background(), 5, []int64{3, 1, 3}))

		require.Len(t, *captured, 2)
		del, ins := (*captured)[0], (*captured)[1]
		assert.Contains(t, del.SQL, `DELETE FROM "books_to_tags" WHERE book_id = $1`)
		assert.Equal(t, []any{int64(5)}, del.Vars)
		assert.Contains(t, ins.SQL, `INSERT INTO "books_to_tags" ("book_id","tag_id") VALUES ($1,$2),($3,$4)`)
		assert.Equal(t, []any{int64(5), int64(1), int64(5), int64(3)}, ins.Vars)
	})

	t.Run("empty set only clears", func(t *testing.T) {
		db := newDryRunDB(t)
		captured := captureWrites(t, db)

		require.NoError(t, NewBookRepository(db).ReplaceTags(context.Background(), 5, []int64{}))

		require.Len(t, *captured, 1)
		assert.Contains(t, (*captured)[0].SQL, `DELETE FROM "books_to_tags"`)
	})
}

func ptrTo[T any](v T) *T {
	return &v
}
