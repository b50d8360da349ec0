package repository_test

import (
	"context"
	"testing"
	"time"

	"kaapi/backend/internal/model"
	"kaapi/backend/internal/repository"
	"kaapi/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestUploadRepository_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUploadRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.UploadedFile{
		Filename:    "ab12cd34_sales.csv",
		StoragePath: "uploads/ab12cd34_sales.csv",
		Kind:        model.FileKindCSV,
		UploadedAt:  time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC),
		Processed:   true,
		RowCount:    42,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	files, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "ab12cd34_sales.csv", files[0].Filename)
	require.Equal(t, model.FileKindCSV, files[0].Kind)
	require.True(t, files[0].Processed)
	require.Equal(t, int64(42), files[0].RowCount)
}

func TestUploadRepository_List_NewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewUploadRepository(db)

	base := time.Date(2026, 2, 8, 10, 0, 0, 0, time.UTC)
	testutil.SeedUpload(t, db, model.UploadedFile{Filename: "oldest.csv", Kind: model.FileKindCSV, UploadedAt: base})
	testutil.SeedUpload(t, db, model.UploadedFile{Filename: "newest.csv", Kind: model.FileKindCSV, UploadedAt: base.Add(2 * time.Hour)})
	testutil.SeedUpload(t, db, model.UploadedFile{Filename: "middle.xlsx", Kind: model.FileKindXLSX, UploadedAt: base.Add(time.Hour)})

	files, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 3)
	require.Equal(t, "newest.csv", files[0].Filename)
	require.Equal(t, "middle.xlsx", files[1].Filename)
	require.Equal(t, "oldest.csv", files[2].Filename)
}
