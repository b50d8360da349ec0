package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"kaapi/backend/internal/handler"
	"kaapi/backend/internal/model"
	"kaapi/backend/internal/service"
	"kaapi/backend/internal/service/mock"
)

func TestUploadHandler_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUploadService(ctrl)
	h := handler.NewUploadHandler(svc, 50<<20)

	svc.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, upload service.Upload) (*service.UploadResult, error) {
			require.Equal(t, "sales.csv", upload.Filename)
			require.Equal(t, "2026-02-08", upload.Date)
			require.Equal(t, "Transaction ID,Total\nTX-1,10\n", string(upload.Content))
			return &service.UploadResult{
				Filename:         "ab12cd34_sales.csv",
				RowCount:         1,
				TotalRevenue:     decimal.NewFromInt(10),
				TransactionCount: 1,
				UploadDate:       time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
				SummaryRecorded:  true,
			}, nil
		})

	e := newTestEcho()
	req := newUploadRequest(t, "/api/upload", "sales.csv", "Transaction ID,Total\nTX-1,10\n", map[string]string{"date": "2026-02-08"})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Upload(c))

	var resp handler.UploadResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.True(t, resp.Success)
	require.Equal(t, "ab12cd34_sales.csv", resp.Filename)
	require.EqualValues(t, 1, resp.RowCount)
	require.EqualValues(t, 10, resp.TotalRevenue)
	require.Equal(t, "2026-02-08T00:00:00Z", resp.UploadDate)
	require.Equal(t, "File processed and consolidated into dashboard.", resp.Message)
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUploadService(ctrl)
	h := handler.NewUploadHandler(svc, 50<<20)

	e := newTestEcho()
	req := newUploadRequest(t, "/api/upload", "", "", map[string]string{"date": "2026-02-08"})
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Upload(c))

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "no file provided", resp["error"])
}

func TestUploadHandler_Upload_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUploadService(ctrl)
	h := handler.NewUploadHandler(svc, 16)

	e := newTestEcho()
	req := newUploadRequest(t, "/api/upload", "sales.csv", "Transaction ID,Total\nTX-1,10\n", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Upload(c))
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUploadHandler_Upload_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUploadService(ctrl)
	h := handler.NewUploadHandler(svc, 50<<20)

	svc.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, service.ErrInvalidType)

	e := newTestEcho()
	req := newUploadRequest(t, "/api/upload", "notes.txt", "hello", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.Upload(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadHandler_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockUploadService(ctrl)
	h := handler.NewUploadHandler(svc, 50<<20)

	svc.EXPECT().History(gomock.Any()).Return([]model.UploadedFile{
		{
			ID:          2,
			Filename:    "b.csv",
			StoragePath: "uploads/xy_b.csv",
			Kind:        model.FileKindCSV,
			UploadedAt:  time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
			Processed:   true,
			RowCount:    5,
		},
		{ID: 1, Filename: "a.csv", Kind: model.FileKindCSV},
	}, nil)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/uploads", nil)
	c, rec := newTestContext(e, req)

	require.NoError(t, h.History(c))

	var resp struct {
		Data []handler.UploadedFileResponse `json:"data"`
	}
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Data, 2)
	require.Equal(t, "b.csv", resp.Data[0].Filename)
	require.Equal(t, "uploads/xy_b.csv", resp.Data[0].FilePath)
	require.Equal(t, "csv", resp.Data[0].FileType)
	require.Equal(t, "2026-02-09T12:00:00Z", resp.Data[0].UploadDate)
	require.True(t, resp.Data[0].Processed)
}
