package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"apt-report/internal/config"
	"apt-report/internal/report/handler"
	"apt-report/internal/report/model"
)

func workbookBytes(t *testing.T, status string) []byte {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "ComplexA"))
	cells := map[string]any{
		"A1": "Статус", "B1": "Розмір", "C1": "Площа",
		"D1": "ціна за метр", "E1": "Вартість для продажу", "F1": "ID",
		"A2": status, "B2": "1к", "C2": 45.5,
		"D2": 25000, "E2": 1200000, "F2": "A-101",
	}
	for cell, v := range cells {
		require.NoError(t, f.SetCellValue("ComplexA", cell, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func multipartBody(t *testing.T, file []byte, rules string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	fw, err := mw.CreateFormFile("file", "listings.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(file)
	require.NoError(t, err)
	if rules != "" {
		rw, err := mw.CreateFormFile("rules", "rules.toml")
		require.NoError(t, err)
		_, err = rw.Write([]byte(rules))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestSummaryHandler(t *testing.T) {
	cfg := config.Config{MaxUploadMB: 16}
	h := handler.Summary(cfg, config.Rules{}, zerolog.Nop())

	body, ctype := multipartBody(t, workbookBytes(t, "вільно"), "sheets = [\"ComplexA\"]\n")
	req := httptest.NewRequest("POST", "/summary", body)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code, w.Body.String())

	var res model.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Summary, 1)
	assert.Equal(t, "ComplexA", res.Summary[0].Group)
	assert.Equal(t, "25,000 (A-101)", res.Summary[0].MinPricePerM2)
}

func TestSummaryHandlerMissingFile(t *testing.T) {
	h := handler.Summary(config.Config{MaxUploadMB: 16}, config.Rules{}, zerolog.Nop())

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest("POST", "/summary", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code)
}

func TestSummaryHandlerNoRecords(t *testing.T) {
	h := handler.Summary(config.Config{MaxUploadMB: 16}, config.Rules{}, zerolog.Nop())

	body, ctype := multipartBody(t, workbookBytes(t, "продано"), "sheets = [\"ComplexA\"]\n")
	req := httptest.NewRequest("POST", "/summary", body)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	assert.Equal(t, 422, w.Code)
}

func TestSummaryHandlerEmptyRules(t *testing.T) {
	h := handler.Summary(config.Config{MaxUploadMB: 16}, config.Rules{}, zerolog.Nop())

	body, ctype := multipartBody(t, workbookBytes(t, "вільно"), "")
	req := httptest.NewRequest("POST", "/summary", body)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)
	assert.Equal(t, 400, w.Code, "no server rules and no posted rules")
}
