package decoder_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alovak/vinflow-playground/decoder"
	"github.com/alovak/vinflow-playground/decoder/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestAPI(t *testing.T) {
	router := chi.NewRouter()

	api := decoder.NewAPI(decoder.NewService(nil))
	api.AppendRoutes(router)

	t.Run("decode", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/vins/1HGCM82633A004352", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		decoded := models.DecodedVIN{}
		err := json.Unmarshal(w.Body.Bytes(), &decoded)
		require.NoError(t, err)

		require.Equal(t, "1HGCM82633A004352", decoded.VIN)
		require.Equal(t, "NA", decoded.Region)
		require.Equal(t, "Honda USA", decoded.Manufacturer)
		require.True(t, decoded.Valid)
	})

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/vins/1HGCM82633A004352/valid", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		result := models.ValidationResult{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.True(t, result.Valid)
	})

	t.Run("invalid", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/vins/1HGCM82633A123456/valid", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		result := models.ValidationResult{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
		require.False(t, result.Valid)
	})

	t.Run("extended disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/vins/1HGCM82633A004352/extended", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAPI_Extended(t *testing.T) {
	src := stubSource{attrs: map[string]string{
		"Make":            "HONDA",
		"MakeID":          "474",
		"Model":           "Accord",
		"FuelTypePrimary": "Gasoline",
	}}

	router := chi.NewRouter()
	api := decoder.NewAPI(decoder.NewService(src))
	api.AppendRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/vins/1HGCM82633A004352/extended", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	info := models.ExtendedInfo{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	require.Equal(t, "HONDA", info.Make)
	require.Equal(t, 474, info.MakeID)
	require.Equal(t, "Accord", info.Model)
	require.Equal(t, 4, info.FuelTypeCode)
}

func TestAPI_ExtendedMalformedUpstream(t *testing.T) {
	router := chi.NewRouter()
	api := decoder.NewAPI(decoder.NewService(stubSource{attrs: map[string]string{"ModelID": "n/a"}}))
	api.AppendRoutes(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/vins/1HGCM82633A004352/extended", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
