package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

func newTestIndex(t *testing.T, h http.HandlerFunc) *PropertyIndex {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPropertyIndex(es, "properties", logger)
}

func TestPropertyIndex_Index(t *testing.T) {
	var gotPath, gotMethod string
	var gotDoc map[string]any
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotDoc)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	})

	err := idx.Index(context.Background(), entity.Property{ID: 11, Title: "Cozy loft", City: "Vancouver", CostPerNight: 9000})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/properties/_doc/11", gotPath)
	assert.Equal(t, "Vancouver", gotDoc["city"])
	assert.Equal(t, float64(9000), gotDoc["cost_per_night"])
}

func TestPropertyIndex_Search(t *testing.T) {
	var body string
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/properties/_search"))
		_, _ = w.Write([]byte(`{"hits":{"hits":[{"_id":"11","_source":{"id":11,"title":"Cozy loft","city":"Vancouver","cost_per_night":9000}}]}}`))
	})

	got, err := idx.Search(context.Background(), "loft", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(11), got[0].ID)
	assert.Equal(t, "Cozy loft", got[0].Title)
	assert.Contains(t, body, `"query":"loft"`)
	assert.Contains(t, body, `"size":10`)
}

func TestPropertyIndex_SearchSizeCapped(t *testing.T) {
	var sent float64
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		sent, _ = body["size"].(float64)
		_, _ = w.Write([]byte(`{"hits":{"hits":[]}}`))
	})

	for size, want := range map[int]float64{-3: 10, 0: 10, 1: 1, 50: 50, 51: 50, 500: 50} {
		_, err := idx.Search(context.Background(), "loft", size)
		require.NoError(t, err)
		assert.Equal(t, want, sent, "size %d", size)
	}
}

func TestPropertyIndex_BreakerOpensAfterFailures(t *testing.T) {
	var hits int32
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"boom"}`))
	})

	for i := 0; i < 5; i++ {
		err := idx.Index(context.Background(), entity.Property{ID: int64(i + 1)})
		assert.ErrorIs(t, err, apperr.ErrDataAccess)
	}
	err := idx.Index(context.Background(), entity.Property{ID: 99})
	assert.ErrorIs(t, err, apperr.ErrUnavailable)
	assert.Equal(t, int32(5), atomic.LoadInt32(&hits))
}
