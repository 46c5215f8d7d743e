package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"milkbill/entities"
	billRepoImp "milkbill/pkg/bill/repositoryImp"
	billSvcImp "milkbill/pkg/bill/serviceImp"
	"milkbill/router"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "bills.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Bill{}))

	ctrl := New(billSvcImp.New(billRepoImp.New(db)))
	return router.New(echo.New(), ctrl, &stubHealth{})
}

type stubHealth struct{}

func (*stubHealth) Health(c echo.Context) error { return c.JSON(http.StatusOK, echo.Map{"ok": true}) }

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const ashaJSON = `{"name":"Asha","mobile":"9876543210","date":"2024-01-05","morning":2,"evening":1.5,"rate":50}`

func TestCreateBill(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/api/bills", ashaJSON)
	require.Equal(t, http.StatusCreated, rec.Code)

	var b entities.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.NotZero(t, b.ID)
	assert.Equal(t, "Asha", b.Name)
	assert.Equal(t, 3.5, b.TotalLiters)
	assert.Equal(t, 175.0, b.TotalAmount)
	assert.False(t, b.CreatedAt.IsZero())
}

func TestCreateBillRejectsBadPayloads(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"not json", `{"name":`},
		{"bad mobile", `{"name":"Asha","mobile":"123","date":"2024-01-05","morning":2,"evening":1.5,"rate":50}`},
		{"bad date", `{"name":"Asha","mobile":"9876543210","date":"05/01/2024","morning":2,"evening":1.5,"rate":50}`},
		{"zero rate", `{"name":"Asha","mobile":"9876543210","date":"2024-01-05","morning":2,"evening":1.5,"rate":0}`},
		{"negative morning", `{"name":"Asha","mobile":"9876543210","date":"2024-01-05","morning":-2,"evening":1.5,"rate":50}`},
		{"string quantity", `{"name":"Asha","mobile":"9876543210","date":"2024-01-05","morning":"two","evening":1.5,"rate":50}`},
		{"missing fields", `{}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestServer(t)
			rec := do(e, http.MethodPost, "/api/bills", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestListBills(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/bills", ashaJSON).Code)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/bills",
		`{"name":"Ravi","mobile":"9123456780","date":"2024-02-01","morning":1,"evening":1,"rate":45}`).Code)

	rec := do(e, http.MethodGet, "/api/bills", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []entities.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Ravi", list[0].Name) // date desc

	rec = do(e, http.MethodGet, "/api/bills?query=asha", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Asha", list[0].Name)
}

func TestSearchBills(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/bills", ashaJSON).Code)

	// missing query is a client error, not an empty result
	rec := do(e, http.MethodGet, "/api/bills/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// a whitespace-only query is just as absent; it must not fall through to
	// the list-everything branch
	rec = do(e, http.MethodGet, "/api/bills/search?query=%20%20", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/api/bills/search?query=ASHA", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []entities.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = do(e, http.MethodGet, "/api/bills/search?query=nobody", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestDeleteBill(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodPost, "/api/bills", ashaJSON)
	require.Equal(t, http.StatusCreated, rec.Code)
	var b entities.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))

	rec = do(e, http.MethodDelete, "/api/bills/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodDelete, "/api/bills/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodDelete, "/api/bills/"+strconv.Itoa(int(b.ID)), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodGet, "/api/bills", "")
	var list []entities.Bill
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestSummary(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/bills", ashaJSON).Code)

	rec := do(e, http.MethodGet, "/api/bills/summary", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var sum struct {
		Count       int64   `json:"count"`
		TotalLiters float64 `json:"total_liters"`
		TotalAmount float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, int64(1), sum.Count)
	assert.Equal(t, 3.5, sum.TotalLiters)
	assert.Equal(t, 175.0, sum.TotalAmount)
}

func TestExport(t *testing.T) {
	e := newTestServer(t)
	require.Equal(t, http.StatusCreated, do(e, http.MethodPost, "/api/bills", ashaJSON).Code)

	rec := do(e, http.MethodGet, "/api/bills/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "bills.xlsx")
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType))
	assert.NotZero(t, rec.Body.Len())
}
