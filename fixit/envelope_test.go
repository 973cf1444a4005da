package fixit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestDecodePage_BareArray(t *testing.T) {
	body := []byte(`[{"name":"a"},{"name":"b"},{"name":"c"}]`)

	page, err := decodePage[item](body, ShapeBareArray)
	require.NoError(t, err)
	assert.Equal(t, []item{{"a"}, {"b"}, {"c"}}, page.Items, "order must be preserved")
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.PerPage)
}

func TestDecodePage_BareArrayEmpty(t *testing.T) {
	page, err := decodePage[item]([]byte(`[]`), ShapeBareArray)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Total)
}

func TestDecodePage_DataPagination(t *testing.T) {
	body := []byte(`{"data":[{"name":"a"}],"pagination":{"total":41,"page":3,"limit":20}}`)

	page, err := decodePage[item](body, ShapeDataPagination)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 41, page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 20, page.PerPage)
}

func TestDecodePage_TaskList(t *testing.T) {
	body := []byte(`{"tasks":[{"name":"a"},{"name":"b"},{"name":"c"}],"total":3,"currentPage":1,"itemsPerPage":10}`)

	page, err := decodePage[item](body, ShapeTaskList)
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
}

func TestDecodePage_SuccessData(t *testing.T) {
	body := []byte(`{"success":true,"data":[{"name":"a"}],"meta":{"total":7,"page":2,"pageSize":5}}`)

	page, err := decodePage[item](body, ShapeSuccessData)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PerPage)
}

func TestDecodePage_SuccessDataWithoutMeta(t *testing.T) {
	body := []byte(`{"success":true,"data":[{"name":"a"},{"name":"b"}]}`)

	page, err := decodePage[item](body, ShapeSuccessData)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.PerPage)
}

func TestDecodePage_ItemsTotal(t *testing.T) {
	body := []byte(`{"items":[{"name":"a"},{"name":"b"}],"total":12}`)

	page, err := decodePage[item](body, ShapeItemsTotal)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 12, page.Total)
}

func TestDecodePage_AutoSniffsEachEnvelope(t *testing.T) {
	cases := []struct {
		name string
		body string
		want int
	}{
		{"bare array", `[{"name":"a"}]`, 1},
		{"data pagination", `{"data":[{"name":"a"}],"pagination":{"total":1,"page":1,"limit":1}}`, 1},
		{"task list", `{"tasks":[{"name":"a"}],"total":1,"currentPage":1,"itemsPerPage":1}`, 1},
		{"success data", `{"success":true,"data":[{"name":"a"}],"meta":{"total":1,"page":1,"pageSize":1}}`, 1},
		{"items total", `{"items":[{"name":"a"}],"total":1}`, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, err := decodePage[item]([]byte(tc.body), ShapeAuto)
			require.NoError(t, err)
			assert.Equal(t, tc.want, page.Total)
			assert.Len(t, page.Items, tc.want)
		})
	}
}

func TestDecodePage_MalformedBody(t *testing.T) {
	_, err := decodePage[item]([]byte(`{invalid`), ShapeDataPagination)
	assert.Error(t, err)
}

func TestAPIMessage(t *testing.T) {
	assert.Equal(t, "boom", apiMessage([]byte(`{"message":"boom"}`)))
	assert.Equal(t, "bad thing", apiMessage([]byte(`{"error":"bad thing"}`)))
	assert.Equal(t, "boom", apiMessage([]byte(`{"message":"boom","error":"ignored"}`)),
		"message field wins over error field")
	assert.Empty(t, apiMessage([]byte(`not json`)))
	assert.Empty(t, apiMessage(nil))
}

func TestUnwrapEntity(t *testing.T) {
	wrapped := []byte(`{"success":true,"data":{"name":"a"}}`)
	assert.JSONEq(t, `{"name":"a"}`, string(unwrapEntity(wrapped)))

	bare := []byte(`{"name":"a"}`)
	assert.Equal(t, bare, unwrapEntity(bare))

	// A "data" field that is a scalar belongs to the entity itself.
	scalar := []byte(`{"data":"2024-01-01","name":"a"}`)
	assert.Equal(t, scalar, unwrapEntity(scalar))
}
