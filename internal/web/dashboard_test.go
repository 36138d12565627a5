package web

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRendersCatalogAndStats(t *testing.T) {
	ts := newTestServer(t, newFakeAPI())

	resp, body := get(t, ts, "/dashboard?year=2025&month=6")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Corte")
	assert.Contains(t, body, "Luzes")
	assert.Contains(t, body, "R$ 150.00")
	assert.Contains(t, body, "R$ 50.00")
	assert.Contains(t, body, "junho")
}

func TestDashboardStatsFailureRendersZeroedPanel(t *testing.T) {
	api := newFakeAPI()
	api.statsErr = errors.New("stats backend down")
	ts := newTestServer(t, api)

	resp, body := get(t, ts, "/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Corte", "catalog still renders")
	assert.Contains(t, body, "R$ 0.00")
}

func TestDashboardEditPrefillsForm(t *testing.T) {
	ts := newTestServer(t, newFakeAPI())

	_, body := get(t, ts, "/dashboard?edit=2")
	assert.Contains(t, body, `value="Luzes"`)
	assert.Contains(t, body, `value="150"`)
}

func TestCreateServiceMissingFieldsBlocked(t *testing.T) {
	api := newFakeAPI()
	ts := newTestServer(t, api)

	resp, body := postForm(t, ts, "/dashboard/services", url.Values{
		"name":  {"Barba"},
		"price": {"30"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Por favor, preencha todos os campos obrigatórios.")
	assert.Empty(t, api.createdServices)
}

func TestCreateServiceSanitizesPrice(t *testing.T) {
	api := newFakeAPI()
	ts := newTestServer(t, api)

	resp, _ := postForm(t, ts, "/dashboard/services", url.Values{
		"name":        {"Barba"},
		"description": {"Barba completa"},
		"price":       {"R$ 1.234,00"},
		"duration":    {"30"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	require.Len(t, api.createdServices, 1)
	assert.Equal(t, "1234", api.createdServices[0].Price)
}

func TestCreateServiceFailureKeepsSelectedMonth(t *testing.T) {
	api := newFakeAPI()
	ts := newTestServer(t, api)

	resp, body := postForm(t, ts, "/dashboard/services", url.Values{
		"name":  {"Barba"},
		"price": {"30"},
		"year":  {"2024"},
		"month": {"2"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Por favor, preencha todos os campos obrigatórios.")
	assert.Contains(t, body, "Financeiro - 2/2024")
	assert.Equal(t, 2024, api.statsYear, "the error page keeps the month the user was viewing")
	assert.Equal(t, 2, api.statsMonth)
}

func TestCreateServiceRedirectKeepsSelectedMonth(t *testing.T) {
	api := newFakeAPI()
	ts := newTestServer(t, api)

	resp, _ := postForm(t, ts, "/dashboard/services", url.Values{
		"name":        {"Barba"},
		"description": {"Barba completa"},
		"price":       {"30"},
		"duration":    {"20"},
		"year":        {"2024"},
		"month":       {"2"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard?year=2024&month=2", resp.Header.Get("Location"))
}

func TestUpdateService(t *testing.T) {
	api := newFakeAPI()
	ts := newTestServer(t, api)

	resp, _ := postForm(t, ts, "/dashboard/services/2", url.Values{
		"name":        {"Luzes"},
		"description": {"Luzes completas"},
		"price":       {"180"},
		"duration":    {"75"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	payload, ok := api.updatedServices["2"]
	require.True(t, ok)
	assert.Equal(t, "180", payload.Price)
	assert.Equal(t, "75", payload.Duration)
}

func TestDeleteService(t *testing.T) {
	api := newFakeAPI()
	ts := newTestServer(t, api)

	resp, _ := postForm(t, ts, "/dashboard/services/1/delete", nil)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, []string{"1"}, api.deletedServices)
}

func TestDeleteServiceFailureBanner(t *testing.T) {
	api := newFakeAPI()
	api.deleteErr = errors.New("boom")
	ts := newTestServer(t, api)

	resp, body := postForm(t, ts, "/dashboard/services/1/delete", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Falha ao excluir o serviço.")
}
