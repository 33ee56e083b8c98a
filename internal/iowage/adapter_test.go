package iowage_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/livingcost/lccollect/internal/iowage"
	"github.com/livingcost/lccollect/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indicator = "EAR_XEES_SEX_ECO_NB_M"

func newServer(t *testing.T, status int, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, indicator, r.URL.Query().Get("id"))
			assert.Equal(t, ".json", r.URL.Query().Get("format"))

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(payload))
		}))
}

func TestFetchFilters(t *testing.T) {
	payload := `[
	 {"ref_area":"BRA","indicator":"` + indicator + `",
	  "obs_value":1412.5,"time":"2020","sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"},
	 {"ref_area":"BRA","indicator":"` + indicator + `",
	  "obs_value":1500.0,"time":"2020","sex":"SEX_M",
	  "classif1":"CUR_TYPE_LCU"},
	 {"ref_area":"BRA","indicator":"` + indicator + `",
	  "obs_value":300.2,"time":"2018","sex":"SEX_T",
	  "classif1":"CUR_TYPE_USD"},
	 {"ref_area":"USA","indicator":"` + indicator + `",
	  "obs_value":"4200.75","time":2022,"sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"}
	]`

	srv := newServer(t, http.StatusOK, payload)
	defer srv.Close()

	cfg := &config.WagesConfig{Endpoint: srv.URL}
	obs, err := iowage.New(cfg).Fetch(context.Background(), indicator)
	require.NoError(t, err)

	// sex and currency-type filters leave two records
	require.Len(t, obs, 2)
	assert.Equal(t, "BRA", obs[0].Area)
	assert.Equal(t, 2020, obs[0].Year)
	assert.InDelta(t, 1412.5, obs[0].Value, 1e-9)
	// quoted numbers and bare years both decode
	assert.Equal(t, "USA", obs[1].Area)
	assert.Equal(t, 2022, obs[1].Year)
	assert.InDelta(t, 4200.75, obs[1].Value, 1e-9)
}

func TestFetchMonthlyPeriod(t *testing.T) {
	payload := `[
	 {"ref_area":"ESP","indicator":"` + indicator + `",
	  "obs_value":2000,"time":"2021M05","sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"}
	]`

	srv := newServer(t, http.StatusOK, payload)
	defer srv.Close()

	cfg := &config.WagesConfig{Endpoint: srv.URL}
	obs, err := iowage.New(cfg).Fetch(context.Background(), indicator)
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, 2021, obs[0].Year)
}

func TestFetchDropsMalformedRecords(t *testing.T) {
	payload := `[
	 {"ref_area":"BRA","indicator":"` + indicator + `",
	  "obs_value":1412.5,"time":"2020","sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"},
	 {"ref_area":"ARG","indicator":"` + indicator + `",
	  "obs_value":900.0,"time":"n/a","sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"},
	 {"ref_area":"VEN","indicator":"` + indicator + `",
	  "obs_value":"NaN","time":"2020","sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"},
	 {"ref_area":"ZWE","indicator":"` + indicator + `",
	  "obs_value":"Inf","time":"2020","sex":"SEX_T",
	  "classif1":"CUR_TYPE_LCU"}
	]`

	srv := newServer(t, http.StatusOK, payload)
	defer srv.Close()

	cfg := &config.WagesConfig{Endpoint: srv.URL}
	obs, err := iowage.New(cfg).Fetch(context.Background(), indicator)
	require.NoError(t, err)
	require.Len(t, obs, 1)
	assert.Equal(t, "BRA", obs[0].Area)
}

func TestFetchFaultsArePropagated(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := newServer(t, http.StatusBadGateway, `upstream down`)
		defer srv.Close()

		cfg := &config.WagesConfig{Endpoint: srv.URL}
		_, err := iowage.New(cfg).Fetch(context.Background(), indicator)
		assert.Error(t, err)
	})

	t.Run("malformed payload", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `{"not":"an array"}`)
		defer srv.Close()

		cfg := &config.WagesConfig{Endpoint: srv.URL}
		_, err := iowage.New(cfg).Fetch(context.Background(), indicator)
		assert.Error(t, err)
	})

	t.Run("server unreachable", func(t *testing.T) {
		srv := newServer(t, http.StatusOK, `[]`)
		srv.Close()

		cfg := &config.WagesConfig{Endpoint: srv.URL}
		_, err := iowage.New(cfg).Fetch(context.Background(), indicator)
		assert.Error(t, err)
	})
}
