// Package iowage implements the wage source contract against the ILO
// labor-statistics REST service.
package iowage

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/livingcost/lccollect/pkg/config"
)

// requestTimeout bounds the indicator download. One request carries
// the whole time series, so a fault here fails the indicator's cycle.
const requestTimeout = 30 * time.Second

// Structural filters: only totals over both sexes, only local
// currency units. Records in other dimensions are discarded.
const (
	sexTotal          = "SEX_T"
	currencyTypeLocal = "CUR_TYPE_LCU"
)

type adapter struct {
	cfg    *config.WagesConfig
	client *resty.Client
}

// New creates a WageSource backed by the configured REST endpoint.
func New(cfg *config.WagesConfig) collect.WageSource {
	client := resty.New().SetTimeout(requestTimeout)
	return &adapter{cfg: cfg, client: client}
}

// flexString holds a payload field that arrives either as a JSON
// string or as a bare number. The service is not consistent about
// quoting, sometimes within a single response.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// record mirrors one element of the indicator payload.
type record struct {
	RefArea   string     `json:"ref_area"`
	Indicator string     `json:"indicator"`
	ObsValue  flexString `json:"obs_value"`
	Time      flexString `json:"time"`
	Sex       string     `json:"sex"`
	Classif1  string     `json:"classif1"`
}

// Fetch downloads the complete time series of one indicator and
// applies the structural filters. Unlike the price adapter, transport
// and parse faults surface as errors: without the series there is
// nothing for the indicator's cycle to do, and the orchestrator skips
// to the next indicator.
func (a *adapter) Fetch(
	ctx context.Context,
	indicatorCode string,
) ([]collect.WageObservation, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("id", indicatorCode).
		SetQueryParam("format", ".json").
		Get(a.cfg.Endpoint)
	if err != nil {
		return nil, FetchError(indicatorCode, err)
	}
	if resp.IsError() {
		return nil, FetchStatusError(indicatorCode, resp.StatusCode())
	}

	var records []record
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, DecodeError(indicatorCode, err)
	}

	res := make([]collect.WageObservation, 0, len(records))
	var skipped int
	for _, r := range records {
		if r.Sex != sexTotal || r.Classif1 != currencyTypeLocal {
			continue
		}

		value, err := strconv.ParseFloat(string(r.ObsValue), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			// ParseFloat accepts "NaN" and "Inf"; neither belongs in
			// history rows
			skipped++
			continue
		}
		year, err := yearOf(r.Time)
		if err != nil {
			skipped++
			continue
		}

		res = append(res, collect.WageObservation{
			Area:          r.RefArea,
			IndicatorCode: r.Indicator,
			Value:         value,
			Year:          year,
		})
	}

	if skipped > 0 {
		slog.Warn("Dropped malformed wage records",
			"indicator", indicatorCode, "count", skipped)
	}

	return res, nil
}

// yearOf extracts the integer year from the payload's time field.
// Monthly series use forms like "2020M05"; only the year part is
// relevant for recency selection.
func yearOf(n flexString) (int, error) {
	s := string(n)
	if len(s) > 4 {
		s = s[:4]
	}
	var year int
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrBadYear
		}
		year = year*10 + int(r-'0')
	}
	if year < 1900 {
		return 0, ErrBadYear
	}
	return year, nil
}
