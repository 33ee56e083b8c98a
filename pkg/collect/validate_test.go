package collect_test

import (
	"testing"

	"github.com/livingcost/lccollect/pkg/collect"
	"github.com/stretchr/testify/assert"
)

func TestValidateRegions(t *testing.T) {
	good := []collect.Region{
		{CountryID: 1, Domain: "AMAZON_COM_BR", DefaultCurrency: "BRL"},
		{CountryID: 2, Domain: "AMAZON_COM", DefaultCurrency: "USD"},
		{CountryID: 3, Domain: "AMAZON_ES", DefaultCurrency: "EUR"},
	}

	tests := []struct {
		msg     string
		regions []collect.Region
		wantErr bool
	}{
		{"valid set", good, false},
		{"empty set", nil, true},
		{
			"missing domain",
			[]collect.Region{{CountryID: 1, DefaultCurrency: "BRL"}},
			true,
		},
		{
			"lowercase currency",
			[]collect.Region{
				{CountryID: 1, Domain: "AMAZON_COM", DefaultCurrency: "usd"},
			},
			true,
		},
		{
			"duplicate domain",
			[]collect.Region{
				{CountryID: 1, Domain: "AMAZON_COM", DefaultCurrency: "USD"},
				{CountryID: 2, Domain: "AMAZON_COM", DefaultCurrency: "USD"},
			},
			true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			err := collect.ValidateRegions(v.regions)
			if v.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateIndicators(t *testing.T) {
	tests := []struct {
		msg        string
		indicators []collect.Indicator
		wantErr    bool
	}{
		{
			"valid set",
			[]collect.Indicator{
				{Code: "EAR_XEES_SEX_ECO_NB_M", SourceID: 1},
			},
			false,
		},
		{"empty set", nil, true},
		{
			"missing source id",
			[]collect.Indicator{{Code: "EAR_XEES_SEX_ECO_NB_M"}},
			true,
		},
		{
			"duplicate code",
			[]collect.Indicator{
				{Code: "A", SourceID: 1},
				{Code: "A", SourceID: 1},
			},
			true,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			err := collect.ValidateIndicators(v.indicators)
			if v.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
