package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"tradequality/src/checks"
	"tradequality/src/model"
	"tradequality/src/pipeline"
)

func TestRouter(t *testing.T) {
	p := &pipeline.Pipeline{
		Source: pipeline.SourceFunc(func(context.Context) (*model.Dataset, error) {
			return &model.Dataset{Trades: model.TradeTable{Rows: []model.Trade{
				{TicketHash: model.NewValue("t1"), Cmd: model.NewValue("9")},
			}}}, nil
		}),
		Rules: checks.DefaultRules(checks.DefaultOptions()),
	}
	srv := httptest.NewServer(NewRouter(p, &Config{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthcheck")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep model.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	require.Equal(t, 1, rep.Trades)
	// t1 has no account, no instrument and an invalid cmd.
	require.Equal(t, 3, rep.Total)
}

func TestGetConfigDefaultPort(t *testing.T) {
	config := GetConfig()
	require.Equal(t, "9898", config.Port)
	require.Equal(t, "json", config.ReportFormat)
}
