package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	logger "github.com/sirupsen/logrus"

	"tradequality/src/model"
	"tradequality/src/pipeline"
	"tradequality/src/report"
)

type reportRunner interface {
	Run(ctx context.Context) (*model.Report, error)
}

// ReportHandler runs the data quality checks on demand and returns the report.
// Supports ?format=json|yaml|text, falling back to defaultFormat and then json.
func ReportHandler(runner reportRunner, defaultFormat string) http.HandlerFunc {
	if defaultFormat == "" {
		defaultFormat = report.FormatJSON
	}
	return func(w http.ResponseWriter, r *http.Request) {
		format := r.URL.Query().Get("format")
		if format == "" {
			format = defaultFormat
		}
		formatter, err := report.NewFormatter(format)
		if err != nil {
			http.Error(w, "invalid format", http.StatusBadRequest)
			return
		}

		rep, err := runner.Run(r.Context())
		if err != nil {
			logger.WithError(err).Error("Report run failed")
			if errors.Is(err, pipeline.ErrSourceUnavailable) {
				http.Error(w, "data source unavailable", http.StatusServiceUnavailable)
				return
			}
			http.Error(w, "report failed", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := formatter.Format(&buf, rep); err != nil {
			logger.WithError(err).Error("Failed to format report")
			http.Error(w, "report failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", formatter.ContentType())
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			logger.WithError(err).Error("Failed to write report response")
		}
	}
}
