package renderers

import (
	"strings"
	"unicode/utf8"

	"one-billion-row/internal/models"
	"one-billion-row/internal/shared/metrics"
	"one-billion-row/internal/shared/svcerrors"
)

// places is the number of decimals printed for min, mean and max.
const places = 1

//go:generate mockgen -source=summary_renderer.go -destination=./mocks/summary_renderer_mock.go -package=mocks
type SummaryRenderer interface {
	// Rows formats every key of table, sorted byte-wise ascending.
	Rows(table *models.AggregateTable) ([]models.SummaryRow, *svcerrors.ServiceError)
	// Render returns the one-line summary: {key=min/mean/max, ...}.
	Render(table *models.AggregateTable) (string, *svcerrors.ServiceError)
	// Join renders rows that are already sorted.
	Join(rows []models.SummaryRow) string
}

type summaryRenderer struct{}

func NewSummaryRenderer() SummaryRenderer {
	return &summaryRenderer{}
}

func (r *summaryRenderer) Rows(table *models.AggregateTable) ([]models.SummaryRow, *svcerrors.ServiceError) {
	keys := table.Keys()
	rows := make([]models.SummaryRow, 0, len(keys))
	for _, key := range keys {
		if !utf8.ValidString(key) {
			svcErr := errInvalidKeyEncoding(key)
			metricRenderTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		m, _ := table.Get(key)
		rows = append(rows, models.SummaryRow{
			Key:   key,
			Min:   formatValue(m.Min),
			Mean:  formatMean(m),
			Max:   formatValue(m.Max),
			Count: m.Count,
		})
	}
	metricRenderTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return rows, nil
}

func (r *summaryRenderer) Render(table *models.AggregateTable) (string, *svcerrors.ServiceError) {
	rows, svcErr := r.Rows(table)
	if svcErr != nil {
		return "", svcErr
	}
	return r.Join(rows), nil
}

func (r *summaryRenderer) Join(rows []models.SummaryRow) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, row := range rows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(row.Key)
		sb.WriteByte('=')
		sb.WriteString(row.Min)
		sb.WriteByte('/')
		sb.WriteString(row.Mean)
		sb.WriteByte('/')
		sb.WriteString(row.Max)
	}
	sb.WriteByte('}')
	return sb.String()
}

// formatValue rounds half away from zero to one decimal.
func formatValue(v models.FixedPoint) string {
	return signed(v.Decimal().StringFixed(places), v < 0)
}

func formatMean(m models.Measurement) string {
	return signed(m.Mean(places).StringFixed(places), m.Negative())
}

// signed keeps the sign of a negative value that rounds to zero: -0.04 is "-0.0".
func signed(s string, negative bool) string {
	if negative && !strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return s
}
