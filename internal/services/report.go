package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"

	"github.com/rohmon/backend/internal/models"
)

// ReportService assembles the daily digest from one aggregation cycle and
// dispatches it by mail. The aggregator's output is the sole input.
type ReportService struct {
	aggregator *Aggregator
	mailer     Mailer
	log        *zap.Logger
}

// Mailer sends one HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

func NewReportService(aggregator *Aggregator, mailer Mailer, log *zap.Logger) *ReportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportService{aggregator: aggregator, mailer: mailer, log: log}
}

// BuildDailyReport runs an aggregation cycle and maps the quotes into the
// dated report payload.
func (s *ReportService) BuildDailyReport(ctx context.Context) *models.DailyReport {
	quotes := s.aggregator.Aggregate(ctx, models.TrackedCommodities())

	rows := make([]models.ReportRow, 0, len(quotes))
	for _, q := range quotes {
		rows = append(rows, models.ReportRow{
			ID:            q.ID,
			Name:          q.Name,
			NameDe:        q.NameDe,
			Price:         q.Price,
			Currency:      q.Currency,
			Unit:          q.Unit,
			ChangePercent: q.ChangePercent,
			Trend:         q.Trend,
			Icon:          q.Icon,
		})
	}
	return &models.DailyReport{
		Date:        time.Now().Format("02.01.2006"),
		Commodities: rows,
	}
}

// SendDailyReport builds today's report and mails it to the recipient.
func (s *ReportService) SendDailyReport(ctx context.Context, email string) error {
	report := s.BuildDailyReport(ctx)

	html, err := RenderReportHTML(report)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	subject := fmt.Sprintf("Rohstoff-Tagesbericht %s", report.Date)
	if err := s.mailer.Send(ctx, email, subject, html); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	s.log.Info("daily report sent",
		zap.String("email", email),
		zap.Int("commodities", len(report.Commodities)))
	return nil
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"signed": func(r models.ReportRow) string {
		pct := r.ChangePercent.Round(1)
		if pct.IsPositive() {
			return "+" + pct.String() + "%"
		}
		return pct.String() + "%"
	},
}).Parse(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"></head>
  <body style="font-family: sans-serif; color: #1f2937;">
    <h1>📊 Rohstoff-Tagesbericht</h1>
    <p>Preisübersicht vom {{.Date}}</p>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="border-bottom: 2px solid #e5e5e5; text-align: left;">
          <th style="padding: 12px;">Rohstoff</th>
          <th style="padding: 12px; text-align: right;">Preis</th>
          <th style="padding: 12px; text-align: right;">Veränderung</th>
        </tr>
      </thead>
      <tbody>
        {{range .Commodities}}
        <tr style="border-bottom: 1px solid #e5e5e5;">
          <td style="padding: 12px;">
            <span style="font-size: 18px;">{{.Icon}}</span>
            <strong>{{.NameDe}}</strong>
            <span style="color: #6b7280;">{{.Name}}</span>
          </td>
          <td style="padding: 12px; text-align: right;">{{.Price.StringFixed 2}} {{.Currency}}/{{.Unit}}</td>
          <td style="padding: 12px; text-align: right;">{{signed .}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <p style="color: #6b7280; font-size: 12px;">Automatisch generiert vom Rohstoff-Monitoring System.</p>
  </body>
</html>`))

// RenderReportHTML renders the digest table for mailing.
func RenderReportHTML(report *models.DailyReport) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, report); err != nil {
		return "", err
	}
	return buf.String(), nil
}
