package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/fairnessreport"
)

// reportRepo implements ReportRepo using the ent client. Reports are
// write-once: there is no update path, re-analysis saves a new row.
type reportRepo struct {
	client *ent.Client
}

func (r *reportRepo) Save(ctx context.Context, p SaveReportParams) (*FairnessReport, error) {
	topic := p.Topic
	if topic == "" {
		topic = "ALL"
	}

	builder := r.client.FairnessReport.Create().
		SetReportID(uuid.NewString()).
		SetGroupBy(p.GroupBy).
		SetTopic(topic).
		SetMinSampleSize(p.MinSampleSize).
		SetMetrics(p.Metrics).
		SetNotes(p.Notes)

	if p.WindowFrom != nil {
		builder = builder.SetWindowFrom(*p.WindowFrom)
	}
	if p.WindowTo != nil {
		builder = builder.SetWindowTo(*p.WindowTo)
	}
	if p.Interpretation != nil {
		builder = builder.SetInterpretation(p.Interpretation)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save fairness report: %w", err)
	}
	return entReportToReport(row), nil
}

func (r *reportRepo) Get(ctx context.Context, reportID string) (*FairnessReport, error) {
	row, err := r.client.FairnessReport.Query().
		Where(fairnessreport.ReportID(reportID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "report", ID: reportID}
		}
		return nil, fmt.Errorf("get fairness report: %w", err)
	}
	return entReportToReport(row), nil
}

func (r *reportRepo) List(ctx context.Context, f ReportFilter) ([]*FairnessReport, error) {
	q := r.client.FairnessReport.Query()
	if f.GroupBy != "" {
		q = q.Where(fairnessreport.GroupBy(f.GroupBy))
	}
	if f.Topic != "" {
		q = q.Where(fairnessreport.Topic(f.Topic))
	}
	q = q.Order(ent.Desc(fairnessreport.FieldCreatedAt), ent.Desc(fairnessreport.FieldReportID))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fairness reports: %w", err)
	}
	out := make([]*FairnessReport, len(rows))
	for i, row := range rows {
		out[i] = entReportToReport(row)
	}
	return out, nil
}

func entReportToReport(row *ent.FairnessReport) *FairnessReport {
	return &FairnessReport{
		ReportID:       row.ReportID,
		GroupBy:        row.GroupBy,
		Topic:          row.Topic,
		WindowFrom:     row.WindowFrom,
		WindowTo:       row.WindowTo,
		MinSampleSize:  row.MinSampleSize,
		Metrics:        row.Metrics,
		Interpretation: row.Interpretation,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt,
	}
}
