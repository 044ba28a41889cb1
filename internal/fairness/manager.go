package fairness

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/metamind-labs/metamind/internal/store"
)

// Manager runs audits end to end and owns the saved report history.
type Manager struct {
	store       *store.Store
	engine      *Engine
	interpreter Interpreter
}

// NewManager wires an audit pipeline over the given store. The
// interpreter may be nil; reports are then saved without a narrative.
func NewManager(s *store.Store, interpreter Interpreter) *Manager {
	return &Manager{
		store:       s,
		engine:      NewEngine(s),
		interpreter: interpreter,
	}
}

func (m *Manager) Engine() *Engine { return m.engine }

// RunAudit computes metrics, applies thresholds, optionally attaches an
// interpretation, and saves the result as a new immutable report.
//
// An unavailable interpreter degrades the report to metrics-only with a
// note; it never fails the audit.
func (m *Manager) RunAudit(ctx context.Context, p Params) (*store.FairnessReport, error) {
	metrics, err := m.engine.Compute(ctx, p)
	if err != nil {
		return nil, err
	}
	analysis := Analyze(metrics)

	metricsMap, err := asMap(metrics)
	if err != nil {
		return nil, err
	}
	analysisMap, err := asMap(analysis)
	if err != nil {
		return nil, err
	}
	metricsMap["analysis"] = analysisMap

	var interpMap map[string]any
	var notes string
	if m.interpreter != nil {
		interp, err := m.interpreter.Interpret(ctx, metrics, analysis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: audit interpretation unavailable: %v\n", err)
			notes = fmt.Sprintf("interpretation unavailable: %v", err)
		} else {
			interpMap, err = asMap(interp)
			if err != nil {
				return nil, err
			}
		}
	}

	return m.store.Reports().Save(ctx, store.SaveReportParams{
		GroupBy:        metrics.GroupBy,
		Topic:          metrics.Topic,
		WindowFrom:     metrics.WindowFrom,
		WindowTo:       metrics.WindowTo,
		MinSampleSize:  metrics.MinSampleSize,
		Metrics:        metricsMap,
		Interpretation: interpMap,
		Notes:          notes,
	})
}

// Reanalyze re-runs an audit with the parameters of a saved report and
// saves the outcome as a new report. The original is never modified.
func (m *Manager) Reanalyze(ctx context.Context, reportID string) (*store.FairnessReport, error) {
	prev, err := m.store.Reports().Get(ctx, reportID)
	if err != nil {
		return nil, err
	}

	topic := prev.Topic
	if topic == "ALL" {
		topic = ""
	}
	return m.RunAudit(ctx, Params{
		GroupBy:       prev.GroupBy,
		Topic:         topic,
		From:          prev.WindowFrom,
		To:            prev.WindowTo,
		MinSampleSize: prev.MinSampleSize,
	})
}

func (m *Manager) GetReport(ctx context.Context, reportID string) (*store.FairnessReport, error) {
	return m.store.Reports().Get(ctx, reportID)
}

func (m *Manager) ListReports(ctx context.Context, f store.ReportFilter) ([]*store.FairnessReport, error) {
	return m.store.Reports().List(ctx, f)
}

// asMap round-trips a struct through JSON so it can live in the
// report's schemaless metrics column.
func asMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
