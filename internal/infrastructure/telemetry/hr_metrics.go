package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// HeadcountProvider supplies the point-in-time figures behind the HR gauges
type HeadcountProvider interface {
	CountActive(ctx context.Context) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}

// HRMetrics holds the HR business instruments. A nil *HRMetrics records nothing,
// so services can hold one unconditionally.
type HRMetrics struct {
	logins        *Counter
	leaveRequests *Counter
	leaveDecided  *Counter
	checkIns      *Counter
	reports       *Counter
	renderTime    *Histogram
}

// NewHRMetrics creates the instruments on meter. When provider is not nil the
// hrms_active_employees and hrms_pending_leave_requests gauges are observed
// at every collection.
func NewHRMetrics(meter metric.Meter, provider HeadcountProvider, logger *zap.Logger) (*HRMetrics, error) {
	m := &HRMetrics{}
	var err error
	if m.logins, err = NewCounter(meter, "hrms_login_total", "Login attempts by outcome", "{attempt}"); err != nil {
		return nil, err
	}
	if m.leaveRequests, err = NewCounter(meter, "hrms_leave_request_total", "Leave requests submitted by type", "{request}"); err != nil {
		return nil, err
	}
	if m.leaveDecided, err = NewCounter(meter, "hrms_leave_decision_total", "Leave requests approved or rejected", "{request}"); err != nil {
		return nil, err
	}
	if m.checkIns, err = NewCounter(meter, "hrms_check_in_total", "Attendance check-ins by derived status", "{check_in}"); err != nil {
		return nil, err
	}
	if m.reports, err = NewCounter(meter, "hrms_report_total", "Reports generated by report and format", "{report}"); err != nil {
		return nil, err
	}
	if m.renderTime, err = NewHistogram(meter, "hrms_report_duration_seconds", "Report build and render latency", "s", RenderDurationBuckets); err != nil {
		return nil, err
	}
	if provider == nil {
		return m, nil
	}

	_, err = meter.Int64ObservableGauge("hrms_active_employees",
		metric.WithDescription("Active employees"), metric.WithUnit("{employee}"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			n, err := provider.CountActive(ctx)
			if err != nil {
				logger.Warn("Failed to collect active employee count", zap.Error(err))
				return nil
			}
			o.Observe(n)
			return nil
		}))
	if err != nil {
		return nil, err
	}
	_, err = meter.Int64ObservableGauge("hrms_pending_leave_requests",
		metric.WithDescription("Leave requests awaiting a decision"), metric.WithUnit("{request}"),
		metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
			n, err := provider.CountPendingLeaves(ctx)
			if err != nil {
				logger.Warn("Failed to collect pending leave count", zap.Error(err))
				return nil
			}
			o.Observe(n)
			return nil
		}))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordLogin counts a login attempt
func (m *HRMetrics) RecordLogin(ctx context.Context, success bool) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.logins.Inc(ctx, AttrOutcome.String(outcome))
}

// RecordLeaveRequest counts a submitted leave request
func (m *HRMetrics) RecordLeaveRequest(ctx context.Context, leaveType string, paid bool) {
	if m == nil {
		return
	}
	m.leaveRequests.Inc(ctx, AttrLeaveType.String(leaveType), AttrOutcome.String(paidLabel(paid)))
}

// RecordLeaveDecision counts an approval or rejection
func (m *HRMetrics) RecordLeaveDecision(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.leaveDecided.Inc(ctx, AttrLeaveState.String(status))
}

// RecordCheckIn counts a check-in by its derived status (present or late)
func (m *HRMetrics) RecordCheckIn(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.checkIns.Inc(ctx, AttrAttendance.String(status))
}

// RecordReport counts a generated report and its latency
func (m *HRMetrics) RecordReport(ctx context.Context, report, format string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.reports.Inc(ctx, AttrReport.String(report), AttrFormat.String(format), AttrOutcome.String(outcome))
	m.renderTime.RecordDuration(ctx, elapsed, AttrReport.String(report), AttrFormat.String(format))
}

func paidLabel(paid bool) string {
	if paid {
		return "paid"
	}
	return "unpaid"
}
