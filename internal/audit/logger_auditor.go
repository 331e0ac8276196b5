// filepath: internal/audit/logger_auditor.go
// Package audit records catalog changes as structured log events.
package audit

import (
	"context"
	"flowershop/internal/logging"
	"flowershop/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor writes audit events to a logrus logger, by default the application log.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates an auditor that writes to the application log.
func NewLoggerAuditor(enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logging.Log}
}

// NewLoggerAuditorWith creates an auditor that writes to logger.
func NewLoggerAuditorWith(logger *logrus.Logger, enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logger}
}

// Log records an event if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}

	// Range over nil map is safe.
	for k, v := range details {
		fields["detail."+k] = v
	}

	// INFO with a fixed message so audit lines are easy to grep
	a.logger.WithContext(ctx).WithFields(fields).Info("AUDIT EVENT")
}
