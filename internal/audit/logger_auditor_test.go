// filepath: internal/audit/logger_auditor_test.go
package audit

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerAuditor(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("Enabled", func(t *testing.T) {
		hook.Reset()
		a := NewLoggerAuditorWith(logger, true)
		a.Log(context.Background(), "flower.delete", "127.0.0.1", "Flower:01", map[string]interface{}{"had_image": true})

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, "AUDIT EVENT", entry.Message)
		assert.Equal(t, "flower.delete", entry.Data["audit_action"])
		assert.Equal(t, "127.0.0.1", entry.Data["audit_actor"])
		assert.Equal(t, "Flower:01", entry.Data["audit_resource"])
		assert.Equal(t, true, entry.Data["detail.had_image"])
	})

	t.Run("Disabled", func(t *testing.T) {
		hook.Reset()
		a := NewLoggerAuditorWith(logger, false)
		a.Log(context.Background(), "flower.create", "127.0.0.1", "Flower:01", nil)
		assert.Empty(t, hook.AllEntries())
	})
}
