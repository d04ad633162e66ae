package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogData_AddTimingOverwrites(t *testing.T) {
	logData := NewLogData(SetupLogging())
	logData.timeItems["queryMs"] = 3600000

	stop := logData.AddTiming("queryMs")
	stop()

	assert.Less(t, logData.timeItems["queryMs"], int64(3600000))
}

func TestLogData_AddToExistingTimingAccumulates(t *testing.T) {
	logData := NewLogData(SetupLogging())
	logData.timeItems["queryMs"] = 3600000

	stop := logData.AddToExistingTiming("queryMs")
	stop()
	stop = logData.AddToExistingTiming("queryMs")
	stop()

	assert.GreaterOrEqual(t, logData.timeItems["queryMs"], int64(3600000))
}

func TestLogData_LogCarriesDataAndTimings(t *testing.T) {
	logData := NewLogData(SetupLogging())
	logData.AddData("companyId", "company-1")

	stop := logData.AddTiming("durationMs")
	stop()

	entry := logData.Log()
	assert.Equal(t, "company-1", entry.Data["companyId"])
	assert.Contains(t, entry.Data, "durationMs")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging())
	ctx := context.WithValue(context.Background(), logDataKey, logData)
	assert.Same(t, logData, GetLogData(ctx))
}
