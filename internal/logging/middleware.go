package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware attaches a fresh LogData to each request and logs
// Handler.<operation>.Start / .Complete around it, with any timings and data
// fields the handler accumulated.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID
		logData := NewLogData(log)

		log.Infof("Handler.%v.Start", operationID)

		endTimer := logData.AddTiming("durationMs")
		next(huma.WithValue(ctx, logDataKey, logData))
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
