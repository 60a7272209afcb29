package logger

import (
	wailslogger "github.com/wailsapp/wails/v2/pkg/logger"
	"go.uber.org/zap"
)

// WailsLogger sends the desktop runtime's own log lines to zap.
type WailsLogger struct {
	log *zap.SugaredLogger
}

var _ wailslogger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps log for use as options.App.Logger.
func NewWailsLogger(log *zap.SugaredLogger) *WailsLogger {
	return &WailsLogger{log: log.Named("wails").WithOptions(zap.AddCallerSkip(1))}
}

func (w *WailsLogger) Print(message string)   { w.log.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error(message) }
func (w *WailsLogger) Fatal(message string)   { w.log.Fatal(message) }
