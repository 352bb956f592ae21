// Package logger provides structured logging for gomonad using zerolog.
//
// Library code never configures logging on its own. Component loggers are
// obtained with Get and follow the global logger installed by Init (or by
// config.Apply), so embedding applications control level and format.
//
// # Configuration
//
//	logging:
//	  level: "warn"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("seq")
//	log.Warn("fusing a self-fused iterator", logger.Fields(logger.FieldAdapter, "MapWindows"))
package logger
