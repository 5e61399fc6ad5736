// Package log provides structured logging for the mAT platform.
//
// Package: log
// Title: mAT Structured Logging
// Description: This package implements a leveled, structured logger with
//              JSON and text output formats, contextual fields, and a
//              process-wide default logger. The algebra core itself stays
//              free of logging (its operations are pure functions); the
//              logger is used by the CLI, the problem bank, and the
//              registry initialization.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with structured logging
//
// Usage:
//
//	logger := log.New().WithField("component", "bank")
//	logger.Info("problem stored", log.Fields{"seed": 42})
package log
