// Package error provides structured error handling for the mAT platform.
//
// Package: error
// Title: mAT Error Handling Framework
// Description: This package implements a structured error handling system with
//              error codes, severity levels, and contextual details. It keeps
//              compatibility with Go's standard error interface (Unwrap, errors.Is)
//              while giving the CLI and the domain boundary enough structure to
//              distinguish caller mistakes from internal defects.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation with codes and severities
//
// Usage:
//
//	import materror "github.com/msto63/mAT/pkg/core/error"
//
//	err := materror.New("unknown domain").
//	    WithCode(materror.CodeUnknownDomain).
//	    WithDetail("domain", name)
//
//	if materror.HasCode(err, materror.CodeUnknownDomain) { ... }
package error
