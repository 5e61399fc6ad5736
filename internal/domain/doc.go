// Package domain dispatches generate and step calls by domain name.
//
// Package: domain
// Title: Domain Dispatch & Registry
// Description: Defines the Domain contract every problem family
//              implements and the immutable Registry that dispatches calls
//              by name. The registry distinguishes three outcomes exactly:
//              an unknown domain fails the whole call, a state that does
//              not parse yields an invalid per-state result, and a state
//              with no legal moves yields a valid result with an empty
//              action list. Batched steps run in parallel and are
//              elementwise identical to sequential calls.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial dispatch implementation
package domain
