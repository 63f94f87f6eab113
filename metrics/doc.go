// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus metrics for HTTP traffic, live
// subscribers, broadcast deliveries and draw history scans.
package metrics
