// Package slog provides logging decorators for headlines services.
package slog
