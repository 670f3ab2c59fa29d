// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package swflog adapts go.uber.org/zap to the small leveled-logger
// surface this module's decoders call against, so callers can plug in
// their own zap core (for JSON logs, sampling, a test observer) without
// the decoder package importing zap's configuration API directly.
package swflog

import "go.uber.org/zap"

// Logger is the call-site surface every decoder package in this module
// logs through: Debug for per-record decode tracing, Warn for
// recoverable anomalies (an unknown tag code, a truncated trailing
// record), Error for failures severe enough to abort decode.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type sugaredAdapter struct {
	s *zap.SugaredLogger
}

// New wraps a zap.SugaredLogger as a Logger.
func New(s *zap.SugaredLogger) Logger {
	return &sugaredAdapter{s: s}
}

// NewProduction builds a Logger backed by zap's production config
// (JSON encoding, info level and above).
func NewProduction() (Logger, error) {
	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return New(l.Sugar()), nil
}

// NewNop returns a Logger that discards everything, the default when a
// caller supplies no Logger in Options.
func NewNop() Logger {
	return New(zap.NewNop().Sugar())
}

func (a *sugaredAdapter) Debug(args ...interface{})                 { a.s.Debug(args...) }
func (a *sugaredAdapter) Debugf(format string, args ...interface{}) { a.s.Debugf(format, args...) }
func (a *sugaredAdapter) Warn(args ...interface{})                  { a.s.Warn(args...) }
func (a *sugaredAdapter) Warnf(format string, args ...interface{})  { a.s.Warnf(format, args...) }
func (a *sugaredAdapter) Error(args ...interface{})                 { a.s.Error(args...) }
func (a *sugaredAdapter) Errorf(format string, args ...interface{}) { a.s.Errorf(format, args...) }
