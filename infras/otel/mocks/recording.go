package mocks

import (
	"context"
	"pms/infras/otel"
)

// RecordingScope keeps the last error handed to TraceError or TraceIfError so
// tests can assert that a failing path reaches the span.
type RecordingScope struct {
	scopeImpl
	Err error
}

// TraceError implements otel.Scope.
func (s *RecordingScope) TraceError(err error) {
	s.Err = err
}

// TraceIfError implements otel.Scope.
func (s *RecordingScope) TraceIfError(err error) {
	if err != nil {
		s.Err = err
	}
}

type recordingOtelImpl struct {
	scope *RecordingScope
}

// NewScope implements otel.Otel.
func (o *recordingOtelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, o.scope
}

// NewRecordingOtel returns an otel fake whose scopes all share one recorder.
func NewRecordingOtel() (otel.Otel, *RecordingScope) {
	scope := &RecordingScope{}

	return &recordingOtelImpl{scope: scope}, scope
}
