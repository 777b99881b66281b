package postgres

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockLogger is a mock of the Logger interface.
type MockLogger struct {
	ctrl     *gomock.Controller
	recorder *MockLoggerMockRecorder
}

// MockLoggerMockRecorder is the mock recorder for MockLogger.
type MockLoggerMockRecorder struct {
	mock *MockLogger
}

// NewMockLogger creates a new mock instance.
func NewMockLogger(ctrl *gomock.Controller) *MockLogger {
	mock := &MockLogger{ctrl: ctrl}
	mock.recorder = &MockLoggerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLogger) EXPECT() *MockLoggerMockRecorder {
	return m.recorder
}

func (m *MockLogger) call(method, msg string, err error, fields ...map[string]interface{}) {
	m.ctrl.T.Helper()
	varargs := []any{msg, err}
	for _, a := range fields {
		varargs = append(varargs, a)
	}
	m.ctrl.Call(m, method, varargs...)
}

func (mr *MockLoggerMockRecorder) record(method string, msg, err any, fields ...any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	varargs := append([]any{msg, err}, fields...)
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, method, reflect.TypeOf((func(string, error, ...map[string]interface{}))(nil)), varargs...)
}

// Info mocks base method.
func (m *MockLogger) Info(msg string, err error, fields ...map[string]interface{}) {
	m.call("Info", msg, err, fields...)
}

// Info indicates an expected call of Info.
func (mr *MockLoggerMockRecorder) Info(msg, err any, fields ...any) *gomock.Call {
	return mr.record("Info", msg, err, fields...)
}

// Warn mocks base method.
func (m *MockLogger) Warn(msg string, err error, fields ...map[string]interface{}) {
	m.call("Warn", msg, err, fields...)
}

// Warn indicates an expected call of Warn.
func (mr *MockLoggerMockRecorder) Warn(msg, err any, fields ...any) *gomock.Call {
	return mr.record("Warn", msg, err, fields...)
}

// Error mocks base method.
func (m *MockLogger) Error(msg string, err error, fields ...map[string]interface{}) {
	m.call("Error", msg, err, fields...)
}

// Error indicates an expected call of Error.
func (mr *MockLoggerMockRecorder) Error(msg, err any, fields ...any) *gomock.Call {
	return mr.record("Error", msg, err, fields...)
}
