package error

import (
	"fmt"
	"runtime"
)

type Code uint32

const (
	IncompleteReadErrorCode Code = iota
	UnknownDatatypeErrorCode
	BinaryWriteErrorCode
	BinaryReadErrorCode
	UnknownFormatErrorCode
)

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func (e *StackTraceError) Error() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}

type IncompleteReadError struct {
	expectedBytes int
	actualBytes   int
}

type UnsupportedDataTypeError struct {
	DataType string
}

type UnknownFormatError struct {
	Format string
}

type InvalidLengthError struct {
	DataType string
	expected int
	actual   int
}

func NewIncompleteReadError(expectedBytes int, actualBytes int) *IncompleteReadError {
	return &IncompleteReadError{expectedBytes: expectedBytes, actualBytes: actualBytes}
}

func NewUnknownFormatError(format string) *UnknownFormatError {
	return &UnknownFormatError{Format: format}
}

func NewInvalidLengthError(dataType string, expected int, actual int) *InvalidLengthError {
	return &InvalidLengthError{DataType: dataType, expected: expected, actual: actual}
}

func (e *IncompleteReadError) Error() string {
	return fmt.Sprintf("incomplete read: expected to read %d bytes, but %d bytes were read", e.expectedBytes, e.actualBytes)
}

func (e *UnsupportedDataTypeError) Error() string {
	return fmt.Sprintf("TLV: unsupported data type: %s", e.DataType)
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown snapshot format: %q", e.Format)
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("TLV: %s value must be %d bytes, record declares %d", e.DataType, e.expected, e.actual)
}
