package errors

import (
	"fmt"
	"os"

	"emberday/internal/logger"
)

// UnknownHabitError reports a toggle or tip request for an id absent from the
// catalog. It is returned to the caller and never fatal.
type UnknownHabitError struct {
	ID string
}

func (e *UnknownHabitError) Error() string {
	return fmt.Sprintf("unknown habit: %s", e.ID)
}

// ImportParseError reports a malformed backup document. The in-memory state is
// left unchanged when this is returned.
type ImportParseError struct {
	Path string
	Err  error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("failed to parse backup %s: %v", e.Path, e.Err)
}

func (e *ImportParseError) Unwrap() error {
	return e.Err
}

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
