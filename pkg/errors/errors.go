// Package errors wraps github.com/pkg/errors and adds value-carrying
// message helpers plus stacktrace extraction for the CLI error path.
package errors

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	errorsOrig "github.com/pkg/errors"
)

var (
	logrusTextFormatter = logrus.TextFormatter{DisableColors: false, DisableTimestamp: true}
	logrusLevelRegex    = regexp.MustCompile(`\s?level=[^ ]+\s?`)
)

// Add contextual information to the end of the error string
func Errorv(message string, arg0 interface{}, args ...interface{}) error {
	return errorsOrig.New(messageWithValue(message, arg0, args...))
}

// Like Errorv(), but for WithMessage()
func WithMessagev(err error, message string, arg0 interface{}, args ...interface{}) error {
	return errorsOrig.WithMessage(err, messageWithValue(message, arg0, args...))
}

// Like Errorv(), but for Wrap()
func Wrapv(err error, message string, arg0 interface{}, args ...interface{}) error {
	return errorsOrig.Wrap(err, messageWithValue(message, arg0, args...))
}

// Wrapped
func New(message string) error {
	return errorsOrig.New(message)
}

// Wrapped
func Errorf(format string, args ...interface{}) error {
	return errorsOrig.Errorf(format, args...)
}

// Wrapped
func WithStack(err error) error {
	return errorsOrig.WithStack(err)
}

// Wrapped
func Wrap(err error, message string) error {
	return errorsOrig.Wrap(err, message)
}

// Wrapped
func Wrapf(err error, message string, args ...interface{}) error {
	return errorsOrig.Wrapf(err, message, args...)
}

// Wrapped
func WithMessage(err error, message string) error {
	return errorsOrig.WithMessage(err, message)
}

// Wrapped
func Cause(err error) error {
	return errorsOrig.Cause(err)
}

// Log error and exit
func Fatal(log *logrus.Logger, err error) {
	WithStacktrace(logrus.NewEntry(log), err).Error("fatal error")
	os.Exit(1)
}

// Get stacktrace from error object
func StackTraceString(err error) string {
	buf := bytes.Buffer{}
	stackTrace := StackTrace(err)

	if stackTrace != nil {
		for _, f := range stackTrace {
			buf.WriteString(fmt.Sprintf("%+v \n", f))
		}
	}

	return buf.String()
}

func StackTrace(err error) errorsOrig.StackTrace {
	var st errorsOrig.StackTrace
	for err != nil {

		// Stacktrace on this err?
		ster, ok := err.(interface{ StackTrace() errorsOrig.StackTrace })
		if ok {
			st = ster.StackTrace()
		}

		// Climb tree
		err = getInnerError(err)
	}
	return st
}

func WithStacktrace(log *logrus.Entry, err error) *logrus.Entry {
	return log.WithError(err).WithField("stacktrace", StackTraceString(err))
}

func messageWithValue(message string, arg0 interface{}, args ...interface{}) string {
	v := value(arg0, args...)
	if v == "" {
		return message
	}
	return fmt.Sprintf("%s (%v)", message, v)
}

func value(arg0 interface{}, args ...interface{}) string {
	if len(args) == 0 {
		if arg0 == "" {
			return "[empty string]"
		}
		if arg0 == nil {
			return "[nil]"
		}

		switch v := arg0.(type) {
		case map[string]interface{}:
			return fieldsString(v)
		case logrus.Fields:
			return fieldsString(v)
		case *logrus.Entry:
			return fieldsString(v.Data)
		case logrus.Logger, *logrus.Logger:
			return ""
		}

		return fmt.Sprintf("%+v", arg0)
	}

	values := make([]string, len(args)+1)
	values[0] = value(arg0)
	for i, arg := range args {
		values[i+1] = value(arg)
	}

	return strings.Join(values, "; ")
}

// Yeah we can just use logrus for this
func fieldsString(fields map[string]interface{}) string {
	logrusFields := logrus.Fields{}
	for key, value := range fields {
		logrusFields[key] = value
	}

	formattedFields, err := logrusTextFormatter.Format(logrus.WithFields(logrusFields))
	if err != nil {
		return "[unknown var]"
	}
	formattedFields = logrusLevelRegex.ReplaceAll(formattedFields, []byte(""))

	return strings.TrimSpace(string(formattedFields))
}

func getInnerError(err error) error {
	cer, ok := err.(interface {
		Cause() error
	})
	if !ok {
		return nil
	}
	return cer.Cause()
}
