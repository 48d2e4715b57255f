package errors_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/bitranox/lib-list/pkg/errors"
)

const (
	errMsg = "errMsg"
)

func TestErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Error Library Test Suite")
}

var _ = Describe("Errors", func() {

	DescribeTable("Value-add functions",
		func(message string, args []interface{}, expected string) {

			// Fire
			response := errors.Errorv(message, args[0], args[1:]...)

			Expect(response).To(Not(BeNil()))
			Expect(response.Error()).To(Equal(expected))
		},
		Entry("string value",
			errMsg, []interface{}{"bar"}, errMsg+" (bar)"),
		Entry("nil value",
			errMsg, []interface{}{nil}, errMsg+" ([nil])"),
		Entry("empty string",
			errMsg, []interface{}{""}, errMsg+" ([empty string])"),
		Entry("multiple string values",
			errMsg, []interface{}{"bar", "bar2"}, errMsg+" (bar; bar2)"),
		Entry("integer value",
			errMsg, []interface{}{42}, errMsg+" (42)"),
	)

	Describe("Wrapping", func() {

		It("adds a message and value around the cause", func() {
			cause := errors.New("cause")

			// Fire
			response := errors.Wrapv(cause, "context", "value")

			Expect(response.Error()).To(Equal("context (value): cause"))
			Expect(errors.Cause(response)).To(Equal(cause))
		})

		It("WithMessagev keeps the cause reachable", func() {
			cause := errors.New("cause")

			response := errors.WithMessagev(cause, "context", "value")

			Expect(response.Error()).To(Equal("context (value): cause"))
			Expect(errors.Cause(response)).To(Equal(cause))
		})
	})

	Describe("Stacktraces", func() {

		It("new errors carry a stacktrace", func() {
			response := errors.New("boom")

			Expect(errors.StackTraceString(response)).To(Not(BeEmpty()))
		})

		It("the stacktrace is found through wrapping layers", func() {
			inner := errors.New("inner")
			outer := errors.WithMessage(inner, "outer")

			Expect(errors.StackTrace(outer)).To(Not(BeNil()))
		})

		It("errors without a stacktrace yield an empty string", func() {
			Expect(errors.StackTraceString(nil)).To(BeEmpty())
		})
	})
})
