package cerr

import (
	"errors"
	"fmt"
)

var _ error = ContextualError{}
var _ interface{ Unwrap() error } = ContextualError{}

type F = map[string]interface{}

// Context accumulates fields that get attached to the next error it builds.
// Branching off a shared Context never changes it.
type Context struct {
	ContextFields F
	cause         error
}

type ContextualError struct {
	// these are deliberately left public
	// so that loggers can inspect
	Context Context
	Message string
	Cause   error
}

func (c ContextualError) Error() string {
	if c.Cause == nil {
		return c.Message
	}

	return fmt.Sprintf("%s: %s", c.Message, c.Cause.Error())
}

func (c ContextualError) Unwrap() error {
	return c.Cause
}

func Field(key string, value interface{}) Context {
	return Context{}.Field(key, value)
}

func Fields(fields F) Context {
	return Context{}.Fields(fields)
}

func Wrap(err error) Context {
	return Context{}.Wrap(err)
}

func Error(message string) error {
	return Context{}.Error(message)
}

func (c Context) Field(key string, value interface{}) Context {
	return c.Fields(F{key: value})
}

func (c Context) Fields(fields F) Context {
	merged := make(F, len(c.ContextFields)+len(fields))
	for k, v := range c.ContextFields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	return Context{
		ContextFields: merged,
		cause:         c.cause,
	}
}

func (c Context) Wrap(err error) Context {
	c.cause = err
	return c
}

func (c Context) Error(message string) error {
	return ContextualError{
		Context: Context{ContextFields: c.ContextFields},
		Message: message,
		Cause:   c.cause,
	}
}

// AllFields merges the fields of every ContextualError in the chain.
// Outer errors win when the same key appears more than once.
func AllFields(err error) F {
	chain := []ContextualError{}
	for err != nil {
		var ctxErr ContextualError
		if !errors.As(err, &ctxErr) {
			break
		}

		chain = append(chain, ctxErr)
		err = ctxErr.Cause
	}

	fields := F{}
	for i := len(chain) - 1; i >= 0; i-- {
		for k, v := range chain[i].Context.ContextFields {
			fields[k] = v
		}
	}

	return fields
}
