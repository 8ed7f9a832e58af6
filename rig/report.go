package rig

import (
	"fmt"
	"time"
)

type Message struct {
	Rig     string
	Text    string
	IsError bool
	Time    time.Time
}

// Report accumulates per-rig build results. A rig that fails adds an
// error message here and never touches the armature.
type Report struct {
	Messages []Message
}

func (r *Report) Infof(rig string, format string, args ...interface{}) {
	r.Messages = append(r.Messages, Message{
		Rig:  rig,
		Text: fmt.Sprintf(format, args...),
		Time: time.Now(),
	})
}

func (r *Report) Errorf(rig string, format string, args ...interface{}) {
	r.Messages = append(r.Messages, Message{
		Rig:     rig,
		Text:    fmt.Sprintf(format, args...),
		IsError: true,
		Time:    time.Now(),
	})
}

func (r *Report) HasErrors() bool {
	for _, m := range r.Messages {
		if m.IsError {
			return true
		}
	}
	return false
}

func (r *Report) Errors() []Message {
	errs := make([]Message, 0)
	for _, m := range r.Messages {
		if m.IsError {
			errs = append(errs, m)
		}
	}
	return errs
}

// ConfigurationError marks invalid rig setup (for example a chain shorter
// than the rig type requires) as opposed to an armature API failure.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return e.Reason }

func Configurationf(format string, args ...interface{}) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func IsConfigurationError(err error) bool {
	type causer interface {
		Cause() error
	}
	for err != nil {
		if _, ok := err.(*ConfigurationError); ok {
			return true
		}
		cause, ok := err.(causer)
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return false
}
