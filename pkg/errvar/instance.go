/*
 * Copyright (c) 2019 OysterPack, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errvar

import (
	"github.com/oklog/ulid"
	"github.com/oysterpack/errare/pkg/errlog"
	"github.com/rs/zerolog"
)

// Occurrence is the type erased view of an Instance. It is what code that does
// not know the payload type works with, e.g., middleware that logs or maps errors.
//
// Any error produced by this package satisfies Occurrence, so a plain
// errors.As(err, &occurrence) recovers this view from an error chain.
type Occurrence interface {
	error

	// Tag returns the discriminant of the kind that produced the error.
	Tag() string

	// Variant returns the kind that produced the error.
	Variant() Variant

	// InstanceID is unique per error occurrence.
	InstanceID() ulid.ULID

	// Message returns the error message.
	Message() string

	// Trace returns the stack captured when the error was constructed, formatted
	// for humans.
	Trace() string

	// Data returns the payload, if the error was constructed with one.
	Data() (any, bool)
}

// Instance represents an actual error occurrence for some kind.
type Instance[P any] struct {
	kind *Kind[P]

	message    string
	payload    P
	hasPayload bool

	instanceID ulid.ULID
	stack      []uintptr
}

var _ Occurrence = (*Instance[Fields])(nil)

// Kind returns the kind that produced the error.
func (e *Instance[P]) Kind() *Kind[P] {
	return e.kind
}

// Variant returns the kind that produced the error, type erased.
func (e *Instance[P]) Variant() Variant {
	return e.kind
}

// Tag returns the discriminant of the kind that produced the error.
func (e *Instance[P]) Tag() string {
	return e.kind.tag
}

// Name is the error's name, which is the kind's tag.
func (e *Instance[P]) Name() string {
	return e.kind.tag
}

// Message returns the error message. Unless overridden via WithMessage, it is
// the kind's default message.
func (e *Instance[P]) Message() string {
	return e.message
}

// InstanceID is unique per error occurrence. Its ULID timestamp records when
// the error was constructed.
func (e *Instance[P]) InstanceID() ulid.ULID {
	return e.instanceID
}

// Payload returns the payload the error was constructed with, or the zero
// value when it was constructed without one.
func (e *Instance[P]) Payload() P {
	return e.payload
}

// Data returns the payload, if the error was constructed with one.
func (e *Instance[P]) Data() (any, bool) {
	if !e.hasPayload {
		return nil, false
	}
	return e.payload, true
}

// WithMessage overrides the error message for this occurrence only - the kind's
// default message is not affected. It returns the instance to support chaining
// at construction time.
func (e *Instance[P]) WithMessage(message string) *Instance[P] {
	e.message = message
	return e
}

func (e *Instance[P]) Error() string {
	return e.message
}

// Is reports whether target is the kind that produced this error. It makes
// instances match their kind via errors.Is:
//
//	errors.Is(err, DatabaseTimeoutErr)
//
// Matching is by kind identity. A kind with an equal tag minted by a separate
// Define call does not match.
func (e *Instance[P]) Is(target error) bool {
	kind, ok := target.(*Kind[P])
	return ok && kind == e.kind
}

// Log logs the error using the specified logger. The event is returned to give
// the caller the chance to augment it before sending it off via Msg.
//
// The error's identity is logged as a dict under the Err field:
//
//   - i: kind ID
//   - n: tag
//   - x: instance ID
//   - d: payload, if the error was constructed with one
//
// The stacktrace is logged only for kinds defined WithStacktrace. The trace is
// the one captured when the error was constructed - see StackTrace.
func (e *Instance[P]) Log(logger *zerolog.Logger) *zerolog.Event {
	details := zerolog.Dict().
		Str(string(errlog.ErrID), e.kind.id.String()).
		Str(string(errlog.ErrName), e.kind.tag).
		Str(string(errlog.ErrInstanceID), e.instanceID.String())
	if e.hasPayload {
		details = details.Interface(string(errlog.ErrData), e.payload)
	}

	event := logger.Error().Dict(string(errlog.Err), details)
	if e.kind.logStack {
		event = event.Stack()
	}
	return event.Err(e)
}
