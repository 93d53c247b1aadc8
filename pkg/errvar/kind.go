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
	"maps"
	"strings"

	"github.com/oklog/ulid"
	"github.com/oysterpack/errare/pkg/ulids"
)

// newULID mints ULIDs for kinds and instances
var newULID = ulids.MonotonicULIDGenerator()

// Fields is the open-ended payload form: an arbitrary bag of named values.
// Use it when the data attached to an error is not worth a dedicated struct.
type Fields map[string]any

// Variant is the type erased view of a Kind. It is what registries, catalogs,
// and log events work with when the payload type does not matter.
//
// A Variant is itself an error, which makes kinds usable as errors.Is targets.
type Variant interface {
	error

	// ID is the kind's unique identity. Matching is based on it, not on the tag.
	ID() ulid.ULID

	// Tag is the kind's discriminant. It doubles as the error name.
	Tag() string

	// Message is the default message for instances of this kind.
	Message() string
}

// PreconditionViolation signals that an errvar API was invoked in a way that
// violates its contract, e.g., defining a kind with a blank tag.
//
// It is constructed directly because Define panics with this kind: a Define call
// here would form an initialization cycle.
var PreconditionViolation = &Kind[Fields]{
	id:      newULID(),
	tag:     "PreconditionViolation",
	message: "PreconditionViolation",
}

// Kind defines one error variant. All instances constructed from the same kind
// share its tag, default message, and identity.
//
// Kinds are intended to be package level vars, configured once via the With*
// builder methods at definition time. They must not be modified after instances
// are being constructed.
type Kind[P any] struct {
	id      ulid.ULID
	tag     string
	message string

	// logStack signals that instances are worth the cost of logging their stacktrace
	logStack bool
}

var _ Variant = (*Kind[Fields])(nil)

// Define mints a new kind for the specified tag. The tag becomes the kind's
// discriminant, its name, and its default message.
//
// Each Define call produces a distinct kind: two kinds defined with the same tag
// do not match each other's instances. Tag uniqueness is the application's
// concern - see Registry.
//
// Define panics with a PreconditionViolation instance if the tag is blank.
// Blank tags are programmer errors and are rejected eagerly, at definition time,
// rather than surfacing later as unmatchable errors.
func Define[P any](tag string) *Kind[P] {
	if strings.TrimSpace(tag) == "" {
		panic(PreconditionViolation.New(Fields{"tag": tag}).WithMessage("error tag must not be blank"))
	}
	return &Kind[P]{
		id:      newULID(),
		tag:     tag,
		message: tag,
	}
}

// WithMessage sets the default message for instances of this kind.
// It returns the kind to support chaining at definition time.
func (k *Kind[P]) WithMessage(message string) *Kind[P] {
	k.message = message
	return k
}

// WithStacktrace marks the kind's instances as worth logging with their stacktrace.
// Formatting a stacktrace is expensive, so it is opt-in per kind.
// It returns the kind to support chaining at definition time.
func (k *Kind[P]) WithStacktrace() *Kind[P] {
	k.logStack = true
	return k
}

// ID returns the kind's unique identity.
func (k *Kind[P]) ID() ulid.ULID {
	return k.id
}

// Tag returns the kind's discriminant.
func (k *Kind[P]) Tag() string {
	return k.tag
}

// Message returns the default message for instances of this kind.
func (k *Kind[P]) Message() string {
	return k.message
}

func (k *Kind[P]) Error() string {
	return k.message
}

// New constructs a new error instance. The instance is assigned a unique ID and
// captures the stack at the point New is called.
//
// At most one payload may be passed. When none is, the instance carries no data.
// Fields payloads are cloned at the top level so that the caller's map can be
// reused safely - payload values are shared either way.
func (k *Kind[P]) New(payload ...P) *Instance[P] {
	inst := &Instance[P]{
		kind:       k,
		message:    k.message,
		instanceID: newULID(),
		stack:      captureStack(),
	}
	if len(payload) > 0 {
		inst.payload = clonePayload(payload[0])
		inst.hasPayload = true
	}
	return inst
}

func clonePayload[P any](payload P) P {
	if fields, ok := any(payload).(Fields); ok {
		return any(maps.Clone(fields)).(P)
	}
	return payload
}
