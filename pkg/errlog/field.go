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

// Package errlog standardizes how error events are logged using zerolog.
//
// Importing the package applies the standard zerolog global configuration (see init).
// Log config settings are loaded from the system env - see Config.
package errlog

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Applies standard zerolog initialization.
//
// - configures the standard logger field names defined by `Field`
//   - Timestamp
//   - Level
//   - Message
//   - Error
//   - Stack
// - Unix time format is used for performance reasons - seconds granularity is sufficient for log events
// - duration field unit is set to millisecond
// - stack marshaller is set - it renders errors that expose a `StackTrace() errors.StackTrace` (github.com/pkg/errors)
func init() {
	zerolog.TimestampFieldName = string(Timestamp)
	zerolog.LevelFieldName = string(LEVEL)
	zerolog.MessageFieldName = string(Message)
	zerolog.ErrorFieldName = string(Error)
	zerolog.ErrorStackFieldName = string(Stack)

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = true

	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// Field is used to define log event fields used for structured logging.
type Field string

func (f Field) String() string {
	return string(f)
}

// Field enum
const (
	// standard field names
	// ID stores a ULID identifying the thing the event is about
	ID = Field("i")
	// Name stores the human readable name
	Name = Field("n")
	// InstanceID stores an instance ULID
	InstanceID = Field("x")

	// Timestamp specifies when the log event occurred in Unix time.
	Timestamp = Field("t")
	// LEVEL specifies the log level.
	// - named in all-caps to avoid colliding with the Level envconfig type (teacher pkg/app/log convention)
	LEVEL = Field("l")
	// Message specifies the log message.
	Message = Field("m")
	// Error specifies the error message.
	Error = Field("e")
	// Stack is used to log the stack trace.
	Stack = Field("s")

	// Component specifies which component logged the event
	Component = Field("c")
	// Tags is used to tag log events.
	Tags = Field("g")
	// EventULID stores the unique log event instance ULID
	EventULID = Field("z")
	// EventName is used to specify the event name. All log events should specify the event name.
	EventName = Name

	// Err is used to group error related fields
	// - f = failure
	Err = Field("f")
	// ErrID stores the error kind ULID
	ErrID = ID
	// ErrName stores the error tag, which doubles as the human readable name
	ErrName = Name
	// ErrInstanceID stores the error instance ULID
	ErrInstanceID = InstanceID
	// ErrData stores the error payload, if the error was constructed with one
	ErrData = Field("d")
)
