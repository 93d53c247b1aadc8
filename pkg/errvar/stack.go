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
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// maxStackDepth caps how many frames are captured when an instance is constructed
const maxStackDepth = 32

// stackTracer is the interface produced by github.com/pkg/errors and consumed by
// zerolog's pkgerrors stack marshaller
type stackTracer interface {
	StackTrace() errors.StackTrace
}

var _ stackTracer = (*Instance[Fields])(nil)

// captureStack records the caller's caller's stack. The skip count is fixed: it
// assumes captureStack is invoked directly by an exported constructor, which is
// itself invoked by the code the trace should point at.
func captureStack() []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	return pcs[:n]
}

// StackTrace returns the stack captured when the instance was constructed, in
// github.com/pkg/errors form. Via zerolog's pkgerrors marshaller this is what
// renders the "s" field on log events for kinds defined WithStacktrace.
func (e *Instance[P]) StackTrace() errors.StackTrace {
	trace := make(errors.StackTrace, len(e.stack))
	for i, pc := range e.stack {
		trace[i] = errors.Frame(pc)
	}
	return trace
}

// Trace returns the stack captured when the instance was constructed, formatted
// for humans. The stack itself is always recorded at construction time - only
// the formatting is deferred, because formatting is the expensive part.
func (e *Instance[P]) Trace() string {
	return fmt.Sprintf("%+v", e.StackTrace())
}
