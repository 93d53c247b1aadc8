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

	goerrors "github.com/go-errors/errors"
)

// Recovered adapts a value recovered from a panic into an error instance of this
// kind. It is meant to be called with the result of recover() directly:
//
//	defer func() {
//		if err := SchedulerPanicErr.Recovered(recover()); err != nil {
//			err.Log(&logger).Msg("")
//		}
//	}()
//
// nil yields nil, so the happy path needs no special casing. An instance of this
// same kind is returned as is. Error values contribute their message, and when
// the value carries an origin stack - a go-errors error or any stackTracer, which
// includes instances of other kinds - that stack is adopted so the trace points
// at the panic site instead of the recovery site. Everything else is formatted
// with fmt and traced from the recovery point.
func (k *Kind[P]) Recovered(v any) *Instance[P] {
	if v == nil {
		return nil
	}
	if inst, ok := v.(*Instance[P]); ok && inst.kind == k {
		return inst
	}

	inst := &Instance[P]{
		kind:       k,
		message:    k.message,
		instanceID: newULID(),
		stack:      captureStack(),
	}
	switch x := v.(type) {
	case *goerrors.Error:
		inst.message = x.Error()
		if frames := x.StackFrames(); len(frames) > 0 {
			pcs := make([]uintptr, len(frames))
			for i, frame := range frames {
				pcs[i] = frame.ProgramCounter
			}
			inst.stack = pcs
		}
	case error:
		inst.message = x.Error()
		if tracer, ok := x.(stackTracer); ok {
			if frames := tracer.StackTrace(); len(frames) > 0 {
				pcs := make([]uintptr, len(frames))
				for i, frame := range frames {
					pcs[i] = uintptr(frame)
				}
				inst.stack = pcs
			}
		}
	default:
		inst.message = fmt.Sprint(x)
	}
	return inst
}
