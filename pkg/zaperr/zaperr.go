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

// Package zaperr adapts errvar errors for applications that log with zap
// instead of zerolog. The same field names are used, so error events have the
// same shape regardless of which logger produced them.
package zaperr

import (
	"github.com/oysterpack/errare/pkg/errlog"
	"github.com/oysterpack/errare/pkg/errvar"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// errObject marshals the error's identity the same way Instance.Log does for zerolog
type errObject struct {
	occurrence errvar.Occurrence
}

var _ zapcore.ObjectMarshaler = errObject{}

func (o errObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(string(errlog.ErrID), o.occurrence.Variant().ID().String())
	enc.AddString(string(errlog.ErrName), o.occurrence.Tag())
	enc.AddString(string(errlog.ErrInstanceID), o.occurrence.InstanceID().String())
	if data, ok := o.occurrence.Data(); ok {
		return enc.AddReflected(string(errlog.ErrData), data)
	}
	return nil
}

// Field returns a zap field carrying the error's identity under the standard
// Err field:
//
//	logger.Error(err.Message(), zaperr.Field(err))
func Field(occurrence errvar.Occurrence) zap.Field {
	return Object(string(errlog.Err), occurrence)
}

// Object returns a zap field carrying the error's identity under the specified key.
func Object(key string, occurrence errvar.Occurrence) zap.Field {
	return zap.Object(key, errObject{occurrence})
}

// Trace returns a zap field carrying the error's formatted stacktrace under the
// standard Stack field. Formatting the trace is expensive - attach it only when
// the event is worth it.
func Trace(occurrence errvar.Occurrence) zap.Field {
	return zap.String(string(errlog.Stack), occurrence.Trace())
}
