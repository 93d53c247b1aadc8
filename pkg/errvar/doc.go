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

/*
Package errvar standardizes how application errors are defined, created, and logged.

Errors are organized into kinds. A Kind is minted once per error variant, normally at
package scope, by tagging it:

	var DatabaseTimeoutErr = errvar.Define[errvar.Fields]("DatabaseTimeout").WithStacktrace()

The tag is the kind's discriminant. Every Instance constructed from the kind carries
it, and instances match their kind - and only their kind - via errors.Is:

	err := DatabaseTimeoutErr.New(errvar.Fields{"query": "find-user", "timeout": "5s"})
	errors.Is(err, DatabaseTimeoutErr) // true

Kinds minted by separate Define calls are never interchangeable, even when their tags
are equal - matching is by kind identity, not by tag string comparison.

The payload type parameter pins down what data a kind's instances carry. Fields is the
open-ended form; a struct payload makes the shape a compile time contract:

	type RequestInfo struct {
		StatusCode int    `json:"status_code"`
		URL        string `json:"url"`
	}

	var HTTPErr = errvar.Define[RequestInfo]("HttpError")

	err := HTTPErr.New(RequestInfo{StatusCode: 404, URL: "https://oysterpack.com"})
	err.Payload().StatusCode // 404

Instance represents an actual error occurrence. It is assigned a unique instance ID,
captures the stack at the point it was constructed, and knows how to log itself as a
structured zerolog event.

Kinds and instances are safe to share across goroutines: Define is stateless, kinds
are immutable once defined, and each construction allocates an independent instance.
*/
package errvar
