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

package ulids_test

import (
	"sync"
	"testing"

	"github.com/oklog/ulid"
	"github.com/oysterpack/errare/pkg/ulids"
)

func TestMonotonicULIDGenerator(t *testing.T) {
	t.Parallel()

	newULID := ulids.MonotonicULIDGenerator()
	ids := make(map[ulid.ULID]bool)
	var prev ulid.ULID
	for i := 0; i < 100; i++ {
		uid := newULID()
		if ids[uid] {
			t.Fatal("duplicate ULID generated")
		}
		ids[uid] = true
		if uid.String() <= prev.String() && !ulids.IsZero(prev) {
			t.Fatalf("ULIDs are not strictly increasing: %s <= %s", uid, prev)
		}
		prev = uid
	}
}

func TestMonotonicULIDGenerator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	newULID := ulids.MonotonicULIDGenerator()

	const goroutines = 8
	const perGoroutine = 100

	idChan := make(chan ulid.ULID, goroutines*perGoroutine)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				idChan <- newULID()
			}
		}()
	}
	wg.Wait()
	close(idChan)

	ids := make(map[ulid.ULID]bool)
	for uid := range idChan {
		if ids[uid] {
			t.Fatal("duplicate ULID generated under concurrent use")
		}
		ids[uid] = true
	}
	if len(ids) != goroutines*perGoroutine {
		t.Fatalf("expected %d unique ULIDs, got %d", goroutines*perGoroutine, len(ids))
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	ids := make(map[ulid.ULID]bool)
	for i := 0; i < 100; i++ {
		uid := ulids.MustNew()
		if ulids.IsZero(uid) {
			t.Fatal("generated ULID must not be the zero value")
		}
		if ids[uid] {
			t.Fatal("duplicate ULID generated")
		}
		ids[uid] = true
	}
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	if !ulids.IsZero(ulid.ULID{}) {
		t.Error("zero value ULID should be reported as zero")
	}
	if ulids.IsZero(ulids.MustNew()) {
		t.Error("generated ULID should not be reported as zero")
	}
}
