// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fuzztesting holds helpers for fuzz tests.
package fuzztesting

import (
	"context"
	"testing"
	"time"
)

// RunWithFuzzerTimeout runs fn a few times and fails t if that takes too
// long. Scanning is linear in the input, so a slow run means some input
// made the parser backtrack or loop.
func RunWithFuzzerTimeout(t *testing.T, fn func(ctx context.Context)) {
	allowedDuration := 2 * time.Second
	if isRace {
		// The race detector has been observed to make this ~8x slower, and
		// much more when coverage is also enabled.
		allowedDuration = 20 * time.Second
		t.Logf("allowing %v since race detector is enabled", allowedDuration)
	}
	ctx, cancel := context.WithTimeout(context.Background(), allowedDuration)
	defer func() {
		if ctx.Err() != nil {
			t.Errorf("test took too long to execute (> %v)", allowedDuration)
		}
		cancel()
	}()
	for range 3 {
		if ctx.Err() != nil {
			break
		}
		fn(ctx)
	}
}
