// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package core

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain uses goleak to verify that Eval's worker pool leaves no
// goroutine running once it returns or errors out.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
