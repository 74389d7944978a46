// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package frameengine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/frameengine"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := &frameengine.Error{Op: "Submit", Kind: frameengine.ErrDeviceRemoved, Err: errors.New("TDR")}

	require.True(t, errors.Is(err, frameengine.KindError(frameengine.ErrDeviceRemoved)))
	assert.False(t, errors.Is(err, frameengine.KindError(frameengine.ErrProgramming)))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("out of descriptors")
	err := &frameengine.Error{Op: "CreateBuffer", Kind: frameengine.ErrTransientCapacity, Err: cause}

	require.ErrorIs(t, err, cause)
}

func TestErrorKindStringIsStable(t *testing.T) {
	cases := map[frameengine.ErrorKind]string{
		frameengine.ErrInit:               "initialization",
		frameengine.ErrResourceCreation:    "resource-creation",
		frameengine.ErrTransientCapacity:   "transient-capacity",
		frameengine.ErrProgramming:         "programming",
		frameengine.ErrSwapchainTransient:  "swapchain-transient",
		frameengine.ErrDeviceRemoved:       "device-removed",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		frameengine.ErrDoubleRelease,
		frameengine.ErrAlreadySubmitted,
		frameengine.ErrPassNesting,
		frameengine.ErrNoActivePass,
		frameengine.ErrUnsupportedComposition,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "sentinels %d and %d should not alias", i, j)
		}
	}
}
