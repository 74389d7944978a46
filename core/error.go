// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors surfaced by the engine internals. Methods promoted onto
// the top-level frameengine.Device return them as they are, not wrapped in
// *frameengine.Error; that package re-exports the first, third, fourth and
// fifth under the same names. core itself stays free of that façade so it
// has no import cycle back to the public package.
var (
	ErrDoubleRelease     = errors.New("frameengine/core: double-release of a pooled resource")
	ErrStagingExhausted  = errors.New("frameengine/core: staging descriptor heap exhausted")
	ErrAlreadySubmitted  = errors.New("frameengine/core: command buffer already submitted")
	ErrPassNesting       = errors.New("frameengine/core: passes do not nest")
	ErrNoActivePass      = errors.New("frameengine/core: no active pass")
	ErrUsageConflict     = errors.New("frameengine/core: incompatible resource usage in one pass")
	ErrBlitSourceUsage   = errors.New("frameengine/core: blit source texture lacks sampler usage")
	ErrBlitDestUsage     = errors.New("frameengine/core: blit destination texture lacks color-target usage, or is array/3D")
	ErrQueryResultBuffer = errors.New("frameengine/core: destination slice too small for the resolved query results")
)
