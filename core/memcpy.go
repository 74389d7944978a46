// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"unsafe"

	"github.com/gogpu/frameengine/core/track"
)

// presentState is the resource state a swapchain back-buffer sub-resource
// transitions to before present (§4.8 step 2).
const presentState = track.StatePresent

// copyMemory copies n bytes from a mapped native pointer into dst. Used
// by the uniform sub-allocator's PushUniformData and the download fixup
// path, both of which bridge a raw mapped pointer to a Go byte slice.
func copyMemory(dst []byte, src uintptr, n int) {
	if n <= 0 || len(dst) == 0 {
		return
	}
	srcSlice := unsafe.Slice((*byte)(unsafe.Pointer(src)), n)
	copy(dst, srcSlice)
}

// writeMemory copies n bytes from src into a mapped native pointer.
func writeMemory(dst uintptr, src []byte) {
	if len(src) == 0 {
		return
	}
	dstSlice := unsafe.Slice((*byte)(unsafe.Pointer(dst)), len(src))
	copy(dstSlice, src)
}
