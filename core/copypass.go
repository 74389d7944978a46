// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package core

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/frameengine/core/track"
)

// rowPitchAlignment is the backend's texture-copy row-pitch requirement
// (§4.7 "Uploads and downloads"): every row pitch used in a
// buffer<->texture copy must be a multiple of 256 bytes. The companion
// 512-byte footprint-offset rule is satisfied for free here since every
// temporary staging buffer this pass allocates is copied from/to at
// offset zero.
const rowPitchAlignment = 256

func alignRowPitch(n uint32) uint32 {
	return uint32((uint64(n) + rowPitchAlignment - 1) &^ (rowPitchAlignment - 1))
}

func warnRealignment(kind string, tight, aligned uint32) {
	if tight == aligned {
		return
	}
	Logger().Warn("copy realigned into a temporary buffer", "kind", kind, "tightPitch", tight, "alignedPitch", aligned)
}

// bytesPerTexel reports the pixel stride of the handful of uncompressed
// formats this engine exposes (§6 "enumerated config values"); every one
// of them is 4 bytes wide. Block-compressed formats are out of scope.
func bytesPerTexel(gputypes.TextureFormat) uint32 {
	return 4
}

// CopyBufferToBuffer records a direct GPU-side copy, preparing both sides
// for their respective copy state.
func (cb *CommandBuffer) CopyBufferToBuffer(src *BufferContainer, srcOffset uint64, dst *BufferContainer, dstOffset, size uint64, cycleDst bool) error {
	srcActive, err := cb.PrepareBufferForWrite(src, false, track.StateCopySource)
	if err != nil {
		return err
	}
	dstActive, err := cb.PrepareBufferForWrite(dst, cycleDst, track.StateCopyDest)
	if err != nil {
		return err
	}
	cb.device.driver.CopyBufferToBuffer(cb.native, srcActive.native, srcOffset, dstActive.native, dstOffset, size)
	return nil
}

// UploadToBuffer writes data into dst at offset via a temporary
// upload-visible staging buffer. Plain buffer-to-buffer copies carry none
// of the row-pitch/footprint-offset alignment rules that apply to texture
// copies (§4.7), so no re-layout is needed here.
func (cb *CommandBuffer) UploadToBuffer(dst *BufferContainer, offset uint64, data []byte, cycle bool) error {
	if len(data) == 0 {
		return nil
	}
	staging, err := cb.newTempUploadBuffer(uint64(len(data)))
	if err != nil {
		return err
	}
	writeMemory(staging.mapPointer, data)

	dstActive, err := cb.PrepareBufferForWrite(dst, cycle, track.StateCopyDest)
	if err != nil {
		return err
	}
	cb.device.driver.CopyBufferToBuffer(cb.native, staging.native, 0, dstActive.native, offset, uint64(len(data)))
	return nil
}

// DownloadFromBuffer queues a GPU->CPU copy into a temporary readback
// buffer, resolved into dest once the owning submission's fence signals.
func (cb *CommandBuffer) DownloadFromBuffer(src *BufferContainer, offset uint64, dest []byte) error {
	if len(dest) == 0 {
		return nil
	}
	staging, err := cb.newTempReadbackBuffer(uint64(len(dest)))
	if err != nil {
		return err
	}
	srcActive, err := cb.PrepareBufferForWrite(src, false, track.StateCopySource)
	if err != nil {
		return err
	}
	cb.device.driver.CopyBufferToBuffer(cb.native, srcActive.native, offset, staging.native, 0, uint64(len(dest)))

	cb.downloads = append(cb.downloads, textureDownload{
		tempBuffer:  staging,
		dest:        dest,
		rowPitch:    uint32(len(dest)),
		rowCount:    1,
		sliceCount:  1,
		srcRowPitch: uint32(len(dest)),
	})
	return nil
}

// UploadToTexture implements §4.7's texture upload path: tightly-packed
// row data is re-laid into a 256-byte-row-pitch staging buffer, then
// copied row-aligned into the destination sub-resource.
func (cb *CommandBuffer) UploadToTexture(dst *TextureContainer, layer, level uint32, width, height uint32, data []byte, cycle bool) error {
	texel := bytesPerTexel(dst.desc.Format)
	tightPitch := width * texel
	alignedPitch := alignRowPitch(tightPitch)
	warnRealignment("upload", tightPitch, alignedPitch)

	staging, err := cb.newTempUploadBuffer(uint64(alignedPitch) * uint64(height))
	if err != nil {
		return err
	}
	for row := uint32(0); row < height; row++ {
		srcOff := uint64(row) * uint64(tightPitch)
		dstOff := uint64(row) * uint64(alignedPitch)
		if int(srcOff)+int(tightPitch) > len(data) {
			break
		}
		writeMemory(staging.mapPointer+uintptr(dstOff), data[srcOff:srcOff+uint64(tightPitch)])
	}

	if _, err := cb.PrepareTextureSubresourceForWrite(dst, layer, level, cycle, track.StateCopyDest); err != nil {
		return err
	}
	cb.device.driver.CopyBufferToTexture(cb.native, staging.native, 0, alignedPitch, dst.Active().native, SubresourceAllocDesc{MipLevel: level, ArraySlice: layer})
	return nil
}

// DownloadFromTexture is UploadToTexture's inverse: copy into a
// row-pitch-aligned temporary readback buffer now, re-layout into dest's
// tightly-packed rows once the submission retires.
func (cb *CommandBuffer) DownloadFromTexture(src *TextureContainer, layer, level uint32, width, height uint32, dest []byte) error {
	texel := bytesPerTexel(src.desc.Format)
	tightPitch := width * texel
	alignedPitch := alignRowPitch(tightPitch)
	warnRealignment("download", tightPitch, alignedPitch)

	staging, err := cb.newTempReadbackBuffer(uint64(alignedPitch) * uint64(height))
	if err != nil {
		return err
	}

	if _, err := cb.PrepareTextureSubresourceForWrite(src, layer, level, false, track.StateCopySource); err != nil {
		return err
	}
	cb.device.driver.CopyTextureToBuffer(cb.native, src.Active().native, SubresourceAllocDesc{MipLevel: level, ArraySlice: layer}, staging.native, 0, alignedPitch)

	cb.downloads = append(cb.downloads, textureDownload{
		tempBuffer:  staging,
		dest:        dest,
		rowPitch:    tightPitch,
		rowCount:    height,
		sliceCount:  1,
		srcRowPitch: alignedPitch,
	})
	return nil
}

// CopyTextureToTexture records a direct GPU-side sub-resource copy.
func (cb *CommandBuffer) CopyTextureToTexture(src *TextureContainer, srcLayer, srcLevel uint32, dst *TextureContainer, dstLayer, dstLevel uint32, cycle bool) error {
	if _, err := cb.PrepareTextureSubresourceForWrite(src, srcLayer, srcLevel, false, track.StateCopySource); err != nil {
		return err
	}
	if _, err := cb.PrepareTextureSubresourceForWrite(dst, dstLayer, dstLevel, cycle, track.StateCopyDest); err != nil {
		return err
	}
	cb.device.driver.CopyTextureToTexture(cb.native,
		src.Active().native, SubresourceAllocDesc{MipLevel: srcLevel, ArraySlice: srcLayer},
		dst.Active().native, SubresourceAllocDesc{MipLevel: dstLevel, ArraySlice: dstLayer})
	return nil
}

// GenerateMipmaps prepares every mip level below 0 for write and delegates
// the actual per-level downsample blit sequence to the driver, which knows
// the native filter kernel to use.
func (cb *CommandBuffer) GenerateMipmaps(t *TextureContainer, layer uint32) error {
	levels := t.mipCount()
	for level := uint32(1); level < levels; level++ {
		if _, err := cb.PrepareTextureSubresourceForWrite(t, layer, level, false, track.StateCopyDest); err != nil {
			return err
		}
	}
	cb.device.driver.GenerateMipmaps(cb.native, t.Active().native, levels)
	return nil
}

func (cb *CommandBuffer) newTempUploadBuffer(size uint64) (*ConcreteBuffer, error) {
	native, gpuAddr, err := cb.device.driver.CreateBuffer(size, HeapUpload)
	if err != nil {
		return nil, err
	}
	ptr, err := cb.device.driver.MapBuffer(native)
	if err != nil {
		cb.device.driver.DestroyBuffer(native)
		return nil, err
	}
	buf := &ConcreteBuffer{native: native, gpuAddress: gpuAddr, mapPointer: ptr}
	cb.tempBuffers = append(cb.tempBuffers, buf)
	return buf, nil
}

func (cb *CommandBuffer) newTempReadbackBuffer(size uint64) (*ConcreteBuffer, error) {
	native, gpuAddr, err := cb.device.driver.CreateBuffer(size, HeapReadback)
	if err != nil {
		return nil, err
	}
	ptr, err := cb.device.driver.MapBuffer(native)
	if err != nil {
		cb.device.driver.DestroyBuffer(native)
		return nil, err
	}
	buf := &ConcreteBuffer{native: native, gpuAddress: gpuAddr, mapPointer: ptr}
	cb.tempBuffers = append(cb.tempBuffers, buf)
	return buf, nil
}
