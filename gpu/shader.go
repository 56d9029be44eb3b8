// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// SPIRVMagic is the first word of every SPIR-V module.
const SPIRVMagic uint32 = 0x07230203

//go:embed shaders/curve.wgsl
var curveShaderWGSL string

// ShaderSource returns the WGSL source of the curve shader.
func ShaderSource() string {
	return curveShaderWGSL
}

var (
	compileOnce  sync.Once
	compiledCode []uint32
	compileErr   error
)

// CompileShader compiles the curve shader to SPIR-V words. The result is
// computed once and shared; callers must not modify the returned slice.
func CompileShader() ([]uint32, error) {
	compileOnce.Do(func() {
		compiledCode, compileErr = CompileSPIRV(curveShaderWGSL)
	})
	return compiledCode, compileErr
}

// CompileSPIRV compiles WGSL source to SPIR-V little-endian 32-bit words.
func CompileSPIRV(wgsl string) ([]uint32, error) {
	spirv, err := naga.Compile(wgsl)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}
	if len(spirv) < 4 || len(spirv)%4 != 0 {
		return nil, fmt.Errorf("gpu: compile shader: SPIR-V size %d is not a positive multiple of 4", len(spirv))
	}

	code := make([]uint32, len(spirv)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	if code[0] != SPIRVMagic {
		return nil, fmt.Errorf("gpu: compile shader: bad SPIR-V magic 0x%08X", code[0])
	}
	return code, nil
}
