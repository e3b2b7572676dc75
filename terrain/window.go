// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain maintains a bounded window of formula-derived voxel
// columns around a moving reference point. It stops at descriptor emission;
// turning descriptors into geometry is the renderer's job.
package terrain

import (
	"math"

	"github.com/RealBatu20/mathfunctiongenerator/terrain/expr"
)

const (
	// Reference-point movement below this (per axis, floored) is ignored.
	hysteresis = 2

	// Darkening applied to the under-color of sub-surface layers.
	underDarken = 0.85
)

type (
	// Column is one terrain sample and its derived surface.
	Column struct {
		X       float64 `json:"x"`
		Z       float64 `json:"z"`
		Height  float64 `json:"height"`
		Surface int     `json:"surface"`
		Biome   Biome   `json:"biome"`
	}

	// VoxelLayer is one unit voxel of a column's stack.
	VoxelLayer struct {
		X     float64 `json:"x"`
		Z     float64 `json:"z"`
		Y     int     `json:"y"`
		Color Color   `json:"color"`
	}

	// Window recomputes every column from scratch on each refresh. No
	// diffing against the previous frame: the window is small enough that
	// simplicity wins over saved CPU.
	Window struct {
		size   int
		layers int
		fn     *expr.Compiled

		centerX, centerZ float64
		refreshed        bool

		columns []Column
		voxels  []VoxelLayer
	}
)

// NewWindow makes a size×size column window with layers voxels per column.
// It holds no formula until SetFormula; until then every column is height 0.
func NewWindow(size, layers int) *Window {
	return &Window{
		size:    size,
		layers:  layers,
		columns: make([]Column, 0, size*size),
		voxels:  make([]VoxelLayer, 0, size*size*layers),
	}
}

// SetFormula swaps the compiled height formula. It does not refresh; the
// caller forces a refresh when it wants the swap to become visible.
func (w *Window) SetFormula(fn *expr.Compiled) {
	w.fn = fn
}

func (w *Window) Size() int {
	return w.size
}

func (w *Window) Layers() int {
	return w.layers
}

// Center is the last refreshed center.
func (w *Window) Center() (x, z float64) {
	return w.centerX, w.centerZ
}

// Columns is the column descriptor list of the last refresh, row-major over
// the window. Valid until the next refresh.
func (w *Window) Columns() []Column {
	return w.columns
}

// Voxels is the voxel descriptor list of the last refresh, layerCount
// consecutive entries per column in Columns order. Valid until the next
// refresh.
func (w *Window) Voxels() []VoxelLayer {
	return w.voxels
}

// MaybeRefresh recomputes the window around ref unless the floored
// reference is still within the hysteresis band of the last refreshed
// center on both axes. Reports whether a refresh happened.
func (w *Window) MaybeRefresh(refX, refZ float64, force bool) bool {
	cx := math.Floor(refX)
	cz := math.Floor(refZ)

	if !force && w.refreshed &&
		math.Abs(cx-w.centerX) < hysteresis &&
		math.Abs(cz-w.centerZ) < hysteresis {
		return false
	}

	w.centerX = cx
	w.centerZ = cz
	w.refreshed = true
	w.refresh()
	return true
}

// refresh overwrites all descriptors, iterating rows then columns so
// consumers can rely on a stable index-to-column mapping.
func (w *Window) refresh() {
	w.columns = w.columns[:0]
	w.voxels = w.voxels[:0]

	half := w.size / 2
	for j := 0; j < w.size; j++ {
		for i := 0; i < w.size; i++ {
			x := w.centerX + float64(i-half)
			z := w.centerZ + float64(j-half)

			height := w.heightAt(x, z)
			surface := int(math.Floor(height))
			biome := Classify(height)

			w.columns = append(w.columns, Column{
				X:       x,
				Z:       z,
				Height:  height,
				Surface: surface,
				Biome:   biome,
			})

			top := biome.SurfaceColor()
			under := biome.UnderColor().Scale(underDarken)
			for layer := 0; layer < w.layers; layer++ {
				color := top
				if layer > 0 {
					color = under
				}
				w.voxels = append(w.voxels, VoxelLayer{
					X:     x,
					Z:     z,
					Y:     surface - layer,
					Color: color,
				})
			}
		}
	}
}

// heightAt evaluates the formula for one column, recovering from a
// non-finite result with height 0 so a bad column never aborts a refresh.
func (w *Window) heightAt(x, z float64) float64 {
	if w.fn == nil {
		return 0
	}
	return expr.Finite(w.fn.Eval(x, z))
}
