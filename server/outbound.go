// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import "github.com/RealBatu20/mathfunctiongenerator/terrain"

type (
	// CompileError reports a rejected formula to the client that sent it.
	// The terrain keeps rendering the last good formula.
	CompileError struct {
		Message string `json:"message"`
	}

	// FormulaScore is one entry of the popular list.
	FormulaScore struct {
		Label string `json:"label"`
		Text  string `json:"text"`
		Score int    `json:"score"`
	}

	// Popular is the most-used formulas by label.
	Popular struct {
		Popular []FormulaScore `json:"popular"`
	}

	// Update is the full window snapshot after a refresh: every column and
	// voxel descriptor, row-major, size² columns × layerCount voxels. No
	// diffs; consumers may index columns positionally.
	Update struct {
		Formula string               `json:"formula"`
		Label   string               `json:"label,omitempty"`
		CenterX float64              `json:"centerX"`
		CenterZ float64              `json:"centerZ"`
		Columns []terrain.Column     `json:"columns"`
		Voxels  []terrain.VoxelLayer `json:"voxels"`
	}
)

func init() {
	registerOutbound(
		&CompileError{},
		&Popular{},
		&Update{},
	)
}

// Updates are broadcast to every client concurrently, so their slices
// cannot be reclaimed eagerly; the snapshot copies are garbage collected.
func (*Update) Pool()       {}
func (*CompileError) Pool() {}
func (*Popular) Pool()      {}
