// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/finnbear/moderation"

	"github.com/RealBatu20/mathfunctiongenerator/formula"
	"github.com/RealBatu20/mathfunctiongenerator/terrain/expr"
)

const maxLabelLength = 32

// Make sure to register in init function
type (
	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}

	// Move updates the terrain reference point. The hub refreshes the
	// window only when the point has left the hysteresis band, unless
	// Force is set (explicit recentering).
	Move struct {
		X     float64 `json:"x"`
		Z     float64 `json:"z"`
		Force bool    `json:"force,omitempty"`
	}

	// RandomFormula asks the hub to generate and adopt a formula. Realistic
	// wins over Theme, Theme over Category; an unknown theme falls back to
	// a random one.
	RandomFormula struct {
		Category  string `json:"category,omitempty"`
		Theme     string `json:"theme,omitempty"`
		Realistic bool   `json:"realistic,omitempty"`
	}

	// SetFormula replaces the height formula with user-typed text. A label
	// is optional and shows up in the popular list.
	SetFormula struct {
		Text  string `json:"text"`
		Label string `json:"label,omitempty"`
	}
)

func init() {
	registerInbound(
		&Move{},
		&RandomFormula{},
		&SetFormula{},
	)
}

func (m *Move) Inbound(h *Hub, client Client) {
	if h.window.MaybeRefresh(m.X, m.Z, m.Force) {
		h.Broadcast(h.snapshot())
	}
}

func (m *SetFormula) Inbound(h *Hub, client Client) {
	compiled, err := expr.Compile(m.Text, h.ctx)
	if err != nil {
		// Previous formula and terrain stay untouched
		client.Send(&CompileError{Message: err.Error()})
		return
	}

	label, _ := sanitizeLabel(m.Label)
	h.adoptFormula(m.Text, label, compiled)
}

func (m *RandomFormula) Inbound(h *Hub, client Client) {
	var text, label string
	switch {
	case m.Realistic:
		text = h.gen.Realistic()
		label = "realistic"
	case m.Theme != "":
		var ok bool
		text, ok = h.gen.Theme(m.Theme)
		label = m.Theme
		if !ok {
			label, text = h.gen.RandomTheme()
		}
	default:
		category := formula.ParseCategory(m.Category)
		text = h.gen.Formula(category)
		label = category.String()
	}

	// A fresh permutation makes each random formula visually distinct
	// even when the text resembles a previous one.
	h.simplex.Reseed()

	compiled, err := expr.Compile(text, h.ctx)
	if err != nil {
		// The generator's grammar only emits compilable text
		panic("generated formula rejected: " + err.Error())
	}
	h.adoptFormula(text, label, compiled)
}

// sanitizeLabel strips unprintable runes, bounds the length, and censors
// inappropriate labels. Severely inappropriate labels are dropped entirely.
func sanitizeLabel(label string) (string, bool) {
	label = strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, label)
	label = strings.TrimSpace(label)

	for utf8.RuneCountInString(label) > maxLabelLength {
		_, size := utf8.DecodeLastRuneInString(label)
		label = label[:len(label)-size]
	}

	if label == "" {
		return "", false
	}

	result := moderation.Scan(label)
	if result.Is(moderation.Inappropriate) {
		if result.Is(moderation.Inappropriate & moderation.Severe) {
			return "", false
		}
		label, _ = moderation.Censor(label, moderation.Inappropriate)
	}

	return label, true
}
