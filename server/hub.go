// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RealBatu20/mathfunctiongenerator/formula"
	"github.com/RealBatu20/mathfunctiongenerator/terrain"
	"github.com/RealBatu20/mathfunctiongenerator/terrain/expr"
	"github.com/RealBatu20/mathfunctiongenerator/terrain/noise"
)

const (
	popularPeriod = 10 * time.Second

	// Every client starts on the same terrain.
	defaultFormula = "octaves(x*0.02, z*0.02, 4, 0.5)*25"
	defaultLabel   = "rolling hills"
)

// Hub owns the terrain engine and broadcasts window snapshots to clients.
// All engine state (window, context, formula) is touched only by the hub
// goroutine, which keeps per-column evaluation strictly sequential.
type Hub struct {
	// Engine state
	window  *terrain.Window
	ctx     *expr.Context
	simplex *noise.Simplex
	gen     *formula.Generator

	formulaText  string
	formulaLabel string
	scores       map[string]*FormulaScore

	clients ClientList

	// Cloud (and things that are served atomically by HTTP)
	cloud      Cloud
	statsLog   string
	statusJSON atomic.Value

	// Inbound channels
	inbound    chan SignedInbound
	register   chan Client
	unregister chan Client

	// Timer based events
	cloudTicker   *time.Ticker
	popularTicker *time.Ticker
}

type HubOptions struct {
	Cloud      Cloud
	WindowSize int
	LayerCount int
	Seed       int64
	StatsLog   string // CSV stats file, empty to disable
}

func NewHub(options HubOptions) *Hub {
	if options.Cloud == nil {
		options.Cloud = Offline{}
	}

	simplex := noise.NewSimplex(options.Seed)
	h := &Hub{
		window:        terrain.NewWindow(options.WindowSize, options.LayerCount),
		ctx:           expr.NewContext(simplex, noise.NewPerlin(options.Seed+1)),
		simplex:       simplex,
		gen:           formula.NewGenerator(options.Seed),
		scores:        make(map[string]*FormulaScore),
		cloud:         options.Cloud,
		statsLog:      options.StatsLog,
		inbound:       make(chan SignedInbound, 32),
		register:      make(chan Client, 8),
		unregister:    make(chan Client, 16),
		cloudTicker:   time.NewTicker(options.Cloud.UpdatePeriod()),
		popularTicker: time.NewTicker(popularPeriod),
	}

	compiled, err := expr.Compile(defaultFormula, h.ctx)
	if err != nil {
		panic("default formula rejected: " + err.Error())
	}
	h.formulaText = defaultFormula
	h.formulaLabel = defaultLabel
	h.window.SetFormula(compiled)
	h.window.MaybeRefresh(0, 0, true)

	return h
}

// Run processes all hub events. It never returns.
func (h *Hub) Run() {
	h.Cloud()

	for {
		select {
		case client := <-h.register:
			h.clients.Add(client)
			client.Data().Hub = h
			client.Init()

			// New clients get the current terrain immediately
			client.Send(h.snapshot())
		case client := <-h.unregister:
			client.Close()
			h.clients.Remove(client)
		case in := <-h.inbound:
			in.Inbound(h, in.Client)
		case <-h.popularTicker.C:
			h.Popular()
		case <-h.cloudTicker.C:
			h.Cloud()
		}
	}
}

// Broadcast sends out to every connected client.
func (h *Hub) Broadcast(out outbound) {
	for client := h.clients.First; client != nil; client = client.Data().Next {
		client.Send(out)
	}
}

// adoptFormula swaps in a successfully compiled formula, forces a refresh
// at the current center, and broadcasts the new terrain.
func (h *Hub) adoptFormula(text, label string, compiled *expr.Compiled) {
	h.formulaText = text
	h.formulaLabel = label

	if label != "" {
		score, ok := h.scores[label]
		if !ok {
			score = &FormulaScore{Label: label}
			h.scores[label] = score
		}
		score.Text = text
		score.Score++
	}

	h.window.SetFormula(compiled)
	cx, cz := h.window.Center()
	h.window.MaybeRefresh(cx, cz, true)
	h.Broadcast(h.snapshot())
}

// snapshot copies the window's descriptors into an Update. The copy keeps
// socket writers safe from the next refresh overwriting the window.
func (h *Hub) snapshot() *Update {
	cx, cz := h.window.Center()
	return &Update{
		Formula: h.formulaText,
		Label:   h.formulaLabel,
		CenterX: cx,
		CenterZ: cz,
		Columns: append([]terrain.Column(nil), h.window.Columns()...),
		Voxels:  append([]terrain.VoxelLayer(nil), h.window.Voxels()...),
	}
}

// Cloud flushes stats to the cloud and refreshes the status document.
func (h *Hub) Cloud() {
	clients := h.clients.Len

	scores := make(map[string]int, len(h.scores))
	for label, score := range h.scores {
		scores[label] = score.Score
	}

	go func() {
		if err := h.cloud.UpdateFormulaScores(scores); err != nil {
			fmt.Println("Error updating formula scores:", err)
		}
		if err := h.cloud.UpdateServer(clients); err != nil {
			fmt.Println("Error updating server:", err)
		}
	}()

	statusJSON, err := json.Marshal(struct {
		Clients int    `json:"clients"`
		Formula string `json:"formula"`
		Label   string `json:"label,omitempty"`
	}{
		Clients: clients,
		Formula: h.formulaText,
		Label:   h.formulaLabel,
	})
	if err == nil {
		h.statusJSON.Store(statusJSON)
	} else {
		fmt.Println("error marshaling status:", err)
	}

	if h.statsLog != "" {
		err = AppendLog(h.statsLog, []interface{}{
			time.Now().UnixMilli(),
			clients,
			h.formulaLabel,
		})
		if err != nil {
			fmt.Println("Error logging stats:", err)
		}
	}
}
