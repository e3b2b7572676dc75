// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"strings"
	"testing"

	"github.com/RealBatu20/mathfunctiongenerator/terrain"
)

func TestMessageEncode(t *testing.T) {
	buf, err := json.Marshal(Message{Data: &CompileError{Message: "bad formula"}})
	if err != nil {
		t.Fatal(err)
	}

	expected := `{"data":{"message":"bad formula"},"type":"compileError"}`
	if string(buf) != expected {
		t.Errorf("expected %s, got %s", expected, buf)
	}
}

func TestMessageDecode(t *testing.T) {
	var message Message
	err := json.Unmarshal([]byte(`{"type":"move","data":{"x":1.5,"z":-2,"force":true}}`), &message)
	if err != nil {
		t.Fatal(err)
	}

	move, ok := message.Data.(*Move)
	if !ok {
		t.Fatalf("expected *Move, got %T", message.Data)
	}
	if move.X != 1.5 || move.Z != -2 || !move.Force {
		t.Errorf("unexpected move %+v", move)
	}
}

func TestMessageDecodeInvalid(t *testing.T) {
	var message Message
	err := json.Unmarshal([]byte(`{"type":"selfDestruct","data":{}}`), &message)
	if err != nil {
		t.Fatal(err)
	}

	invalid, ok := message.Data.(InvalidInbound)
	if !ok {
		t.Fatalf("expected InvalidInbound, got %T", message.Data)
	}
	if invalid.messageType != "selfDestruct" {
		t.Errorf("unexpected message type %q", invalid.messageType)
	}
}

func TestBiomeEncode(t *testing.T) {
	buf, err := json.Marshal(struct {
		Biome terrain.Biome `json:"biome"`
	}{terrain.Grass})
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != `{"biome":"grass"}` {
		t.Errorf("unexpected biome encoding %s", buf)
	}
}

func TestUpdateEncode(t *testing.T) {
	update := &Update{
		Formula: "x + z",
		CenterX: 4,
		CenterZ: -4,
		Columns: []terrain.Column{{X: 0, Z: 0, Height: 2.5, Surface: 2, Biome: terrain.Grass}},
	}

	buf, err := json.Marshal(Message{Data: update})
	if err != nil {
		t.Fatal(err)
	}

	for _, fragment := range []string{`"type":"update"`, `"formula":"x + z"`, `"biome":"grass"`, `"surface":2`} {
		if !strings.Contains(string(buf), fragment) {
			t.Errorf("encoded update missing %s: %s", fragment, buf)
		}
	}
}
