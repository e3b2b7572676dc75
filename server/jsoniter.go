// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"

	"github.com/RealBatu20/mathfunctiongenerator/terrain"
)

// Make sure functions get run first
var json jsoniter.API

func init() {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	// Encoders
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(terrain.Biome(0)).String(), encodeBiome, neverEmpty)

	// Decoders
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)

	json = jsoniter.Config{
		MarshalFloatWith6Digits: true,
		EscapeHTML:              false,
		SortMapKeys:             true,
		TagKey:                  "json",
		CaseSensitive:           true,
	}.Froze()
}

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

// Biomes travel as their names so renderer palettes key on strings,
// not on enum ordering.
func encodeBiome(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString((*terrain.Biome)(ptr).String())
}

func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	message := (*Message)(ptr)

	var raw struct {
		Data jsoniter.RawMessage `json:"data"`
		Type messageType         `json:"type"`
	}
	iter.ReadVal(&raw)

	typ, ok := inboundMessageTypes[raw.Type]
	if !ok {
		message.Data = InvalidInbound{messageType: raw.Type}
		return
	}

	value := reflect.New(typ.Elem())
	if len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, value.Interface()); err != nil {
			iter.ReportError("decode message data", err.Error())
			return
		}
	}
	message.Data = value.Interface()
}
