// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"
	"time"
)

// Cloud persists server presence and formula popularity. A nil-ish Offline
// value is valid with all methods; it just means the server runs alone.
type Cloud interface {
	fmt.Stringer
	UpdateServer(clients int) error
	UpdateFormulaScores(scores map[string]int) error
	UpdatePeriod() time.Duration
}

type Offline struct{}

func (offline Offline) String() string {
	return "offline"
}

func (offline Offline) UpdateServer(clients int) error {
	return nil
}

func (offline Offline) UpdateFormulaScores(scores map[string]int) error {
	return nil
}

func (offline Offline) UpdatePeriod() time.Duration {
	return time.Hour
}
