// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import "net"

// Score is one formula's popularity row.
type Score struct {
	Label string `dynamo:"label"`
	Score int    `dynamo:"score"`
	TTL   int64  `dynamo:"ttl,omitempty"`
}

// Server is one running terrain server's registration row.
type Server struct {
	Region  string `dynamo:"region"`
	IP      net.IP `dynamo:"ip"`
	Clients int    `dynamo:"clients"`
	TTL     int64  `dynamo:"ttl,omitempty"`
}
