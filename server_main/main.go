// SPDX-FileCopyrightText: 2026 RealBatu20
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"time"

	"golang.org/x/net/netutil"

	"github.com/RealBatu20/mathfunctiongenerator/server"
	"github.com/RealBatu20/mathfunctiongenerator/server/cloud"
)

func main() {
	var (
		port           int
		windowSize     int
		layerCount     int
		seed           int64
		maxConnections int
		statsLog       string
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.IntVar(&windowSize, "window", 64, "terrain window size in columns")
	flag.IntVar(&layerCount, "layers", 4, "voxel layers per column")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "noise seed")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.StringVar(&statsLog, "stats-log", "", "CSV stats file")
	flag.Parse()

	if windowSize < 1 || layerCount < 1 {
		log.Fatalf("invalid window dimensions %dx%d", windowSize, layerCount)
	}

	var c server.Cloud

	c, err := cloud.New()
	if err != nil {
		// Cloud is not required for the server to function
		log.Printf("Cloud error: %v\n", err)

		c = server.Offline{}
	}

	hub := server.NewHub(server.HubOptions{
		Cloud:      c,
		WindowSize: windowSize,
		LayerCount: layerCount,
		Seed:       seed,
		StatsLog:   statsLog,
	})

	go hub.Run()

	log.Println("terrain server started")

	http.HandleFunc("/", hub.ServeIndex)
	http.HandleFunc("/ws", hub.ServeSocket)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Fatal("Serve: ", http.Serve(l, nil))
}
