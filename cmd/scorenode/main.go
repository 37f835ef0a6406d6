package main

import (
	"bufio"
	"encoding/json"
	"log"
	"net"
	"os"
	"time"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/catalog"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/cluster"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/recommend"
)

func main() {
	addr := os.Getenv("SCORE_NODE_ADDR")
	if addr == "" {
		addr = ":9001"
	}

	nodeID := os.Getenv("NODE_ID")
	if nodeID == "" {
		nodeID = "?"
	}

	// Cada nodo carga su propia copia del catálogo (embebido o externo,
	// igual que el coordinador, para que los shards coincidan).
	var cat *catalog.Store
	var err error
	if path := os.Getenv("CATALOG_PATH"); path != "" {
		cat, err = catalog.LoadFile(path)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		log.Fatalf("[SCORE NODE %s] catálogo: %v", nodeID, err)
	}

	log.Printf("[SCORE NODE %s] escuchando en %s (%d películas)", nodeID, addr, cat.Len())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Println("accept error:", err)
			continue
		}
		go handleConn(nodeID, conn, cat)
	}
}

func handleConn(nodeID string, conn net.Conn, cat *catalog.Store) {
	defer conn.Close()

	dec := json.NewDecoder(bufio.NewReader(conn))
	var req cluster.Request
	if err := dec.Decode(&req); err != nil {
		log.Printf("[SCORE NODE %s] decode error: %v", nodeID, err)
		return
	}

	switch req.Type {
	case cluster.RequestPing:
		resp := cluster.Pong{NodeID: nodeID, Movies: cat.Len()}
		if err := json.NewEncoder(conn).Encode(&resp); err != nil {
			log.Printf("[SCORE NODE %s] encode pong error: %v", nodeID, err)
		}

	case cluster.RequestScore:
		if req.Task == nil {
			log.Printf("[SCORE NODE %s] score sin task", nodeID)
			return
		}
		task := *req.Task

		log.Printf("[SCORE NODE %s] tarea recibida: shard=%d/%d generos=%d vistos=%d",
			nodeID, task.ShardID, task.Shards, len(task.Profile.FavoriteGenres), len(task.Profile.WatchedIDs))

		start := time.Now()
		partials := recommend.RankShard(cat.All(), task.Profile, task.ShardID, task.Shards)
		elapsed := time.Since(start)

		log.Printf("[SCORE NODE %s] completado: shard=%d/%d parciales=%d tiempo=%s",
			nodeID, task.ShardID, task.Shards, len(partials), elapsed)

		resp := cluster.ScoreResponse{
			ShardID:  task.ShardID,
			Partials: partials,
		}
		if err := json.NewEncoder(conn).Encode(&resp); err != nil {
			log.Printf("[SCORE NODE %s] encode resp error: %v", nodeID, err)
		}

	default:
		log.Printf("[SCORE NODE %s] request desconocido: %q", nodeID, req.Type)
	}
}
