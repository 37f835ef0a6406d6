package cluster

import (
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/models"
	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/recommend"
)

// Tipos de request del protocolo coordinador -> score node.
const (
	RequestScore = "score"
	RequestPing  = "ping"
)

// Request es el sobre que viaja por la conexión TCP (un request y una
// respuesta JSON por conexión).
type Request struct {
	Type string     `json:"type"` // score|ping
	Task *ScoreTask `json:"task,omitempty"`
}

// ScoreTask pide puntuar un shard del catálogo. Cada nodo puntúa los
// índices i%Shards == ShardID de su propia copia del catálogo (ambos
// binarios embeben el mismo seed, así que los shards son consistentes).
type ScoreTask struct {
	Profile recommend.Profile `json:"profile"`
	ShardID int               `json:"shardId"` // id del shard (0..Shards-1)
	Shards  int               `json:"shards"`  // total de shards/nodos
}

// ScoreResponse son los parciales ya puntuados, sin ordenar; el
// coordinador mergea y ordena.
type ScoreResponse struct {
	ShardID  int                  `json:"shardId"`
	Partials []models.ScoredMovie `json:"partials"`
}

// Pong responde al health-check admin.
type Pong struct {
	NodeID string `json:"nodeId"`
	Movies int    `json:"movies"`
}
