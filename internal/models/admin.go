package models

// NodeStatus es el resultado del health-check de un score node.
type NodeStatus struct {
	Addr   string `json:"addr"`
	OK     bool   `json:"ok"`
	NodeID string `json:"nodeId,omitempty"`
	Movies int    `json:"movies,omitempty"`
	Error  string `json:"error,omitempty"`
}

// CatalogSummary es el resumen admin del catálogo cargado.
type CatalogSummary struct {
	TotalMovies   int            `json:"totalMovies"`
	PremiumMovies int            `json:"premiumMovies"`
	ByGenre       map[string]int `json:"byGenre"`
	ByCategory    map[string]int `json:"byCategory"`
}

// CacheFlushResult informa cuántas keys de recomendación se borraron.
type CacheFlushResult struct {
	Pattern string `json:"pattern"`
	Deleted int    `json:"deleted"`
}
