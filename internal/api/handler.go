package api

import (
	"github.com/zhoumeng-creater/netdefence/internal/engine"
	"github.com/zhoumeng-creater/netdefence/internal/scenario"
	"github.com/zhoumeng-creater/netdefence/internal/storage"
)

// Handler groups all session-related HTTP handlers.
type Handler struct {
	repo    storage.Repository
	eng     *engine.Engine
	catalog *scenario.Catalog
}

// NewHandler creates a Handler with the given repository, engine and
// scenario catalog.
func NewHandler(repo storage.Repository, eng *engine.Engine, catalog *scenario.Catalog) *Handler {
	return &Handler{repo: repo, eng: eng, catalog: catalog}
}
