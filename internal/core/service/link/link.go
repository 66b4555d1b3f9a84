package link

import (
	"clip-share/internal/config"
	"clip-share/internal/core/port"
)

type linkService struct {
	uow     port.UnitOfWork
	clock   port.Clock
	linkCfg config.LinkConfig
}

// NewLinkService creates a new link issuance and access control service
func NewLinkService(uow port.UnitOfWork, clock port.Clock, cfg config.LinkConfig) port.LinkService {
	return &linkService{
		uow:     uow,
		clock:   clock,
		linkCfg: cfg,
	}
}
