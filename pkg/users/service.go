// Copyright 2026 Future Internet Consulting and Development Solutions S.L.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/opplafy/tenant-manager/internal/logging"
	"github.com/opplafy/tenant-manager/internal/monitoring"
	"github.com/opplafy/tenant-manager/internal/tracing"
)

type Service struct {
	idm IdentityProviderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	idm IdentityProviderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		idm:     idm,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// ListUsers proxies the IDM user list without reshaping it.
func (s *Service) ListUsers(ctx context.Context) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	return s.idm.GetUsers(ctx)
}
