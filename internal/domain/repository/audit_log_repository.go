package repository

import (
	"context"

	"medequip-rental-backend/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, auditLog *entity.AuditLog) error
	FindAll(ctx context.Context, limit, offset int) ([]entity.AuditLog, int64, error)
}
