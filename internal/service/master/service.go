package master

import (
	"context"
	"fmt"

	"github.com/grupo-santin/obras-backend-go/internal/domain/master/equipment"
	"github.com/grupo-santin/obras-backend-go/internal/domain/master/jobfunction"
)

// MasterService manages the two reference lists: job functions and
// equipment tags. Referential integrity against employees and time
// entries is advisory only.
type MasterService interface {
	// Job function operations
	ListJobFunctions(ctx context.Context) ([]string, error)
	AddJobFunction(ctx context.Context, name string) error
	DeleteJobFunction(ctx context.Context, name string) error

	// Equipment operations
	ListEquipment(ctx context.Context) ([]string, error)
	AddEquipment(ctx context.Context, tag string) error
	DeleteEquipment(ctx context.Context, tag string) error
}

type masterServiceImpl struct {
	jobFunctionRepo jobfunction.JobFunctionRepository
	equipmentRepo   equipment.EquipmentRepository
}

func NewMasterService(
	jobFunctionRepo jobfunction.JobFunctionRepository,
	equipmentRepo equipment.EquipmentRepository,
) MasterService {
	return &masterServiceImpl{
		jobFunctionRepo: jobFunctionRepo,
		equipmentRepo:   equipmentRepo,
	}
}

// ==================== JOB FUNCTION OPERATIONS ====================

func (s *masterServiceImpl) ListJobFunctions(ctx context.Context) ([]string, error) {
	names, err := s.jobFunctionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job functions: %w", err)
	}
	return names, nil
}

func (s *masterServiceImpl) AddJobFunction(ctx context.Context, name string) error {
	return s.jobFunctionRepo.Insert(ctx, name)
}

func (s *masterServiceImpl) DeleteJobFunction(ctx context.Context, name string) error {
	return s.jobFunctionRepo.Delete(ctx, name)
}

// ==================== EQUIPMENT OPERATIONS ====================

func (s *masterServiceImpl) ListEquipment(ctx context.Context) ([]string, error) {
	tags, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	return tags, nil
}

func (s *masterServiceImpl) AddEquipment(ctx context.Context, tag string) error {
	return s.equipmentRepo.Insert(ctx, tag)
}

func (s *masterServiceImpl) DeleteEquipment(ctx context.Context, tag string) error {
	return s.equipmentRepo.Delete(ctx, tag)
}
