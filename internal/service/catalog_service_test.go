package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/tesis-cabal-cugno-moreyra/backend/internal/domain"
	"github.com/tesis-cabal-cugno-moreyra/backend/internal/service"
	mock_service "github.com/tesis-cabal-cugno-moreyra/backend/internal/service/mocks"
	"github.com/tesis-cabal-cugno-moreyra/backend/pkg/e"
)

func TestCreateDomain_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock_service.NewMockCatalogRepository(ctrl)
	snapshots := mock_service.NewMockSnapshotCache(ctrl)

	svc := service.NewCatalogService(catalog, snapshots, newTestLogger())

	domainID := uuid.New()

	catalog.EXPECT().CountDomains(gomock.Any()).Return(int64(0), nil)
	catalog.EXPECT().CreateDomain(gomock.Any(), gomock.Any()).Return(nil)
	catalog.EXPECT().GetDomain(gomock.Any(), "firefighters").
		Return(&domain.DomainConfig{ID: domainID, Name: "firefighters"}, nil)
	catalog.EXPECT().ListIncidentTypes(gomock.Any(), domainID).
		Return([]domain.IncidentType{{Name: "forest_fire"}}, nil)
	catalog.EXPECT().ListResourceTypes(gomock.Any(), domainID).
		Return([]domain.ResourceType{{Name: "brigade"}}, nil)
	snapshots.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	cfg, err := svc.CreateDomain(context.Background(), domain.CreateDomainRequest{Name: "firefighters"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "firefighters" {
		t.Fatalf("unexpected domain name %q", cfg.Name)
	}
}

func TestCreateDomain_SecondDomainRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock_service.NewMockCatalogRepository(ctrl)
	snapshots := mock_service.NewMockSnapshotCache(ctrl)

	svc := service.NewCatalogService(catalog, snapshots, newTestLogger())

	catalog.EXPECT().CountDomains(gomock.Any()).Return(int64(1), nil)

	_, err := svc.CreateDomain(context.Background(), domain.CreateDomainRequest{Name: "police"})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if e.FieldOf(err) != "domain_name" {
		t.Fatalf("expected field domain_name, got %s", e.FieldOf(err))
	}
}

func TestCreateDomain_DuplicateName(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock_service.NewMockCatalogRepository(ctrl)
	snapshots := mock_service.NewMockSnapshotCache(ctrl)

	svc := service.NewCatalogService(catalog, snapshots, newTestLogger())

	catalog.EXPECT().CountDomains(gomock.Any()).Return(int64(0), nil)
	catalog.EXPECT().CreateDomain(gomock.Any(), gomock.Any()).Return(e.ErrUniqueViolation)

	_, err := svc.CreateDomain(context.Background(), domain.CreateDomainRequest{Name: "firefighters"})
	if !errors.Is(err, e.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRebuildSnapshot_UnknownDomain(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	catalog := mock_service.NewMockCatalogRepository(ctrl)
	snapshots := mock_service.NewMockSnapshotCache(ctrl)

	svc := service.NewCatalogService(catalog, snapshots, newTestLogger())

	catalog.EXPECT().GetDomain(gomock.Any(), "ghost").Return(nil, e.ErrNotFound)

	_, err := svc.RebuildSnapshot(context.Background(), "ghost")
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
