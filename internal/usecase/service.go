package usecase

import (
	"context"
	"errors"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/ports"
)

type Service struct {
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Generator: g, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Generate validates the request and, only when it passes, hands it to
// the tiling generator. Rejected requests never reach the search core.
func (u *Service) Generate(ctx context.Context, req domain.TilingRequest) (*domain.Tiling, ports.Stats, error) {
	if u.Validator == nil || u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if err := u.Validator.Validate(req); err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Generator.Generate(ctx, req)
}

func (u *Service) Validate(req domain.TilingRequest) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	return u.Validator.Validate(req)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
