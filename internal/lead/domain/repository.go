package domain

import "context"

type Repository interface {
	SaveLeads(ctx context.Context, leads []Lead) error
	GetLeads(ctx context.Context) ([]Lead, error)
}
