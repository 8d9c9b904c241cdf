package domain

import (
	"context"
	"errors"
)

const (
	DefaultGenerateCount = 10
	MaxGenerateCount     = 100
)

type GenerateLeadsRequest struct {
	Platform string
	Keywords []string
	Count    int
}

type Service interface {
	Generate(ctx context.Context, req GenerateLeadsRequest) ([]Lead, error)
	List(ctx context.Context) ([]Lead, error)
}

var (
	ErrInvalidPlatform = errors.New("invalid_platform")
	ErrInvalidKeywords = errors.New("invalid_keywords")
)
