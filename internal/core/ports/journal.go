package ports

import "go.trai.ch/hoist/internal/core/domain"

// Journal persists the summary of the last release run.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Load returns the record stored at path, or nil, nil when none exists.
	Load(path string) (*domain.RunRecord, error)
	// Save replaces the record stored at path.
	Save(path string, record domain.RunRecord) error
}
