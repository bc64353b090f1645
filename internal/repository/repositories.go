package repository

import (
	"github.com/deppfellow/recordkit/internal/server"
)

// Repositories is the container for every repository instance.
type Repositories struct {
	Users     *UserRepository
	Companies *CompanyRepository
	Content   *ContentRepository
}

// NewRepositories wires the repositories to the stores owned by s.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(s.DB.Pool, s.Logger),
		Companies: NewCompanyRepository(s.DB.Pool, s.Logger),
		Content:   NewContentRepository(s.Redis, s.Logger),
	}
}
