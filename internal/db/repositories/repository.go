package repositories

import "github.com/go-pg/pg/v10"

//go:generate mockgen -source=request_repository.go -destination=mocks/mock_request_repository.go -package=mock_repositories
//go:generate mockgen -source=vote_repository.go -destination=mocks/mock_vote_repository.go -package=mock_repositories
//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mock_repositories

type repository struct {
	db *pg.DB
}
