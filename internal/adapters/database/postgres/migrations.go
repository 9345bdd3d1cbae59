package postgres

import "github.com/clubhub/clubhub-api/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Club{},
	&entity.ClubMember{},
	&entity.JoinRequest{},
	&entity.FeeCycle{},
	&entity.FeeRequest{},
	&entity.Notification{},
	&entity.Match{},
	&entity.MatchAttendance{},
}
