package entity

type Movie struct {
	Base
	Name              string `db:"name"`
	DurationInMinutes int    `db:"duration_in_minutes"`
}
