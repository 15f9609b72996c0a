package models

import (
	"time"
)

type Movie struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name          string    `gorm:"size:64;not null;index" json:"name" example:"Fight Club"`
	Director      string    `gorm:"size:128;not null;index" json:"director" example:"David Fincher"`
	CreatedYear   int       `gorm:"not null;index" json:"created_year" example:"1999"`
	LengthMinutes int       `gorm:"not null" json:"length_minutes" example:"139"`
	IMDBRating    float64   `gorm:"column:imdb_rating;not null;default:0;index" json:"imdb_rating" example:"84"`
	Logo          string    `gorm:"not null;default:''" json:"logo" example:"logos/fight-club.jpg"`
	HeaderImage   string    `gorm:"not null;default:''" json:"header_image" example:"headers/fight-club.jpg"`
	Story         string    `gorm:"type:text;not null;default:''" json:"story" example:"An insomniac office worker..."`
	Ratings       []Rating  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieListItem is a Movie annotated with the per-request derived fields.
// OverallRating is nil when the movie has no ratings.
type MovieListItem struct {
	Movie
	OverallRating *float64 `gorm:"->;column:overall_rating" json:"overall_rating" example:"4.5"`
	InWatchlist   bool     `gorm:"->;column:in_watchlist" json:"in_watchlist" example:"false"`
}

type MovieDetail struct {
	MovieListItem
	Ratings []RatingView `json:"ratings"`
	CanRate bool         `json:"can_rate" example:"true"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// MovieFilter holds the list query parameters.
type MovieFilter struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
}

// Normalize clamps paging to a valid window.
func (f *MovieFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}
