package models

import "time"

// DefaultWatchlistName is reserved for the list behind the movie watchlist endpoints.
const DefaultWatchlistName = "watch-list"

type Watchlist struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID    uint      `gorm:"not null;uniqueIndex:uq_watchlist_user_name" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Name      string    `gorm:"size:64;not null;uniqueIndex:uq_watchlist_user_name" json:"name" example:"watch-list"`
	Movies    []Movie   `gorm:"many2many:watchlist_movies;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Watchlist) TableName() string {
	return "watchlists"
}

func (w Watchlist) IsDefault() bool {
	return w.Name == DefaultWatchlistName
}

type WatchlistView struct {
	ID     uint            `json:"id" example:"1"`
	Name   string          `json:"name" example:"watch-list"`
	Movies []MovieListItem `json:"movies"`
}
