package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID    uint      `gorm:"not null;uniqueIndex:uq_rating_user_movie" json:"-"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	MovieID   uint      `gorm:"not null;uniqueIndex:uq_rating_user_movie;index" json:"movie_id" example:"1"`
	Rating    int       `gorm:"not null;check:chk_ratings_range,rating >= 1 AND rating <= 5" json:"rating" example:"4"`
	Comment   string    `gorm:"type:text;not null;default:''" json:"comment" example:"Great twist."`
	CreatedAt time.Time `json:"created_at"`
}

func (Rating) TableName() string {
	return "ratings"
}

type RatingView struct {
	Username  string    `json:"username" example:"alice"`
	Rating    int       `json:"rating" example:"4"`
	Comment   string    `json:"comment" example:"Great twist."`
	CreatedAt time.Time `json:"created_at"`
}

// NewRatingView flattens a rating with its preloaded user.
func NewRatingView(r Rating) RatingView {
	view := RatingView{
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		view.Username = r.User.Username
	}
	return view
}
