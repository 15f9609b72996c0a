package handlers

import "time"

// Response payloads for the account endpoints.

type RegisterResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type SecurityQuestionResponse struct {
	Question string `json:"question" example:"What was the name of your first pet?"`
}

type RatingResponse struct {
	ID        uint      `json:"id" example:"1"`
	MovieID   uint      `json:"movie_id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Rating    int       `json:"rating" example:"4"`
	Comment   string    `json:"comment" example:"Great twist."`
	CreatedAt time.Time `json:"created_at"`
}
