package model

import "time"

type Location struct {
	ID         int64     `json:"id"`
	StarSystem string    `json:"star_system"`
	Area       string    `json:"area"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
