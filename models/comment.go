package models

import (
	"strings"
	"time"
)

const MIN_RATING = 1
const MAX_RATING = 5

// Comment is a visitor review. Never mutated once stored.
type Comment struct {
	Author    string    `json:"nome"`
	Rating    int       `json:"nota"`
	Body      string    `json:"comentario"`
	CreatedAt time.Time `json:"data"`
}

// Stars returns the rating as repeated star glyphs.
func (c Comment) Stars() string {
	if c.Rating <= 0 {
		return ""
	}
	return strings.Repeat("★", c.Rating)
}
