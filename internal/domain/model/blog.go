package model

import "time"

type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

type Blog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
	Author      string     `json:"author"`
	PublishDate time.Time  `json:"publishDate"`
	Summary     string     `json:"summary"`
	Tags        []string   `json:"tags"`
	Status      BlogStatus `json:"status"`
}
