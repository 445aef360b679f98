package domain

import (
	"context"
	"fmt"
	"strings"
)

type ArticleID int64

type CommentID int64

type SearchCondition string

const (
	SearchTitle        SearchCondition = "title"
	SearchContent      SearchCondition = "content"
	SearchAuthor       SearchCondition = "author"
	SearchTitleContent SearchCondition = "title_content"
)

func ParseSearchCondition(raw string) (SearchCondition, error) {
	switch condition := SearchCondition(strings.TrimSpace(raw)); condition {
	case "":
		return SearchTitleContent, nil
	case SearchTitle, SearchContent, SearchAuthor, SearchTitleContent:
		return condition, nil
	default:
		return "", fmt.Errorf("%w: unknown search condition %q", ErrInvalidInput, raw)
	}
}

type ArticleQuery struct {
	Search    string
	Condition SearchCondition
}

type ArticleSummary struct {
	ID           ArticleID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Username     string    `json:"username"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
	Hits         int       `json:"hits"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

type Comment struct {
	ID        CommentID `json:"id"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	CreatedAt string    `json:"created_at"`
}

type Article struct {
	ID        ArticleID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	LikeCount int       `json:"like_count"`
	Hits      int       `json:"hits"`
	Comments  []Comment `json:"comment_set"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

type ArticleDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (d ArticleDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("%w: article title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Content) == "" {
		return fmt.Errorf("%w: article content is required", ErrInvalidInput)
	}

	return nil
}

type LikeState struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// PendingConfirmation is a destructive action waiting for the user to
// confirm it. Nothing happens until Confirm is called.
type PendingConfirmation struct {
	Prompt  string
	confirm func(ctx context.Context) error
}

func NewPendingConfirmation(prompt string, confirm func(ctx context.Context) error) PendingConfirmation {
	return PendingConfirmation{Prompt: prompt, confirm: confirm}
}

func (p PendingConfirmation) Confirm(ctx context.Context) error {
	if p.confirm == nil {
		return nil
	}

	return p.confirm(ctx)
}
