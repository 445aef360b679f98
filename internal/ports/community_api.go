package ports

import (
	"context"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

type CommunityAPI interface {
	ListArticles(ctx context.Context, query domain.ArticleQuery) ([]domain.ArticleSummary, error)
	GetArticle(ctx context.Context, id domain.ArticleID) (domain.Article, error)
	CreateArticle(ctx context.Context, token string, draft domain.ArticleDraft) (domain.Article, error)
	DeleteArticle(ctx context.Context, token string, id domain.ArticleID) error
	AddComment(ctx context.Context, token string, id domain.ArticleID, content string) (domain.Comment, error)
	DeleteComment(ctx context.Context, token string, id domain.ArticleID, commentID domain.CommentID) error
	ToggleLike(ctx context.Context, token string, id domain.ArticleID) (domain.LikeState, error)
}
