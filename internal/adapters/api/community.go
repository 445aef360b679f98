package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

const articlesPath = "/api/community/articles/"

var _ ports.CommunityAPI = (*Client)(nil)

type commentRequest struct {
	Content string `json:"content"`
}

func articlePath(id domain.ArticleID) string {
	return fmt.Sprintf("%s%d/", articlesPath, id)
}

func (c *Client) ListArticles(ctx context.Context, query domain.ArticleQuery) ([]domain.ArticleSummary, error) {
	values := url.Values{}
	if search := strings.TrimSpace(query.Search); search != "" {
		values.Set("search", search)
		if query.Condition != "" {
			values.Set("condition", string(query.Condition))
		}
	}

	var articles []domain.ArticleSummary
	if err := c.do(ctx, request{method: http.MethodGet, path: articlesPath, query: values}, &articles); err != nil {
		return nil, err
	}

	return articles, nil
}

func (c *Client) GetArticle(ctx context.Context, id domain.ArticleID) (domain.Article, error) {
	var article domain.Article
	if err := c.do(ctx, request{method: http.MethodGet, path: articlePath(id)}, &article); err != nil {
		return domain.Article{}, err
	}

	return article, nil
}

func (c *Client) CreateArticle(ctx context.Context, token string, draft domain.ArticleDraft) (domain.Article, error) {
	var article domain.Article
	err := c.do(ctx, request{method: http.MethodPost, path: articlesPath, token: token, body: draft}, &article)
	if err != nil {
		return domain.Article{}, err
	}

	return article, nil
}

func (c *Client) DeleteArticle(ctx context.Context, token string, id domain.ArticleID) error {
	return c.do(ctx, request{method: http.MethodDelete, path: articlePath(id), token: token}, nil)
}

func (c *Client) AddComment(ctx context.Context, token string, id domain.ArticleID, content string) (domain.Comment, error) {
	var comment domain.Comment
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   articlePath(id) + "comments/",
		token:  token,
		body:   commentRequest{Content: content},
	}, &comment)
	if err != nil {
		return domain.Comment{}, err
	}

	return comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, token string, id domain.ArticleID, commentID domain.CommentID) error {
	path := fmt.Sprintf("%scomments/%d/", articlePath(id), commentID)
	return c.do(ctx, request{method: http.MethodDelete, path: path, token: token}, nil)
}

func (c *Client) ToggleLike(ctx context.Context, token string, id domain.ArticleID) (domain.LikeState, error) {
	var state domain.LikeState
	if err := c.do(ctx, request{method: http.MethodPost, path: articlePath(id) + "likes/", token: token}, &state); err != nil {
		return domain.LikeState{}, err
	}

	return state, nil
}
