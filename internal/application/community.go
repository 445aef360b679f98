package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

type CommunityService struct {
	session ports.Session
	api     ports.CommunityAPI
	nav     ports.Navigator
	logger  zerolog.Logger
}

func NewCommunityService(session ports.Session, api ports.CommunityAPI, nav ports.Navigator, logger zerolog.Logger) *CommunityService {
	return &CommunityService{session: session, api: api, nav: nav, logger: logger}
}

func (s *CommunityService) ListArticles(ctx context.Context, query domain.ArticleQuery) ([]domain.ArticleSummary, error) {
	if query.Condition == "" {
		query.Condition = domain.SearchTitleContent
	}

	articles, err := s.api.ListArticles(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return articles, nil
}

func (s *CommunityService) GetArticle(ctx context.Context, id domain.ArticleID) (domain.Article, error) {
	article, err := s.api.GetArticle(ctx, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("get article %d: %w", id, err)
	}

	return article, nil
}

// CreateArticle publishes a new article. Without a session the user is sent
// to the login screen instead.
func (s *CommunityService) CreateArticle(ctx context.Context, draft domain.ArticleDraft) (domain.Article, error) {
	token, err := requireToken(s.session)
	if err != nil {
		s.nav.Notify(domain.Notification{Message: "Login required", Severity: domain.SeverityWarning})
		s.nav.Navigate(domain.RouteLogin)
		return domain.Article{}, err
	}
	if err := draft.Validate(); err != nil {
		return domain.Article{}, err
	}

	article, err := s.api.CreateArticle(ctx, token, domain.ArticleDraft{
		Title:   strings.TrimSpace(draft.Title),
		Content: draft.Content,
	})
	if err != nil {
		expireOnAuthFailure(ctx, s.session, err)
		return domain.Article{}, fmt.Errorf("create article: %w", err)
	}

	s.nav.Notify(domain.Notification{Message: "Article published", Severity: domain.SeveritySuccess})
	s.nav.Navigate(domain.RouteArticleDetail)

	return article, nil
}

func (s *CommunityService) ToggleLike(ctx context.Context, id domain.ArticleID) (domain.LikeState, error) {
	token, err := requireToken(s.session)
	if err != nil {
		return domain.LikeState{}, err
	}

	state, err := s.api.ToggleLike(ctx, token, id)
	if err != nil {
		expireOnAuthFailure(ctx, s.session, err)
		return domain.LikeState{}, fmt.Errorf("toggle like on article %d: %w", id, err)
	}

	return state, nil
}

func (s *CommunityService) AddComment(ctx context.Context, id domain.ArticleID, content string) (domain.Comment, error) {
	token, err := requireToken(s.session)
	if err != nil {
		return domain.Comment{}, err
	}
	if strings.TrimSpace(content) == "" {
		return domain.Comment{}, fmt.Errorf("%w: comment content is required", domain.ErrInvalidInput)
	}

	comment, err := s.api.AddComment(ctx, token, id, content)
	if err != nil {
		expireOnAuthFailure(ctx, s.session, err)
		return domain.Comment{}, fmt.Errorf("add comment to article %d: %w", id, err)
	}

	return comment, nil
}

// DeleteArticle returns a confirmation that performs the delete when
// confirmed. Nothing is sent before that.
func (s *CommunityService) DeleteArticle(ctx context.Context, id domain.ArticleID) (domain.PendingConfirmation, error) {
	if _, err := requireToken(s.session); err != nil {
		return domain.PendingConfirmation{}, err
	}

	prompt := fmt.Sprintf("Delete article %d?", id)
	return domain.NewPendingConfirmation(prompt, func(ctx context.Context) error {
		token, err := requireToken(s.session)
		if err != nil {
			return err
		}

		if err := s.api.DeleteArticle(ctx, token, id); err != nil {
			expireOnAuthFailure(ctx, s.session, err)
			return fmt.Errorf("delete article %d: %w", id, err)
		}

		s.nav.Notify(domain.Notification{Message: "Article deleted", Severity: domain.SeveritySuccess})
		s.nav.Navigate(domain.RouteCommunity)
		return nil
	}), nil
}

func (s *CommunityService) DeleteComment(ctx context.Context, id domain.ArticleID, commentID domain.CommentID) (domain.PendingConfirmation, error) {
	if _, err := requireToken(s.session); err != nil {
		return domain.PendingConfirmation{}, err
	}

	prompt := fmt.Sprintf("Delete comment %d on article %d?", commentID, id)
	return domain.NewPendingConfirmation(prompt, func(ctx context.Context) error {
		token, err := requireToken(s.session)
		if err != nil {
			return err
		}

		if err := s.api.DeleteComment(ctx, token, id, commentID); err != nil {
			expireOnAuthFailure(ctx, s.session, err)
			return fmt.Errorf("delete comment %d: %w", commentID, err)
		}

		s.nav.Notify(domain.Notification{Message: "Comment deleted", Severity: domain.SeveritySuccess})
		return nil
	}), nil
}
