package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports/mocks"
)

func newCommunityFixture(t *testing.T) (*CommunityService, *mocks.MockSession, *mocks.MockCommunityAPI, *mocks.MockNavigator) {
	t.Helper()

	session := mocks.NewMockSession(t)
	api := mocks.NewMockCommunityAPI(t)
	nav := mocks.NewMockNavigator(t)

	return NewCommunityService(session, api, nav, zerolog.Nop()), session, api, nav
}

func TestCommunityListArticlesDefaultsCondition(t *testing.T) {
	t.Parallel()

	service, _, api, _ := newCommunityFixture(t)
	api.EXPECT().ListArticles(mockAnyContext(), domain.ArticleQuery{Search: "jeju", Condition: domain.SearchTitleContent}).
		Return([]domain.ArticleSummary{{ID: 1, Title: "Jeju tips"}}, nil).Once()

	articles, err := service.ListArticles(context.Background(), domain.ArticleQuery{Search: "jeju"})
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestCommunityCreateArticleWithoutSessionRedirectsToLogin(t *testing.T) {
	t.Parallel()

	service, session, api, nav := newCommunityFixture(t)
	session.EXPECT().IsAuthenticated().Return(false)
	nav.EXPECT().Notify(domain.Notification{Message: "Login required", Severity: domain.SeverityWarning}).Return().Once()
	nav.EXPECT().Navigate(domain.RouteLogin).Return().Once()

	_, err := service.CreateArticle(context.Background(), domain.ArticleDraft{Title: "t", Content: "c"})
	require.ErrorIs(t, err, domain.ErrNoSession)
	api.AssertNotCalled(t, "CreateArticle", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommunityCreateArticlePublishes(t *testing.T) {
	t.Parallel()

	service, session, api, nav := newCommunityFixture(t)
	session.EXPECT().IsAuthenticated().Return(true)
	session.EXPECT().Token().Return("tok")
	api.EXPECT().CreateArticle(mockAnyContext(), "tok", domain.ArticleDraft{Title: "Jeju tips", Content: "rent a car"}).
		Return(domain.Article{ID: 7, Title: "Jeju tips"}, nil).Once()
	nav.EXPECT().Notify(domain.Notification{Message: "Article published", Severity: domain.SeveritySuccess}).Return().Once()
	nav.EXPECT().Navigate(domain.RouteArticleDetail).Return().Once()

	article, err := service.CreateArticle(context.Background(), domain.ArticleDraft{Title: " Jeju tips ", Content: "rent a car"})
	require.NoError(t, err)
	assert.Equal(t, domain.ArticleID(7), article.ID)
}

func TestCommunityCreateArticleValidatesDraft(t *testing.T) {
	t.Parallel()

	service, session, _, _ := newCommunityFixture(t)
	session.EXPECT().IsAuthenticated().Return(true)
	session.EXPECT().Token().Return("tok")

	_, err := service.CreateArticle(context.Background(), domain.ArticleDraft{Title: "title", Content: "  "})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCommunityAuthExpiredForcesLogout(t *testing.T) {
	t.Parallel()

	expired := &domain.APIError{Kind: domain.ErrAuthExpired, StatusCode: 401}

	tests := []struct {
		name string
		run  func(*CommunityService, *mocks.MockCommunityAPI) error
	}{
		{
			name: "like",
			run: func(s *CommunityService, api *mocks.MockCommunityAPI) error {
				api.EXPECT().ToggleLike(mockAnyContext(), "tok", domain.ArticleID(4)).Return(domain.LikeState{}, expired).Once()
				_, err := s.ToggleLike(context.Background(), 4)
				return err
			},
		},
		{
			name: "comment",
			run: func(s *CommunityService, api *mocks.MockCommunityAPI) error {
				api.EXPECT().AddComment(mockAnyContext(), "tok", domain.ArticleID(4), "nice").Return(domain.Comment{}, expired).Once()
				_, err := s.AddComment(context.Background(), 4, "nice")
				return err
			},
		},
		{
			name: "delete article",
			run: func(s *CommunityService, api *mocks.MockCommunityAPI) error {
				api.EXPECT().DeleteArticle(mockAnyContext(), "tok", domain.ArticleID(4)).Return(expired).Once()
				pending, err := s.DeleteArticle(context.Background(), 4)
				if err != nil {
					return err
				}
				return pending.Confirm(context.Background())
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, session, api, _ := newCommunityFixture(t)
			session.EXPECT().IsAuthenticated().Return(true)
			session.EXPECT().Token().Return("tok")
			session.EXPECT().Logout(mockAnyContext()).Return().Once()

			err := tt.run(service, api)
			require.ErrorIs(t, err, domain.ErrAuthExpired)
		})
	}
}

func TestCommunityDeleteArticleWaitsForConfirmation(t *testing.T) {
	t.Parallel()

	service, session, api, nav := newCommunityFixture(t)
	session.EXPECT().IsAuthenticated().Return(true)
	session.EXPECT().Token().Return("tok")

	pending, err := service.DeleteArticle(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Delete article 4?", pending.Prompt)
	api.AssertNotCalled(t, "DeleteArticle", mock.Anything, mock.Anything, mock.Anything)

	api.EXPECT().DeleteArticle(mockAnyContext(), "tok", domain.ArticleID(4)).Return(nil).Once()
	nav.EXPECT().Notify(domain.Notification{Message: "Article deleted", Severity: domain.SeveritySuccess}).Return().Once()
	nav.EXPECT().Navigate(domain.RouteCommunity).Return().Once()

	require.NoError(t, pending.Confirm(context.Background()))
}

func TestCommunityDeleteCommentByNonOwnerKeepsSession(t *testing.T) {
	t.Parallel()

	service, session, api, _ := newCommunityFixture(t)
	session.EXPECT().IsAuthenticated().Return(true)
	session.EXPECT().Token().Return("tok")
	forbidden := &domain.APIError{Kind: domain.ErrValidation, StatusCode: 403, Detail: "no permission"}
	api.EXPECT().DeleteComment(mockAnyContext(), "tok", domain.ArticleID(4), domain.CommentID(9)).Return(forbidden).Once()

	pending, err := service.DeleteComment(context.Background(), 4, 9)
	require.NoError(t, err)
	assert.Equal(t, "Delete comment 9 on article 4?", pending.Prompt)

	err = pending.Confirm(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
	session.AssertNotCalled(t, "Logout", mock.Anything)
}

func TestCommunityWritesRequireSession(t *testing.T) {
	t.Parallel()

	service, session, _, _ := newCommunityFixture(t)
	session.EXPECT().IsAuthenticated().Return(false)

	_, err := service.ToggleLike(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNoSession)
	_, err = service.AddComment(context.Background(), 1, "hi")
	require.ErrorIs(t, err, domain.ErrNoSession)
	_, err = service.DeleteArticle(context.Background(), 1)
	require.ErrorIs(t, err, domain.ErrNoSession)
	_, err = service.DeleteComment(context.Background(), 1, 2)
	require.ErrorIs(t, err, domain.ErrNoSession)
}
