package service

import (
	"context"

	"cinelog/internal/http-api/models"

	"github.com/stretchr/testify/mock"
)

type mockMovieRepo struct {
	mock.Mock
}

func (m *mockMovieRepo) Create(ctx context.Context, mv *models.Movie) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockMovieRepo) Update(ctx context.Context, mv *models.Movie) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockMovieRepo) Delete(ctx context.Context, mv *models.Movie) error {
	return m.Called(ctx, mv).Error(0)
}

func (m *mockMovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if mv, ok := args.Get(0).(*models.Movie); ok {
		return mv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieRepo) Search(ctx context.Context, text string) ([]models.Movie, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) FilterByReleaseYear(ctx context.Context, year int) ([]models.Movie, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetByGenreID(ctx context.Context, genreID int64) ([]models.Movie, error) {
	args := m.Called(ctx, genreID)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetByActorID(ctx context.Context, actorID int64) ([]models.Movie, error) {
	args := m.Called(ctx, actorID)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) GetByDirectorID(ctx context.Context, directorID int64) ([]models.Movie, error) {
	args := m.Called(ctx, directorID)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) SortByCreatedDate(ctx context.Context, order string) ([]models.Movie, error) {
	args := m.Called(ctx, order)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieRepo) ReplaceGenres(ctx context.Context, movieID int64, genreIDs []int64) error {
	return m.Called(ctx, movieID, genreIDs).Error(0)
}

func (m *mockMovieRepo) ReplaceDirectors(ctx context.Context, movieID int64, directorIDs []int64) error {
	return m.Called(ctx, movieID, directorIDs).Error(0)
}

func (m *mockMovieRepo) UpsertActor(ctx context.Context, link *models.MovieActor) error {
	return m.Called(ctx, link).Error(0)
}

type mockSeriesRepo struct {
	mock.Mock
}

func (m *mockSeriesRepo) Create(ctx context.Context, s *models.Series) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSeriesRepo) Update(ctx context.Context, s *models.Series) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSeriesRepo) Delete(ctx context.Context, s *models.Series) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockSeriesRepo) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*models.Series); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSeriesRepo) GetAll(ctx context.Context) ([]models.Series, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Series, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Series), args.Get(1).(int64), args.Error(2)
}

func (m *mockSeriesRepo) Search(ctx context.Context, text string) ([]models.Series, error) {
	args := m.Called(ctx, text)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) FilterByReleaseYear(ctx context.Context, year int) ([]models.Series, error) {
	args := m.Called(ctx, year)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) GetByGenreID(ctx context.Context, genreID int64) ([]models.Series, error) {
	args := m.Called(ctx, genreID)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) GetByActorID(ctx context.Context, actorID int64) ([]models.Series, error) {
	args := m.Called(ctx, actorID)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) GetByDirectorID(ctx context.Context, directorID int64) ([]models.Series, error) {
	args := m.Called(ctx, directorID)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) SortByCreatedDate(ctx context.Context, order string) ([]models.Series, error) {
	args := m.Called(ctx, order)
	return args.Get(0).([]models.Series), args.Error(1)
}

func (m *mockSeriesRepo) ReplaceGenres(ctx context.Context, seriesID int64, genreIDs []int64) error {
	return m.Called(ctx, seriesID, genreIDs).Error(0)
}

func (m *mockSeriesRepo) ReplaceDirectors(ctx context.Context, seriesID int64, directorIDs []int64) error {
	return m.Called(ctx, seriesID, directorIDs).Error(0)
}

func (m *mockSeriesRepo) UpsertActor(ctx context.Context, link *models.SeriesActor) error {
	return m.Called(ctx, link).Error(0)
}

type mockEpisodeRepo struct {
	mock.Mock
}

func (m *mockEpisodeRepo) Create(ctx context.Context, e *models.Episode) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEpisodeRepo) Update(ctx context.Context, e *models.Episode) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEpisodeRepo) Delete(ctx context.Context, e *models.Episode) error {
	return m.Called(ctx, e).Error(0)
}

func (m *mockEpisodeRepo) GetByID(ctx context.Context, id int64) (*models.Episode, error) {
	args := m.Called(ctx, id)
	if e, ok := args.Get(0).(*models.Episode); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEpisodeRepo) GetPaginated(ctx context.Context, page, pageSize int) ([]models.Episode, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]models.Episode), args.Get(1).(int64), args.Error(2)
}

func (m *mockEpisodeRepo) GetBySeriesID(ctx context.Context, seriesID int64) ([]models.Episode, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).([]models.Episode), args.Error(1)
}

func (m *mockEpisodeRepo) NumberExists(ctx context.Context, seriesID int64, season, episode int) (bool, error) {
	args := m.Called(ctx, seriesID, season, episode)
	return args.Bool(0), args.Error(1)
}

type mockCommentRepo struct {
	mock.Mock
}

func (m *mockCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) Update(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) Delete(ctx context.Context, c *models.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*models.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommentRepo) GetByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *mockCommentRepo) GetByMovie(ctx context.Context, movieID int64) ([]models.Comment, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *mockCommentRepo) GetBySeries(ctx context.Context, seriesID int64) ([]models.Comment, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).([]models.Comment), args.Error(1)
}

type mockRatingRepo struct {
	mock.Mock
}

func (m *mockRatingRepo) Create(ctx context.Context, r *models.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRatingRepo) Update(ctx context.Context, r *models.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRatingRepo) Delete(ctx context.Context, r *models.Rating) error {
	return m.Called(ctx, r).Error(0)
}

func (m *mockRatingRepo) GetByID(ctx context.Context, id int64) (*models.Rating, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*models.Rating); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRatingRepo) GetByUser(ctx context.Context, userID string) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Rating), args.Error(1)
}

func (m *mockRatingRepo) Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error) {
	args := m.Called(ctx, userID, movieID, seriesID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRatingRepo) AverageForMovie(ctx context.Context, movieID int64) (float64, int64, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockRatingRepo) AverageForSeries(ctx context.Context, seriesID int64) (float64, int64, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type mockGenresRepo struct {
	mock.Mock
}

func (m *mockGenresRepo) Create(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGenresRepo) Update(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGenresRepo) Delete(ctx context.Context, g *models.Genre) error {
	return m.Called(ctx, g).Error(0)
}

func (m *mockGenresRepo) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if g, ok := args.Get(0).(*models.Genre); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenresRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *mockGenresRepo) FindByNameFold(ctx context.Context, name string) (*models.Genre, error) {
	args := m.Called(ctx, name)
	if g, ok := args.Get(0).(*models.Genre); ok {
		return g, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Create(ctx context.Context, token *models.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockTokenRepo) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	args := m.Called(ctx, token)
	if rt, ok := args.Get(0).(*models.RefreshToken); ok {
		return rt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTokenRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTokenRepo) DeleteByUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockFavoriteRepo struct {
	mock.Mock
}

func (m *mockFavoriteRepo) Create(ctx context.Context, f *models.Favorite) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, f *models.Favorite) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFavoriteRepo) GetByID(ctx context.Context, id int64) (*models.Favorite, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*models.Favorite); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFavoriteRepo) GetByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.Favorite), args.Error(1)
}

func (m *mockFavoriteRepo) Exists(ctx context.Context, userID string, movieID, seriesID *int64) (bool, error) {
	args := m.Called(ctx, userID, movieID, seriesID)
	return args.Bool(0), args.Error(1)
}
