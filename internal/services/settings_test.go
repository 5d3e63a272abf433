package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/filearr/filearr/internal/domain"
	portsmocks "github.com/filearr/filearr/internal/ports/mocks"
)

func TestFolderSettingsService_Get(t *testing.T) {
	stored := &domain.FolderSetting{
		Key:       domain.SettingMoviesDir,
		Source:    domain.SourceDatabase,
		UpdatedAt: time.Now(),
		Value:     "/media/Movies",
	}
	emptyStored := &domain.FolderSetting{Key: domain.SettingMoviesDir, Source: domain.SourceDatabase}

	tests := []struct {
		name           string
		env            string
		repoSetting    *domain.FolderSetting
		repoErr        error
		expectedValue  string
		expectedSource domain.SettingSource
	}{
		{"database wins over env", "/env/movies", stored, nil, "/media/Movies", domain.SourceDatabase},
		{"env fallback", "/env/movies", nil, domain.ErrSettingNotFound, "/env/movies", domain.SourceEnvironment},
		{"unset", "", nil, domain.ErrSettingNotFound, "", domain.SourceUnset},
		{"empty database value falls back to env", "/env/movies", emptyStored, nil, "/env/movies", domain.SourceEnvironment},
		{"empty database value and no env", "", emptyStored, nil, "", domain.SourceUnset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(domain.SettingMoviesDir, tt.env)
			repo := portsmocks.NewMockFolderSettingRepository(t)
			repo.EXPECT().Get(mock.Anything, domain.SettingMoviesDir).Return(tt.repoSetting, tt.repoErr)

			setting, err := NewFolderSettingsService(repo).Get(context.Background(), domain.SettingMoviesDir)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, setting.Value)
			assert.Equal(t, tt.expectedSource, setting.Source)
		})
	}
}

func TestFolderSettingsService_GetDatabaseFailure(t *testing.T) {
	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().Get(mock.Anything, domain.SettingInputDir).Return(nil, errors.New("disk I/O error"))

	_, err := NewFolderSettingsService(repo).Get(context.Background(), domain.SettingInputDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk I/O error")
}

func TestFolderSettingsService_UnknownKey(t *testing.T) {
	repo := portsmocks.NewMockFolderSettingRepository(t)
	service := NewFolderSettingsService(repo)

	_, err := service.Get(context.Background(), "HOME")
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)

	err = service.Set(context.Background(), "HOME", "/tmp")
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)

	_, err = service.PickStartPath(context.Background(), "HOME")
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)
}

func TestFolderSettingsService_List(t *testing.T) {
	t.Setenv(domain.SettingTrashDir, "/env/trash")
	t.Setenv(domain.SettingInputDir, "/env/input")
	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.FolderSetting{
		{Key: domain.SettingInputDir, Source: domain.SourceDatabase, Value: "/db/input"},
	}, nil)

	settings, err := NewFolderSettingsService(repo).List(context.Background())

	require.NoError(t, err)
	require.Len(t, settings, len(domain.FolderSettingKeys))
	for i, key := range domain.FolderSettingKeys {
		assert.Equal(t, key, settings[i].Key)
	}
	assert.Equal(t, "/db/input", settings[0].Value)
	assert.Equal(t, domain.SourceDatabase, settings[0].Source)
	assert.Equal(t, "/env/trash", settings[len(settings)-1].Value)
	assert.Equal(t, domain.SourceEnvironment, settings[len(settings)-1].Source)
}

func TestFolderSettingsService_ListSkipsEmptyDatabaseValues(t *testing.T) {
	t.Setenv(domain.SettingInputDir, "/env/input")
	t.Setenv(domain.SettingOutputDir, "")
	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().List(mock.Anything).Return([]domain.FolderSetting{
		{Key: domain.SettingInputDir, Source: domain.SourceDatabase},
		{Key: domain.SettingOutputDir, Source: domain.SourceDatabase},
	}, nil)

	settings, err := NewFolderSettingsService(repo).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/env/input", settings[0].Value)
	assert.Equal(t, domain.SourceEnvironment, settings[0].Source)
	assert.Equal(t, "", settings[1].Value)
	assert.Equal(t, domain.SourceUnset, settings[1].Source)
}

func TestFolderSettingsService_PickStartPathEmptyDatabaseValueUsesEnv(t *testing.T) {
	t.Setenv(domain.SettingInputDir, "/env/input")
	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().Get(mock.Anything, domain.SettingInputDir).
		Return(&domain.FolderSetting{Key: domain.SettingInputDir, Source: domain.SourceDatabase}, nil)

	start, err := NewFolderSettingsService(repo).PickStartPath(context.Background(), domain.SettingInputDir)

	require.NoError(t, err)
	assert.Equal(t, "/env/input", start)
}

func TestFolderSettingsService_PickStartPath(t *testing.T) {
	t.Setenv(domain.SettingRejectedDir, "")

	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().Get(mock.Anything, domain.SettingRejectedDir).Return(nil, domain.ErrSettingNotFound).Once()
	repo.EXPECT().Get(mock.Anything, domain.SettingOutputDir).
		Return(&domain.FolderSetting{Key: domain.SettingOutputDir, Value: "/media/done"}, nil).Once()
	service := NewFolderSettingsService(repo)

	start, err := service.PickStartPath(context.Background(), domain.SettingRejectedDir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRootPath, start)

	start, err = service.PickStartPath(context.Background(), domain.SettingOutputDir)
	require.NoError(t, err)
	assert.Equal(t, "/media/done", start)
}

func TestFolderSettingsService_PickedPathIsStored(t *testing.T) {
	lister := portsmocks.NewMockDirectoryLister(t)
	lister.EXPECT().Browse(mock.Anything, "/media").Return(mediaListing(), nil)
	lister.EXPECT().Browse(mock.Anything, "/media/Movies").Return(&domain.DirectoryListing{ParentPath: strPtr("/media")}, nil)

	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().Set(mock.Anything, domain.SettingMoviesDir, "/media/Movies").Return("/old", nil)

	service := NewFolderSettingsService(repo)
	browser := NewDirectoryBrowser(lister)

	var stored string
	var storeErr error
	onSelect := service.StoreSelection(context.Background(), domain.SettingMoviesDir, func(p string, err error) {
		stored, storeErr = p, err
	})

	browser.Load(context.Background(), browser.Open("/media", onSelect))
	req, ok := browser.Select(1)
	require.True(t, ok)
	browser.Load(context.Background(), req)
	browser.ConfirmSelection()

	require.NoError(t, storeErr)
	assert.Equal(t, "/media/Movies", stored)
}

func TestFolderSettingsService_SetFailure(t *testing.T) {
	repo := portsmocks.NewMockFolderSettingRepository(t)
	repo.EXPECT().Set(mock.Anything, domain.SettingInputDir, "/x").Return("", errors.New("database is locked"))

	err := NewFolderSettingsService(repo).Set(context.Background(), domain.SettingInputDir, "/x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
}
