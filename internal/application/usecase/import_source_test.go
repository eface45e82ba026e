package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/listnav/internal/application/usecase"
	"github.com/bnema/listnav/internal/domain/entity"
	repomocks "github.com/bnema/listnav/internal/domain/repository/mocks"
	"github.com/bnema/listnav/internal/infrastructure/cache"
)

func TestImportSource_TextTree(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSourceRepository(ctrl)

	var saved []entity.SourceItem
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, src *entity.Source, items []entity.SourceItem) error {
			assert.Equal(t, "project", src.Name)
			saved = items
			return nil
		})

	input := `# project layout
src
  main.go
	!vendor
README.md
`
	_, err := usecase.NewImportSourceUseCase(repo).Import(testContext(), usecase.ImportSourceInput{
		Name:   "project",
		Format: usecase.ImportText,
		Reader: strings.NewReader(input),
	})
	require.NoError(t, err)

	require.Len(t, saved, 4)
	assert.Equal(t, entity.SourceItem{Item: entity.NewItem("src", "src")}, saved[0])
	assert.Equal(t, entity.ItemID("src/main.go"), saved[1].ID)
	assert.Equal(t, entity.ItemID("src"), saved[1].Parent)
	assert.Equal(t, entity.ItemID("src/vendor"), saved[2].ID)
	assert.True(t, saved[2].Disabled)
	assert.Empty(t, saved[3].Parent)
}

func TestImportSource_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSourceRepository(ctrl)

	var saved []entity.SourceItem
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *entity.Source, items []entity.SourceItem) error {
			saved = items
			return nil
		})

	input := `[{"id":"a","label":"Alpha"},{"label":"Beta","disabled":true,"parent":"a"}]`
	_, err := usecase.NewImportSourceUseCase(repo).Import(testContext(), usecase.ImportSourceInput{
		Name:   "greek",
		Format: usecase.ImportJSON,
		Reader: strings.NewReader(input),
	})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, entity.ItemID("Beta"), saved[1].ID)
	assert.Equal(t, entity.ItemID("a"), saved[1].Parent)
	assert.True(t, saved[1].Disabled)
}

func TestImportSource_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.ImportSourceInput
		wantIs  error
		wantMsg string
	}{
		{
			name:   "builtin name",
			input:  usecase.ImportSourceInput{Name: "fruits", Reader: strings.NewReader("a")},
			wantIs: usecase.ErrBuiltinSource,
		},
		{
			name:   "invalid name",
			input:  usecase.ImportSourceInput{Name: "my list", Reader: strings.NewReader("a")},
			wantIs: entity.ErrInvalidSourceName,
		},
		{
			name:   "empty",
			input:  usecase.ImportSourceInput{Name: "empty", Reader: strings.NewReader("\n# nothing\n")},
			wantIs: usecase.ErrEmptySource,
		},
		{
			name:   "duplicate",
			input:  usecase.ImportSourceInput{Name: "dup", Reader: strings.NewReader("a\nb\na\n")},
			wantIs: usecase.ErrDuplicateItem,
		},
		{
			name:    "skipped level",
			input:   usecase.ImportSourceInput{Name: "deep", Reader: strings.NewReader("a\n    b\n")},
			wantMsg: "line 2",
		},
		{
			name:    "unknown format",
			input:   usecase.ImportSourceInput{Name: "x", Format: "csv", Reader: strings.NewReader("a")},
			wantMsg: "unsupported import format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockSourceRepository(ctrl)

			_, err := usecase.NewImportSourceUseCase(repo).Import(testContext(), tt.input)
			require.Error(t, err)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestImportSource_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockSourceRepository(ctrl)
	lru := cache.NewLRU[string, *usecase.LoadItemsOutput](4)
	lru.Set("team", &usecase.LoadItemsOutput{Source: &entity.Source{Name: "team"}})
	uc := usecase.NewImportSourceUseCase(repo).WithCache(lru)

	require.ErrorIs(t, uc.Delete(testContext(), "us-states"), usecase.ErrBuiltinSource)

	repo.EXPECT().Get(gomock.Any(), "gone").Return(nil, nil)
	require.ErrorIs(t, uc.Delete(testContext(), "gone"), usecase.ErrUnknownSource)

	repo.EXPECT().Get(gomock.Any(), "team").Return(&entity.Source{Name: "team"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "team").Return(nil)
	require.NoError(t, uc.Delete(testContext(), "team"))
	assert.Zero(t, lru.Len(), "deleted source is evicted")
}
