package phases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cols = []string{"id", "user_id", "name", "start_date", "end_date", "description"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestCreate_OpenEnded(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	p := &models.LifePhase{ID: "ph-1", UserID: "u-1", Name: "Berlin", StartDate: models.NewDate(2021, time.May, 1)}

	mock.ExpectExec(`(?s)^INSERT\s+INTO\s+life_phases`).
		WithArgs("ph-1", "u-1", "Berlin", "2021-05-01", nil, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), p))
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`(?s)^UPDATE\s+life_phases`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.LifePhase{ID: "ph-1", UserID: "u-1"})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectExec(`^DELETE\s+FROM\s+life_phases`).WithArgs("ph-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "u-1", "ph-1"))
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`(?s)FROM\s+life_phases\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+start_date\s+DESC`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("ph-2", "u-1", "Riga", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), nil, "now").
			AddRow("ph-1", "u-1", "Berlin", time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC), ""))

	got, err := repo.List(context.Background(), "u-1")
	require.NoError(t, err)

	want := []*models.LifePhase{
		{ID: "ph-2", UserID: "u-1", Name: "Riga", StartDate: models.NewDate(2023, time.January, 1), Description: "now"},
		{ID: "ph-1", UserID: "u-1", Name: "Berlin", StartDate: models.NewDate(2021, time.May, 1), EndDate: models.NewDate(2022, time.December, 31)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM\s+life_phases`).WillReturnError(errors.New("down"))

	_, err := repo.List(context.Background(), "u-1")
	require.Error(t, err)
}
