package shipments

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/droplogistics/internal/common"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

var shipmentCols = []string{
	"id", "owner_id", "cargo_id", "cargo_name", "tracking_number", "status", "weight",
	"description", "estimated_delivery", "created_at", "warehouse_address", "pickup_point", "cod_amount",
}

const (
	qFind = `(?s)^SELECT\s+id,.*cod_amount\s+FROM\s+shipments\s+WHERE\s+upper\(tracking_number\)\s*=\s*upper\(\$1\)\s*$`
	qList = `(?s)^SELECT\s+id,.*cod_amount\s+FROM\s+shipments\s+WHERE\s+owner_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestFindByTrackingNumber_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(shipmentCols).
		AddRow("s2", "u-1", "3", "Dragon Express", "DE2024010015TJ", "ready_for_pickup", 2.8,
			"Одежда и обувь", "2024-02-05", "2024-01-25", "Офис в Душанбе", "ул. Рудаки 45", 110.25)
	mock.ExpectQuery(qFind).
		WithArgs("de2024010015tj").
		WillReturnRows(rows)

	got, err := repo.FindByTrackingNumber(context.Background(), "  de2024010015tj ")
	require.NoError(t, err)

	assert.Equal(t, "s2", got.ID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, shipment.StatusReadyForPickup, got.Status)
	assert.Equal(t, "ул. Рудаки 45", got.PickupPoint)
	require.NotNil(t, got.CodAmount)
	assert.InDelta(t, 110.25, *got.CodAmount, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByTrackingNumber_NullableColumns(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(shipmentCols).
		AddRow("s1", "u-1", "1", "ExpressAsia Cargo", "EA2024010001TJ", "in_transit", 5.2,
			"", "2024-02-10", "2024-01-28", "Guangzhou Tianhe Hub", nil, nil)
	mock.ExpectQuery(qFind).WithArgs("EA2024010001TJ").WillReturnRows(rows)

	got, err := repo.FindByTrackingNumber(context.Background(), "EA2024010001TJ")
	require.NoError(t, err)
	assert.Empty(t, got.PickupPoint)
	assert.Nil(t, got.CodAmount)
}

func TestFindByTrackingNumber_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qFind).
		WithArgs("GHOST").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByTrackingNumber(context.Background(), "GHOST")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestFindByTrackingNumber_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qFind).
		WithArgs("X").
		WillReturnError(errors.New("db down"))

	_, err := repo.FindByTrackingNumber(context.Background(), "X")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByOwner_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(shipmentCols).
		AddRow("s1", "u-1", "1", "ExpressAsia Cargo", "EA2024010001TJ", "in_transit", 5.2,
			"", "2024-02-10", "2024-01-28", "Guangzhou Tianhe Hub", nil, 204.75).
		AddRow("s3", "u-1", "2", "Silk Road Logistics", "SR2023120050TJ", "delivered", 12.5,
			"", "2024-01-15", "2023-12-20", "Urumqi Logistics Base", "Худжанд", nil)
	mock.ExpectQuery(qList).WithArgs("u-1").WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[0].ID)
	assert.Equal(t, shipment.StatusDelivered, got[1].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qList).WithArgs("nobody").WillReturnRows(sqlmock.NewRows(shipmentCols))

	got, err := repo.ListByOwner(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByOwner_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(qList).WithArgs("u-1").WillReturnError(errors.New("db err"))

	_, err := repo.ListByOwner(context.Background(), "u-1")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByOwner_ScanError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(shipmentCols).
		AddRow("s1", "u-1", "1", "ExpressAsia Cargo", "EA1", "in_transit", "heavy",
			"", "2024-02-10", "2024-01-28", "Hub", nil, nil)
	mock.ExpectQuery(qList).WithArgs("u-1").WillReturnRows(rows)

	_, err := repo.ListByOwner(context.Background(), "u-1")
	require.ErrorContains(t, err, "db error")
}

func TestListByOwner_RowsError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows(shipmentCols).
		AddRow("s1", "u-1", "1", "ExpressAsia Cargo", "EA1", "in_transit", 1.0,
			"", "2024-02-10", "2024-01-28", "Hub", nil, nil).
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery(qList).WithArgs("u-1").WillReturnRows(rows)

	_, err := repo.ListByOwner(context.Background(), "u-1")
	require.ErrorContains(t, err, "broken row")
}
