package shipments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/droplogistics/internal/common"
	"github.com/dmitrijs2005/droplogistics/internal/dbx"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

const selectShipments = `SELECT id, owner_id, cargo_id, cargo_name, tracking_number, status, weight,
		 description, estimated_delivery, created_at, warehouse_address, pickup_point, cod_amount
		 FROM shipments`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (shipment.Shipment, error) {
	query := selectShipments + `
		 WHERE upper(tracking_number) = upper($1)
		 `

	row := r.db.QueryRowContext(ctx, query, strings.TrimSpace(trackingNumber))
	s, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return shipment.Shipment{}, common.ErrorNotFound
		}
		return shipment.Shipment{}, fmt.Errorf("db error: %w", err)
	}

	return s, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]shipment.Shipment, error) {
	query := selectShipments + `
		 WHERE owner_id = $1
		 ORDER BY created_at DESC, id
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]shipment.Shipment, 0)
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanShipment(row scanner) (shipment.Shipment, error) {
	var (
		s      shipment.Shipment
		status string
		pickup sql.NullString
		cod    sql.NullFloat64
	)

	err := row.Scan(&s.ID, &s.UserID, &s.CargoID, &s.CargoName, &s.TrackingNumber, &status, &s.Weight,
		&s.Description, &s.EstimatedDelivery, &s.CreatedAt, &s.WarehouseAddress, &pickup, &cod)
	if err != nil {
		return shipment.Shipment{}, err
	}

	s.Status = shipment.Status(status)
	if pickup.Valid {
		s.PickupPoint = pickup.String
	}
	if cod.Valid {
		v := cod.Float64
		s.CodAmount = &v
	}
	return s, nil
}
