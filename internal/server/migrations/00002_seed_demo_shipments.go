package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/droplogistics/internal/catalog"
)

func init() {
	goose.AddMigrationContext(upSeedDemoShipments, downSeedDemoShipments)
}

// upSeedDemoShipments loads the catalog demo shipments so the server and
// the offline client answer the same tracking numbers.
func upSeedDemoShipments(ctx context.Context, tx *sql.Tx) error {
	query :=
		`INSERT INTO shipments (id, owner_id, cargo_id, cargo_name, tracking_number, status, weight,
		 description, estimated_delivery, created_at, warehouse_address, pickup_point, cod_amount)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO NOTHING
		 `

	for _, s := range catalog.Shipments() {
		pickup := sql.NullString{String: s.PickupPoint, Valid: s.PickupPoint != ""}
		_, err := tx.ExecContext(ctx, query,
			s.ID, s.UserID, s.CargoID, s.CargoName, s.TrackingNumber, string(s.Status), s.Weight,
			s.Description, s.EstimatedDelivery, s.CreatedAt, s.WarehouseAddress, pickup, s.CodAmount)
		if err != nil {
			return fmt.Errorf("seed shipment %s: %w", s.ID, err)
		}
	}
	return nil
}

func downSeedDemoShipments(ctx context.Context, tx *sql.Tx) error {
	for _, s := range catalog.Shipments() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM shipments WHERE id = $1`, s.ID); err != nil {
			return err
		}
	}
	return nil
}
