//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	CarrierCompanyName  = "Transportes Rota Sul"
	OperatorCompanyName = "Patio Anhanguera"

	// bcrypt hash of TestPassword
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	TestPassword     = "password123"
)

// DBLike is satisfied by a pool, a connection and a transaction, so fixtures
// can be written inside a test's own transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestUser inserts an active user. Carrier and operator users are
// attached to the seeded company of their type; admins get no company.
func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	var companyID *uuid.UUID
	if role != "ADMIN" {
		id := CompanyIDByType(t, db, role)
		companyID = &id
	}

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, company_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role, companyID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCompany(t *testing.T, db DBLike, name, cnpj, companyType string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO companies (id, name, cnpj, company_type) VALUES ($1, $2, $3, $4) ON CONFLICT (cnpj) DO NOTHING",
		companyID, name, cnpj, companyType)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM companies WHERE cnpj = $1", cnpj).Scan(&companyID)
	}

	return companyID
}

// CompanyIDByType returns the first seeded company of the given type.
func CompanyIDByType(t *testing.T, db DBLike, companyType string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM companies WHERE company_type = $1 ORDER BY name LIMIT 1", companyType).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestLot inserts a lot owned by companyID with spaces numbered A01..An.
// Counters are set to match the inserted spaces.
func CreateTestLot(t *testing.T, db DBLike, companyID uuid.UUID, name string, pricePerHour float64, spaces int) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	ctx := context.Background()
	lotID := uuid.New()
	_, err := db.Exec(ctx, "INSERT INTO parking_lots (id, company_id, name, price_per_hour, total_spaces, available_spaces) VALUES ($1, $2, $3, $4, $5, $5)",
		lotID, companyID, name, pricePerHour, spaces)
	require.NoError(t, err)

	spaceIDs := make([]uuid.UUID, 0, spaces)
	for i := 1; i <= spaces; i++ {
		id := uuid.New()
		_, err := db.Exec(ctx, "INSERT INTO parking_spaces (id, parking_lot_id, space_number, space_type) VALUES ($1, $2, $3, 'TRUCK')",
			id, lotID, fmt.Sprintf("A%02d", i))
		require.NoError(t, err)
		spaceIDs = append(spaceIDs, id)
	}

	return lotID, spaceIDs
}

func CreateTestDriver(t *testing.T, db DBLike, companyID uuid.UUID, name, license string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO drivers (id, company_id, name, license_number) VALUES ($1, $2, $3, $4)",
		id, companyID, name, license)
	require.NoError(t, err)
	return id
}

func CreateTestVehicle(t *testing.T, db DBLike, companyID uuid.UUID, driverID *uuid.UUID, plate string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO vehicles (id, company_id, driver_id, license_plate, vehicle_type) VALUES ($1, $2, $3, $4, 'TRUCK')",
		id, companyID, driverID, plate)
	require.NoError(t, err)
	return id
}

// SeedReferenceData inserts one carrier and one lot operator company.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO companies (id, name, cnpj, company_type) VALUES
		    (gen_random_uuid(), $1, '11222333000181', 'TRANSPORTADORA'),
		    (gen_random_uuid(), $2, '44555666000172', 'ESTACIONAMENTO')
		ON CONFLICT (cnpj) DO NOTHING;
	`, CarrierCompanyName, OperatorCompanyName)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
