package tenant

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/huandu/go-sqlbuilder"

	"github.com/Ramsey-B/fern/pkg/database"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// Repository maintains the tenant registry. The registry holds a single
// always-current row per tenant, so registration is delete-then-insert rather
// than a staged merge.
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Register records the tenant in the master registry.
func (r *Repository) Register(ctx context.Context, tenantID string) error {
	ctx, span := tracing.StartSpan(ctx, "tenant.Repository.Register")
	defer span.End()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	db := sqlbuilder.PostgreSQL.NewDeleteBuilder()
	db.DeleteFrom("master")
	db.Where(db.In("tenant_id", tenantID))

	query, args := db.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID}).Error("Failed to clear tenant registration")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to register tenant")
	}

	structDef := database.NewStruct(new(models.TenantRegistration))
	query, args = structDef.InsertInto("master", models.TenantRegistration{TenantID: tenantID}).Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{"tenant_id": tenantID}).Error("Failed to insert tenant registration")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to register tenant")
	}

	return tx.Commit(ctx)
}
