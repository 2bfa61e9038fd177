package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"userhub/api/internal/jalali"
	"userhub/api/internal/models"
	"userhub/api/internal/schemas"
)

// UserRepository is the users-table view over the generic repository.
type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{Repository: New[models.User](pool, "users")}
}

// Create persists a new user, stamping the Jalali creation timestamp unless
// the caller supplied one.
func (r *UserRepository) Create(ctx context.Context, attrs map[string]any) (models.User, error) {
	return r.Repository.Create(ctx, withCreated(attrs))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	return r.FindBy(ctx, "id", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (models.User, error) {
	return r.FindBy(ctx, "username", username)
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (models.User, error) {
	return r.FindBy(ctx, "phone", phone)
}

// GetFiltered returns one page of users matching params plus the total match
// count, newest first.
func (r *UserRepository) GetFiltered(ctx context.Context, params schemas.UserFilterParams) ([]models.User, int64, error) {
	return r.FindFiltered(ctx, Filter{
		Conds:  userConds(params),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// userConds translates set filter fields into predicates. The created bounds
// are inclusive whole days on the Jalali timestamp string.
func userConds(params schemas.UserFilterParams) []Cond {
	var conds []Cond
	if params.Username != "" {
		conds = append(conds, Cond{Column: "username", Op: "=", Value: params.Username})
	}
	if params.Phone != "" {
		conds = append(conds, Cond{Column: "phone", Op: "=", Value: params.Phone})
	}
	if params.CreatedFrom != "" {
		conds = append(conds, Cond{Column: "created", Op: ">=", Value: params.CreatedFrom + " 00:00:00"})
	}
	if params.CreatedTo != "" {
		conds = append(conds, Cond{Column: "created", Op: "<=", Value: params.CreatedTo + " 23:59:59"})
	}
	return conds
}

func withCreated(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs)+1)
	for key, value := range attrs {
		out[key] = value
	}
	if _, ok := out["created"]; !ok {
		out["created"] = jalali.Now()
	}
	return out
}
