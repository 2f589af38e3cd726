package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwsetiawan/facility-auth/internal/entity"
)

type GrantRepository struct {
	db *pgxpool.Pool
}

func NewGrantRepository(db *pgxpool.Pool) *GrantRepository {
	return &GrantRepository{db: db}
}

// GrantsByRole assembles the role's full menu access list. Ordered by menu
// item id so the response is deterministic.
func (r *GrantRepository) GrantsByRole(ctx context.Context, roleID int64) ([]entity.Grant, error) {
	q := `
	SELECT menulist.id,
	       menulist."menuName",
	       menulist."isActive",
	       users_role."roleName",
	       tableroleaccess."accessName",
	       accesslimit."timeLimit"
	FROM tableaccess
	INNER JOIN menulist ON menulist.id = tableaccess."menuListId"
	INNER JOIN users_role ON users_role.id = tableaccess."roleId"
	INNER JOIN tableroleaccess ON tableroleaccess.id = tableaccess."roleAccessId"
	INNER JOIN accesslimit ON accesslimit.id = tableaccess."accessLimitId"
	WHERE tableaccess."roleId" = $1
	ORDER BY menulist.id`

	rows, err := r.db.Query(ctx, q, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grants := []entity.Grant{}

	for rows.Next() {
		var g entity.Grant
		if err := rows.Scan(&g.ID, &g.MenuName, &g.IsActive, &g.RoleName, &g.AccessName, &g.TimeLimit); err != nil {
			return nil, err
		}

		grants = append(grants, g)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grants, nil
}
