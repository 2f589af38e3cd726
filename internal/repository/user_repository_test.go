package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/dwsetiawan/facility-auth/internal/entity"
	"github.com/dwsetiawan/facility-auth/internal/repository"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	db   *pgxpool.Pool
	repo *repository.UserRepository
}

func (ts *UserRepositoryTestSuite) SetupTest() {
	ts.db = repository.SetupTestDatabase(ts.T())
	ts.repo = repository.NewUserRepository(ts.db)

	_, err := ts.db.Exec(context.Background(),
		`INSERT INTO users_role (id, "roleName") VALUES (1, 'superadmin'), (2, 'operator')`)
	ts.Require().NoError(err)
}

func TestUserRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (ts *UserRepositoryTestSuite) TestCreateUser() {
	ctx := context.Background()

	user, err := ts.repo.CreateUser(ctx, entity.User{
		Name:     "DW",
		Email:    "d@x.com",
		Password: "$2a$10$hash",
		RoleID:   2,
	})
	ts.Require().NoError(err)
	ts.Require().NotZero(user.ID)
	ts.Require().False(user.CreatedAt.IsZero())
}

func (ts *UserRepositoryTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()

	_, err := ts.repo.CreateUser(ctx, entity.User{Name: "DW", Email: "d@x.com", Password: "h", RoleID: 2})
	ts.Require().NoError(err)

	_, err = ts.repo.CreateUser(ctx, entity.User{Name: "Other", Email: "d@x.com", Password: "h", RoleID: 2})
	ts.Require().Error(err, "unique index must reject the second insert")
}

func (ts *UserRepositoryTestSuite) TestUserByEmail() {
	ctx := context.Background()

	created, err := ts.repo.CreateUser(ctx, entity.User{Name: "DW", Email: "d@x.com", Password: "h", RoleID: 2})
	ts.Require().NoError(err)

	ts.Run("existing_user", func() {
		user, err := ts.repo.UserByEmail(ctx, "d@x.com")
		ts.Require().NoError(err)
		ts.Require().Equal(created.ID, user.ID)
		ts.Require().Equal("operator", user.RoleName)
		ts.Require().Nil(user.EmailVerifiedAt)
	})

	ts.Run("unknown_email", func() {
		_, err := ts.repo.UserByEmail(ctx, "nobody@x.com")
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})

	ts.Run("soft_deleted_user_is_invisible", func() {
		_, err := ts.db.Exec(ctx, `UPDATE users SET "isDeleted" = TRUE WHERE id = $1`, created.ID)
		ts.Require().NoError(err)

		_, err = ts.repo.UserByEmail(ctx, "d@x.com")
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})
}

func (ts *UserRepositoryTestSuite) TestUserByID() {
	ctx := context.Background()

	created, err := ts.repo.CreateUser(ctx, entity.User{Name: "DW", Email: "d@x.com", Password: "h", RoleID: 2})
	ts.Require().NoError(err)

	ts.Run("existing_user", func() {
		user, err := ts.repo.UserByID(ctx, created.ID)
		ts.Require().NoError(err)
		ts.Require().Equal("d@x.com", user.Email)
		ts.Require().Equal("operator", user.RoleName)
	})

	ts.Run("unknown_id", func() {
		_, err := ts.repo.UserByID(ctx, 99999)
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})

	ts.Run("soft_deleted_user_is_returned_flagged", func() {
		_, err := ts.db.Exec(ctx, `UPDATE users SET "isDeleted" = TRUE WHERE id = $1`, created.ID)
		ts.Require().NoError(err)

		user, err := ts.repo.UserByID(ctx, created.ID)
		ts.Require().NoError(err)
		ts.Require().True(user.IsDeleted)
	})
}

func (ts *UserRepositoryTestSuite) TestEmailExists() {
	ctx := context.Background()

	created, err := ts.repo.CreateUser(ctx, entity.User{Name: "DW", Email: "d@x.com", Password: "h", RoleID: 2})
	ts.Require().NoError(err)

	exists, err := ts.repo.EmailExists(ctx, "d@x.com")
	ts.Require().NoError(err)
	ts.Require().True(exists)

	exists, err = ts.repo.EmailExists(ctx, "nobody@x.com")
	ts.Require().NoError(err)
	ts.Require().False(exists)

	// soft delete does not free the address
	_, err = ts.db.Exec(ctx, `UPDATE users SET "isDeleted" = TRUE WHERE id = $1`, created.ID)
	ts.Require().NoError(err)

	exists, err = ts.repo.EmailExists(ctx, "d@x.com")
	ts.Require().NoError(err)
	ts.Require().True(exists)
}

func (ts *UserRepositoryTestSuite) TestRoleExists() {
	ctx := context.Background()

	exists, err := ts.repo.RoleExists(ctx, 2)
	ts.Require().NoError(err)
	ts.Require().True(exists)

	exists, err = ts.repo.RoleExists(ctx, 99)
	ts.Require().NoError(err)
	ts.Require().False(exists)
}
