package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/repository"
	"taskBoard/internal/repository/task/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresTestSuite runs the storage against a throwaway PostgreSQL container.
type PostgresTestSuite struct {
	suite.Suite
	container  testcontainers.Container
	storage    *postgres.Storage
	connString string
	ctx        context.Context
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}
	suite.Run(t, new(PostgresTestSuite))
}

func (s *PostgresTestSuite) SetupSuite() {
	s.ctx = context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(s.T(), err)
	s.container = container

	host, err := container.Host(s.ctx)
	require.NoError(s.T(), err)
	port, err := container.MappedPort(s.ctx, "5432")
	require.NoError(s.T(), err)

	s.connString = fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	require.NoError(s.T(), postgres.Migrate(s.connString))

	s.storage, err = postgres.New(s.ctx, s.connString, postgres.Options{})
	require.NoError(s.T(), err)
}

func (s *PostgresTestSuite) TearDownSuite() {
	if s.storage != nil {
		s.storage.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresTestSuite) SetupTest() {
	conn, err := pgx.Connect(s.ctx, s.connString)
	require.NoError(s.T(), err)
	defer conn.Close(s.ctx)

	_, err = conn.Exec(s.ctx, "TRUNCATE tasks")
	require.NoError(s.T(), err)
}

func (s *PostgresTestSuite) newTask(title string) *task.Task {
	now := time.Now().UTC().Truncate(time.Microsecond)
	deadline := task.NewDate(2026, time.February, 15)
	return &task.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: "description",
		Status:      task.StatusTodo,
		Priority:    task.PriorityHigh,
		Project:     task.ProjectNS,
		Deadline:    &deadline,
		Order:       1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *PostgresTestSuite) TestInsertAndGet() {
	tk := s.newTask("Landing page")
	s.Require().NoError(s.storage.Insert(s.ctx, tk))

	got, err := s.storage.Get(s.ctx, tk.ID)
	s.Require().NoError(err)

	s.Equal(tk.ID, got.ID)
	s.Equal("Landing page", got.Title)
	s.Equal(task.StatusTodo, got.Status)
	s.Require().NotNil(got.Deadline)
	s.Equal("2026-02-15", got.Deadline.String())
	s.Nil(got.DoneAt)
	s.True(tk.CreatedAt.Equal(got.CreatedAt))
}

func (s *PostgresTestSuite) TestGetMissing() {
	_, err := s.storage.Get(s.ctx, uuid.New())
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestPatch() {
	tk := s.newTask("Patch me")
	s.Require().NoError(s.storage.Insert(s.ctx, tk))

	doneAt := time.Now().UTC().Truncate(time.Microsecond)
	p := task.NewPatch(task.WithStatus(task.StatusDone), task.WithDescription(""), task.WithDeadline(nil))
	p.DoneAt = task.Set(doneAt)
	p.UpdatedAt = task.Set(doneAt)
	s.Require().NoError(s.storage.Patch(s.ctx, tk.ID, p))

	got, err := s.storage.Get(s.ctx, tk.ID)
	s.Require().NoError(err)
	s.Equal(task.StatusDone, got.Status)
	s.Equal("Patch me", got.Title)
	s.Empty(got.Description)
	s.Nil(got.Deadline)
	s.Require().NotNil(got.DoneAt)
	s.True(doneAt.Equal(*got.DoneAt))

	clearDoneAt := task.Patch{DoneAt: task.Clear[time.Time]()}
	s.Require().NoError(s.storage.Patch(s.ctx, tk.ID, clearDoneAt))
	got, err = s.storage.Get(s.ctx, tk.ID)
	s.Require().NoError(err)
	s.Nil(got.DoneAt)
}

func (s *PostgresTestSuite) TestPatchMissing() {
	err := s.storage.Patch(s.ctx, uuid.New(), task.NewPatch(task.WithTitle("x")))
	s.ErrorIs(err, repository.ErrNotFound)

	err = s.storage.Patch(s.ctx, uuid.New(), task.Patch{})
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *PostgresTestSuite) TestDeleteAndCollectAll() {
	a := s.newTask("a")
	b := s.newTask("b")
	s.Require().NoError(s.storage.Insert(s.ctx, a))
	s.Require().NoError(s.storage.Insert(s.ctx, b))

	s.Require().NoError(s.storage.Delete(s.ctx, a.ID))
	s.ErrorIs(s.storage.Delete(s.ctx, a.ID), repository.ErrNotFound)

	all, err := s.storage.CollectAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(b.ID, all[0].ID)
}

func (s *PostgresTestSuite) TestHealthCheck() {
	s.NoError(s.storage.HealthCheck(s.ctx))
}
