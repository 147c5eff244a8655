package summaryquery_test

import (
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"testing"
	"time"
	"ulascansenturk/weather-summary/internal/db/summaryquery"
	"ulascansenturk/weather-summary/internal/weather"
)

type SummaryRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo summaryquery.Repository
}

func (s *SummaryRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = summaryquery.NewRepository(s.DB)
}

func (s *SummaryRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *SummaryRepositorySuite) TestLogSummaryQuery() {
	s.Run("Successfully logs a summary query", func() {
		coord := weather.Coordinate{Latitude: 37.56, Longitude: 126.97}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "summary_queries"`).
			WithArgs(
				"req-1",
				coord.Latitude,
				coord.Longitude,
				summaryquery.OutcomeOK,
				0,
				int64(420),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogSummaryQuery("req-1", coord, summaryquery.OutcomeOK, 0, 420*time.Millisecond)

		s.Require().NoError(err)
	})

	s.Run("Records the upstream status of a failed request", func() {
		coord := weather.Coordinate{Latitude: -33.86, Longitude: 151.2}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "summary_queries"`).
			WithArgs(
				"req-2",
				coord.Latitude,
				coord.Longitude,
				summaryquery.OutcomeUpstreamError,
				401,
				int64(35),
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		s.mock.ExpectCommit()

		err := s.repo.LogSummaryQuery("req-2", coord, summaryquery.OutcomeUpstreamError, 401, 35*time.Millisecond)

		s.Require().NoError(err)
	})

	s.Run("Returns error when database operation fails", func() {
		coord := weather.Coordinate{Latitude: 1, Longitude: 2}
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "summary_queries"`).
			WithArgs(
				"req-3",
				coord.Latitude,
				coord.Longitude,
				summaryquery.OutcomeTimedOut,
				0,
				int64(1500),
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogSummaryQuery("req-3", coord, summaryquery.OutcomeTimedOut, 0, 1500*time.Millisecond)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *SummaryRepositorySuite) TestGetRecentSummaryQuery() {
	queryRegex := `SELECT \* FROM "summary_queries" WHERE latitude = \$1 AND longitude = \$2 ORDER BY created_at DESC,"summary_queries"."id" LIMIT \$3`

	s.Run("Successfully retrieves the most recent summary query", func() {
		coord := weather.Coordinate{Latitude: 51.5, Longitude: -0.12}
		createdAt := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "request_id", "latitude", "longitude", "outcome", "upstream_status", "elapsed_ms", "created_at",
		}).AddRow(
			7, "req-7", coord.Latitude, coord.Longitude, summaryquery.OutcomeOK, 0, 312, createdAt,
		)

		s.mock.ExpectQuery(queryRegex).
			WithArgs(coord.Latitude, coord.Longitude, 1).
			WillReturnRows(rows)

		result, err := s.repo.GetRecentSummaryQuery(coord)

		s.Require().NoError(err)
		s.Require().NotNil(result)
		s.Require().Equal("req-7", result.RequestID)
		s.Require().Equal(coord.Latitude, result.Latitude)
		s.Require().Equal(coord.Longitude, result.Longitude)
		s.Require().Equal(summaryquery.OutcomeOK, result.Outcome)
		s.Require().Equal(int64(312), result.ElapsedMs)
	})

	s.Run("Returns error when no record found", func() {
		coord := weather.Coordinate{Latitude: 35.68, Longitude: 139.69}

		s.mock.ExpectQuery(queryRegex).
			WithArgs(coord.Latitude, coord.Longitude, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		result, err := s.repo.GetRecentSummaryQuery(coord)

		s.Require().Error(err)
		s.Require().Equal("record not found", err.Error())
		s.Require().Nil(result)
	})

	s.Run("Returns error when database query fails", func() {
		coord := weather.Coordinate{Latitude: 52.52, Longitude: 13.4}
		dbError := errors.New("connection error")

		s.mock.ExpectQuery(queryRegex).
			WithArgs(coord.Latitude, coord.Longitude, 1).
			WillReturnError(dbError)

		result, err := s.repo.GetRecentSummaryQuery(coord)

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(result)
	})
}

func TestSummaryRepositorySuite(t *testing.T) {
	suite.Run(t, new(SummaryRepositorySuite))
}
