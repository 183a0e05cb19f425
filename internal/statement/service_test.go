package statement_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-rental/internal/common"
	"github.com/noah-isme/backend-rental/internal/genre"
	"github.com/noah-isme/backend-rental/internal/statement"
)

func newService(t *testing.T) *statement.Service {
	t.Helper()
	return &statement.Service{
		Genres:   genre.NewRegistry(),
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func TestGenerateStatement(t *testing.T) {
	svc := newService(t)
	resp, err := svc.GenerateStatement(context.Background(), statement.StatementRequest{
		CustomerName: "Jane",
		Rentals: []statement.RentalRequest{
			{MovieTitle: "Rembo", Genre: "regular", DaysRented: 3},
			{MovieTitle: "Lord of the Rings", Genre: "NEW_RELEASE", DaysRented: 2},
			{MovieTitle: "Harry Potter", Genre: "Childrens", DaysRented: 4},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.StatementID)
	require.Equal(t, "Jane", resp.CustomerName)
	require.Equal(t, 12.5, resp.TotalAmount)
	require.Equal(t, 4, resp.TotalFrequentRenterPoints)

	require.Len(t, resp.Rentals, 3)
	require.Equal(t, "Rembo", resp.Rentals[0].MovieTitle)
	require.Equal(t, "Regular", resp.Rentals[0].Genre)
	require.Equal(t, 3.5, resp.Rentals[0].Price)
	require.Equal(t, "New Release", resp.Rentals[1].Genre)
	require.Equal(t, 2, resp.Rentals[1].FrequentRenterPoints)
	require.Equal(t, "Children's", resp.Rentals[2].Genre)

	require.True(t, strings.HasPrefix(resp.Statement, "Rental Record for Jane\n"))
	require.True(t, strings.HasSuffix(resp.Statement, "You earned 4 frequent renter points"))
}

func TestGenerateStatementHTMLFormat(t *testing.T) {
	svc := newService(t)
	resp, err := svc.GenerateStatement(context.Background(), statement.StatementRequest{
		CustomerName: "Neo",
		Rentals:      []statement.RentalRequest{{MovieTitle: "The Matrix", Genre: "REGULAR", DaysRented: 2}},
		Format:       "html",
	})
	require.NoError(t, err)
	require.Contains(t, resp.Statement, "<td>2.0</td>")
	require.Contains(t, resp.Statement, "<strong>2.0</strong>")
}

func TestGenerateStatementFormatFallsBackToPlainText(t *testing.T) {
	svc := newService(t)
	for _, format := range []string{"", "pdf", "XML"} {
		resp, err := svc.GenerateStatement(context.Background(), statement.StatementRequest{
			CustomerName: "Neo",
			Rentals:      []statement.RentalRequest{{MovieTitle: "The Matrix", Genre: "REGULAR", DaysRented: 5}},
			Format:       format,
		})
		require.NoError(t, err, "format %q", format)
		require.Contains(t, resp.Statement, "\tThe Matrix\t6.5\n", "format %q", format)
	}
}

func TestGenerateStatementRejectsUnknownGenre(t *testing.T) {
	svc := newService(t)
	_, err := svc.GenerateStatement(context.Background(), statement.StatementRequest{
		CustomerName: "Jane",
		Rentals: []statement.RentalRequest{
			{MovieTitle: "Rembo", Genre: "REGULAR", DaysRented: 1},
			{MovieTitle: "Alien", Genre: "Sci-Fi", DaysRented: 2},
		},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, genre.ErrUnknownGenre)

	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "GENRE_UNKNOWN", appErr.Code)
	require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	require.Contains(t, appErr.Message, "Sci-Fi")
}

func TestGenerateStatementRejectsInvalidRequests(t *testing.T) {
	cases := []struct {
		name string
		req  statement.StatementRequest
	}{
		{
			name: "missing customer name",
			req: statement.StatementRequest{
				Rentals: []statement.RentalRequest{{MovieTitle: "Rembo", Genre: "REGULAR", DaysRented: 1}},
			},
		},
		{
			name: "no rentals",
			req:  statement.StatementRequest{CustomerName: "Jane"},
		},
		{
			name: "missing movie title",
			req: statement.StatementRequest{
				CustomerName: "Jane",
				Rentals:      []statement.RentalRequest{{Genre: "REGULAR", DaysRented: 1}},
			},
		},
		{
			name: "negative rental duration",
			req: statement.StatementRequest{
				CustomerName: "Jane",
				Rentals:      []statement.RentalRequest{{MovieTitle: "Rembo", Genre: "REGULAR", DaysRented: -1}},
			},
		},
	}
	svc := newService(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GenerateStatement(context.Background(), tc.req)
			require.Error(t, err)

			var appErr *common.AppError
			require.True(t, errors.As(err, &appErr))
			require.Equal(t, "VALIDATION", appErr.Code)
			require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}

func TestGenerateStatementZeroDaysIsLegal(t *testing.T) {
	svc := newService(t)
	resp, err := svc.GenerateStatement(context.Background(), statement.StatementRequest{
		CustomerName: "Jane",
		Rentals:      []statement.RentalRequest{{MovieTitle: "Rembo", Genre: "REGULAR", DaysRented: 0}},
	})
	require.NoError(t, err)
	require.Equal(t, 2.0, resp.TotalAmount)
	require.Equal(t, 1, resp.TotalFrequentRenterPoints)
}
