package statement

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-rental/internal/common"
	"github.com/noah-isme/backend-rental/internal/genre"
	"github.com/noah-isme/backend-rental/internal/obs"
	"github.com/noah-isme/backend-rental/internal/rental"
)

// RentalRequest is one requested rental line.
type RentalRequest struct {
	MovieTitle string `json:"movieTitle" validate:"required"`
	Genre      string `json:"genre" validate:"required"`
	DaysRented int    `json:"daysRented" validate:"min=0"`
}

// StatementRequest is the statement generation payload.
type StatementRequest struct {
	CustomerName string          `json:"customerName" validate:"required"`
	Rentals      []RentalRequest `json:"rentals" validate:"required,min=1,dive"`
	Format       string          `json:"format"`
}

// RentalBreakdown is the per-rental portion of the response.
type RentalBreakdown struct {
	MovieTitle           string  `json:"movieTitle"`
	Genre                string  `json:"genre"`
	DaysRented           int     `json:"daysRented"`
	Price                float64 `json:"price"`
	FrequentRenterPoints int     `json:"frequentRenterPoints"`
}

// StatementResponse is the statement generation result.
type StatementResponse struct {
	StatementID               string            `json:"statementId"`
	CustomerName              string            `json:"customerName"`
	Rentals                   []RentalBreakdown `json:"rentals"`
	TotalAmount               float64           `json:"totalAmount"`
	TotalFrequentRenterPoints int               `json:"totalFrequentRenterPoints"`
	Statement                 string            `json:"statement"`
}

// Service orchestrates statement generation: it resolves genre keys through
// the registry, builds the customer's rental history, and renders it.
type Service struct {
	Genres   *genre.Registry
	Validate *validator.Validate
}

// GenerateStatement validates the request, prices every rental, and renders
// the statement in the requested format. An unresolvable genre key rejects
// the whole request; no partial statement is produced. A missing or
// unrecognized format falls back to plain text.
func (s *Service) GenerateStatement(_ context.Context, req StatementRequest) (*StatementResponse, error) {
	if s.Genres == nil {
		return nil, errors.New("genre registry not configured")
	}
	if s.Validate != nil {
		if err := s.Validate.Struct(req); err != nil {
			return nil, common.ValidationError("invalid statement request", validationDetails(err))
		}
	}

	customer := rental.NewCustomer(req.CustomerName)
	for _, line := range req.Rentals {
		g, err := s.Genres.Resolve(line.Genre)
		if err != nil {
			obs.ObserveGenreResolution("miss")
			return nil, common.NewAppError("GENRE_UNKNOWN", err.Error(), http.StatusBadRequest, err)
		}
		obs.ObserveGenreResolution("hit")
		customer.AddRental(rental.NewRental(line.MovieTitle, g, line.DaysRented))
	}

	format := ParseFormat(req.Format)
	rendered := Render(customer, format)
	obs.ObserveStatementRendered(format.String())

	breakdown := make([]RentalBreakdown, 0, len(req.Rentals))
	for _, r := range customer.Rentals() {
		breakdown = append(breakdown, RentalBreakdown{
			MovieTitle:           r.Title(),
			Genre:                r.Genre().Name(),
			DaysRented:           r.DaysRented(),
			Price:                r.Price(),
			FrequentRenterPoints: r.Points(),
		})
	}

	return &StatementResponse{
		StatementID:               uuid.NewString(),
		CustomerName:              customer.Name(),
		Rentals:                   breakdown,
		TotalAmount:               customer.TotalAmount(),
		TotalFrequentRenterPoints: customer.TotalPoints(),
		Statement:                 rendered,
	}, nil
}

func validationDetails(err error) any {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return details
}
