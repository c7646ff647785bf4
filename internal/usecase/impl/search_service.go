package impl

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"domkarta/internal/domain/entity"
	"domkarta/internal/domain/repository"
	"domkarta/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

type searchService struct {
	houseRepo repository.HouseRepository
	logger    *slog.Logger
}

// NewSearchService creates the directory search usecase. Filtering happens
// in memory over the full collection; the directory is a single city's
// worth of buildings, not a dataset that needs store-side queries.
func NewSearchService(houseRepo repository.HouseRepository, logger *slog.Logger) usecase.SearchUsecase {
	return &searchService{
		houseRepo: houseRepo,
		logger:    logger,
	}
}

// SearchHouses applies the term and city filters. A submission with neither
// returns nil, which callers must render as "no active filter" rather than
// an empty result set.
func (s *searchService) SearchHouses(ctx context.Context, input *usecase.SearchInput) ([]*entity.House, error) {
	term := strings.TrimSpace(input.Term)
	city := strings.TrimSpace(input.City)

	// A lone dash is the year-range placeholder the form renders; it
	// carries no constraint.
	hasTerm := term != "" && term != "-"
	hasCity := !input.AllMap && city != ""

	if !hasTerm && !hasCity {
		return nil, nil
	}

	houses, err := s.houseRepo.ListHouses(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list houses for search")
	}

	lowerTerm := strings.ToLower(term)
	lowerCity := strings.ToLower(city)

	results := make([]*entity.House, 0, len(houses))
	for _, house := range houses {
		if hasCity && !strings.Contains(strings.ToLower(house.Address), lowerCity) {
			continue
		}
		if hasTerm && !matchTerm(house, input.Type, term, lowerTerm) {
			continue
		}
		results = append(results, house)
	}

	return results, nil
}

func matchTerm(house *entity.House, searchType, term, lowerTerm string) bool {
	switch searchType {
	case usecase.SearchByAddress:
		return strings.Contains(strings.ToLower(house.Address), lowerTerm)
	case usecase.SearchByYear:
		return matchYear(house.Year, term)
	case usecase.SearchBySeries:
		return matchSeries(house.BuildingSeries, lowerTerm)
	default:
		// An unknown kind constrains nothing.
		return true
	}
}

// matchYear matches a house year (single year or "from-to" range) against a
// query of the same shape. Open-ended query halves are allowed ("1950-",
// "-1917"); ranges match on overlap.
func matchYear(houseYear, query string) bool {
	from, to, ok := parseYearRange(query, math.MinInt, math.MaxInt)
	if !ok {
		return false
	}

	houseFrom, houseTo, ok := parseYearRange(houseYear, 0, 0)
	if !ok {
		return false
	}

	return houseTo >= from && houseFrom <= to
}

// parseYearRange parses "1958", "1950-1970", "1950-" or "-1970" into an
// inclusive range. openFrom/openTo substitute for missing halves; a value
// with no parsable half returns ok=false.
func parseYearRange(value string, openFrom, openTo int) (int, int, bool) {
	value = strings.TrimSpace(value)

	before, after, isRange := strings.Cut(value, "-")
	if !isRange {
		year, err := strconv.Atoi(value)
		if err != nil {
			return 0, 0, false
		}

		return year, year, true
	}

	from, errFrom := strconv.Atoi(strings.TrimSpace(before))
	to, errTo := strconv.Atoi(strings.TrimSpace(after))
	if errFrom != nil && errTo != nil {
		return 0, 0, false
	}
	if errFrom != nil {
		from = openFrom
	}
	if errTo != nil {
		to = openTo
	}

	return from, to, true
}

// matchSeries: the query is a comma-separated list of series tokens; any
// token occurring in the house's series set is a match.
func matchSeries(houseSeries []string, lowerTerm string) bool {
	haystack := strings.ToLower(entity.JoinSeries(houseSeries))

	for _, token := range strings.Split(lowerTerm, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if strings.Contains(haystack, token) {
			return true
		}
	}

	return false
}
