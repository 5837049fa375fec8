package postgres

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/lightbnb-api/internal/domain/apperr"
	"github.com/oksasatya/lightbnb-api/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// likeMatches evaluates a PostgreSQL LIKE pattern (backslash escape) in Go.
func likeMatches(pattern, s string) bool {
	var re strings.Builder
	re.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '\\':
			if i+1 < len(pattern) {
				i++
				re.WriteString(regexp.QuoteMeta(string(pattern[i])))
			}
		case '%':
			re.WriteString(".*")
		case '_':
			re.WriteString(".")
		default:
			re.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	re.WriteString("$")
	return regexp.MustCompile(re.String()).MatchString(s)
}

func assertPlaceholdersSequential(t *testing.T, st Statement) {
	t.Helper()
	matches := placeholderRe.FindAllStringSubmatch(st.SQL, -1)
	require.Len(t, matches, len(st.Args))
	for i, m := range matches {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		assert.Equal(t, i+1, n, "placeholder %d out of order", i)
	}
}

func TestBuildPropertySearch_NoOptions(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{}, 10)
	require.NoError(t, err)

	assert.NotContains(t, st.SQL, "WHERE")
	assert.NotContains(t, st.SQL, "HAVING")
	assert.Contains(t, st.SQL, "GROUP BY properties.id")
	assert.Contains(t, st.SQL, "ORDER BY properties.cost_per_night ASC")
	assert.True(t, strings.HasSuffix(st.SQL, "LIMIT $1"))
	assert.Equal(t, []any{10}, st.Args)
}

func TestBuildPropertySearch_DefaultAndCappedLimit(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{}, 0)
	require.NoError(t, err)
	assert.Equal(t, []any{DefaultLimit}, st.Args)

	st, err = BuildPropertySearch(entity.PropertySearchOptions{}, 5000)
	require.NoError(t, err)
	assert.Equal(t, []any{MaxLimit}, st.Args)
}

func TestBuildPropertySearch_PredicateCountMatchesOptions(t *testing.T) {
	all := entity.PropertySearchOptions{
		City:                 ptr("Vancouver"),
		OwnerID:              ptr(int64(3)),
		MinimumPricePerNight: ptr(50.0),
		MaximumPricePerNight: ptr(200.0),
		MinimumRating:        ptr(4.0),
	}
	fields := []func(o *entity.PropertySearchOptions){
		func(o *entity.PropertySearchOptions) { o.City = all.City },
		func(o *entity.PropertySearchOptions) { o.OwnerID = all.OwnerID },
		func(o *entity.PropertySearchOptions) { o.MinimumPricePerNight = all.MinimumPricePerNight },
		func(o *entity.PropertySearchOptions) { o.MaximumPricePerNight = all.MaximumPricePerNight },
		func(o *entity.PropertySearchOptions) { o.MinimumRating = all.MinimumRating },
	}

	// every subset of the five options
	for mask := 0; mask < 1<<len(fields); mask++ {
		var opts entity.PropertySearchOptions
		present := 0
		for i, set := range fields {
			if mask&(1<<i) != 0 {
				set(&opts)
				present++
			}
		}
		st, err := BuildPropertySearch(opts, 10)
		require.NoError(t, err)

		assert.Len(t, st.Args, present+1, "mask %05b", mask)
		assert.Equal(t, 10, st.Args[len(st.Args)-1])
		assertPlaceholdersSequential(t, st)

		whereCount := 0
		if opts.City != nil {
			whereCount++
		}
		for _, p := range []bool{opts.OwnerID != nil, opts.MinimumPricePerNight != nil, opts.MaximumPricePerNight != nil} {
			if p {
				whereCount++
			}
		}
		conjunctions := strings.Count(st.SQL, " AND ")
		clauses := strings.Count(st.SQL, "\nWHERE ") + strings.Count(st.SQL, "\nHAVING ")
		assert.Equal(t, present, conjunctions+clauses, "mask %05b", mask)
		assert.Equal(t, whereCount > 0, strings.Contains(st.SQL, "\nWHERE "), "mask %05b", mask)
		assert.Equal(t, opts.MinimumRating != nil, strings.Contains(st.SQL, "\nHAVING "), "mask %05b", mask)
		assert.NotRegexp(t, `(WHERE|AND|HAVING)\s*(\n|$|GROUP|ORDER|LIMIT)`, st.SQL, "dangling keyword")
	}
}

func TestBuildPropertySearch_PricesBoundInCents(t *testing.T) {
	for _, dollars := range []float64{0, 1, 49.99, 150, 1234.5, entity.MaxDollars} {
		st, err := BuildPropertySearch(entity.PropertySearchOptions{
			MinimumPricePerNight: ptr(dollars),
			MaximumPricePerNight: ptr(dollars),
		}, 10)
		require.NoError(t, err)
		want := int64(math.Round(dollars * 100))
		assert.Equal(t, []any{want, want, 10}, st.Args)
	}
}

func TestBuildPropertySearch_IndependentPriceBounds(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{MaximumPricePerNight: ptr(80.0)}, 10)
	require.NoError(t, err)
	assert.Contains(t, st.SQL, "WHERE properties.cost_per_night <= $1")
	assert.NotContains(t, st.SQL, ">=")
	assert.Equal(t, []any{int64(8000), 10}, st.Args)

	st, err = BuildPropertySearch(entity.PropertySearchOptions{City: ptr("Paris"), MinimumPricePerNight: ptr(80.0)}, 10)
	require.NoError(t, err)
	assert.Contains(t, st.SQL, "WHERE properties.city LIKE $1 AND properties.cost_per_night >= $2")
	assert.Equal(t, []any{"%Paris%", int64(8000), 10}, st.Args)
}

func TestBuildPropertySearch_CityPattern(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{City: ptr("ork")}, 10)
	require.NoError(t, err)

	require.Equal(t, "%ork%", st.Args[0])
	assert.Contains(t, st.SQL, "properties.city LIKE $1")
	pattern := st.Args[0].(string)
	assert.True(t, likeMatches(pattern, "New York"))
	assert.True(t, likeMatches(pattern, "York"))
	assert.False(t, likeMatches(pattern, "Boston"))
	assert.False(t, likeMatches(pattern, "New YORK"), "match is case-sensitive")
}

func TestBuildPropertySearch_CityWildcardsEscaped(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{City: ptr("50%_off")}, 10)
	require.NoError(t, err)
	pattern := st.Args[0].(string)
	assert.Equal(t, `%50\%\_off%`, pattern)
	assert.True(t, likeMatches(pattern, "Town 50%_off"))
	assert.False(t, likeMatches(pattern, "Town 50Xyoff"))
}

func TestBuildPropertySearch_BlankCityIgnored(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{City: ptr("   ")}, 10)
	require.NoError(t, err)
	assert.NotContains(t, st.SQL, "WHERE")
	assert.Len(t, st.Args, 1)
}

func TestBuildPropertySearch_MinimumRatingAfterAggregation(t *testing.T) {
	st, err := BuildPropertySearch(entity.PropertySearchOptions{
		OwnerID:       ptr(int64(9)),
		MinimumRating: ptr(4.0),
	}, 10)
	require.NoError(t, err)

	group := strings.Index(st.SQL, "GROUP BY")
	having := strings.Index(st.SQL, "HAVING avg(property_reviews.rating) >= $2")
	order := strings.Index(st.SQL, "ORDER BY")
	require.NotEqual(t, -1, having)
	assert.Less(t, group, having)
	assert.Less(t, having, order)
	assert.NotContains(t, st.SQL[:group], "avg(property_reviews.rating) >=")
	assert.Equal(t, []any{int64(9), 4.0, 10}, st.Args)
}

func TestBuildPropertySearch_ValidationFailures(t *testing.T) {
	cases := map[string]entity.PropertySearchOptions{
		"negative minimum": {MinimumPricePerNight: ptr(-1.0)},
		"negative maximum": {MaximumPricePerNight: ptr(-0.5)},
		"nan price":        {MinimumPricePerNight: ptr(math.NaN())},
		"infinite price":   {MaximumPricePerNight: ptr(math.Inf(1))},
		"huge minimum":     {MinimumPricePerNight: ptr(1e20)},
		"huge maximum":     {MaximumPricePerNight: ptr(entity.MaxDollars + 1)},
		"inverted bounds":  {MinimumPricePerNight: ptr(300.0), MaximumPricePerNight: ptr(100.0)},
		"rating too high":  {MinimumRating: ptr(5.5)},
		"rating negative":  {MinimumRating: ptr(-1.0)},
		"rating nan":       {MinimumRating: ptr(math.NaN())},
		"owner zero":       {OwnerID: ptr(int64(0))},
	}
	for name, opts := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildPropertySearch(opts, 10)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}
