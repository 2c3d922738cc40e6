package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lesterlimjj/tp-sub001/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestNewPageParams_Defaults(t *testing.T) {
	p := domain.NewPageParams(nil, nil)

	assert.Equal(t, domain.PageParams{Page: 1, Limit: 20}, p)
	assert.Equal(t, 0, p.Offset())
}

func TestNewPageParams_CapsLimit(t *testing.T) {
	p := domain.NewPageParams(intPtr(3), intPtr(500))

	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())
}

func TestNewPageParams_IgnoresNonPositive(t *testing.T) {
	p := domain.NewPageParams(intPtr(0), intPtr(-4))

	assert.Equal(t, domain.PageParams{Page: 1, Limit: 20}, p)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4}, domain.Paginate(items, domain.PageParams{Page: 2, Limit: 2}))
	assert.Equal(t, []int{5}, domain.Paginate(items, domain.PageParams{Page: 3, Limit: 2}))
	assert.Empty(t, domain.Paginate(items, domain.PageParams{Page: 4, Limit: 2}))
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	p := domain.NewPageParams(intPtr(math.MaxInt), intPtr(20))

	assert.NotPanics(t, func() {
		assert.Empty(t, domain.Paginate([]int{1, 2, 3}, p))
	})
}

func TestPaginate_ZeroParamsIsEmpty(t *testing.T) {
	assert.Empty(t, domain.Paginate([]int{1, 2, 3}, domain.PageParams{}))
}
