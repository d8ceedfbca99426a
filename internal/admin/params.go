package admin

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names that are not filters.
const (
	OrderParam    = "o"
	PageParam     = "page"
	PageSizeParam = "page_size"
)

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// ListParams is the change-list state of one request: the raw filter
// selections keyed by parameter name, the ordering and the page.
type ListParams struct {
	Filters  map[string]string
	Order    string
	Page     int
	PageSize int
}

// ParseListParams lifts the change-list state out of request query values.
// Unknown keys are kept as filter selections so that filters can reject them.
func ParseListParams(values url.Values) ListParams {
	params := ListParams{
		Filters:  make(map[string]string),
		Order:    strings.TrimSpace(values.Get(OrderParam)),
		Page:     1,
		PageSize: DefaultPageSize,
	}

	for key, vals := range values {
		switch key {
		case OrderParam, PageParam, PageSizeParam:
			continue
		}
		if len(vals) > 0 {
			params.Filters[key] = vals[0]
		}
	}

	if page, err := strconv.Atoi(values.Get(PageParam)); err == nil && page > 0 {
		params.Page = page
	}
	if size, err := strconv.Atoi(values.Get(PageSizeParam)); err == nil && size > 0 {
		if size > MaxPageSize {
			size = MaxPageSize
		}
		params.PageSize = size
	}

	return params
}

// Value returns the selection for a parameter and whether it was present.
func (p ListParams) Value(name string) (string, bool) {
	v, ok := p.Filters[name]
	return v, ok
}

// QueryString encodes the current selection with the given overrides and
// removals applied. A changed selection always lands back on page one.
func (p ListParams) QueryString(set map[string]string, remove ...string) string {
	values := url.Values{}
	for k, v := range p.Filters {
		values.Set(k, v)
	}
	if p.Order != "" {
		values.Set(OrderParam, p.Order)
	}
	if p.PageSize != DefaultPageSize && p.PageSize > 0 {
		values.Set(PageSizeParam, strconv.Itoa(p.PageSize))
	}
	for k, v := range set {
		values.Set(k, v)
	}
	for _, k := range remove {
		values.Del(k)
	}
	return "?" + values.Encode()
}
