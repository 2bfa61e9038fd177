package schemas

const (
	// DefaultLimit bounds a page when the client does not ask for one. No
	// upper cap is applied.
	DefaultLimit  = 100
	DefaultOffset = 0
)

// BaseFilterParams carries pagination shared by every filtered listing.
// OrderBy is accepted for interface parity but listings always order by
// creation time descending.
type BaseFilterParams struct {
	Limit   int
	Offset  int
	OrderBy string
}

// NewBaseFilterParams applies defaults for absent limit/offset.
func NewBaseFilterParams(limit, offset *int, orderBy string) BaseFilterParams {
	p := BaseFilterParams{Limit: DefaultLimit, Offset: DefaultOffset, OrderBy: orderBy}
	if limit != nil {
		p.Limit = *limit
	}
	if offset != nil {
		p.Offset = *offset
	}
	return p
}

// UserFilterParams adds the user-specific filters. Empty strings mean the
// filter is unset and contributes no predicate. CreatedFrom/CreatedTo are
// inclusive date bounds on the created column.
type UserFilterParams struct {
	BaseFilterParams
	Username    string
	Phone       string
	CreatedFrom string
	CreatedTo   string
}
