package command

import "smartnus/internal/domain"

// IndexConstraints is the user-facing rule for display indices.
const IndexConstraints = "Index should be a positive integer starting from 1"

// Index is a 1-based position into the currently displayed question list.
type Index struct {
	zeroBased int
}

// NewIndex builds an Index from its 1-based form. Values below 1 are rejected.
func NewIndex(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, &domain.ValidationError{Field: "index", Msg: IndexConstraints}
	}
	return Index{zeroBased: oneBased - 1}, nil
}

func (i Index) ZeroBased() int { return i.zeroBased }

func (i Index) OneBased() int { return i.zeroBased + 1 }
