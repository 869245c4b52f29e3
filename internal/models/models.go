package models

// ListResponse is implemented by every response that carries a collection of domain entities, whatever
// the server calls the list field (courses, resources, ...). Items returns the list in server order.
// It never fails: a missing or empty field yields an empty, non-nil slice. Callers must not assume
// whether the slice aliases the response.
type ListResponse[T any] interface {
	Items() []T
}

// Warner is implemented by responses that report partial, non-fatal failures.
type Warner interface {
	WarningList() []Warning
}

// Warning is a per-item failure the server reports next to an otherwise successful result, e.g. one
// course id that could not be found in a batch.
type Warning struct {
	// Item is the kind of item the warning is about (course, module, ...).
	Item Optional[string] `json:"item" mapstructure:"item"`
	// ItemID is the id of that item.
	ItemID      Optional[int] `json:"itemid" mapstructure:"itemid"`
	WarningCode string        `json:"warningcode" mapstructure:"warningcode"`
	Message     string        `json:"message" mapstructure:"message"`
}

// WarningsResponse is returned by functions that only report warnings, such as course updates.
type WarningsResponse struct {
	Warnings []Warning `json:"warnings" mapstructure:"warnings"`
}

func (r WarningsResponse) WarningList() []Warning {
	return r.Warnings
}

// Token is the answer of the token endpoint.
type Token struct {
	Token        string           `json:"token" mapstructure:"token"`
	PrivateToken Optional[string] `json:"privatetoken" mapstructure:"privatetoken"`
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
