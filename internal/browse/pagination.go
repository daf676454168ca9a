package browse

import "github.com/mmcdole/flick/internal/domain"

// Status is the load state of one result list
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusEmpty
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusEmpty:
		return "empty"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Results is the paginated list owned by one mode. Page is the last page
// requested, TotalPages the last count the API reported.
type Results struct {
	Items      []domain.Item
	Page       int
	TotalPages int
	Status     Status
	Err        error
}

func newResults() Results {
	return Results{Page: 1, TotalPages: 1}
}

// HasMore reports whether another page can be requested
func (r *Results) HasMore() bool {
	return r.Page < r.TotalPages
}

func (r *Results) clear() {
	*r = newResults()
}

// begin advances the cursor to page n before the request resolves
func (r *Results) begin(n int) {
	r.Page = n
	r.Status = StatusLoading
	r.Err = nil
}

// merge applies a successful response for page n: page 1 replaces,
// later pages append in API order.
func (r *Results) merge(n int, p domain.Page) {
	if n <= 1 {
		r.Items = append([]domain.Item(nil), p.Items...)
	} else {
		r.Items = append(r.Items, p.Items...)
	}

	r.TotalPages = max(p.TotalPages, 1)
	r.Err = nil
	if len(r.Items) == 0 {
		r.Status = StatusEmpty
	} else {
		r.Status = StatusReady
	}
}

// fail applies a failed response for page n. A failed first page clears
// the list so no stale data sits under the error; a failed later page
// rolls the cursor back so a retry targets the same page.
func (r *Results) fail(n int, err error) {
	r.Err = err
	r.Status = StatusFailed
	if n <= 1 {
		r.Items = nil
		r.Page = 1
		r.TotalPages = 1
		return
	}
	r.Page = n - 1
}
