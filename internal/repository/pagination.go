package repository

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// normalizePage clamps per_page to [1, 100] and page to >= 1.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
