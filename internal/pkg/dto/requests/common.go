package requests

type Pagination struct {
	Page     int
	PageSize int
}

type QueryParams struct {
	Specialization string
	Date           string
	Page           int
	PageSize       int
}
