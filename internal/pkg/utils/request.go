package utils

import (
	"fmt"
	"mediconnect-service/internal/pkg/constvars"
	"mediconnect-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"

	"github.com/google/uuid"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = 10
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func BuildQueryParamsRequest(r *http.Request) *requests.QueryParams {
	pagination := BuildPaginationRequest(r)
	return &requests.QueryParams{
		Specialization: r.URL.Query().Get("specialization"),
		Date:           r.URL.Query().Get("date"),
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	}
}

func GenerateRequestID() string {
	return fmt.Sprintf("%s%s", constvars.REQUEST_ID_PREFIX, uuid.New().String())
}
