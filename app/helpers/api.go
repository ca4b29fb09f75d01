package helpers

import (
	"net/http"

	"github.com/unrolled/render"
)

func NewRenderer() *render.Render {
	return render.New(render.Options{
		IndentJSON: false,
	})
}

// Response is the envelope every endpoint answers with. Optional fields stay
// off the wire unless set, so list endpoints can carry counts and pagination
// while detail endpoints stay minimal.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Total      *int64      `json:"total,omitempty"`
	Page       *int        `json:"page,omitempty"`
	Pages      *int        `json:"pages,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func RespondData(rnd *render.Render, w http.ResponseWriter, status int, data interface{}) {
	_ = rnd.JSON(w, status, Response{Success: true, Data: data})
}

func RespondMessage(rnd *render.Render, w http.ResponseWriter, status int, message string, data interface{}) {
	_ = rnd.JSON(w, status, Response{Success: true, Message: message, Data: data})
}

func RespondError(rnd *render.Render, w http.ResponseWriter, status int, message string) {
	_ = rnd.JSON(w, status, Response{Success: false, Message: message})
}

func RespondErrorDetail(rnd *render.Render, w http.ResponseWriter, status int, message string, err error) {
	resp := Response{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	_ = rnd.JSON(w, status, resp)
}

func RespondList(rnd *render.Render, w http.ResponseWriter, count int, data interface{}) {
	_ = rnd.JSON(w, http.StatusOK, Response{Success: true, Count: &count, Data: data})
}

func RespondPagedList(rnd *render.Render, w http.ResponseWriter, count int, total int64, page, pages int, data interface{}) {
	_ = rnd.JSON(w, http.StatusOK, Response{
		Success: true,
		Count:   &count,
		Total:   &total,
		Page:    &page,
		Pages:   &pages,
		Data:    data,
	})
}

func RespondWithPagination(rnd *render.Render, w http.ResponseWriter, p Pagination, data interface{}) {
	_ = rnd.JSON(w, http.StatusOK, Response{Success: true, Data: data, Pagination: &p})
}

// TotalPages mirrors Math.ceil(total / limit).
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
