package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"milkbill/pkg/bill/report"
	svc "milkbill/pkg/bill/service"
)

type httpCtrl struct{ s svc.BillService }

func New(s svc.BillService) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Create(c echo.Context) error {
	var req svc.CreateBillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	b, err := h.s.Create(req)
	if err != nil {
		var verr *svc.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "validation failed",
				"details": verr.Details,
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create bill"})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *httpCtrl) List(c echo.Context) error {
	list, err := h.s.List(c.QueryParam("query"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to list bills"})
	}
	return c.JSON(http.StatusOK, list)
}

// Search is List with a mandatory query; a missing or blank query is a client
// error, not an empty result.
func (h *httpCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("query"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "query parameter is required"})
	}
	list, err := h.s.List(q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to search bills"})
	}
	return c.JSON(http.StatusOK, list)
}

func (h *httpCtrl) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "bill not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "bill deleted"})
}

func (h *httpCtrl) Summary(c echo.Context) error {
	sum, err := h.s.Summarize(c.QueryParam("query"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to summarize bills"})
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *httpCtrl) Export(c echo.Context) error {
	list, err := h.s.List(c.QueryParam("query"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to export bills"})
	}
	f, err := report.Workbook(list)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to build workbook"})
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="bills.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
