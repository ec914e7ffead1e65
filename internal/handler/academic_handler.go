package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shule-labs/shule-api/internal/service"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
	"github.com/shule-labs/shule-api/pkg/response"
)

// AcademicHandler exposes exam and mark endpoints.
type AcademicHandler struct {
	academics *service.AcademicService
}

// NewAcademicHandler constructs AcademicHandler.
func NewAcademicHandler(academics *service.AcademicService) *AcademicHandler {
	return &AcademicHandler{academics: academics}
}

// ListExams godoc
// @Summary List exams
// @Tags Academics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /exams [get]
func (h *AcademicHandler) ListExams(c *gin.Context) {
	exams, err := h.academics.ListExams(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exams)
}

// CreateExam godoc
// @Summary Schedule exam
// @Tags Academics
// @Accept json
// @Produce json
// @Param payload body service.CreateExamRequest true "Exam payload"
// @Success 201 {object} response.Envelope
// @Router /exams [post]
func (h *AcademicHandler) CreateExam(c *gin.Context) {
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.academics.CreateExam(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// ListMarks godoc
// @Summary List marks
// @Tags Academics
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /marks [get]
func (h *AcademicHandler) ListMarks(c *gin.Context) {
	marks, err := h.academics.ListMarks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, marks)
}

// RecordMark godoc
// @Summary Record mark
// @Tags Academics
// @Accept json
// @Produce json
// @Param payload body service.RecordMarkRequest true "Mark payload"
// @Success 201 {object} response.Envelope
// @Router /marks [post]
func (h *AcademicHandler) RecordMark(c *gin.Context) {
	var req service.RecordMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	mark, err := h.academics.RecordMark(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, mark)
}
