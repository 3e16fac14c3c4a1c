// file: internals/features/students/marks/controller/student_mark_controller.go
package controller

import (
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	dto "studentmarks_backend/internals/features/students/marks/dto"
	model "studentmarks_backend/internals/features/students/marks/model"
	"studentmarks_backend/internals/features/students/marks/repository"
	"studentmarks_backend/internals/features/students/marks/service"
	helper "studentmarks_backend/internals/helpers"
)

const (
	MsgNotFound    = "Student data not found"
	MsgSaveError   = "Error saving data"
	MsgFetchError  = "Error fetching data"
	MsgBadPayload  = "Invalid form payload"
	msgInvalidPref = "Invalid input: "
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type StudentMarkController struct {
	Service   *service.StudentMarkService
	Validator *validator.Validate
}

func NewStudentMarkController(svc *service.StudentMarkService) *StudentMarkController {
	return &StudentMarkController{Service: svc, Validator: helper.NewValidator()}
}

// GET /
func (h *StudentMarkController) ShowForm(c *fiber.Ctx) error {
	slots := make([]int, model.SubjectsPerSubmission)
	for i := range slots {
		slots[i] = i + 1
	}
	return c.Render("form", fiber.Map{
		"Title": "Student Marks",
		"Slots": slots,
	})
}

// POST /submit
func (h *StudentMarkController) Submit(c *fiber.Ctx) error {
	var f dto.SubmitStudentMarkForm
	if err := c.BodyParser(&f); err != nil {
		return helper.PlainText(c, fiber.StatusBadRequest, MsgBadPayload)
	}
	f.Normalize()

	if err := h.Validator.Struct(&f); err != nil {
		fields := helper.ValidationErrorsToMap(err)
		log.Printf("[STUDENT_MARKS][SUBMIT] ⚠️ rejected fields=%v", fields)
		return helper.PlainText(c, fiber.StatusBadRequest, msgInvalidPref+strings.Join(helper.FieldNames(fields), ", "))
	}

	rec, fields := f.ToModel()
	if fields != nil {
		return helper.PlainText(c, fiber.StatusBadRequest, msgInvalidPref+strings.Join(helper.FieldNames(fields), ", "))
	}

	id, err := h.Service.Submit(c.UserContext(), rec)
	if err != nil {
		return helper.PlainText(c, fiber.StatusInternalServerError, MsgSaveError)
	}

	return c.Redirect("/result?id="+url.QueryEscape(id), fiber.StatusFound)
}

// GET /result?id=
func (h *StudentMarkController) Result(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		// tanpa id: tidak ada yang bisa dicari → tampil sebagai not found
		return helper.PlainText(c, fiber.StatusOK, MsgNotFound)
	}

	rec, err := h.Service.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentMarkNotFound) {
			return helper.PlainText(c, fiber.StatusOK, MsgNotFound)
		}
		return helper.PlainText(c, fiber.StatusInternalServerError, MsgFetchError)
	}

	return c.Render("result", dto.FromModel(rec))
}

/* =======================================================
   JSON API
   ======================================================= */

// POST /api/students/marks
func (h *StudentMarkController) CreateJSON(c *fiber.Ctx) error {
	var req dto.CreateStudentMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	req.Normalize()

	if err := h.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	rec := req.ToModel()
	id, err := h.Service.Submit(c.UserContext(), rec)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, MsgSaveError)
	}

	c.Location("/api/students/marks/" + id)
	return helper.JsonCreated(c, "student mark created", dto.FromModel(rec))
}

// GET /api/students/marks/:id
func (h *StudentMarkController) GetJSON(c *fiber.Ctx) error {
	rec, err := h.Service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentMarkNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, MsgNotFound)
		case errors.Is(err, repository.ErrInvalidStudentMarkID):
			return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, MsgFetchError)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(rec))
}
