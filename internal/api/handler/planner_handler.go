package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"course-planner/internal/dto"
	"course-planner/internal/model"
	"course-planner/internal/planner"
	"course-planner/internal/service"
	"course-planner/pkg/response"
)

// 业务拒绝原因 → 业务码
var reasonCodes = map[planner.Reason]int{
	planner.ReasonEmptyCode:           20001,
	planner.ReasonScheduleConflict:    20002,
	planner.ReasonDuplicateSlot:       20003,
	planner.ReasonIncompleteNewCourse: 20004,
}

// 学分下拉框可选值
var unitChoices = []int{0, 1, 2, 3, 4}

// PlannerHandler 选课模块 HTTP 处理器
type PlannerHandler struct {
	plannerSvc service.PlannerService
}

// NewPlannerHandler 创建 PlannerHandler
func NewPlannerHandler(plannerSvc service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerSvc: plannerSvc}
}

// ListCourses 获取已选课程与总学分
// GET /api/v1/courses
func (h *PlannerHandler) ListCourses(c *gin.Context) {
	response.OK(c, dto.CourseListResponse{
		List:       h.plannerSvc.GetCourses(),
		TotalUnits: h.plannerSvc.GetTotalUnits(),
	})
}

// SubmitCourse 提交课程或为已有课程追加上课时间
// POST /api/v1/courses
func (h *PlannerHandler) SubmitCourse(c *gin.Context) {
	var req dto.SubmitCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, 10001, "参数校验失败", err.Error())
		return
	}

	result, err := h.plannerSvc.Submit(c.Request.Context(), req.ToCandidate())
	if err != nil {
		response.InternalError(c)
		return
	}

	if !result.Accepted {
		code, ok := reasonCodes[planner.Reason(result.Reason)]
		if !ok {
			code = 20000
		}
		response.UnprocessableEntity(c, code, result.Message, result)
		return
	}

	response.OK(c, result)
}

// DeleteCourse 按课程代码删除，不存在时同样返回成功
// DELETE /api/v1/courses/:code
func (h *PlannerHandler) DeleteCourse(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.BadRequest(c, 10001, "课程代码不能为空")
		return
	}

	if err := h.plannerSvc.DeleteCourse(c.Request.Context(), code); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, dto.TotalUnitsResponse{TotalUnits: h.plannerSvc.GetTotalUnits()})
}

// ResetAll 清空全部课程
// DELETE /api/v1/courses
func (h *PlannerHandler) ResetAll(c *gin.Context) {
	if err := h.plannerSvc.ResetAll(c.Request.Context()); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// GetTotalUnits 获取总学分
// GET /api/v1/units
func (h *PlannerHandler) GetTotalUnits(c *gin.Context) {
	response.OK(c, dto.TotalUnitsResponse{TotalUnits: h.plannerSvc.GetTotalUnits()})
}

// GetAlert 获取当前提示，无提示时 message 为空串
// GET /api/v1/alert
func (h *PlannerHandler) GetAlert(c *gin.Context) {
	response.OK(c, dto.AlertResponse{Message: h.plannerSvc.GetAlertMessage()})
}

// GetForm 获取输入框当前状态
// GET /api/v1/form
func (h *PlannerHandler) GetForm(c *gin.Context) {
	response.OK(c, h.plannerSvc.GetForm())
}

// GetOptions 获取各下拉框选项
// GET /api/v1/options
func (h *PlannerHandler) GetOptions(c *gin.Context) {
	resp := dto.OptionsResponse{Defaults: planner.DefaultForm()}
	for _, u := range unitChoices {
		resp.Units = append(resp.Units, dto.Option{Value: u, Label: strconv.Itoa(u)})
	}
	for _, d := range model.Weekdays {
		resp.Weekdays = append(resp.Weekdays, dto.Option{Value: d, Label: d.Label()})
	}
	for _, hr := range model.SlotHours {
		resp.Hours = append(resp.Hours, dto.Option{Value: hr, Label: hr.Label()})
	}
	for _, r := range model.Recurrences {
		resp.Recurrences = append(resp.Recurrences, dto.Option{Value: r, Label: r.Label()})
	}
	response.OK(c, resp)
}

// GetTimetable 获取周课表
// GET /api/v1/timetable
func (h *PlannerHandler) GetTimetable(c *gin.Context) {
	response.OK(c, h.plannerSvc.GetTimetable())
}
