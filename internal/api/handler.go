package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/salesops/sales-portal/internal/domain"
	apperrors "github.com/salesops/sales-portal/internal/errors"
	"github.com/salesops/sales-portal/internal/reporting"
	"github.com/salesops/sales-portal/internal/storage"
)

const dateLayout = "2006-01-02"

// Handler handles API requests
type Handler struct {
	storage  storage.Storage
	reporter reporting.Reporter
}

// NewHandler creates a new API handler
func NewHandler(store storage.Storage, reporter reporting.Reporter) *Handler {
	return &Handler{
		storage:  store,
		reporter: reporter,
	}
}

// HealthCheck returns the health status of the API
// GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GetDashboardSummary returns the dashboard summary for a reporting period
// @Summary Dashboard summary
// @Description Revenue totals, achievement percentage, sales series and top performers for a period
// @Tags reporting
// @Produce json
// @Param period query string false "Reporting period" Enums(daily, weekly, monthly) default(weekly)
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /reporting/summary [get]
func (h *Handler) GetDashboardSummary(c *gin.Context) {
	period := reporting.ParsePeriod(c.Query("period"))

	// An absent or unparseable date falls back to now rather than
	// rejecting the request
	ref := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		if t, err := time.Parse(dateLayout, dateStr); err == nil {
			ref = t
		}
	}

	summary, err := h.reporter.Summarize(c.Request.Context(), period, ref)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

/* ---------- users ---------- */

type createUserRequest struct {
	Name               string  `json:"name" binding:"required"`
	Email              string  `json:"email" binding:"required,email"`
	Role               string  `json:"role" binding:"omitempty,oneof=admin employee"`
	Phone              string  `json:"phone" binding:"omitempty,numeric,len=10"`
	Team               string  `json:"team"`
	MonthlyCallTarget  int     `json:"monthlyCallTarget" binding:"omitempty,min=0"`
	MonthlySalesTarget float64 `json:"monthlySalesTarget" binding:"omitempty,min=0"`
}

type updateUserRequest struct {
	Name               *string  `json:"name"`
	Email              *string  `json:"email" binding:"omitempty,email"`
	Role               *string  `json:"role" binding:"omitempty,oneof=admin employee"`
	Phone              *string  `json:"phone" binding:"omitempty,numeric,len=10"`
	Team               *string  `json:"team"`
	MonthlyCallTarget  *int     `json:"monthlyCallTarget" binding:"omitempty,min=0"`
	MonthlySalesTarget *float64 `json:"monthlySalesTarget" binding:"omitempty,min=0"`
	IsActive           *bool    `json:"isActive"`
}

// CreateUser creates a new user
// POST /api/v1/users
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	existing, err := h.storage.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing != nil {
		respondError(c, apperrors.NewBadRequestError("user with this email already exists"))
		return
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleEmployee
	}

	now := time.Now()
	user := &domain.User{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Email:              req.Email,
		Role:               role,
		Phone:              req.Phone,
		Team:               req.Team,
		MonthlyCallTarget:  req.MonthlyCallTarget,
		MonthlySalesTarget: req.MonthlySalesTarget,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := h.storage.SaveUser(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user})
}

// GetUsers returns all users
// GET /api/v1/users
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.storage.GetUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

// CountEmployees returns the number of active employees
// GET /api/v1/users/count/employees
func (h *Handler) CountEmployees(c *gin.Context) {
	count, err := h.storage.CountEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CheckUserByEmail reports whether a user exists with the given email
// GET /api/v1/users/check?email=...
func (h *Handler) CheckUserByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		respondError(c, apperrors.NewBadRequestError("email is required"))
		return
	}

	user, err := h.storage.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exists": user != nil})
}

// UpdateUser updates an existing user
// PUT /api/v1/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	user, err := h.storage.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if user == nil {
		respondError(c, apperrors.NewNotFoundError("user"))
		return
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := h.storage.GetUserByEmail(c.Request.Context(), *req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		if existing != nil {
			respondError(c, apperrors.NewBadRequestError("user with this email already exists"))
			return
		}
		user.Email = *req.Email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = domain.Role(*req.Role)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Team != nil {
		user.Team = *req.Team
	}
	if req.MonthlyCallTarget != nil {
		user.MonthlyCallTarget = *req.MonthlyCallTarget
	}
	if req.MonthlySalesTarget != nil {
		user.MonthlySalesTarget = *req.MonthlySalesTarget
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	user.UpdatedAt = time.Now()

	if err := h.storage.SaveUser(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// DeleteUser deletes a user
// DELETE /api/v1/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.storage.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

/* ---------- leads ---------- */

type createLeadRequest struct {
	ClientName    string     `json:"clientName" binding:"required,min=3"`
	ClientCompany string     `json:"clientCompany" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Mobile        string     `json:"mobile" binding:"required,numeric,len=10"`
	ProjectName   string     `json:"projectName" binding:"required"`
	Status        string     `json:"status" binding:"omitempty,oneof='Follow Up' Interested 'Not Interested' Open Closed Pending Done"`
	FollowUpDate  *time.Time `json:"followUpDate"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Budget        float64    `json:"budget" binding:"omitempty,min=0"`
	Reference     string     `json:"reference"`
	AssignedTo    string     `json:"assignedTo" binding:"required,email"`
	CreatedBy     string     `json:"createdBy"`
}

type updateLeadRequest struct {
	ClientName    *string    `json:"clientName" binding:"omitempty,min=3"`
	ClientCompany *string    `json:"clientCompany"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Mobile        *string    `json:"mobile" binding:"omitempty,numeric,len=10"`
	ProjectName   *string    `json:"projectName"`
	Status        *string    `json:"status" binding:"omitempty,oneof='Follow Up' Interested 'Not Interested' Open Closed Pending Done"`
	FollowUpDate  *time.Time `json:"followUpDate"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Budget        *float64   `json:"budget" binding:"omitempty,min=0"`
	Reference     *string    `json:"reference"`
	AssignedTo    *string    `json:"assignedTo" binding:"omitempty,email"`
}

// GetLeads returns all leads
// GET /api/v1/leads
func (h *Handler) GetLeads(c *gin.Context) {
	leads, err := h.storage.GetLeads(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": leads})
}

// GetFollowUpLeads returns follow-up leads ordered by follow-up date
// GET /api/v1/leads/follow-ups
func (h *Handler) GetFollowUpLeads(c *gin.Context) {
	leads, err := h.storage.GetFollowUpLeads(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": leads})
}

// GetLeadsByAssignee returns leads assigned to a user
// GET /api/v1/leads/assigned/:email
func (h *Handler) GetLeadsByAssignee(c *gin.Context) {
	leads, err := h.storage.GetLeadsByAssignee(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": leads})
}

// CreateLead creates a new lead
// @Summary Create lead
// @Description Create a sales lead assigned to an existing user
// @Tags leads
// @Accept json
// @Produce json
// @Param lead body createLeadRequest true "Lead"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "Validation failure or unknown assignee"
// @Router /leads [post]
func (h *Handler) CreateLead(c *gin.Context) {
	var req createLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	// The assignee must be a registered user
	assignee, err := h.storage.GetUserByEmail(c.Request.Context(), req.AssignedTo)
	if err != nil {
		respondError(c, err)
		return
	}
	if assignee == nil {
		respondError(c, apperrors.NewBadRequestError("user does not exist with this email"))
		return
	}

	status := domain.LeadStatus(req.Status)
	if status == "" {
		status = domain.LeadStatusFollowUp
	}

	now := time.Now()
	lead := &domain.Lead{
		ID:            uuid.New().String(),
		ClientName:    req.ClientName,
		ClientCompany: req.ClientCompany,
		Email:         req.Email,
		Mobile:        req.Mobile,
		ProjectName:   req.ProjectName,
		Status:        status,
		FollowUpDate:  req.FollowUpDate,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Budget:        req.Budget,
		Reference:     req.Reference,
		AssignedTo:    assignee.Email,
		CreatedBy:     req.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.storage.SaveLead(c.Request.Context(), lead); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": lead})
}

// UpdateLead updates an existing lead
// PUT /api/v1/leads/:id
func (h *Handler) UpdateLead(c *gin.Context) {
	id := c.Param("id")

	var req updateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	lead, err := h.storage.GetLeadByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if lead == nil {
		respondError(c, apperrors.NewNotFoundError("lead"))
		return
	}

	if req.ClientName != nil {
		lead.ClientName = *req.ClientName
	}
	if req.ClientCompany != nil {
		lead.ClientCompany = *req.ClientCompany
	}
	if req.Email != nil {
		lead.Email = *req.Email
	}
	if req.Mobile != nil {
		lead.Mobile = *req.Mobile
	}
	if req.ProjectName != nil {
		lead.ProjectName = *req.ProjectName
	}
	if req.Status != nil {
		lead.Status = domain.LeadStatus(*req.Status)
	}
	if req.FollowUpDate != nil {
		lead.FollowUpDate = req.FollowUpDate
	}
	if req.StartDate != nil {
		lead.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		lead.EndDate = req.EndDate
	}
	if req.Budget != nil {
		lead.Budget = *req.Budget
	}
	if req.Reference != nil {
		lead.Reference = *req.Reference
	}
	if req.AssignedTo != nil {
		assignee, err := h.storage.GetUserByEmail(c.Request.Context(), *req.AssignedTo)
		if err != nil {
			respondError(c, err)
			return
		}
		if assignee == nil {
			respondError(c, apperrors.NewBadRequestError("user does not exist with this email"))
			return
		}
		lead.AssignedTo = assignee.Email
	}
	lead.UpdatedAt = time.Now()

	if err := h.storage.SaveLead(c.Request.Context(), lead); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": lead})
}

// DeleteLead deletes a lead
// DELETE /api/v1/leads/:id
func (h *Handler) DeleteLead(c *gin.Context) {
	id := c.Param("id")

	lead, err := h.storage.GetLeadByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if lead == nil {
		respondError(c, apperrors.NewNotFoundError("lead"))
		return
	}

	if err := h.storage.DeleteLead(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "lead deleted"})
}

/* ---------- tasks ---------- */

type createTaskRequest struct {
	Client        string `json:"client" binding:"required"`
	AssigneeEmail string `json:"assigneeEmail" binding:"required,email"`
	Type          string `json:"type" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Note          string `json:"note"`
	Status        string `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed"`
}

type updateTaskRequest struct {
	Client        *string `json:"client"`
	AssigneeEmail *string `json:"assigneeEmail" binding:"omitempty,email"`
	Type          *string `json:"type"`
	Date          *string `json:"date"`
	Note          *string `json:"note"`
	Status        *string `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed"`
}

// GetTasks returns all tasks, or the tasks of one assignee when the
// assignee query parameter is set
// GET /api/v1/tasks[?assignee=...]
func (h *Handler) GetTasks(c *gin.Context) {
	var tasks []*domain.Task
	var err error

	if assignee := c.Query("assignee"); assignee != "" {
		tasks, err = h.storage.GetTasksByAssignee(c.Request.Context(), assignee)
	} else {
		tasks, err = h.storage.GetTasks(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": tasks})
}

// CreateTask creates a new task
// POST /api/v1/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format"))
		return
	}

	assignee, err := h.storage.GetUserByEmail(c.Request.Context(), req.AssigneeEmail)
	if err != nil {
		respondError(c, err)
		return
	}
	if assignee == nil {
		respondError(c, apperrors.NewBadRequestError("user does not exist with this email"))
		return
	}

	status := domain.TaskStatus(req.Status)
	if status == "" {
		status = domain.TaskStatusPending
	}

	now := time.Now()
	task := &domain.Task{
		ID:            uuid.New().String(),
		Client:        req.Client,
		AssigneeEmail: assignee.Email,
		Type:          req.Type,
		Date:          date,
		Note:          req.Note,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.storage.SaveTask(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": task})
}

// UpdateTask updates an existing task
// PUT /api/v1/tasks/:id
func (h *Handler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	task, err := h.storage.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if task == nil {
		respondError(c, apperrors.NewNotFoundError("task"))
		return
	}

	if req.Client != nil {
		task.Client = *req.Client
	}
	if req.AssigneeEmail != nil {
		task.AssigneeEmail = *req.AssigneeEmail
	}
	if req.Type != nil {
		task.Type = *req.Type
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			respondError(c, apperrors.NewBadRequestError("date must be in YYYY-MM-DD format"))
			return
		}
		task.Date = date
	}
	if req.Note != nil {
		task.Note = *req.Note
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	task.UpdatedAt = time.Now()

	if err := h.storage.SaveTask(c.Request.Context(), task); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": task})
}

// DeleteTask deletes a task
// DELETE /api/v1/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	task, err := h.storage.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if task == nil {
		respondError(c, apperrors.NewNotFoundError("task"))
		return
	}

	if err := h.storage.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

/* ---------- projects ---------- */

type createProjectRequest struct {
	ClientName    string     `json:"clientName" binding:"required,min=3"`
	ClientCompany string     `json:"clientCompany" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Mobile        string     `json:"mobile" binding:"required,numeric,len=10"`
	ProjectName   string     `json:"projectName" binding:"required"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Budget        float64    `json:"budget" binding:"omitempty,min=0"`
	Reference     string     `json:"reference"`
	SourceLeadID  string     `json:"sourceLeadId"`
	CreatedBy     string     `json:"createdBy"`
}

type updateProjectRequest struct {
	ClientName    *string    `json:"clientName" binding:"omitempty,min=3"`
	ClientCompany *string    `json:"clientCompany"`
	Email         *string    `json:"email" binding:"omitempty,email"`
	Mobile        *string    `json:"mobile" binding:"omitempty,numeric,len=10"`
	ProjectName   *string    `json:"projectName"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Budget        *float64   `json:"budget" binding:"omitempty,min=0"`
	Reference     *string    `json:"reference"`
}

// GetProjects returns all projects
// GET /api/v1/projects
func (h *Handler) GetProjects(c *gin.Context) {
	projects, err := h.storage.GetProjects(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": projects})
}

// CreateProject creates a new project
// POST /api/v1/projects
func (h *Handler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		respondError(c, apperrors.NewBadRequestError("end date must not be before start date"))
		return
	}

	existing, err := h.storage.GetProjectByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing != nil {
		respondError(c, apperrors.NewBadRequestError("project with this email already exists"))
		return
	}

	now := time.Now()
	project := &domain.Project{
		ID:            uuid.New().String(),
		ClientName:    req.ClientName,
		ClientCompany: req.ClientCompany,
		Email:         req.Email,
		Mobile:        req.Mobile,
		ProjectName:   req.ProjectName,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Budget:        req.Budget,
		Reference:     req.Reference,
		SourceLeadID:  req.SourceLeadID,
		CreatedBy:     req.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.storage.SaveProject(c.Request.Context(), project); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": project})
}

// UpdateProject updates an existing project
// PUT /api/v1/projects/:id
func (h *Handler) UpdateProject(c *gin.Context) {
	id := c.Param("id")

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	project, err := h.storage.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		respondError(c, apperrors.NewNotFoundError("project"))
		return
	}

	if req.Email != nil && *req.Email != project.Email {
		existing, err := h.storage.GetProjectByEmail(c.Request.Context(), *req.Email)
		if err != nil {
			respondError(c, err)
			return
		}
		if existing != nil {
			respondError(c, apperrors.NewBadRequestError("project with this email already exists"))
			return
		}
		project.Email = *req.Email
	}

	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.ClientCompany != nil {
		project.ClientCompany = *req.ClientCompany
	}
	if req.Mobile != nil {
		project.Mobile = *req.Mobile
	}
	if req.ProjectName != nil {
		project.ProjectName = *req.ProjectName
	}
	if req.StartDate != nil {
		project.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		project.EndDate = req.EndDate
	}
	if project.StartDate != nil && project.EndDate != nil && project.EndDate.Before(*project.StartDate) {
		respondError(c, apperrors.NewBadRequestError("end date must not be before start date"))
		return
	}
	if req.Budget != nil {
		project.Budget = *req.Budget
	}
	if req.Reference != nil {
		project.Reference = *req.Reference
	}
	project.UpdatedAt = time.Now()

	if err := h.storage.SaveProject(c.Request.Context(), project); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": project})
}

// DeleteProject deletes a project
// DELETE /api/v1/projects/:id
func (h *Handler) DeleteProject(c *gin.Context) {
	id := c.Param("id")

	project, err := h.storage.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if project == nil {
		respondError(c, apperrors.NewNotFoundError("project"))
		return
	}

	if err := h.storage.DeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

/* ---------- allocations ---------- */

type createAllocationRequest struct {
	ProjectName string `json:"projectName" binding:"required"`
	ProjectID   int    `json:"projectId" binding:"required"`
	ITTeam      string `json:"itTeam" binding:"required"`
	TeamLead    string `json:"teamLead" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
}

type updateAllocationRequest struct {
	ProjectName *string `json:"projectName"`
	ProjectID   *int    `json:"projectId"`
	ITTeam      *string `json:"itTeam"`
	TeamLead    *string `json:"teamLead"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

// GetAllocations returns all allocations
// GET /api/v1/allocations
func (h *Handler) GetAllocations(c *gin.Context) {
	allocations, err := h.storage.GetAllocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": allocations})
}

// CreateAllocation creates a new allocation
// POST /api/v1/allocations
func (h *Handler) CreateAllocation(c *gin.Context) {
	var req createAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("startDate must be in YYYY-MM-DD format"))
		return
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("endDate must be in YYYY-MM-DD format"))
		return
	}
	if end.Before(start) {
		respondError(c, apperrors.NewBadRequestError("end date must not be before start date"))
		return
	}

	now := time.Now()
	allocation := &domain.Allocation{
		ID:          uuid.New().String(),
		ProjectName: req.ProjectName,
		ProjectID:   req.ProjectID,
		ITTeam:      req.ITTeam,
		TeamLead:    req.TeamLead,
		StartDate:   start,
		EndDate:     end,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.storage.SaveAllocation(c.Request.Context(), allocation); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": allocation})
}

// UpdateAllocation updates an existing allocation
// PUT /api/v1/allocations/:id
func (h *Handler) UpdateAllocation(c *gin.Context) {
	id := c.Param("id")

	var req updateAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	allocation, err := h.storage.GetAllocationByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if allocation == nil {
		respondError(c, apperrors.NewNotFoundError("allocation"))
		return
	}

	if req.ProjectName != nil {
		allocation.ProjectName = *req.ProjectName
	}
	if req.ProjectID != nil {
		allocation.ProjectID = *req.ProjectID
	}
	if req.ITTeam != nil {
		allocation.ITTeam = *req.ITTeam
	}
	if req.TeamLead != nil {
		allocation.TeamLead = *req.TeamLead
	}
	if req.StartDate != nil {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			respondError(c, apperrors.NewBadRequestError("startDate must be in YYYY-MM-DD format"))
			return
		}
		allocation.StartDate = start
	}
	if req.EndDate != nil {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			respondError(c, apperrors.NewBadRequestError("endDate must be in YYYY-MM-DD format"))
			return
		}
		allocation.EndDate = end
	}
	if allocation.EndDate.Before(allocation.StartDate) {
		respondError(c, apperrors.NewBadRequestError("end date must not be before start date"))
		return
	}
	allocation.UpdatedAt = time.Now()

	if err := h.storage.SaveAllocation(c.Request.Context(), allocation); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": allocation})
}

// DeleteAllocation deletes an allocation
// DELETE /api/v1/allocations/:id
func (h *Handler) DeleteAllocation(c *gin.Context) {
	if err := h.storage.DeleteAllocation(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "allocation deleted"})
}

// respondError sends an error response
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		status := http.StatusInternalServerError
		switch appErr.Code {
		case apperrors.ErrCodeNotFound:
			status = http.StatusNotFound
		case apperrors.ErrCodeBadRequest:
			status = http.StatusBadRequest
		case apperrors.ErrCodeForbidden:
			status = http.StatusForbidden
		case apperrors.ErrCodeRateLimited:
			status = http.StatusTooManyRequests
		}
		c.JSON(status, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error": gin.H{
			"code":    "INTERNAL_ERROR",
			"message": err.Error(),
		},
	})
}
