package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// JobHandler handles HTTP requests for the job catalog.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /v1/jobs.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if !domain.ValidCategory(req.Category) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown category")
	}

	employerName, _ := c.Get("email").(string)
	job, err := h.service.AddJob(c.Request().Context(), ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location: ports.LocationInput{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			Address: req.Location.Address,
		},
		Category:     req.Category,
		Image:        req.Image,
		EmployerID:   userID,
		EmployerName: employerName,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.Category).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// List handles GET /v1/jobs with optional filter query params.
//
// @Summary      Browse jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        category   query     string  false  "Category, or All"
// @Param        min_price  query     number  false  "Minimum price"
// @Param        max_price  query     number  false  "Maximum price"
// @Param        location   query     string  false  "Address substring"
// @Param        q          query     string  false  "Free-text search on title/description"
// @Success      200        {object}  jobListResponse
// @Failure      401        {object}  errorResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	minPrice, _ := strconv.ParseFloat(c.QueryParam("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)

	jobs := h.service.FilterJobs(c.Request().Context(), ports.JobFilter{
		Category: c.QueryParam("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Location: c.QueryParam("location"),
		Query:    c.QueryParam("q"),
	})
	return c.JSON(http.StatusOK, toJobListResponse(jobs))
}

// Get handles GET /v1/jobs/:id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id (e.g. JOB-7A8B9C2D)"
// @Success      200  {object}  jobResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Mine handles GET /v1/jobs/mine — jobs posted by the authenticated employer.
//
// @Summary      List my postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/jobs/mine [get]
func (h *JobHandler) Mine(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	jobs := h.service.JobsForEmployer(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, toJobListResponse(jobs))
}

// Applied handles GET /v1/jobs/applied — jobs the authenticated student applied to.
//
// @Summary      List jobs I applied to
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/jobs/applied [get]
func (h *JobHandler) Applied(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	jobs := h.service.AppliedJobs(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, toJobListResponse(jobs))
}

// Apply handles POST /v1/jobs/:id/apply.
//
// @Summary      Apply to a job
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id}/apply [post]
func (h *JobHandler) Apply(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	job := h.service.ApplyToJob(c.Request().Context(), c.Param("id"), userID)
	if job == nil {
		return domain.ErrJobNotFound
	}

	metrics.JobApplicationsTotal.Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// UpdateStatus handles PATCH /v1/jobs/:id/status.
//
// @Summary      Advance a job's lifecycle status
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                  true  "Job id"
// @Param        body  body      updateJobStatusRequest  true  "New status"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/status [patch]
func (h *JobHandler) UpdateStatus(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), userID, domain.JobStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}
