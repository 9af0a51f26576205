package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskflow/core/internal/application/services"
	"github.com/taskflow/core/internal/infrastructure/logger"
	"github.com/taskflow/core/internal/ports"
)

// TeamHandler handles team and team membership requests
type TeamHandler struct {
	teamService *services.TeamService
	logger      *logger.Logger
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *services.TeamService, logger *logger.Logger) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		logger:      logger,
	}
}

// ListTeams godoc
// @Summary List teams
// @Tags teams
// @Produce json
// @Success 200 {array} entities.Team
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c echo.Context) error {
	teams, err := h.teamService.ListTeams(c.Request().Context())
	if err != nil {
		h.logger.Error("List teams failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param request body ports.CreateTeamRequest true "Team data"
// @Success 201 {object} entities.Team
// @Failure 400 {object} ports.ErrorResponse
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	var req ports.CreateTeamRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	team, err := h.teamService.CreateTeam(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create team failed", "error", err, "name", req.Name)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, team)
}

// GetTeam godoc
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} entities.Team
// @Failure 404 {object} ports.ErrorResponse
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	team, err := h.teamService.GetTeam(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, team)
}

// UpdateTeam godoc
// @Summary Update team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body ports.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} entities.Team
// @Failure 404 {object} ports.ErrorResponse
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.UpdateTeamRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	team, err := h.teamService.UpdateTeam(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Error("Update team failed", "error", err, "team_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, team)
}

// DeleteTeam godoc
// @Summary Delete team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} ports.SuccessResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.teamService.DeleteTeam(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete team failed", "error", err, "team_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, ports.SuccessResponse{Success: true})
}

// ListMembers godoc
// @Summary List team members
// @Description Get a team's members with their user records embedded
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} entities.TeamMember
// @Failure 404 {object} ports.ErrorResponse
// @Router /teams/{id}/members [get]
func (h *TeamHandler) ListMembers(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	members, err := h.teamService.ListMembers(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, members)
}

// AddMember godoc
// @Summary Add a team member
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param request body ports.AddTeamMemberRequest true "Membership data"
// @Success 201 {object} entities.TeamMember
// @Failure 400 {object} ports.ErrorResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /teams/{id}/members [post]
func (h *TeamHandler) AddMember(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req ports.AddTeamMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	member, err := h.teamService.AddMember(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Error("Add team member failed", "error", err, "team_id", id, "user_id", req.UserID)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, member)
}

// RemoveMember godoc
// @Summary Remove a team member
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param userId path int true "User ID"
// @Success 200 {object} ports.SuccessResponse
// @Failure 404 {object} ports.ErrorResponse
// @Router /teams/{id}/members/{userId} [delete]
func (h *TeamHandler) RemoveMember(c echo.Context) error {
	teamID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}

	if err := h.teamService.RemoveMember(c.Request().Context(), teamID, userID); err != nil {
		h.logger.Error("Remove team member failed", "error", err, "team_id", teamID, "user_id", userID)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, ports.SuccessResponse{Success: true})
}
