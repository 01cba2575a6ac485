package v1

import (
	"net/http"

	"github.com/billtrail/backend/internal/httputil"
	"github.com/billtrail/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ProfileResponse struct {
	Data  *models.Profile `json:"data"`                                                                 // The profile
	Error *string         `json:"error" example:"the language must be one of en, hi, te, ta, kn or ml"` // The error, if any occurred
}

type FeedbackEditable struct {
	Rating  int    `json:"rating" example:"5"`                              // Rating from 1 to 5
	Comment string `json:"comment" example:"Reminders saved me a late fee"` // Optional comment
}

type FeedbackListResponse struct {
	Data  []models.Feedback `json:"data"`                                                                              // List of feedbacks, oldest first
	Error *string           `json:"error" example:"stored data is malformed: feedbacks: unexpected end of JSON input"` // The error, if any occurred
}

type FeedbackResponse struct {
	Data  *models.Feedback `json:"data"`                                               // The feedback
	Error *string          `json:"error" example:"the rating must be between 1 and 5"` // The error, if any occurred
}

func (co Controller) RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsProfile)
	r.GET("", co.GetProfile)
	r.PUT("", co.ReplaceProfile)
}

func (co Controller) RegisterFeedbackRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsFeedbacks)
	r.GET("", co.GetFeedbacks)
	r.POST("", co.CreateFeedback)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func (co Controller) OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get profile
// @Description	Returns the profile. Until a profile is saved, the default profile is returned.
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func (co Controller) GetProfile(c *gin.Context) {
	profile, err := co.Store.Profile().Get(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Replace profile
// @Description	Replaces the profile
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		models.Profile	true	"Profile"
// @Router			/v1/profile [put]
func (co Controller) ReplaceProfile(c *gin.Context) {
	var profile models.Profile
	if err := httputil.BindData(c, &profile); err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	profile, err := co.Store.Profile().Save(c, profile)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Data: &profile})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/feedbacks [options]
func (co Controller) OptionsFeedbacks(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List feedbacks
// @Description	Returns all submitted feedbacks
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	FeedbackListResponse
// @Failure		500	{object}	FeedbackListResponse
// @Router			/v1/feedbacks [get]
func (co Controller) GetFeedbacks(c *gin.Context) {
	feedbacks, err := co.Store.Feedbacks().List(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FeedbackListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, FeedbackListResponse{Data: feedbacks})
}

// @Summary		Submit feedback
// @Description	Stores a rating with an optional comment
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		201			{object}	FeedbackResponse
// @Failure		400			{object}	FeedbackResponse
// @Failure		500			{object}	FeedbackResponse
// @Param			feedback	body		FeedbackEditable	true	"Feedback"
// @Router			/v1/feedbacks [post]
func (co Controller) CreateFeedback(c *gin.Context) {
	var editable FeedbackEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), FeedbackResponse{Error: &e})
		return
	}

	feedback, err := co.Store.Feedbacks().Add(c, models.Feedback{
		Rating:  editable.Rating,
		Comment: editable.Comment,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FeedbackResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, FeedbackResponse{Data: &feedback})
}
