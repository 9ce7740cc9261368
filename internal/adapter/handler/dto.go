package handler

import (
	"encoding/json"

	"github.com/srgjo27/event_ticketing/internal/core/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Numeric fields are json.Number so range and format errors surface as field
// validation failures rather than decode errors.
type eventRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Venue       string      `json:"venue"`
	Capacity    json.Number `json:"capacity"`
	Status      string      `json:"status"`
}

func (req eventRequest) input() services.EventInput {
	return services.EventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Venue:       req.Venue,
		Capacity:    req.Capacity.String(),
		Status:      req.Status,
	}
}

type bookingRequest struct {
	Quantity json.Number `json:"quantity"`
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (req userRequest) input() services.UserInput {
	return services.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}
}
