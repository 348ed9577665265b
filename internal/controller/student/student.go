// Package student is the controller layer between the console view and the
// registration service. It forwards calls without adding behavior.
package student

import "github.com/aanand-mishra/students-cli/internal/types"

// Service is what the controller needs from the registration service.
type Service interface {
	Register(s types.Student) (types.Student, error)
	List() ([]types.Student, error)
}

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// AddStudent registers s and returns the record with its assigned id.
func (c *Controller) AddStudent(s types.Student) (types.Student, error) {
	return c.service.Register(s)
}

// ListAll returns every registered student in id order.
func (c *Controller) ListAll() ([]types.Student, error) {
	return c.service.List()
}
