package quickserve

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Payload is the body accepted by the create-item endpoint.
// ID is optional and echoed back only when the client sent it.
type Payload struct {
	ID   *int   `json:"id,omitempty" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name" validate:"required"`
}

// Validate checks the payload and returns a 400 Error when Name is missing.
func (p Payload) Validate() error {
	if err := validate.Struct(p); err != nil {
		return WrapError(http.StatusBadRequest, MsgNameRequired, err)
	}
	return nil
}

// Item is the value returned by the get-item endpoint.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewItem synthesizes the item for id. Nothing is looked up or stored.
func NewItem(id int) Item {
	return Item{ID: id, Name: fmt.Sprintf("Item %d", id)}
}

// Health is the body returned by the health endpoint.
type Health struct {
	Status string `json:"status"`
}

// StatusOK is the only health status the server reports.
const StatusOK = "ok"
