// Package controllers exposes the budget engine over HTTP.
package controllers

import (
	"github.com/envelope-zero/planner/pkg/budget"
)

// Controller holds the dependencies of all HTTP handlers.
type Controller struct {
	Engine *budget.Engine
}
