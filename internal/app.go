package internal

import (
	"github.com/rios0rios0/craterename/internal/domain/entities"
	"github.com/rios0rios0/craterename/internal/infrastructure/controllers"
)

// AppInternal holds everything the CLI needs after dependency injection.
type AppInternal struct {
	controllers      *[]entities.Controller
	renameController *controllers.RenameController
}

// NewAppInternal creates the application context.
func NewAppInternal(
	controllerList *[]entities.Controller,
	renameController *controllers.RenameController,
) *AppInternal {
	return &AppInternal{
		controllers:      controllerList,
		renameController: renameController,
	}
}

// GetControllers returns the controllers registered as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}

// GetRenameController returns the controller behind the root command.
func (it *AppInternal) GetRenameController() *controllers.RenameController {
	return it.renameController
}
