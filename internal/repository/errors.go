package repository

import "errors"

// Common repository errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrTaskNotFound is returned when a task is not found
	ErrTaskNotFound = errors.New("task not found")

	// ErrMaterialNotFound is returned when a material is not found
	ErrMaterialNotFound = errors.New("material not found")

	// ErrCategoryNotFound is returned when a material category is not found
	ErrCategoryNotFound = errors.New("material category not found")

	// ErrSupplierNotFound is returned when a supplier is not found
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrLaborTypeNotFound is returned when a labor type is not found
	ErrLaborTypeNotFound = errors.New("labor type not found")

	// ErrDependencyNotFound is returned when a dependency edge is not found
	ErrDependencyNotFound = errors.New("task dependency not found")

	// ErrDependencyExists is returned when the same precedence edge is added twice
	ErrDependencyExists = errors.New("task dependency already exists")
)
