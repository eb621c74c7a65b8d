package docs

import "github.com/swaggo/swag"

// @title           SiteOps API
// @version         1.0
// @description     API for planning construction projects: tasks with material and labor costing, planning summaries, critical-path schedules, supplier price history and deadline alerts
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token

// @tag.name Users
// @tag.description User registration and authentication

// @tag.name Projects
// @tag.description Construction project management

// @tag.name Tasks
// @tag.description Task management with material and labor line items

// @tag.name Planning
// @tag.description Planning summaries, schedules, alerts and cost rollups

// @tag.name Materials
// @tag.description Material catalog operations

// @tag.name Suppliers
// @tag.description Supplier directory and price history

// @tag.name Labor
// @tag.description Labor type rates

// @tag.name Catalog
// @tag.description Construction phase and component catalog

// Register swagger info
func SwaggerInfo() *swag.Spec {
	return swag.Instance
}
