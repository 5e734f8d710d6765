package main

// @title           Farmbase API
// @version         1.0
// @description     Farm management backend: account auth and ownership-scoped farm/task CRUD
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
