package main

// @title BizAdmin API
// @version 1.0
// @description Backend for administering a construction company: projects, billings with Indonesian tax deductions, cash transactions and cash requests.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	Execute()
}
