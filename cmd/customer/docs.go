package main

// @title Favorite Products API
// @version 1.0
// @description Customer and favorite products service with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/kelvinmusselli/favoriteProducts
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Customers
// @tag.description Customer management endpoints

// @tag.name Favorites
// @tag.description Favorite product endpoints

// @tag.name Health
// @tag.description Health check endpoints
